package robot

// Speed is a motor duty cycle: 0 is off, 65535 is fully on.
type Speed uint16

const (
	DefaultSpeed Speed = 32768 // ~50%
	TurnSpeed    Speed = 13107 // ~20%, turns ignore the current speed
	SpeedStep    Speed = 6553  // ~10%
	MaxSpeed     Speed = 65535
)

// Increase adds one SpeedStep unless that would overflow.
func (s *Speed) Increase() bool {
	if uint32(*s)+uint32(SpeedStep) >= 1<<16 {
		return false
	}
	*s += SpeedStep
	return true
}

// Decrease removes one SpeedStep if the speed is above it. The speed never
// reaches zero this way.
func (s *Speed) Decrease() bool {
	if *s <= SpeedStep {
		return false
	}
	*s -= SpeedStep
	return true
}

func (s *Speed) Reset() {
	*s = DefaultSpeed
}
