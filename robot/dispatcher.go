package robot

import "log"

// Dispatcher turns decoded keys into motion and speed changes.
type Dispatcher struct {
	Actuator Actuator
	Log      Logger
}

func NewDispatcher(act Actuator, logger Logger) *Dispatcher {
	if logger == nil {
		logger = log.Default()
	}
	return &Dispatcher{Actuator: act, Log: logger}
}

// Dispatch performs the action for key. Motion commands call the actuator
// exactly once; speed commands only touch *speed. Every call logs one line.
func (d *Dispatcher) Dispatch(key int, speed *Speed) Action {
	switch key {
	case CmdForward:
		d.Actuator.Forward(uint16(*speed))
		d.Log.Printf("forward")
		return ActionForward
	case CmdLeft:
		d.Actuator.Left(uint16(TurnSpeed))
		d.Log.Printf("left")
		return ActionLeft
	case CmdStop:
		d.Actuator.Stop()
		d.Log.Printf("stop")
		return ActionStop
	case CmdRight:
		d.Actuator.Right(uint16(TurnSpeed))
		d.Log.Printf("right")
		return ActionRight
	case CmdBackward:
		d.Actuator.Backward(uint16(*speed))
		d.Log.Printf("backward")
		return ActionBackward
	case CmdResetSpeed:
		speed.Reset()
		d.Log.Printf("speed: %d", *speed)
		return ActionResetSpeed
	case CmdFaster:
		speed.Increase()
		d.Log.Printf("speed: %d", *speed)
		return ActionFaster
	case CmdSlower:
		speed.Decrease()
		d.Log.Printf("speed: %d", *speed)
		return ActionSlower
	}
	d.Log.Printf("unknown key: 0x%02X", key)
	return ActionUnknown
}
