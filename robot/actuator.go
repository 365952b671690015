package robot

// Actuator drives a two motor differential chassis. Duty is 0-65535 for
// both motors.
type Actuator interface {
	Stop()
	Forward(duty uint16)
	Backward(duty uint16)
	Left(duty uint16)
	Right(duty uint16)
}

// Logger takes the one line notes the robot emits for every action.
// *log.Logger satisfies it.
type Logger interface {
	Printf(format string, v ...interface{})
}
