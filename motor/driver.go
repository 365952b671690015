// Package motor drives two DC motors through a dual H-bridge such as the
// TB6612FNG: one PWM input per motor for speed and two direction inputs per
// motor. Motor A is the left side, motor B the right.
package motor

import (
	"fmt"

	"github.com/sparques/irbot"
)

type Direction uint8

const (
	DirectionStop Direction = iota
	DirectionForward
	DirectionBackward
	DirectionLeft
	DirectionRight
)

func (d Direction) String() string {
	switch d {
	case DirectionStop:
		return "stop"
	case DirectionForward:
		return "forward"
	case DirectionBackward:
		return "backward"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	}
	return fmt.Sprintf("Direction(%d)", d)
}

// Bridge is the level of each direction input.
type Bridge struct {
	AIN1, AIN2 bool
	BIN1, BIN2 bool
}

// Bridge returns the direction inputs for d. Turns spin the motors against
// each other; stop releases both bridges.
func (d Direction) Bridge() Bridge {
	switch d {
	case DirectionForward:
		return Bridge{AIN2: true, BIN2: true}
	case DirectionBackward:
		return Bridge{AIN1: true, BIN1: true}
	case DirectionLeft:
		return Bridge{AIN1: true, BIN2: true}
	case DirectionRight:
		return Bridge{AIN2: true, BIN1: true}
	}
	return Bridge{}
}

// Output is a digital output pin. machine.Pin satisfies it.
type Output interface {
	Set(high bool)
}

// Channel is a PWM output taking a 16 bit duty cycle.
type Channel interface {
	SetDuty(duty uint16)
}

// Counter is the part of a PWM peripheral a PWMChannel drives.
// pwm.Group satisfies it.
type Counter interface {
	Set(ch uint8, value uint32)
	Top() uint32
}

// PWMChannel is a Channel on one output of a PWM counter.
type PWMChannel struct {
	counter Counter
	ch      uint8
}

// NewPWMChannel returns the channel with its output off.
func NewPWMChannel(counter Counter, ch uint8) (*PWMChannel, error) {
	if counter == nil {
		return nil, irbot.ErrNoPWM
	}
	p := &PWMChannel{counter: counter, ch: ch}
	p.SetDuty(0)
	return p, nil
}

func (p *PWMChannel) SetDuty(duty uint16) {
	p.counter.Set(p.ch, Scale(duty, p.counter.Top()))
}

// Driver implements robot.Actuator.
type Driver struct {
	pwmA, pwmB Channel
	ain1, ain2 Output
	bin1, bin2 Output

	dir  Direction
	duty uint16
}

func NewDriver(pwmA, pwmB Channel, ain1, ain2, bin1, bin2 Output) *Driver {
	d := &Driver{
		pwmA: pwmA, pwmB: pwmB,
		ain1: ain1, ain2: ain2,
		bin1: bin1, bin2: bin2,
	}
	d.Stop()
	return d
}

// drive sets speed first, then direction, both motors at the same duty.
func (d *Driver) drive(dir Direction, duty uint16) {
	d.pwmA.SetDuty(duty)
	d.pwmB.SetDuty(duty)

	b := dir.Bridge()
	d.ain2.Set(b.AIN2)
	d.ain1.Set(b.AIN1)
	d.bin2.Set(b.BIN2)
	d.bin1.Set(b.BIN1)

	d.dir, d.duty = dir, duty
}

func (d *Driver) Stop()                { d.drive(DirectionStop, 0) }
func (d *Driver) Forward(duty uint16)  { d.drive(DirectionForward, duty) }
func (d *Driver) Backward(duty uint16) { d.drive(DirectionBackward, duty) }
func (d *Driver) Left(duty uint16)     { d.drive(DirectionLeft, duty) }
func (d *Driver) Right(duty uint16)    { d.drive(DirectionRight, duty) }

// State returns what the motors were last told to do.
func (d *Driver) State() (Direction, uint16) {
	return d.dir, d.duty
}

// Scale maps a 16 bit duty onto a PWM counter running 0..top.
func Scale(duty uint16, top uint32) uint32 {
	return uint32(uint64(duty) * uint64(top) / 0xFFFF)
}
