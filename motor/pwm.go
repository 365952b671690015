//go:build tinygo

package motor

import (
	. "machine"

	"github.com/sparques/irbot"
	"github.com/sparques/pwm"
)

// PWMPeriod gives roughly the 1.9kHz a 16 bit counter free-running at
// 125MHz would.
const PWMPeriod = 500000 // ns

// Pins is the wiring between the board and the H-bridge.
type Pins struct {
	PWMA, AIN1, AIN2 Pin
	PWMB, BIN1, BIN2 Pin
}

func newPWMChannel(pin Pin) (*PWMChannel, error) {
	pin.Configure(PinConfig{Mode: PinPWM})
	pgroup := pwm.Get(pin)
	if pgroup == nil {
		return nil, irbot.ErrNoPWM
	}
	if err := pgroup.Configure(PWMConfig{Period: PWMPeriod}); err != nil {
		return nil, err
	}
	ch, err := pgroup.Channel(pin)
	if err != nil {
		return nil, err
	}
	return NewPWMChannel(pgroup, ch)
}

// New configures the pins and returns a stopped Driver.
func New(pins Pins) (*Driver, error) {
	pwmA, err := newPWMChannel(pins.PWMA)
	if err != nil {
		return nil, err
	}
	pwmB, err := newPWMChannel(pins.PWMB)
	if err != nil {
		return nil, err
	}
	for _, pin := range []Pin{pins.AIN1, pins.AIN2, pins.BIN1, pins.BIN2} {
		pin.Configure(PinConfig{Mode: PinOutput})
	}
	return NewDriver(pwmA, pwmB, pins.AIN1, pins.AIN2, pins.BIN1, pins.BIN2), nil
}
