//go:build tinygo

package irbot

import (
	. "machine"
	"time"
)

// RxDevice is a demodulating IR receiver wired to a GPIO pin. It is polled
// rather than interrupt driven, so it is both the Line and the Clock a
// decoder samples while it busy-waits.
type RxDevice struct {
	pin   Pin
	clock *MonotonicClock
}

// NewRxDevice configures pin as an input. The common 38kHz receivers idle
// high and pull the line low while a burst is present; the pull-up keeps the
// idle level defined on modules without one of their own.
func NewRxDevice(pin Pin) *RxDevice {
	pin.Configure(PinConfig{Mode: PinInputPullup})
	return &RxDevice{
		pin:   pin,
		clock: NewMonotonicClock(),
	}
}

// Get implements Line.
func (rx *RxDevice) Get() bool {
	return rx.pin.Get()
}

// Now implements Clock.
func (rx *RxDevice) Now() time.Duration {
	return rx.clock.Now()
}

// WaitForLevel is WaitForLevel against this device's own pin and clock.
func (rx *RxDevice) WaitForLevel(level bool, timeout time.Duration) time.Duration {
	return WaitForLevel(rx, rx, level, timeout)
}
