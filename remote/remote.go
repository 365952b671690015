// Package remote turns button presses into NEC transmissions the way a
// handheld remote does: one full frame when a button goes down, then a
// repeat code every RepeatPeriod for as long as it stays down.
package remote

import (
	"time"

	"github.com/sparques/irbot"
	"github.com/sparques/irbot/nec"
)

// ScanInterval is how often idle buttons are checked.
const ScanInterval = 10 * time.Millisecond

// Sender transmits a pulse train. irbot.TxDevice satisfies it.
type Sender interface {
	SendFrame(irbot.FrameMarshaller)
}

// Button is one key. Pressed reports whether it is down right now.
type Button struct {
	Code    byte
	Pressed func() bool
}

type Remote struct {
	tx      Sender
	buttons []Button
	held    int // index into buttons, -1 for none

	// Addr goes out in every frame.
	Addr byte
}

func New(tx Sender, addr byte, buttons ...Button) *Remote {
	return &Remote{
		tx:      tx,
		buttons: buttons,
		held:    -1,
		Addr:    addr,
	}
}

// down returns the first pressed button, or -1.
func (r *Remote) down() int {
	for i, b := range r.buttons {
		if b.Pressed() {
			return i
		}
	}
	return -1
}

// Scan checks the buttons once, sends whatever is due and returns how long
// to wait before the next Scan.
func (r *Remote) Scan() time.Duration {
	i := r.down()
	switch {
	case i < 0:
		r.held = -1
		return ScanInterval
	case i == r.held:
		return r.send(nec.Repeat{})
	}
	r.held = i
	return r.send(nec.Frame{Addr: r.Addr, Cmd: r.buttons[i].Code})
}

// send transmits fm and returns the rest of its repeat period.
func (r *Remote) send(fm irbot.FrameMarshaller) time.Duration {
	r.tx.SendFrame(fm)
	return nec.RepeatPeriod - irbot.Duration(fm.MarshalFrame())
}

// Run scans forever.
func (r *Remote) Run() {
	for {
		time.Sleep(r.Scan())
	}
}
