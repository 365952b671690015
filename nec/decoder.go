package nec

import (
	"time"

	"github.com/sparques/irbot"
)

// NoKey is what ReadKey returns when no valid frame was received. Silence,
// noise, partial frames and bad checksums all look the same to the caller.
const NoKey = -1

const (
	low  = false
	high = true
)

// Decoder reads one NEC frame at a time by busy-polling a receiver line.
// Each read starts from scratch and blocks until it has a frame or one of
// the Profile's checks fails; there is no retry within a read.
type Decoder struct {
	line  irbot.Line
	clock irbot.Clock

	Profile Profile
}

func NewDecoder(line irbot.Line, clock irbot.Clock) *Decoder {
	return &Decoder{
		line:    line,
		clock:   clock,
		Profile: DefaultProfile,
	}
}

func (d *Decoder) wait(level bool, timeout time.Duration) time.Duration {
	return irbot.WaitForLevel(d.line, d.clock, level, timeout)
}

// within is also false for irbot.TimedOut.
func within(t, min, max time.Duration) bool {
	return t >= min && t <= max
}

// ReadRaw waits for a frame and returns its 32 bits without checking them.
func (d *Decoder) ReadRaw() (raw uint32, ok bool) {
	p := &d.Profile

	if d.wait(low, p.IdleTimeout) == irbot.TimedOut {
		return 0, false
	}
	if !within(d.wait(high, p.LeadTimeout), p.LeadMin, p.LeadMax) {
		return 0, false
	}
	if !within(d.wait(low, p.SpaceTimeout), p.SpaceMin, p.SpaceMax) {
		return 0, false
	}

	for bit := 0; bit < 32; bit++ {
		if d.wait(high, p.MarkTimeout) == irbot.TimedOut {
			return 0, false
		}
		// a timed out space is negative and lands here too
		space := d.wait(low, p.BitTimeout)
		if space < p.BitMin {
			return 0, false
		}
		if space > p.OneThreshold {
			raw |= 1 << bit
		}
	}

	return raw, true
}

// ReadFrame waits for a frame and returns it if its checksums hold.
func (d *Decoder) ReadFrame() (Frame, bool) {
	raw, ok := d.ReadRaw()
	if !ok {
		return Frame{}, false
	}
	f, err := FromRaw(raw)
	return f, err == nil
}

// ReadKey waits for a frame and returns its command byte, or NoKey.
func (d *Decoder) ReadKey() int {
	f, ok := d.ReadFrame()
	if !ok {
		return NoKey
	}
	return int(f.Cmd)
}
