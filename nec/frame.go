// Package nec decodes and encodes NEC infrared remote frames.
//
// An NEC frame is a 9ms burst, a 4.5ms space and 32 pulse-distance coded
// bits: every bit is a 562.5us burst followed by a 562.5us space for a zero
// or a 1687.5us space for a one. The bytes are address, inverted address,
// command and inverted command, each sent least significant bit first.
// A final burst terminates the last space.
//
// References:
// https://www.sbprojects.net/knowledge/ir/nec.php
package nec

import (
	"errors"
	"time"

	"github.com/sparques/irbot"
)

const (
	Unit         = 562500 * time.Nanosecond // 562.5 us
	LeadMark     = Unit * 16                // 9 ms
	LeadSpace    = Unit * 8                 // 4.5 ms
	RepeatSpace  = Unit * 4                 // 2.25 ms
	BitMark      = Unit                     // 562.5 us
	ZeroSpace    = Unit                     // 562.5 us
	OneSpace     = Unit * 3                 // 1.6875 ms
	TrailMark    = Unit                     // 562.5 us
	RepeatPeriod = Unit * 192               // 108 ms
)

var (
	// ErrChecksum is returned when a byte and its inverse don't add up to 0xFF.
	ErrChecksum = errors.New("nec: checksum mismatch")
)

// Frame is the payload of a validated NEC frame.
type Frame struct {
	Addr byte
	Cmd  byte
}

// Raw packs f the way it goes over the air: bit 0 is sent first.
func (f Frame) Raw() uint32 {
	return uint32(^f.Cmd)<<24 | uint32(f.Cmd)<<16 | uint32(^f.Addr)<<8 | uint32(f.Addr)
}

// Valid reports whether both byte pairs of raw check out.
func Valid(raw uint32) bool {
	return byte(raw)+byte(raw>>8) == 0xFF && byte(raw>>16)+byte(raw>>24) == 0xFF
}

// FromRaw unpacks a received 32 bit payload.
func FromRaw(raw uint32) (Frame, error) {
	if !Valid(raw) {
		return Frame{}, ErrChecksum
	}
	return Frame{Addr: byte(raw), Cmd: byte(raw >> 16)}, nil
}

var (
	StartPair  = irbot.TimePair{LeadMark, LeadSpace}
	ZeroPair   = irbot.TimePair{BitMark, ZeroSpace}
	OnePair    = irbot.TimePair{BitMark, OneSpace}
	TrailPair  = irbot.TimePair{TrailMark, 0}
	RepeatPair = irbot.TimePair{LeadMark, RepeatSpace}
)

// MarshalFrame implements irbot.FrameMarshaller.
func (f Frame) MarshalFrame() []irbot.TimePair {
	return RawPairs(f.Raw())
}

// RawPairs encodes any 32 bit payload, valid or not.
func RawPairs(raw uint32) []irbot.TimePair {
	out := make([]irbot.TimePair, 34)
	out[0] = StartPair
	for bit := 0; bit < 32; bit++ {
		if (raw>>bit)&1 == 1 {
			out[bit+1] = OnePair
		} else {
			out[bit+1] = ZeroPair
		}
	}
	out[33] = TrailPair
	return out
}

// Repeat is what a remote sends while a button stays held. Decoders in this
// package don't act on it.
type Repeat struct{}

func (Repeat) MarshalFrame() []irbot.TimePair {
	return []irbot.TimePair{RepeatPair, TrailPair}
}
