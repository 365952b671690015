package irbot

import (
	"errors"
	"time"
)

const (
	// Freq38Khz is the most commonly used frequency for IR remotes
	Freq38Khz = 38000
)

// ErrNoPWM is returned when a pin has no PWM peripheral behind it.
var ErrNoPWM = errors.New("pin has no PWM")

// TimePair encodes two durations: how long the carrier is on (the receiver
// pulls its output low) followed by how long it is off.
type TimePair [2]time.Duration

// FrameMarshaller defines an interface for marshalling data to slice of TimePairs
type FrameMarshaller interface {
	MarshalFrame() []TimePair
}

// Duration returns the total length of a train of pairs.
func Duration(pairs []TimePair) (d time.Duration) {
	for _, p := range pairs {
		d += p[0] + p[1]
	}
	return
}
