// Package pulse replays scripted IR pulse trains on a virtual receiver line.
//
// A Line is both an irbot.Line and an irbot.Clock. Its clock only moves when
// the line is sampled (or explicitly advanced), one Tick per Get, so a
// busy-wait loop driven by it is deterministic and always terminates: a
// transition at time T is observed by the first sample taken at or after T.
//
// Like a demodulating receiver, the line idles high and reads low while the
// carrier is on.
package pulse

import (
	"time"

	"github.com/sparques/irbot"
)

// DefaultTick gives microsecond sampling resolution.
const DefaultTick = time.Microsecond

type burst struct {
	start, end time.Duration
}

type Line struct {
	// Tick is how far the clock moves on every Get.
	Tick time.Duration

	now    time.Duration
	end    time.Duration // end of everything scheduled so far
	bursts []burst
}

func New() *Line {
	return &Line{Tick: DefaultTick}
}

// Play schedules pairs to start once everything already scheduled (or now,
// whichever is later) has finished.
func (l *Line) Play(pairs ...irbot.TimePair) {
	t := l.end
	if t < l.now {
		t = l.now
	}
	for _, p := range pairs {
		if p[0] > 0 {
			l.bursts = append(l.bursts, burst{t, t + p[0]})
		}
		t += p[0] + p[1]
	}
	l.end = t
}

// PlayFrame is Play with a frame's own pulse train.
func (l *Line) PlayFrame(fm irbot.FrameMarshaller) {
	l.Play(fm.MarshalFrame()...)
}

// Gap schedules d of silence.
func (l *Line) Gap(d time.Duration) {
	l.Play(irbot.TimePair{0, d})
}

// Get implements irbot.Line.
func (l *Line) Get() bool {
	for len(l.bursts) > 0 && l.bursts[0].end <= l.now {
		l.bursts = l.bursts[1:]
	}
	high := len(l.bursts) == 0 || l.now < l.bursts[0].start
	l.now += l.Tick
	return high
}

// Now implements irbot.Clock.
func (l *Line) Now() time.Duration {
	return l.now
}

// Advance moves the clock forward without sampling, e.g. while the caller
// sleeps.
func (l *Line) Advance(d time.Duration) {
	l.now += d
}

// Pending reports whether any part of the scheduled train is still ahead
// of the clock.
func (l *Line) Pending() bool {
	return l.now < l.end
}

// Flush drops whatever is still scheduled; the line goes back to idle.
func (l *Line) Flush() {
	l.bursts = l.bursts[:0]
	l.end = l.now
}
