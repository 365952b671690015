package irbot

import "time"

// TimedOut is returned by WaitForLevel when the line never reached the
// requested level. It is an ordinary outcome while nothing is transmitting.
const TimedOut time.Duration = -1

// Line is a digital input. Get reports true for a high level.
type Line interface {
	Get() bool
}

// Clock is a monotonic time source. Only differences between readings
// are meaningful.
type Clock interface {
	Now() time.Duration
}

// MonotonicClock reads the runtime's monotonic clock relative to the
// moment it was created.
type MonotonicClock struct {
	epoch time.Time
}

func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{epoch: time.Now()}
}

func (c *MonotonicClock) Now() time.Duration {
	return time.Since(c.epoch)
}

// WaitForLevel busy-polls line until it reads level and returns how long
// that took. If more than timeout elapses first, TimedOut is returned.
// It never yields; the caller owns the processor for the whole wait.
func WaitForLevel(line Line, clk Clock, level bool, timeout time.Duration) time.Duration {
	start := clk.Now()
	for line.Get() != level {
		if clk.Now()-start > timeout {
			return TimedOut
		}
	}
	return clk.Now() - start
}
