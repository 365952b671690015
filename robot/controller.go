package robot

import "time"

const (
	// IdleLimit is how many empty polls in a row are tolerated before the
	// motors are stopped. With the decoder's own idle timeout this is what
	// stops a robot whose remote went out of range.
	IdleLimit = 800
	PollDelay = time.Millisecond
)

// KeyReader is a blocking source of remote keys. ReadKey returns a negative
// number when nothing valid was received.
type KeyReader interface {
	ReadKey() int
}

// State is everything the control loop carries between polls.
type State struct {
	Speed Speed
	Idle  int
}

// Controller is the main loop: poll for a key, act on it, and stop the
// motors if keys stop arriving.
type Controller struct {
	Keys       KeyReader
	Dispatcher *Dispatcher
	// Sleep pauses between empty polls. Defaults to time.Sleep.
	Sleep func(time.Duration)

	State State
}

func NewController(keys KeyReader, act Actuator, logger Logger) *Controller {
	return &Controller{
		Keys:       keys,
		Dispatcher: NewDispatcher(act, logger),
		Sleep:      time.Sleep,
		State:      State{Speed: DefaultSpeed},
	}
}

// Step polls once and returns the key read (negative for none) and what
// was done about it.
func (c *Controller) Step() (int, Action) {
	key := c.Keys.ReadKey()
	if key >= 0 {
		c.State.Idle = 0
		return key, c.Dispatcher.Dispatch(key, &c.State.Speed)
	}

	c.State.Idle++
	if c.State.Idle > IdleLimit {
		c.State.Idle = 0
		c.Dispatcher.Actuator.Stop()
		c.Dispatcher.Log.Printf("idle stop")
		return key, ActionIdleStop
	}
	c.Sleep(PollDelay)
	return key, ActionIdle
}

// Run polls forever.
func (c *Controller) Run() {
	for {
		c.Step()
	}
}
