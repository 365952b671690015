package main

import (
	"sync"
	"time"

	"github.com/sparques/irbot/motor"
	"github.com/sparques/irbot/nec"
	"github.com/sparques/irbot/pulse"
	"github.com/sparques/irbot/robot"
)

// Bench is the robot firmware running against a virtual receiver and a
// virtual H-bridge. The remote side plays NEC frames onto the line and the
// real decoder and controller pick them up, one Step at a time, in virtual
// time.
type Bench struct {
	mu sync.Mutex

	line    *pulse.Line
	decoder *nec.Decoder
	ctl     *robot.Controller
	motors  *motor.Driver

	// Address is what the virtual remote puts in every frame.
	Address byte
}

type virtualPin struct{ high bool }

func (p *virtualPin) Set(high bool) { p.high = high }

type virtualChannel struct{ duty uint16 }

func (c *virtualChannel) SetDuty(duty uint16) { c.duty = duty }

func NewBench(profile nec.Profile, addr byte, tick time.Duration, logger robot.Logger) *Bench {
	line := pulse.New()
	line.Tick = tick

	dec := nec.NewDecoder(line, line)
	dec.Profile = profile

	motors := motor.NewDriver(&virtualChannel{}, &virtualChannel{},
		&virtualPin{}, &virtualPin{}, &virtualPin{}, &virtualPin{})

	ctl := robot.NewController(dec, motors, logger)
	ctl.Sleep = line.Advance

	return &Bench{
		line:    line,
		decoder: dec,
		ctl:     ctl,
		motors:  motors,
		Address: addr,
	}
}

// Step is one pass of the control loop as seen from outside.
type Step struct {
	Key    int    `json:"key"`
	Action string `json:"action"`
}

type Snapshot struct {
	Speed  uint16        `json:"speed"`
	Idle   int           `json:"idle"`
	Motion string        `json:"motion"`
	Duty   uint16        `json:"duty"`
	Clock  time.Duration `json:"clock_ns"`
}

// step must be called with mu held.
func (b *Bench) step() Step {
	key, action := b.ctl.Step()
	return Step{Key: key, Action: action.String()}
}

// drain runs the loop until everything scheduled on the line has gone by.
func (b *Bench) drain() []Step {
	var steps []Step
	for b.line.Pending() {
		steps = append(steps, b.step())
	}
	return steps
}

// Press sends the frame for a named button.
func (b *Bench) Press(button string) ([]Step, error) {
	code, err := robot.ButtonCode(button)
	if err != nil {
		return nil, err
	}
	return b.Send(nec.Frame{Addr: b.Address, Cmd: code}), nil
}

func (b *Bench) Send(f nec.Frame) []Step {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.line.PlayFrame(f)
	return b.drain()
}

// Raw sends an arbitrary 32 bit payload, checksums and all.
func (b *Bench) Raw(raw uint32) []Step {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.line.Play(nec.RawPairs(raw)...)
	return b.drain()
}

// Idle runs n polls with the remote silent and returns how many of them
// ended in a forced stop.
func (b *Bench) Idle(n int) (stops int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.line.Flush()
	for i := 0; i < n; i++ {
		if _, action := b.ctl.Step(); action == robot.ActionIdleStop {
			stops++
		}
	}
	return stops
}

func (b *Bench) Snapshot() Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	dir, duty := b.motors.State()
	return Snapshot{
		Speed:  uint16(b.ctl.State.Speed),
		Idle:   b.ctl.State.Idle,
		Motion: dir.String(),
		Duty:   duty,
		Clock:  b.line.Now(),
	}
}

func (b *Bench) Profile() nec.Profile {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.decoder.Profile
}
