package robot_test

import (
	"bytes"
	"log"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/sparques/irbot/nec"
	"github.com/sparques/irbot/pulse"
	"github.com/sparques/irbot/robot"
)

type motors struct {
	last  string
	duty  uint16
	stops int
}

func (m *motors) Stop()                { m.last, m.duty = "stop", 0; m.stops++ }
func (m *motors) Forward(duty uint16)  { m.last, m.duty = "forward", duty }
func (m *motors) Backward(duty uint16) { m.last, m.duty = "backward", duty }
func (m *motors) Left(duty uint16)     { m.last, m.duty = "left", duty }
func (m *motors) Right(duty uint16)    { m.last, m.duty = "right", duty }

func TestRemoteToMotors(t *testing.T) {
	Convey("given a robot listening on a virtual receiver", t, func() {
		line := pulse.New()
		m := &motors{}
		var out bytes.Buffer
		c := robot.NewController(nec.NewDecoder(line, line), m, log.New(&out, "", 0))
		c.Sleep = line.Advance

		Convey("a forward frame from address 0 drives forward at the current speed", func() {
			line.PlayFrame(nec.Frame{Addr: 0x00, Cmd: 0x18})
			key, action := c.Step()
			So(key, ShouldEqual, 0x18)
			So(action, ShouldEqual, robot.ActionForward)
			So(m.last, ShouldEqual, "forward")
			So(m.duty, ShouldEqual, uint16(robot.DefaultSpeed))
			So(out.String(), ShouldEqual, "forward\n")
		})

		Convey("the same frame with a broken complement does nothing", func() {
			line.Play(nec.RawPairs(0xE618FF00)...)
			key, action := c.Step()
			So(key, ShouldEqual, nec.NoKey)
			So(action, ShouldEqual, robot.ActionIdle)
			So(m.last, ShouldEqual, "")
			So(c.State.Idle, ShouldEqual, 1)
		})

		Convey("speeding up then reversing uses the new speed", func() {
			for _, cmd := range []byte{robot.CmdFaster, robot.CmdBackward} {
				line.PlayFrame(nec.Frame{Cmd: cmd})
				line.Gap(40 * time.Millisecond)
			}
			var actions []robot.Action
			for line.Pending() {
				_, action := c.Step()
				actions = append(actions, action)
			}
			So(actions, ShouldContain, robot.ActionFaster)
			So(actions, ShouldContain, robot.ActionBackward)
			So(m.last, ShouldEqual, "backward")
			So(m.duty, ShouldEqual, uint16(32768+6553))
		})

		Convey("a remote that goes quiet gets the robot stopped", func() {
			line.PlayFrame(nec.Frame{Cmd: robot.CmdForward})
			c.Step()
			So(m.last, ShouldEqual, "forward")

			// shorten empty polls; the stop comes from counting them
			c.Keys.(*nec.Decoder).Profile.IdleTimeout = 10 * time.Microsecond
			for i := 0; i <= robot.IdleLimit; i++ {
				c.Step()
			}
			So(m.last, ShouldEqual, "stop")
			So(m.stops, ShouldEqual, 1)
			So(out.String(), ShouldEndWith, "idle stop\n")
		})
	})
}
