package robot

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestController(t *testing.T) {
	Convey("given a controller with no keys coming in", t, func() {
		act := &recorder{}
		log := &lines{}
		ks := &keys{}
		c := NewController(ks, act, log)
		var slept []time.Duration
		c.Sleep = func(d time.Duration) { slept = append(slept, d) }

		So(c.State, ShouldResemble, State{Speed: DefaultSpeed})

		Convey("800 empty polls do not stop the motors", func() {
			for i := 0; i < IdleLimit; i++ {
				key, action := c.Step()
				So(key, ShouldBeLessThan, 0)
				So(action, ShouldEqual, ActionIdle)
			}
			So(act.calls, ShouldBeEmpty)
			So(c.State.Idle, ShouldEqual, IdleLimit)
			So(len(slept), ShouldEqual, IdleLimit)
			So(slept[0], ShouldEqual, PollDelay)

			Convey("the 801st stops them once and starts counting again", func() {
				_, action := c.Step()
				So(action, ShouldEqual, ActionIdleStop)
				So(act.calls, ShouldResemble, []call{{"stop", 0}})
				So(c.State.Idle, ShouldEqual, 0)
				So(len(slept), ShouldEqual, IdleLimit)
				So(*log, ShouldResemble, lines{"idle stop"})

				_, action = c.Step()
				So(action, ShouldEqual, ActionIdle)
				So(c.State.Idle, ShouldEqual, 1)
				So(act.calls, ShouldHaveLength, 1)
			})
		})

		Convey("a key resets the idle count", func() {
			for i := 0; i < 500; i++ {
				c.Step()
			}
			*ks = keys{CmdStop}
			key, action := c.Step()
			So(key, ShouldEqual, CmdStop)
			So(action, ShouldEqual, ActionStop)
			So(c.State.Idle, ShouldEqual, 0)

			for i := 0; i < 500; i++ {
				_, action = c.Step()
				So(action, ShouldNotEqual, ActionIdleStop)
			}
		})

		Convey("speed carries over between keys", func() {
			*ks = keys{CmdFaster, CmdFaster, 0x45, CmdForward}
			for i := 0; i < 4; i++ {
				c.Step()
			}
			So(c.State.Speed, ShouldEqual, Speed(32768+2*6553))
			So(act.calls, ShouldResemble, []call{{"forward", 32768 + 2*6553}})
			So(slept, ShouldBeEmpty)
		})
	})
}
