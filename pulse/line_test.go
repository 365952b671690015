package pulse

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/sparques/irbot"
)

func TestLine(t *testing.T) {
	Convey("an idle line reads high and the clock moves one tick per sample", t, func() {
		l := New()
		So(l.Get(), ShouldBeTrue)
		So(l.Get(), ShouldBeTrue)
		So(l.Now(), ShouldEqual, 2*time.Microsecond)
		So(l.Pending(), ShouldBeFalse)
	})

	Convey("a played pair reads low for the burst then high", t, func() {
		l := New()
		l.Play(irbot.TimePair{3 * time.Microsecond, 2 * time.Microsecond})
		So(l.Pending(), ShouldBeTrue)

		var got []bool
		for i := 0; i < 6; i++ {
			got = append(got, l.Get())
		}
		So(got, ShouldResemble, []bool{false, false, false, true, true, true})
		So(l.Pending(), ShouldBeFalse)
	})

	Convey("trains queue behind each other", t, func() {
		l := New()
		l.Play(irbot.TimePair{time.Microsecond, time.Microsecond})
		l.Gap(2 * time.Microsecond)
		l.Play(irbot.TimePair{time.Microsecond, 0})

		var got []bool
		for i := 0; i < 6; i++ {
			got = append(got, l.Get())
		}
		So(got, ShouldResemble, []bool{false, true, true, true, false, true})
	})

	Convey("playing after the clock has passed the schedule starts at now", t, func() {
		l := New()
		l.Advance(time.Millisecond)
		l.Play(irbot.TimePair{time.Microsecond, 0})
		So(l.Get(), ShouldBeFalse)
		So(l.Get(), ShouldBeTrue)
	})

	Convey("flush returns the line to idle", t, func() {
		l := New()
		l.Play(irbot.TimePair{time.Millisecond, 0})
		So(l.Get(), ShouldBeFalse)
		l.Flush()
		So(l.Get(), ShouldBeTrue)
		So(l.Pending(), ShouldBeFalse)
	})

	Convey("WaitForLevel measures transitions exactly", t, func() {
		l := New()
		l.Play(irbot.TimePair{9 * time.Millisecond, 4500 * time.Microsecond}, irbot.TimePair{560 * time.Microsecond, 0})

		So(irbot.WaitForLevel(l, l, false, time.Millisecond), ShouldBeGreaterThan, time.Duration(0))
		So(irbot.WaitForLevel(l, l, true, 12*time.Millisecond), ShouldEqual, 9*time.Millisecond)
		So(irbot.WaitForLevel(l, l, false, 7*time.Millisecond), ShouldEqual, 4500*time.Microsecond)
		So(irbot.WaitForLevel(l, l, true, time.Millisecond), ShouldEqual, 560*time.Microsecond)
	})
}
