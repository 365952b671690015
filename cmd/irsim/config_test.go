package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/sparques/irbot/nec"
)

func TestLoadEnv(t *testing.T) {
	Convey("defaults apply with nothing set", t, func() {
		cfg, err := loadEnv()
		So(err, ShouldBeNil)
		So(cfg.Address, ShouldEqual, 0)
		So(cfg.Tick(), ShouldEqual, time.Microsecond)
	})

	Convey("variables are picked up and checked", t, func() {
		os.Setenv("IRSIM_ADDRESS", "300")
		defer os.Unsetenv("IRSIM_ADDRESS")
		_, err := loadEnv()
		So(err, ShouldNotBeNil)

		os.Setenv("IRSIM_ADDRESS", "7")
		cfg, err := loadEnv()
		So(err, ShouldBeNil)
		So(cfg.Address, ShouldEqual, 7)
	})
}

func TestLoadProfile(t *testing.T) {
	Convey("no file means the default profile", t, func() {
		p, err := loadProfile("")
		So(err, ShouldBeNil)
		So(p, ShouldResemble, nec.DefaultProfile)
	})

	Convey("a file overrides what it names", t, func() {
		dir, err := ioutil.TempDir("", "irsim")
		So(err, ShouldBeNil)
		defer os.RemoveAll(dir)

		good := filepath.Join(dir, "good.yaml")
		So(ioutil.WriteFile(good, []byte("idle_timeout_us: 50000\n"), 0644), ShouldBeNil)
		p, err := loadProfile(good)
		So(err, ShouldBeNil)
		So(p.IdleTimeout, ShouldEqual, 50*time.Millisecond)
		So(p.LeadMin, ShouldEqual, nec.DefaultProfile.LeadMin)

		bad := filepath.Join(dir, "bad.yaml")
		So(ioutil.WriteFile(bad, []byte("space_min_us: 9000\n"), 0644), ShouldBeNil)
		_, err = loadProfile(bad)
		So(err, ShouldNotBeNil)

		_, err = loadProfile(filepath.Join(dir, "missing.yaml"))
		So(err, ShouldNotBeNil)
	})
}
