// irsim runs the robot firmware against a virtual IR receiver and H-bridge.
// Drive it from the interactive shell or, with -http, over HTTP:
//
//	curl -X POST localhost:8080/press/forward
//	curl localhost:8080/state
//
// Environment: IRSIM_PROFILE (YAML timing profile), IRSIM_HTTP (listen
// address), IRSIM_ADDRESS (remote address byte), IRSIM_TICK_US (virtual
// sampling period).
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/abiosoft/ishell"
	"github.com/sparques/irbot/nec"
	"github.com/sparques/irbot/robot"
	"gopkg.in/yaml.v2"
)

// maxIdlePolls bounds a single idle request; every poll can cost a full
// IdleTimeout of virtual sampling with the bench locked.
const maxIdlePolls = 10 * robot.IdleLimit

var errBadCount = fmt.Errorf("count must be an integer from 0 to %d", maxIdlePolls)

func parseCount(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > maxIdlePolls {
		return 0, errBadCount
	}
	return n, nil
}

func parseByte(s string) (byte, error) {
	v, err := strconv.ParseUint(s, 0, 8)
	return byte(v), err
}

func printSteps(c *ishell.Context, steps []Step) {
	for _, s := range steps {
		if s.Key >= 0 {
			c.Printf("key 0x%02X -> %s\n", s.Key, s.Action)
		} else {
			c.Printf("no key -> %s\n", s.Action)
		}
	}
}

func main() {
	cfg, err := loadEnv()
	if err != nil {
		log.Fatalf("environment: %v", err)
	}

	flag.StringVar(&cfg.Profile, "profile", cfg.Profile, "YAML timing profile")
	flag.StringVar(&cfg.HTTP, "http", cfg.HTTP, "serve the HTTP remote on this ip:port")
	flag.IntVar(&cfg.Address, "addr", cfg.Address, "address byte the virtual remote sends")
	flag.Parse()
	if err := cfg.check(); err != nil {
		log.Fatal(err)
	}

	profile, err := loadProfile(cfg.Profile)
	if err != nil {
		log.Fatalf("profile: %v", err)
	}

	bench := NewBench(profile, byte(cfg.Address), cfg.Tick(), log.New(os.Stdout, "robot: ", 0))

	if cfg.HTTP != "" {
		go func() {
			log.Printf("HTTP remote on %s", cfg.HTTP)
			log.Fatal(http.ListenAndServe(cfg.HTTP, bench.Router()))
		}()
	}

	shell := ishell.New()
	shell.Println("irbot bench; remote address", fmt.Sprintf("0x%02X", cfg.Address))
	shell.AddCmd(&ishell.Cmd{
		Name: "press",
		Help: "press <" + strings.Join(robot.Buttons(), "|") + ">",
		Completer: func([]string) []string {
			return robot.Buttons()
		},
		Func: func(c *ishell.Context) {
			if len(c.Args) != 1 {
				c.Err(errors.New("usage: press <button>"))
				return
			}
			steps, err := bench.Press(c.Args[0])
			if err != nil {
				c.Err(err)
				return
			}
			printSteps(c, steps)
		},
	})
	shell.AddCmd(&ishell.Cmd{
		Name: "send",
		Help: "send <addr> <cmd>",
		Func: func(c *ishell.Context) {
			if len(c.Args) != 2 {
				c.Err(errors.New("usage: send <addr> <cmd>"))
				return
			}
			addr, err := parseByte(c.Args[0])
			if err != nil {
				c.Err(err)
				return
			}
			cmd, err := parseByte(c.Args[1])
			if err != nil {
				c.Err(err)
				return
			}
			printSteps(c, bench.Send(nec.Frame{Addr: addr, Cmd: cmd}))
		},
	})
	shell.AddCmd(&ishell.Cmd{
		Name: "raw",
		Help: "raw <32 bit payload, e.g. 0xE618FF00>",
		Func: func(c *ishell.Context) {
			if len(c.Args) != 1 {
				c.Err(errors.New("usage: raw <payload>"))
				return
			}
			raw, err := strconv.ParseUint(c.Args[0], 0, 32)
			if err != nil {
				c.Err(err)
				return
			}
			if !nec.Valid(uint32(raw)) {
				c.Println("payload fails its checksum; sending anyway")
			}
			printSteps(c, bench.Raw(uint32(raw)))
		},
	})
	shell.AddCmd(&ishell.Cmd{
		Name: "idle",
		Help: "idle <polls>",
		Func: func(c *ishell.Context) {
			n := robot.IdleLimit + 1
			if len(c.Args) > 0 {
				v, err := parseCount(c.Args[0])
				if err != nil {
					c.Err(err)
					return
				}
				n = v
			}
			c.Printf("%d polls, %d forced stops\n", n, bench.Idle(n))
		},
	})
	shell.AddCmd(&ishell.Cmd{
		Name: "state",
		Func: func(c *ishell.Context) {
			s := bench.Snapshot()
			c.Printf("speed %d, idle %d, motors %s at %d, clock %v\n", s.Speed, s.Idle, s.Motion, s.Duty, s.Clock)
		},
	})
	shell.AddCmd(&ishell.Cmd{
		Name: "profile",
		Help: "print the decoder timing profile",
		Func: func(c *ishell.Context) {
			out, err := yaml.Marshal(bench.Profile())
			if err != nil {
				c.Err(err)
				return
			}
			c.Print(string(out))
		},
	})
	shell.Start()
}
