//go:build tinygo

// irremote turns a board with push buttons and an IR LED into a remote for
// irbot. Buttons short their pin to ground.
//
//	tinygo flash -target pico ./cmd/irremote
package main

import (
	"log"
	"machine"
	"os"
	"time"

	"github.com/sparques/irbot"
	"github.com/sparques/irbot/remote"
	"github.com/sparques/irbot/robot"
)

const (
	irLED   = machine.GPIO15
	address = 0x00
)

var buttonPins = []struct {
	name string
	pin  machine.Pin
}{
	{"forward", machine.GPIO2},
	{"backward", machine.GPIO3},
	{"left", machine.GPIO4},
	{"right", machine.GPIO6},
	{"stop", machine.GPIO7},
	{"faster", machine.GPIO8},
	{"slower", machine.GPIO9},
	{"reset", machine.GPIO10},
}

func fail(logger *log.Logger, format string, v ...interface{}) {
	for {
		logger.Printf(format, v...)
		time.Sleep(time.Second)
	}
}

func main() {
	logger := log.New(os.Stdout, "", 0)

	tx, err := irbot.NewTxDevice(irLED)
	if err != nil {
		fail(logger, "ir led: %v", err)
	}

	var buttons []remote.Button
	for _, bp := range buttonPins {
		code, err := robot.ButtonCode(bp.name)
		if err != nil {
			fail(logger, "button: %v", err)
		}
		pin := bp.pin
		pin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
		buttons = append(buttons, remote.Button{
			Code:    code,
			Pressed: func() bool { return !pin.Get() },
		})
	}

	logger.Printf("remote ready, address 0x%02X", address)
	remote.New(tx, address, buttons...).Run()
}
