//go:build tinygo

// irbot is the robot firmware: an NEC remote drives a two motor chassis.
//
//	tinygo flash -target pico ./cmd/irbot
package main

import (
	"log"
	"machine"
	"os"
	"time"

	"github.com/sparques/irbot"
	"github.com/sparques/irbot/motor"
	"github.com/sparques/irbot/nec"
	"github.com/sparques/irbot/robot"
)

const irPin = machine.GPIO5

var motorPins = motor.Pins{
	PWMA: machine.GPIO16,
	AIN2: machine.GPIO17,
	AIN1: machine.GPIO18,
	BIN1: machine.GPIO19,
	BIN2: machine.GPIO20,
	PWMB: machine.GPIO21,
}

func main() {
	logger := log.New(os.Stdout, "", 0)

	motors, err := motor.New(motorPins)
	if err != nil {
		// nothing to drive; keep reporting why over serial
		for {
			logger.Printf("motor setup: %v", err)
			time.Sleep(time.Second)
		}
	}

	rx := irbot.NewRxDevice(irPin)
	ctl := robot.NewController(nec.NewDecoder(rx, rx), motors, logger)
	ctl.Run()
}
