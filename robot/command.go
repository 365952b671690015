package robot

import (
	"fmt"
	"strings"
)

// Command codes sent by the remote.
const (
	CmdForward    = 0x18
	CmdLeft       = 0x08
	CmdStop       = 0x1C
	CmdRight      = 0x5A
	CmdBackward   = 0x52
	CmdResetSpeed = 0x09
	CmdFaster     = 0x15
	CmdSlower     = 0x07
)

// Action is what the robot did in response to a poll.
type Action uint8

const (
	ActionUnknown Action = iota
	ActionForward
	ActionLeft
	ActionStop
	ActionRight
	ActionBackward
	ActionResetSpeed
	ActionFaster
	ActionSlower
	// ActionIdle is a poll that produced no key.
	ActionIdle
	// ActionIdleStop is the stop forced after too many polls without a key.
	ActionIdleStop
)

var actionNames = [...]string{
	ActionUnknown:    "unknown",
	ActionForward:    "forward",
	ActionLeft:       "left",
	ActionStop:       "stop",
	ActionRight:      "right",
	ActionBackward:   "backward",
	ActionResetSpeed: "reset",
	ActionFaster:     "faster",
	ActionSlower:     "slower",
	ActionIdle:       "idle",
	ActionIdleStop:   "idle stop",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return fmt.Sprintf("Action(%d)", a)
}

var buttons = map[string]byte{
	"forward":  CmdForward,
	"left":     CmdLeft,
	"stop":     CmdStop,
	"right":    CmdRight,
	"backward": CmdBackward,
	"reset":    CmdResetSpeed,
	"faster":   CmdFaster,
	"slower":   CmdSlower,
}

// Buttons lists the names ButtonCode understands.
func Buttons() []string {
	return []string{"forward", "backward", "left", "right", "stop", "faster", "slower", "reset"}
}

type UnknownButtonError struct {
	Name string
}

func (err UnknownButtonError) Error() string {
	return fmt.Sprintf("no such button %q; try one of %s", err.Name, strings.Join(Buttons(), ", "))
}

// ButtonCode returns the command code a remote sends for the named button.
func ButtonCode(name string) (byte, error) {
	code, ok := buttons[strings.ToLower(name)]
	if !ok {
		return 0, UnknownButtonError{Name: name}
	}
	return code, nil
}
