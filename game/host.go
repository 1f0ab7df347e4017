package game

import (
	"context"

	"github.com/pthm-cable/plexus/field"
)

// CommandKind identifies a control request from a host.
type CommandKind uint8

const (
	CmdTogglePause CommandKind = iota
	CmdReseed
	CmdFaster
	CmdSlower
	CmdSetSpeed // Value holds the requested steps per update
)

// Command is a control request delivered with a frame.
type Command struct {
	Kind  CommandKind
	Value int
}

// Frame is what a host reports at the start of each driver tick.
type Frame struct {
	Width, Height int
	Visible       bool
	Commands      []Command
}

// Status is the driver state handed back to the host after each tick.
type Status struct {
	Tick      int64 // driver ticks run
	Steps     int64 // simulation steps applied
	Particles int
	Links     int
	Speed     int
	Paused    bool
	Visible   bool
	Width     int
	Height    int
}

// Host is the environment a Game runs in. It is the sole timing source:
// Run calls NextFrame exactly once per tick and never concurrently.
type Host interface {
	// NextFrame blocks until the next tick is due. It returns false when
	// the host has closed or ctx is done.
	NextFrame(ctx context.Context) (Frame, bool)
	// Surface returns the surface the field draws onto.
	Surface() field.Surface
	// Present is called after each tick with the resulting status.
	Present(Status)
}
