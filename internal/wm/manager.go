// Package wm is the tiling core of eldinwm: it decides which view occupies
// which part of which output, routes key presses between the command box
// and the global shortcuts, and cycles keyboard focus.
//
// A Manager is not safe for concurrent use. The backend's event loop owns it
// and feeds it events one at a time through HandleEvent.
package wm

import (
	"io"

	"pkt.systems/pslog"
)

const (
	// DefaultWorkspaces is the workspace count used when none is configured.
	DefaultWorkspaces = 4
	// MaxWorkspaces bounds the workspace count.
	MaxWorkspaces = 16
)

// Backend receives the placement and focus commands the manager issues.
type Backend interface {
	SetViewPosition(h Handle, x, y int)
	SetViewSize(h Handle, width, height int)
	SetViewVisible(h Handle, visible bool)
	RequestKeyboardFocus(h Handle)
	// KeyboardFocus reports the view holding the seat's keyboard focus.
	KeyboardFocus() (Handle, bool)
	TerminateEventLoop()
}

// Launcher runs a command box command. It must not block.
type Launcher interface {
	Launch(cmd string) error
}

// Painter draws presentational state such as a workspace indicator. It is
// called after every event.
type Painter interface {
	Paint(Status)
}

// Config configures a Manager. Backend is required; other zero values
// select the defaults.
type Config struct {
	Workspaces      int
	IndicatorHeight int
	MaxCommandLen   int

	Backend  Backend
	Launcher Launcher
	Painter  Painter
	Logger   pslog.Logger
}

// Manager owns the views, outputs and command box of one display.
type Manager struct {
	backend  Backend
	launcher Launcher
	painter  Painter
	log      pslog.Logger

	workspaces      int
	indicatorHeight int

	outputs      []*Output
	lastOutputID OutputID

	views       map[ViewID]*View
	viewHandles map[Handle]ViewID
	viewOrder   []ViewID
	lastViewID  ViewID

	cmdbox *CommandBox
}

// New returns a Manager. cfg.Backend is required; a workspace count outside
// [1, MaxWorkspaces] is clamped.
func New(cfg Config) *Manager {
	if cfg.Backend == nil {
		panic("wm: nil Backend")
	}
	n := cfg.Workspaces
	switch {
	case n <= 0:
		n = DefaultWorkspaces
	case n > MaxWorkspaces:
		n = MaxWorkspaces
	}
	log := cfg.Logger
	if log == nil {
		log = pslog.NewWithOptions(io.Discard, pslog.Options{Mode: pslog.ModeStructured, MinLevel: pslog.ErrorLevel})
	}
	return &Manager{
		backend:         cfg.Backend,
		launcher:        cfg.Launcher,
		painter:         cfg.Painter,
		log:             log,
		workspaces:      n,
		indicatorHeight: max(cfg.IndicatorHeight, 0),
		views:           make(map[ViewID]*View),
		viewHandles:     make(map[Handle]ViewID),
		cmdbox:          newCommandBox(cfg.MaxCommandLen),
	}
}

// Workspaces returns the configured workspace count.
func (m *Manager) Workspaces() int {
	return m.workspaces
}

// CommandBox returns the command box. Callers may read it but not edit it.
func (m *Manager) CommandBox() *CommandBox {
	return m.cmdbox
}
