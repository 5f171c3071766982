package wm

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

const ctrlShift = ModCtrl | ModShift

func TestExitShortcutTerminates(t *testing.T) {
	m, b := newTestManager(t, 4)
	m.HandleEvent(press(KeyDown, ctrlShift))
	if !b.terminated {
		t.Fatalf("expected terminate request")
	}
	if m.Mode() != ModeNormal {
		t.Fatalf("mode = %v, want normal", m.Mode())
	}
}

func TestModifierExactness(t *testing.T) {
	tests := []struct {
		name string
		mods Modifiers
		want int
	}{
		{"ctrl+shift", ctrlShift, 1},
		{"ctrl+shift+alt", ctrlShift | ModAlt, 0},
		{"ctrl+shift+numlock", ctrlShift | ModMod2, 0},
		{"ctrl", ModCtrl, 0},
		{"shift", ModShift, 0},
		{"none", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestManager(t, 4)
			m.HandleEvent(OutputAdded{Handle: 100, Width: 800, Height: 600})
			m.HandleEvent(press(KeyRight, tt.mods))
			if got := m.outputByHandle(100).Current(); got != tt.want {
				t.Fatalf("current workspace = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestWorkspaceSwitchClipsPerOutput(t *testing.T) {
	m, _ := newTestManager(t, 3)
	m.HandleEvent(OutputAdded{Handle: 100, Width: 800, Height: 600})
	m.HandleEvent(OutputAdded{Handle: 200, X: 800, Width: 800, Height: 600})
	o1, o2 := m.outputByHandle(100), m.outputByHandle(200)
	o1.current = 2

	m.HandleEvent(press(KeyRight, ctrlShift))
	if o1.Current() != 2 || o2.Current() != 1 {
		t.Fatalf("after right: %d, %d; want 2, 1", o1.Current(), o2.Current())
	}
	m.HandleEvent(press(KeyLeft, ctrlShift))
	m.HandleEvent(press(KeyLeft, ctrlShift))
	if o1.Current() != 0 || o2.Current() != 0 {
		t.Fatalf("after left x2: %d, %d; want 0, 0", o1.Current(), o2.Current())
	}
	m.HandleEvent(press(KeyLeft, ctrlShift))
	if o1.Current() != 0 || o2.Current() != 0 {
		t.Fatalf("left past zero moved: %d, %d", o1.Current(), o2.Current())
	}
}

func TestReleasesAreIgnored(t *testing.T) {
	m, b := newTestManager(t, 4)
	m.HandleEvent(Key{Sym: KeyDown, Mods: ctrlShift})
	if b.terminated {
		t.Fatalf("key release triggered a shortcut")
	}
}

func TestCommandBoxLaunch(t *testing.T) {
	b := newFakeBackend()
	l := &fakeLauncher{}
	m := New(Config{Workspaces: 4, Backend: b, Launcher: l})

	m.HandleEvent(press('z', ctrlShift))
	if m.Mode() != ModeCommandEdit {
		t.Fatalf("mode = %v, want command-edit", m.Mode())
	}
	typeString(m, "xterm -e tpo")
	m.HandleEvent(press(KeyBackSpace, 0))
	typeString(m, "p")
	if got := m.CommandBox().Text(); got != "xterm -e top" {
		t.Fatalf("buffer = %q", got)
	}
	m.HandleEvent(press(KeyReturn, 0))

	if len(l.cmds) != 1 || l.cmds[0] != "xterm -e top" {
		t.Fatalf("launched %q", l.cmds)
	}
	if m.Mode() != ModeNormal || m.CommandBox().Text() != "" {
		t.Fatalf("command box still active or not cleared")
	}
}

func TestCommandBoxEscapeDiscards(t *testing.T) {
	l := &fakeLauncher{}
	m := New(Config{Backend: newFakeBackend(), Launcher: l})
	m.HandleEvent(press('Z', ctrlShift))
	typeString(m, "rm -rf")
	m.HandleEvent(press(KeyEscape, 0))
	if len(l.cmds) != 0 {
		t.Fatalf("escape launched %q", l.cmds)
	}
	if m.Mode() != ModeNormal || m.CommandBox().Text() != "" {
		t.Fatalf("command box not reset")
	}

	m.HandleEvent(press('z', ctrlShift))
	if got := m.CommandBox().Text(); got != "" {
		t.Fatalf("reopened command box holds %q", got)
	}
}

func TestCommandBoxEmptyEnterLaunchesNothing(t *testing.T) {
	l := &fakeLauncher{}
	m := New(Config{Backend: newFakeBackend(), Launcher: l})
	m.HandleEvent(press('z', ctrlShift))
	m.HandleEvent(press(KeyBackSpace, 0))
	m.HandleEvent(press(KeyReturn, 0))
	if len(l.cmds) != 0 {
		t.Fatalf("empty command launched %q", l.cmds)
	}
	if m.Mode() != ModeNormal {
		t.Fatalf("enter did not close the command box")
	}
}

func TestCommandBoxLaunchErrorIsLogged(t *testing.T) {
	capture := &logCapture{}
	l := &fakeLauncher{err: errors.New("no shell")}
	m := New(Config{Backend: newFakeBackend(), Launcher: l, Logger: capture.logger()})
	m.HandleEvent(press('z', ctrlShift))
	typeString(m, "true")
	m.HandleEvent(press(KeyReturn, 0))
	entry := capture.find(t, "command", "true", "err")
	if !strings.Contains(fmt.Sprint(entry["err"]), "no shell") {
		t.Fatalf("unexpected entry %+v", entry)
	}
	if m.Mode() != ModeNormal {
		t.Fatalf("failed launch left command box open")
	}
}

func TestCommandModeIsolatesShortcuts(t *testing.T) {
	m, b := newTestManager(t, 4)
	m.HandleEvent(OutputAdded{Handle: 100, Width: 800, Height: 600})
	m.HandleEvent(press('z', ctrlShift))

	m.HandleEvent(press(KeyRight, ctrlShift))
	m.HandleEvent(press(KeyDown, ctrlShift))
	if got := m.outputByHandle(100).Current(); got != 0 {
		t.Fatalf("workspace switched while editing: %d", got)
	}
	if b.terminated {
		t.Fatalf("exit fired while editing")
	}
	if got := m.CommandBox().Text(); got != "" {
		t.Fatalf("non-printable keys edited the buffer: %q", got)
	}

	// Printable keys are typed even with the shortcut modifiers held.
	m.HandleEvent(press('x', ctrlShift))
	if got := m.CommandBox().Text(); got != "x" {
		t.Fatalf("buffer = %q, want %q", got, "x")
	}
}

func TestCommandBufferBound(t *testing.T) {
	m := New(Config{Backend: newFakeBackend(), MaxCommandLen: 8})
	m.HandleEvent(press('z', ctrlShift))
	typeString(m, "abcdefghijkl")
	if got := m.CommandBox().Text(); got != "abcdefgh" {
		t.Fatalf("buffer = %q, want %q", got, "abcdefgh")
	}
}

func TestCommandBufferDefaultBound(t *testing.T) {
	m := New(Config{Backend: newFakeBackend()})
	m.HandleEvent(press('z', ctrlShift))
	typeString(m, strings.Repeat("a", MaxCommandLen+10))
	if got := len(m.CommandBox().Text()); got != MaxCommandLen {
		t.Fatalf("buffer length = %d, want %d", got, MaxCommandLen)
	}
}

func TestCommandBoxIgnoresNonPrintable(t *testing.T) {
	m := New(Config{Backend: newFakeBackend()})
	m.HandleEvent(press('z', ctrlShift))
	for _, sym := range []Keysym{0x1f, 0x7f, KeyUp, 0xffe1, 0x00e9} {
		m.HandleEvent(press(sym, 0))
	}
	if got := m.CommandBox().Text(); got != "" {
		t.Fatalf("buffer = %q, want empty", got)
	}
	if m.Mode() != ModeCommandEdit {
		t.Fatalf("non-printable key left command mode")
	}
}
