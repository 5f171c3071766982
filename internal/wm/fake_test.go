package wm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"pkt.systems/pslog"
)

// fakeBackend records every command and plays the seat: a focus request
// immediately becomes the keyboard focus.
type fakeBackend struct {
	calls      []string
	focus      Handle
	hasFocus   bool
	terminated bool

	// geometry of the last visible placement per handle.
	visible map[Handle]bool
	rects   map[Handle][4]int
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		visible: make(map[Handle]bool),
		rects:   make(map[Handle][4]int),
	}
}

func (b *fakeBackend) SetViewPosition(h Handle, x, y int) {
	b.calls = append(b.calls, fmt.Sprintf("pos %d %d,%d", h, x, y))
	r := b.rects[h]
	r[0], r[1] = x, y
	b.rects[h] = r
}

func (b *fakeBackend) SetViewSize(h Handle, width, height int) {
	b.calls = append(b.calls, fmt.Sprintf("size %d %dx%d", h, width, height))
	r := b.rects[h]
	r[2], r[3] = width, height
	b.rects[h] = r
}

func (b *fakeBackend) SetViewVisible(h Handle, visible bool) {
	b.calls = append(b.calls, fmt.Sprintf("visible %d %t", h, visible))
	b.visible[h] = visible
}

func (b *fakeBackend) RequestKeyboardFocus(h Handle) {
	b.calls = append(b.calls, fmt.Sprintf("focus %d", h))
	b.focus, b.hasFocus = h, true
}

func (b *fakeBackend) KeyboardFocus() (Handle, bool) {
	return b.focus, b.hasFocus
}

func (b *fakeBackend) TerminateEventLoop() {
	b.calls = append(b.calls, "terminate")
	b.terminated = true
}

func (b *fakeBackend) reset() {
	b.calls = nil
}

type fakeLauncher struct {
	cmds []string
	err  error
}

func (l *fakeLauncher) Launch(cmd string) error {
	l.cmds = append(l.cmds, cmd)
	return l.err
}

type fakePainter struct {
	last  Status
	count int
}

func (p *fakePainter) Paint(s Status) {
	p.last = s
	p.count++
}

func newTestManager(t *testing.T, workspaces int) (*Manager, *fakeBackend) {
	t.Helper()
	b := newFakeBackend()
	m := New(Config{Workspaces: workspaces, Backend: b})
	return m, b
}

// mapView creates and maps a view with handle h.
func mapView(m *Manager, h Handle) {
	m.HandleEvent(ViewCreated{Handle: h})
	m.HandleEvent(ViewMapped{Handle: h})
}

func press(sym Keysym, mods Modifiers) Key {
	return Key{Sym: sym, Mods: mods, Pressed: true}
}

func typeString(m *Manager, s string) {
	for i := 0; i < len(s); i++ {
		m.HandleEvent(press(Keysym(s[i]), 0))
	}
}

func assertPlacement(t *testing.T, m *Manager, h Handle) (output OutputID, workspace int) {
	t.Helper()
	v, ok := m.View(h)
	if !ok {
		t.Fatalf("view %d unknown", h)
	}
	o, ws, ok := v.Assigned()
	if !ok {
		t.Fatalf("view %d unassigned", h)
	}
	return o, ws
}

func assertCalls(t *testing.T, b *fakeBackend, want []string) {
	t.Helper()
	if diff := cmp.Diff(want, b.calls); diff != "" {
		t.Fatalf("backend calls mismatch (-want +got):\n%s", diff)
	}
}

// assertCapacity checks that no slot-list holds more than SlotCapacity
// mapped views.
func assertCapacity(t *testing.T, m *Manager) {
	t.Helper()
	for _, o := range m.Outputs() {
		for ws := 0; ws < m.Workspaces(); ws++ {
			n := 0
			for _, id := range o.Slot(ws) {
				if v := m.view(id); v != nil && v.Mapped {
					n++
				}
			}
			if n > SlotCapacity {
				t.Fatalf("output %d workspace %d holds %d views", o.ID, ws, n)
			}
		}
	}
}

// logCapture collects structured log lines.
type logCapture struct {
	buf bytes.Buffer
}

func (c *logCapture) logger() pslog.Logger {
	return pslog.NewWithOptions(&c.buf, pslog.Options{
		Mode:     pslog.ModeStructured,
		NoColor:  true,
		MinLevel: pslog.DebugLevel,
	})
}

func (c *logCapture) entries(t *testing.T) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(c.buf.String(), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var entry map[string]any
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("decode log line %q: %v", line, err)
		}
		out = append(out, entry)
	}
	return out
}

// find returns the first entry whose field equals value and which also
// carries every field named in extra.
func (c *logCapture) find(t *testing.T, field string, value any, extra ...string) map[string]any {
	t.Helper()
	for _, entry := range c.entries(t) {
		got, ok := entry[field]
		if !ok || fmt.Sprint(got) != fmt.Sprint(value) {
			continue
		}
		missing := false
		for _, k := range extra {
			if _, ok := entry[k]; !ok {
				missing = true
			}
		}
		if !missing {
			return entry
		}
	}
	t.Fatalf("no log entry with %s=%v and fields %v in:\n%s", field, value, extra, c.buf.String())
	return nil
}
