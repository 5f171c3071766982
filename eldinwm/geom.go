package main

import (
	xp "github.com/BurntSushi/xgb/xproto"

	"github.com/eldinwm/eldinwm/internal/wm"
)

// offscreenXY is the most negative X/Y co-ordinate. Hidden windows are moved
// there. They are never unmapped.
const offscreenXY = -1 << 15

var (
	manager *wm.Manager

	windows = map[xp.Window]*window{}
	// dirty lists the windows whose wanted geometry changed since the last
	// configureDirty call, in the order they changed.
	dirty []*window
)

type window struct {
	xWin xp.Window
	// rect is the geometry last sent to the X server.
	rect xp.Rectangle
	seen bool

	// want and visible are what the manager asked for.
	want    xp.Rectangle
	visible bool
	queued  bool

	wmTakeFocus bool
}

func (w *window) handle() wm.Handle {
	return wm.Handle(w.xWin)
}

func (w *window) touch() {
	if !w.queued {
		w.queued = true
		dirty = append(dirty, w)
	}
}

// dispatch hands e to the manager, then sends the resulting geometry to the
// X server. The manager hides and re-shows views freely within one event;
// only the final state of each window is configured.
func dispatch(e wm.Event) {
	manager.HandleEvent(e)
	configureDirty()
}

func configureDirty() {
	for i, w := range dirty {
		w.queued = false
		if windows[w.xWin] == w {
			w.configure()
		}
		dirty[i] = nil
	}
	dirty = dirty[:0]
}

func (w *window) configure() {
	r := w.want
	if !w.visible {
		r.X, r.Y = offscreenXY, offscreenXY
	}
	if w.seen && w.rect == r {
		return
	}
	w.rect = r
	mask, values := uint16(0), []uint32(nil)
	if r.X != offscreenXY {
		w.seen = true
		mask = xp.ConfigWindowX |
			xp.ConfigWindowY |
			xp.ConfigWindowWidth |
			xp.ConfigWindowHeight |
			xp.ConfigWindowBorderWidth
		values = []uint32{
			uint32(uint16(r.X)),
			uint32(uint16(r.Y)),
			uint32(r.Width),
			uint32(r.Height),
			0,
		}
	} else {
		mask = xp.ConfigWindowX | xp.ConfigWindowY
		values = []uint32{
			uint32(uint16(r.X)),
			uint32(uint16(r.Y)),
		}
	}
	check(xp.ConfigureWindowChecked(xConn, w.xWin, mask, values))
}

// xBackend carries out the manager's placement and focus commands. Its state
// lives in the package variables above, like the rest of the X connection.
type xBackend struct{}

func (xBackend) SetViewPosition(h wm.Handle, x, y int) {
	if w := windows[xp.Window(h)]; w != nil {
		w.want.X, w.want.Y = clampCoord(x), clampCoord(y)
		w.touch()
	}
}

func (xBackend) SetViewSize(h wm.Handle, width, height int) {
	if w := windows[xp.Window(h)]; w != nil {
		w.want.Width, w.want.Height = clampLength(width), clampLength(height)
		w.touch()
	}
}

func (xBackend) SetViewVisible(h wm.Handle, visible bool) {
	if w := windows[xp.Window(h)]; w != nil {
		w.visible = visible
		w.touch()
	}
}

func (xBackend) RequestKeyboardFocus(h wm.Handle) {
	if w := windows[xp.Window(h)]; w != nil {
		focus(w)
	}
}

func (xBackend) KeyboardFocus() (wm.Handle, bool) {
	w := focusedWindow()
	if w == nil {
		return 0, false
	}
	return w.handle(), true
}

func (xBackend) TerminateEventLoop() {
	terminate()
}

func clampCoord(v int) int16 {
	switch {
	case v < offscreenXY+1:
		return offscreenXY + 1
	case v > 1<<15-1:
		return 1<<15 - 1
	}
	return int16(v)
}

// clampLength keeps sizes within what X accepts. Zero is not a valid window
// size.
func clampLength(v int) uint16 {
	switch {
	case v < 1:
		return 1
	case v > 1<<16-1:
		return 1<<16 - 1
	}
	return uint16(v)
}
