package main

import (
	xp "github.com/BurntSushi/xgb/xproto"

	"github.com/eldinwm/eldinwm/internal/wm"
)

func handleConfigureRequest(e xp.ConfigureRequestEvent) {
	mask, values := uint16(0), []uint32(nil)
	if w := windows[e.Window]; w != nil {
		// Managed windows get the geometry eldinwm chose for them.
		cne := xp.ConfigureNotifyEvent{
			Event:  w.xWin,
			Window: w.xWin,
			X:      w.rect.X,
			Y:      w.rect.Y,
			Width:  w.rect.Width,
			Height: w.rect.Height,
		}
		check(xp.SendEventChecked(xConn, false, w.xWin,
			xp.EventMaskStructureNotify, string(cne.Bytes())))
		return
	}
	if e.ValueMask&xp.ConfigWindowX != 0 {
		mask |= xp.ConfigWindowX
		values = append(values, uint32(e.X))
	}
	if e.ValueMask&xp.ConfigWindowY != 0 {
		mask |= xp.ConfigWindowY
		values = append(values, uint32(e.Y))
	}
	if e.ValueMask&xp.ConfigWindowWidth != 0 {
		mask |= xp.ConfigWindowWidth
		values = append(values, uint32(e.Width))
	}
	if e.ValueMask&xp.ConfigWindowHeight != 0 {
		mask |= xp.ConfigWindowHeight
		values = append(values, uint32(e.Height))
	}
	if e.ValueMask&xp.ConfigWindowBorderWidth != 0 {
		mask |= xp.ConfigWindowBorderWidth
		values = append(values, uint32(e.BorderWidth))
	}
	if e.ValueMask&xp.ConfigWindowSibling != 0 {
		mask |= xp.ConfigWindowSibling
		values = append(values, uint32(e.Sibling))
	}
	if e.ValueMask&xp.ConfigWindowStackMode != 0 {
		mask |= xp.ConfigWindowStackMode
		values = append(values, uint32(e.StackMode))
	}
	check(xp.ConfigureWindowChecked(xConn, e.Window, mask, values))
}

// manage starts tracking xWin. A window that is already mapped, such as one
// found at startup, is announced as mapped straight away; otherwise the
// manager hears about it when its MapNotify arrives.
func manage(xWin xp.Window, mapRequest bool) {
	w := windows[xWin]
	if w == nil {
		w = &window{
			xWin: xWin,
			rect: xp.Rectangle{
				X:      offscreenXY,
				Y:      offscreenXY,
				Width:  1,
				Height: 1,
			},
			wmTakeFocus: takesFocus(xWin),
		}
		w.want = w.rect
		windows[xWin] = w

		check(xp.ChangeWindowAttributesChecked(xConn, xWin, xp.CwEventMask,
			[]uint32{xp.EventMaskStructureNotify},
		))
		dispatch(wm.ViewCreated{Handle: w.handle()})
	}
	if mapRequest {
		check(xp.MapWindowChecked(xConn, xWin))
		return
	}
	dispatch(wm.ViewMapped{Handle: w.handle()})
}

func unmanage(xWin xp.Window) {
	w := windows[xWin]
	if w == nil {
		return
	}
	// The X window is gone; nothing may be configured on it.
	delete(windows, xWin)
	dispatch(wm.ViewDestroyed{Handle: w.handle()})
}

// takesFocus reports whether xWin lists WM_TAKE_FOCUS in its WM_PROTOCOLS.
func takesFocus(xWin xp.Window) bool {
	prop, err := xp.GetProperty(xConn, false, xWin, atomWMProtocols,
		xp.GetPropertyTypeAny, 0, 64).Reply()
	if err != nil {
		logger.Debug("get WM_PROTOCOLS", "window", xWin, "err", err)
		return false
	}
	for v := prop.Value; len(v) >= 4; v = v[4:] {
		if xp.Atom(u32(v)) == atomWMTakeFocus {
			return true
		}
	}
	return false
}
