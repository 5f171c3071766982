package main

import (
	xp "github.com/BurntSushi/xgb/xproto"
)

func sendClientMessage(xWin xp.Window, atom xp.Atom) {
	check(xp.SendEventChecked(xConn, false, xWin, xp.EventMaskNoEvent,
		string(xp.ClientMessageEvent{
			Format: 32,
			Window: xWin,
			Type:   atomWMProtocols,
			Data: xp.ClientMessageDataUnionData32New([]uint32{
				uint32(atom),
				uint32(eventTime),
				0,
				0,
				0,
			}),
		}.Bytes()),
	))
}

func focus(w *window) {
	xWin := desktopXWin
	if w != nil {
		xWin = w.xWin
		if w.wmTakeFocus {
			sendClientMessage(xWin, atomWMTakeFocus)
			return
		}
	}
	check(xp.SetInputFocusChecked(xConn, xp.InputFocusParent, xWin, eventTime))
}

// focusedWindow returns the managed window holding the input focus, or one
// of whose descendants holds it.
func focusedWindow() *window {
	// Pending SetInputFocus requests must land before asking.
	flushCheckers()
	r, err := xp.GetInputFocus(xConn).Reply()
	if err != nil {
		logger.Warn("get input focus", "err", err)
		return nil
	}
	for xWin := r.Focus; xWin != xp.WindowNone && xWin != rootXWin; {
		if w := windows[xWin]; w != nil {
			return w
		}
		tree, err := xp.QueryTree(xConn, xWin).Reply()
		if err != nil {
			return nil
		}
		xWin = tree.Parent
	}
	return nil
}
