package main

import (
	xp "github.com/BurntSushi/xgb/xproto"

	"github.com/eldinwm/eldinwm/internal/wm"
)

func handleKey(keycode xp.Keycode, state uint16, pressed bool) {
	sym, mods := translateKey(keycode, state)
	if sym == 0 {
		return
	}
	dispatch(wm.Key{Sym: sym, Mods: mods, Pressed: pressed})
}

// translateKey maps an X key event to a keysym and modifier mask. The shifted
// column of the keyboard mapping is used when Shift is held, falling back to
// the unshifted one. The low byte of the X state uses the same bit layout as
// wm.Modifiers.
func translateKey(keycode xp.Keycode, state uint16) (wm.Keysym, wm.Modifiers) {
	shift := 0
	if state&xp.ModMaskShift != 0 {
		shift = 1
	}
	keysym := keysyms[keycode][shift]
	if keysym == 0 {
		keysym = keysyms[keycode][0]
	}
	return wm.Keysym(keysym), wm.Modifiers(state & 0xff)
}
