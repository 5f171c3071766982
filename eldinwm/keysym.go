package main

// These constants come from /usr/include/X11/keysymdef.h.

import (
	"fmt"

	xp "github.com/BurntSushi/xgb/xproto"
)

const (
	xkBackspace = 0xff08
	xkReturn    = 0xff0d
	xkEscape    = 0xff1b
	xkLeft      = 0xff51
	xkUp        = 0xff52
	xkRight     = 0xff53
	xkDown      = 0xff54
	xkShiftL    = 0xffe1
	xkShiftR    = 0xffe2
	xkControlL  = 0xffe3
	xkControlR  = 0xffe4
)

func keysymString(keysym xp.Keysym) string {
	switch keysym {
	case xkBackspace:
		return "BackSpace"
	case xkReturn:
		return "Return"
	case xkEscape:
		return "Escape"
	case xkLeft:
		return "Left"
	case xkUp:
		return "Up"
	case xkRight:
		return "Right"
	case xkDown:
		return "Down"
	case xkShiftL:
		return "ShiftL"
	case xkShiftR:
		return "ShiftR"
	case xkControlL:
		return "ControlL"
	case xkControlR:
		return "ControlR"
	}
	if 0x20 <= keysym && keysym <= 0x7e {
		return string(rune(keysym))
	}
	return fmt.Sprintf("%#x", uint32(keysym))
}
