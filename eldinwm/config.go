package main

import (
	xp "github.com/BurntSushi/xgb/xproto"
)

const (
	// colorXxx are eldinwm's background and text colors. We assume 24-bit
	// RGB.
	colorDesktop         = 0x000000
	colorIndicator       = 0x0f0f0f
	colorIndicatorText   = 0x3f7f3f
	colorIndicatorActive = 0x7fff7f
	colorCommandBox      = 0x1f1f1f
	colorCommandText     = 0xe0e0e0

	// fontXxx are the font metrics for X11's default font (fixed).
	// fontAscent is the vertical offset from the top of a line of text to
	// its baseline.
	fontHeight = 16
	fontAscent = 12
	fontWidth  = 6

	// commandBoxXxx is the size of the command box, which is centered on
	// the first output.
	commandBoxWidth  = 600
	commandBoxHeight = 40
)

// grabModifiers is the exact modifier mask of every global shortcut.
const grabModifiers = xp.ModMaskControl | xp.ModMaskShift

// grabbedKeysyms lists the keys grabbed on the root window. Together with
// grabModifiers they are the global shortcuts. A keycode matches if either
// its unshifted or shifted keysym is listed.
var grabbedKeysyms = []xp.Keysym{
	xkLeft,
	xkRight,
	xkDown,
	'z',
	'x',
}
