package wm

// Keysym is an X11 / xkbcommon keysym. Printable ASCII keysyms equal their
// codepoint. These constants come from /usr/include/X11/keysymdef.h.
type Keysym uint32

const (
	KeyBackSpace Keysym = 0xff08
	KeyReturn    Keysym = 0xff0d
	KeyEscape    Keysym = 0xff1b
	KeyLeft      Keysym = 0xff51
	KeyUp        Keysym = 0xff52
	KeyRight     Keysym = 0xff53
	KeyDown      Keysym = 0xff54
)

// printable reports whether k is a printable ASCII keysym (space to tilde).
func (k Keysym) printable() bool {
	return 0x20 <= k && k <= 0x7e
}

// Modifiers is a modifier mask. The bit layout is shared by the X11 key
// button mask's low byte and by wlroots' modifier mask.
type Modifiers uint32

const (
	ModShift Modifiers = 1 << iota
	ModCaps
	ModCtrl
	ModAlt
	ModMod2
	ModMod3
	ModLogo
	ModMod5
)

// shortcutMods is the exact mask every global shortcut requires.
const shortcutMods = ModCtrl | ModShift
