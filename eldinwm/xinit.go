package main

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/xgb/xinerama"
	xp "github.com/BurntSushi/xgb/xproto"

	"github.com/eldinwm/eldinwm/internal/wm"
)

var (
	atomWMProtocols xp.Atom
	atomWMTakeFocus xp.Atom

	desktopXWin   xp.Window
	desktopXGC    xp.Gcontext
	desktopWidth  uint16
	desktopHeight uint16

	keysyms [256][2]xp.Keysym
)

func becomeTheWM() error {
	if err := xp.ChangeWindowAttributesChecked(xConn, rootXWin, xp.CwEventMask, []uint32{
		xp.EventMaskSubstructureRedirect,
	}).Check(); err != nil {
		if _, ok := err.(xp.AccessError); ok {
			return errors.New("could not become the window manager. Is another window manager running?")
		}
		return fmt.Errorf("select root events: %w", err)
	}
	return nil
}

func initAtoms() (err error) {
	if atomWMProtocols, err = internAtom("WM_PROTOCOLS"); err != nil {
		return err
	}
	atomWMTakeFocus, err = internAtom("WM_TAKE_FOCUS")
	return err
}

func internAtom(name string) (xp.Atom, error) {
	r, err := xp.InternAtom(xConn, false, uint16(len(name)), name).Reply()
	if err != nil {
		return 0, fmt.Errorf("intern atom %s: %w", name, err)
	}
	return r.Atom, nil
}

func initDesktop(xScreen *xp.ScreenInfo) error {
	xFont, err := xp.NewFontId(xConn)
	if err != nil {
		return err
	}
	xCursor, err := xp.NewCursorId(xConn)
	if err != nil {
		return err
	}
	err = xp.OpenFontChecked(xConn, xFont, uint16(len("cursor")), "cursor").Check()
	if err != nil {
		return fmt.Errorf("open cursor font: %w", err)
	}
	const xcLeftPtr = 68 // XC_left_ptr from cursorfont.h.
	err = xp.CreateGlyphCursorChecked(
		xConn, xCursor, xFont, xFont, xcLeftPtr, xcLeftPtr+1,
		0xffff, 0xffff, 0xffff, 0, 0, 0).Check()
	if err != nil {
		return fmt.Errorf("create cursor: %w", err)
	}
	err = xp.CloseFontChecked(xConn, xFont).Check()
	if err != nil {
		return err
	}

	desktopXWin, err = xp.NewWindowId(xConn)
	if err != nil {
		return err
	}
	desktopXGC, err = xp.NewGcontextId(xConn)
	if err != nil {
		return err
	}
	desktopWidth = xScreen.WidthInPixels
	desktopHeight = xScreen.HeightInPixels

	if err := xp.CreateWindowChecked(
		xConn, xScreen.RootDepth, desktopXWin, xScreen.Root,
		0, 0, desktopWidth, desktopHeight, 0,
		xp.WindowClassInputOutput,
		xScreen.RootVisual,
		xp.CwOverrideRedirect|xp.CwEventMask,
		[]uint32{
			1,
			xp.EventMaskExposure,
		},
	).Check(); err != nil {
		return fmt.Errorf("create desktop window: %w", err)
	}

	if err := xp.ConfigureWindowChecked(
		xConn,
		desktopXWin,
		xp.ConfigWindowStackMode,
		[]uint32{
			xp.StackModeBelow,
		},
	).Check(); err != nil {
		return err
	}

	if err := xp.ChangeWindowAttributesChecked(
		xConn,
		desktopXWin,
		xp.CwBackPixel|xp.CwCursor,
		[]uint32{
			colorDesktop,
			uint32(xCursor),
		},
	).Check(); err != nil {
		return err
	}

	if err := xp.CreateGCChecked(
		xConn,
		desktopXGC,
		xp.Drawable(xScreen.Root),
		0,
		nil,
	).Check(); err != nil {
		return fmt.Errorf("create graphics context: %w", err)
	}

	if err := xp.MapWindowChecked(xConn, desktopXWin).Check(); err != nil {
		return fmt.Errorf("map desktop window: %w", err)
	}
	return nil
}

func initKeyboardMapping() error {
	const (
		keyLo = 8
		keyHi = 255
	)
	km, err := xp.GetKeyboardMapping(xConn, keyLo, keyHi-keyLo+1).Reply()
	if err != nil {
		return fmt.Errorf("get keyboard mapping: %w", err)
	}
	n := int(km.KeysymsPerKeycode)
	if n < 2 {
		return fmt.Errorf("too few keysyms per keycode: %d", n)
	}
	for i := keyLo; i <= keyHi; i++ {
		keysyms[i][0] = km.Keysyms[(i-keyLo)*n+0]
		keysyms[i][1] = km.Keysyms[(i-keyLo)*n+1]
	}

	for _, toGrab := range grabbedKeysyms {
		grabbed := false
		for i := keyLo; i <= keyHi; i++ {
			if keysyms[i][0] != toGrab && keysyms[i][1] != toGrab {
				continue
			}
			if err := xp.GrabKeyChecked(xConn, false, rootXWin, grabModifiers, xp.Keycode(i),
				xp.GrabModeAsync, xp.GrabModeAsync).Check(); err != nil {
				return fmt.Errorf("grab %s: %w", keysymString(toGrab), err)
			}
			grabbed = true
		}
		if !grabbed {
			logger.Warn("no keycode for shortcut key", "keysym", keysymString(toGrab))
		}
	}
	return nil
}

// initOutputs returns one OutputAdded per Xinerama screen, or a single one
// covering the root window when Xinerama reports none.
func initOutputs() ([]wm.OutputAdded, error) {
	xine, err := xinerama.QueryScreens(xConn).Reply()
	if err != nil {
		return nil, fmt.Errorf("query xinerama screens: %w", err)
	}
	if len(xine.ScreenInfo) == 0 {
		return []wm.OutputAdded{{
			Handle: 1,
			Width:  int(desktopWidth),
			Height: int(desktopHeight),
		}}, nil
	}
	outputs := make([]wm.OutputAdded, len(xine.ScreenInfo))
	for i, si := range xine.ScreenInfo {
		outputs[i] = wm.OutputAdded{
			Handle: wm.Handle(i + 1),
			X:      int(si.XOrg),
			Y:      int(si.YOrg),
			Width:  int(si.Width),
			Height: int(si.Height),
		}
	}
	return outputs, nil
}

// adoptExistingWindows manages the windows that were mapped before eldinwm
// started.
func adoptExistingWindows() error {
	tree, err := xp.QueryTree(xConn, rootXWin).Reply()
	if err != nil {
		return fmt.Errorf("query root children: %w", err)
	}
	for _, c := range tree.Children {
		if c == desktopXWin || c == commandXWin {
			continue
		}
		attrs, err := xp.GetWindowAttributes(xConn, c).Reply()
		if err != nil {
			continue
		}
		if attrs.OverrideRedirect || attrs.MapState == xp.MapStateUnmapped {
			continue
		}
		manage(c, false)
	}
	return nil
}

func u32(b []byte) uint32 {
	return uint32(b[0])<<0 | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}
