package main

import (
	"fmt"
	"strings"

	xp "github.com/BurntSushi/xgb/xproto"

	"github.com/eldinwm/eldinwm/internal/wm"
)

var (
	commandXWin xp.Window
	commandXGC  xp.Gcontext

	painter = &overlay{}
)

// initCommandBox creates the command box window, unmapped, centered on o.
func initCommandBox(xScreen *xp.ScreenInfo, o wm.OutputAdded) error {
	var err error
	commandXWin, err = xp.NewWindowId(xConn)
	if err != nil {
		return err
	}
	commandXGC, err = xp.NewGcontextId(xConn)
	if err != nil {
		return err
	}
	x := o.X + (o.Width-commandBoxWidth)/2
	y := o.Y + (o.Height-commandBoxHeight)/2
	if err := xp.CreateWindowChecked(
		xConn, xScreen.RootDepth, commandXWin, xScreen.Root,
		int16(x), int16(y), commandBoxWidth, commandBoxHeight, 0,
		xp.WindowClassInputOutput,
		xScreen.RootVisual,
		xp.CwBackPixel|xp.CwOverrideRedirect|xp.CwEventMask,
		[]uint32{
			colorCommandBox,
			1,
			xp.EventMaskExposure,
		},
	).Check(); err != nil {
		return fmt.Errorf("create command box window: %w", err)
	}
	if err := xp.CreateGCChecked(
		xConn,
		commandXGC,
		xp.Drawable(commandXWin),
		xp.GcForeground|xp.GcBackground,
		[]uint32{colorCommandText, colorCommandBox},
	).Check(); err != nil {
		return fmt.Errorf("create command box graphics context: %w", err)
	}
	return nil
}

// overlay paints the workspace indicator on the desktop window and shows the
// command box while it is active.
type overlay struct {
	last    wm.Status
	boxOpen bool
}

func (p *overlay) Paint(s wm.Status) {
	if s.CommandActive != p.boxOpen {
		p.boxOpen = s.CommandActive
		if p.boxOpen {
			openCommandBox()
		} else {
			closeCommandBox()
		}
	}
	if !sameIndicator(p.last, s) {
		drawIndicator(s)
	}
	if s.CommandActive && (!p.last.CommandActive || p.last.Command != s.Command) {
		drawCommandBox(s.Command)
	}
	p.last = s
}

func (p *overlay) expose(xWin xp.Window) {
	switch xWin {
	case desktopXWin:
		drawIndicator(p.last)
	case commandXWin:
		if p.last.CommandActive {
			drawCommandBox(p.last.Command)
		}
	}
}

func handleExpose(e xp.ExposeEvent) {
	if e.Count != 0 {
		return
	}
	painter.expose(e.Window)
}

// openCommandBox maps and raises the command box and grabs the keyboard, so
// that every key press reaches the manager while the box is active.
func openCommandBox() {
	check(xp.MapWindowChecked(xConn, commandXWin))
	check(xp.ConfigureWindowChecked(xConn, commandXWin,
		xp.ConfigWindowStackMode, []uint32{xp.StackModeAbove}))
	r, err := xp.GrabKeyboard(xConn, false, rootXWin, eventTime,
		xp.GrabModeAsync, xp.GrabModeAsync).Reply()
	switch {
	case err != nil:
		logger.Warn("grab keyboard", "err", err)
	case r.Status != xp.GrabStatusSuccess:
		logger.Warn("grab keyboard", "status", r.Status)
	}
}

func closeCommandBox() {
	check(xp.UngrabKeyboardChecked(xConn, eventTime))
	check(xp.UnmapWindowChecked(xConn, commandXWin))
}

func drawCommandBox(text string) {
	check(xp.ClearAreaChecked(xConn, false, commandXWin, 0, 0, 0, 0))
	line := "> " + text + "_"
	// Show the tail of the line when it does not fit.
	if n := (commandBoxWidth - 2*fontWidth) / fontWidth; len(line) > n {
		line = line[len(line)-n:]
	}
	y := (commandBoxHeight-fontHeight)/2 + fontAscent
	check(xp.ImageText8Checked(xConn, byte(len(line)), xp.Drawable(commandXWin), commandXGC,
		fontWidth, int16(y), line))
}

// drawIndicator paints a strip along the top of every output listing its
// workspaces. The current workspace is bracketed and workspaces holding
// views are marked with a star.
func drawIndicator(s wm.Status) {
	if s.IndicatorHeight <= 0 {
		return
	}
	for _, o := range s.Outputs {
		if s.IndicatorHeight >= o.Height {
			continue
		}
		setForeground(colorIndicator, colorIndicator)
		check(xp.PolyFillRectangleChecked(xConn, xp.Drawable(desktopXWin), desktopXGC,
			[]xp.Rectangle{{
				X:      int16(o.X),
				Y:      int16(o.Y),
				Width:  uint16(o.Width),
				Height: uint16(s.IndicatorHeight),
			}}))
		y := o.Y + (s.IndicatorHeight-fontHeight)/2 + fontAscent
		x := o.X + fontWidth
		for ws, n := range o.Occupied {
			label := workspaceLabel(ws, n, ws == o.Current)
			if ws == o.Current {
				setForeground(colorIndicatorActive, colorIndicator)
			} else {
				setForeground(colorIndicatorText, colorIndicator)
			}
			drawText(x, y, label)
			x += len(label) * fontWidth
		}
	}
}

func workspaceLabel(ws, views int, current bool) string {
	b := new(strings.Builder)
	if current {
		b.WriteByte('[')
	} else {
		b.WriteByte(' ')
	}
	fmt.Fprintf(b, "%d", ws+1)
	if views > 0 {
		b.WriteByte('*')
	} else {
		b.WriteByte(' ')
	}
	if current {
		b.WriteByte(']')
	} else {
		b.WriteByte(' ')
	}
	return b.String()
}

func setForeground(fg, bg uint32) {
	check(xp.ChangeGCChecked(xConn, desktopXGC, xp.GcForeground|xp.GcBackground,
		[]uint32{fg, bg}))
}

func drawText(x, y int, text string) {
	check(xp.ImageText8Checked(xConn, byte(len(text)), xp.Drawable(desktopXWin), desktopXGC,
		int16(x), int16(y), text))
}

func sameIndicator(a, b wm.Status) bool {
	if a.IndicatorHeight != b.IndicatorHeight || len(a.Outputs) != len(b.Outputs) {
		return false
	}
	for i := range a.Outputs {
		oa, ob := a.Outputs[i], b.Outputs[i]
		if oa.Handle != ob.Handle || oa.X != ob.X || oa.Y != ob.Y ||
			oa.Width != ob.Width || oa.Height != ob.Height ||
			oa.Current != ob.Current || len(oa.Occupied) != len(ob.Occupied) {
			return false
		}
		for ws := range oa.Occupied {
			if oa.Occupied[ws] != ob.Occupied[ws] {
				return false
			}
		}
	}
	return true
}
