package wm

// Mode is the key-event state machine's state.
type Mode int

const (
	ModeNormal Mode = iota
	ModeCommandEdit
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeCommandEdit:
		return "command-edit"
	}
	return "unknown"
}

// Mode returns the current key routing mode.
func (m *Manager) Mode() Mode {
	if m.cmdbox.active {
		return ModeCommandEdit
	}
	return ModeNormal
}

// shortcuts maps keysyms to the global actions. They fire only in
// ModeNormal and only when the modifier mask is exactly Ctrl+Shift.
var shortcuts = map[Keysym]func(*Manager){
	KeyDown:  (*Manager).quit,
	KeyLeft:  func(m *Manager) { m.switchWorkspace(-1) },
	KeyRight: func(m *Manager) { m.switchWorkspace(+1) },
	'z':      (*Manager).openCommandBox,
	'Z':      (*Manager).openCommandBox,
	'x':      (*Manager).cycleFocus,
	'X':      (*Manager).cycleFocus,
}

func (m *Manager) handleKey(e Key) {
	if !e.Pressed {
		return
	}
	if m.cmdbox.active {
		m.editCommand(e.Sym)
		return
	}
	if e.Mods != shortcutMods {
		return
	}
	if do := shortcuts[e.Sym]; do != nil {
		do(m)
	}
}

func (m *Manager) editCommand(sym Keysym) {
	c := m.cmdbox
	switch {
	case sym == KeyEscape:
		c.close()
		m.log.Info("command box closed")
	case sym == KeyReturn:
		if cmd := c.Text(); cmd != "" {
			m.launch(cmd)
		}
		c.close()
	case sym == KeyBackSpace:
		c.backspace()
	case sym.printable():
		c.append(byte(sym))
	}
}

func (m *Manager) openCommandBox() {
	m.cmdbox.open()
	m.log.Info("command box opened")
}

func (m *Manager) launch(cmd string) {
	if m.launcher == nil {
		return
	}
	m.log.Info("command launch", "command", cmd)
	if err := m.launcher.Launch(cmd); err != nil {
		m.log.Warn("command launch failed", "command", cmd, "err", err)
	}
}

// switchWorkspace moves every output's current workspace by delta, clipping
// each output to its own bounds. Outputs that cannot move are left alone.
func (m *Manager) switchWorkspace(delta int) {
	for _, o := range m.outputs {
		ws := o.current + delta
		if ws < 0 || len(o.slots) <= ws {
			m.log.Debug("workspace switch out of bounds", "output", o.ID, "workspace", ws+1)
			continue
		}
		o.current = ws
		m.log.Info("workspace switched", "output", o.ID, "workspace", ws+1)
		m.relayout(o)
	}
}

func (m *Manager) quit() {
	m.log.Info("exit requested")
	m.backend.TerminateEventLoop()
}
