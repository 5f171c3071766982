package wm

// Event is one backend notification. The concrete types below are the only
// implementations.
type Event interface {
	event()
}

type (
	ViewCreated   struct{ Handle Handle }
	ViewMapped    struct{ Handle Handle }
	ViewUnmapped  struct{ Handle Handle }
	ViewDestroyed struct{ Handle Handle }

	OutputAdded struct {
		Handle        Handle
		X, Y          int
		Width, Height int
	}
	OutputDestroyed struct{ Handle Handle }

	// Key is a key transition. Only presses drive the state machine.
	Key struct {
		Sym     Keysym
		Mods    Modifiers
		Pressed bool
	}
)

func (ViewCreated) event()     {}
func (ViewMapped) event()      {}
func (ViewUnmapped) event()    {}
func (ViewDestroyed) event()   {}
func (OutputAdded) event()     {}
func (OutputDestroyed) event() {}
func (Key) event()             {}

// HandleEvent applies e to the manager state. Events must be delivered in
// backend order from a single goroutine. Events naming unknown handles are
// ignored.
func (m *Manager) HandleEvent(e Event) {
	switch e := e.(type) {
	case ViewCreated:
		m.handleViewCreated(e.Handle)
	case ViewMapped:
		m.handleViewMapped(e.Handle)
	case ViewUnmapped:
		m.handleViewUnmapped(e.Handle)
	case ViewDestroyed:
		m.handleViewDestroyed(e.Handle)
	case OutputAdded:
		m.handleOutputAdded(e)
	case OutputDestroyed:
		m.handleOutputDestroyed(e.Handle)
	case Key:
		m.handleKey(e)
	default:
		m.log.Warn("unhandled event", "event", e)
		return
	}
	m.paint()
}

func (m *Manager) handleViewCreated(h Handle) {
	if m.viewByHandle(h) != nil {
		return
	}
	v := m.newView(h)
	m.log.Debug("view created", "view", v.ID, "handle", h)
}

func (m *Manager) handleViewMapped(h Handle) {
	v := m.viewByHandle(h)
	if v == nil {
		return
	}
	if v.Mapped && v.output != 0 {
		m.relayout(m.output(v.output))
		return
	}
	v.Mapped = true
	o, ws := m.findAvailableSlot()
	if o == nil {
		m.backend.SetViewVisible(v.Handle, false)
		m.log.Warn("all workspaces full", "view", v.ID, "capacity", SlotCapacity)
		return
	}
	m.assign(o, ws, v)
	m.relayout(o)
	m.backend.RequestKeyboardFocus(v.Handle)
	m.log.Info("view placed", "view", v.ID, "output", o.ID, "workspace", ws+1, "slot", len(o.slots[ws])-1)
}

func (m *Manager) handleViewUnmapped(h Handle) {
	v := m.viewByHandle(h)
	if v == nil {
		return
	}
	v.Mapped = false
	if o := m.unassign(v); o != nil {
		m.relayout(o)
	}
}

func (m *Manager) handleViewDestroyed(h Handle) {
	v := m.viewByHandle(h)
	if v == nil {
		return
	}
	v.Mapped = false
	if o := m.unassign(v); o != nil {
		m.relayout(o)
	}
	m.dropView(v)
	m.log.Debug("view destroyed", "view", v.ID, "handle", h)
}

func (m *Manager) handleOutputAdded(e OutputAdded) {
	if m.outputByHandle(e.Handle) != nil {
		return
	}
	o := m.addOutput(e)
	m.log.Info("output added", "output", o.ID, "width", o.Width, "height", o.Height, "outputs", len(m.outputs))
}

func (m *Manager) handleOutputDestroyed(h Handle) {
	o := m.outputByHandle(h)
	if o == nil {
		return
	}
	m.removeOutput(o)
	m.log.Info("output removed", "output", o.ID, "outputs", len(m.outputs))
}
