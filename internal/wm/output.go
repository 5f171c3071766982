package wm

// OutputID indexes an Output in the manager's arena. Zero is never a valid
// OutputID.
type OutputID uint64

// Output is one monitor. X and Y are its origin in the global layout.
type Output struct {
	ID     OutputID
	Handle Handle
	X, Y   int
	Width  int
	Height int

	current int
	slots   [][]ViewID
}

// Current returns the index of the workspace shown on o.
func (o *Output) Current() int {
	return o.current
}

// Slot returns a copy of the slot-list of workspace ws, in insertion order.
func (o *Output) Slot(ws int) []ViewID {
	if ws < 0 || len(o.slots) <= ws {
		return nil
	}
	return append([]ViewID(nil), o.slots[ws]...)
}

func (m *Manager) output(id OutputID) *Output {
	for _, o := range m.outputs {
		if o.ID == id {
			return o
		}
	}
	return nil
}

func (m *Manager) outputByHandle(h Handle) *Output {
	for _, o := range m.outputs {
		if o.Handle == h {
			return o
		}
	}
	return nil
}

func (m *Manager) addOutput(e OutputAdded) *Output {
	m.lastOutputID++
	o := &Output{
		ID:     m.lastOutputID,
		Handle: e.Handle,
		X:      e.X,
		Y:      e.Y,
		Width:  e.Width,
		Height: e.Height,
		slots:  make([][]ViewID, m.workspaces),
	}
	m.outputs = append(m.outputs, o)
	return o
}

// removeOutput drops o. Its views become unassigned and hidden; they are not
// re-homed on another output.
func (m *Manager) removeOutput(o *Output) {
	for ws := range o.slots {
		for _, id := range o.slots[ws] {
			if v := m.view(id); v != nil {
				v.output, v.workspace = 0, 0
				if v.Mapped {
					m.backend.SetViewVisible(v.Handle, false)
				}
			}
		}
		o.slots[ws] = nil
	}
	for i, o1 := range m.outputs {
		if o1 == o {
			m.outputs = append(m.outputs[:i], m.outputs[i+1:]...)
			break
		}
	}
}

// Outputs returns the outputs in creation order.
func (m *Manager) Outputs() []Output {
	ret := make([]Output, 0, len(m.outputs))
	for _, o := range m.outputs {
		c := *o
		c.slots = make([][]ViewID, len(o.slots))
		for i := range o.slots {
			c.slots[i] = o.Slot(i)
		}
		ret = append(ret, c)
	}
	return ret
}
