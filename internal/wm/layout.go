package wm

// relayout places the views of o's current workspace. Every mapped view on
// o is hidden first, so nothing from another workspace stays visible. One
// view gets the whole usable area, two views split the width in half.
func (m *Manager) relayout(o *Output) {
	if o == nil {
		return
	}
	for _, id := range m.viewOrder {
		v := m.view(id)
		if v != nil && v.Mapped && v.output == o.ID {
			m.backend.SetViewVisible(v.Handle, false)
		}
	}

	var visible []*View
	for _, id := range o.slots[o.current] {
		if v := m.view(id); v != nil && v.Mapped {
			visible = append(visible, v)
		}
		if len(visible) == SlotCapacity {
			break
		}
	}

	strip := m.indicatorHeight
	if strip >= o.Height {
		strip = 0
	}
	y, height := o.Y+strip, o.Height-strip

	switch len(visible) {
	case 1:
		m.place(visible[0], o.X, y, o.Width, height)
	case 2:
		half := o.Width / 2
		m.place(visible[0], o.X, y, half, height)
		m.place(visible[1], o.X+half, y, half, height)
	}
	m.log.Debug("relayout", "output", o.ID, "workspace", o.current+1, "visible", len(visible))
}

func (m *Manager) place(v *View, x, y, width, height int) {
	m.backend.SetViewVisible(v.Handle, true)
	m.backend.SetViewPosition(v.Handle, x, y)
	m.backend.SetViewSize(v.Handle, width, height)
}
