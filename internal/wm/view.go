package wm

// Handle is the backend's identity for a window or a monitor. The backend
// owns the underlying resource; the manager never dereferences it.
type Handle uint32

// ViewID indexes a View in the manager's arena. IDs are never reused, so a
// stale ViewID simply fails to resolve once its view is destroyed.
type ViewID uint64

// View is one managed client window.
type View struct {
	ID     ViewID
	Handle Handle
	Mapped bool

	// output is zero while the view is unassigned, in which case
	// workspace is meaningless.
	output    OutputID
	workspace int
}

// Assigned returns the output and workspace holding v. ok is false for an
// unassigned view.
func (v *View) Assigned() (o OutputID, workspace int, ok bool) {
	if v.output == 0 {
		return 0, 0, false
	}
	return v.output, v.workspace, true
}

func (m *Manager) view(id ViewID) *View {
	return m.views[id]
}

func (m *Manager) viewByHandle(h Handle) *View {
	id, ok := m.viewHandles[h]
	if !ok {
		return nil
	}
	return m.views[id]
}

func (m *Manager) newView(h Handle) *View {
	m.lastViewID++
	v := &View{ID: m.lastViewID, Handle: h}
	m.views[v.ID] = v
	m.viewHandles[h] = v.ID
	m.viewOrder = append(m.viewOrder, v.ID)
	return v
}

func (m *Manager) dropView(v *View) {
	delete(m.views, v.ID)
	if m.viewHandles[v.Handle] == v.ID {
		delete(m.viewHandles, v.Handle)
	}
	for i, id := range m.viewOrder {
		if id == v.ID {
			m.viewOrder = append(m.viewOrder[:i], m.viewOrder[i+1:]...)
			break
		}
	}
}

// View looks up a view by its backend handle.
func (m *Manager) View(h Handle) (View, bool) {
	v := m.viewByHandle(h)
	if v == nil {
		return View{}, false
	}
	return *v, true
}
