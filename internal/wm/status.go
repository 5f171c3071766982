package wm

// Status is a snapshot of the state a Painter may draw.
type Status struct {
	Outputs         []OutputStatus
	IndicatorHeight int
	CommandActive   bool
	Command         string
}

type OutputStatus struct {
	Handle        Handle
	X, Y          int
	Width, Height int
	Current       int
	// Occupied holds the number of views on each workspace.
	Occupied []int
}

// Status returns the current snapshot.
func (m *Manager) Status() Status {
	s := Status{
		IndicatorHeight: m.indicatorHeight,
		CommandActive:   m.cmdbox.active,
		Command:         m.cmdbox.Text(),
	}
	for _, o := range m.outputs {
		st := OutputStatus{
			Handle:   o.Handle,
			X:        o.X,
			Y:        o.Y,
			Width:    o.Width,
			Height:   o.Height,
			Current:  o.current,
			Occupied: make([]int, len(o.slots)),
		}
		for ws := range o.slots {
			st.Occupied[ws] = len(o.slots[ws])
		}
		s.Outputs = append(s.Outputs, st)
	}
	return s
}

func (m *Manager) paint() {
	if m.painter != nil {
		m.painter.Paint(m.Status())
	}
}
