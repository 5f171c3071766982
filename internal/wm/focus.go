package wm

// cycleFocus hands keyboard focus to the other view of every output's
// current workspace that holds exactly two mapped views. If the seat focus
// is on neither, the first view wins.
func (m *Manager) cycleFocus() {
	for _, o := range m.outputs {
		var pair []*View
		for _, id := range o.slots[o.current] {
			if v := m.view(id); v != nil && v.Mapped {
				pair = append(pair, v)
			}
		}
		if len(pair) != 2 {
			continue
		}
		target := pair[0]
		if focused, ok := m.backend.KeyboardFocus(); ok && focused == pair[0].Handle {
			target = pair[1]
		}
		m.backend.RequestKeyboardFocus(target.Handle)
		m.log.Info("focus cycled", "output", o.ID, "workspace", o.current+1, "view", target.ID)
	}
}
