package wm

import "fmt"

// SlotCapacity is the number of views a workspace holds on one output.
const SlotCapacity = 2

// findAvailableSlot returns the first (output, workspace) pair, scanning
// outputs in creation order and workspaces in ascending order, whose
// slot-list has room. It returns nil if everything is full.
func (m *Manager) findAvailableSlot() (*Output, int) {
	for _, o := range m.outputs {
		for ws := range o.slots {
			if len(o.slots[ws]) < SlotCapacity {
				return o, ws
			}
		}
	}
	return nil, 0
}

// assign appends v to the slot-list of (o, ws). A full slot-list is a
// programming error.
func (m *Manager) assign(o *Output, ws int, v *View) {
	if n := len(o.slots[ws]); n >= SlotCapacity {
		panic(fmt.Sprintf("wm: assign to full workspace %d of output %d (%d views)", ws, o.ID, n))
	}
	o.slots[ws] = append(o.slots[ws], v.ID)
	v.output, v.workspace = o.ID, ws
}

// unassign removes v from its slot-list and returns the output it was on, or
// nil if v was already unassigned.
func (m *Manager) unassign(v *View) *Output {
	if v.output == 0 {
		return nil
	}
	o := m.output(v.output)
	v.output, v.workspace = 0, 0
	if o == nil {
		return nil
	}
	for ws := range o.slots {
		s := o.slots[ws]
		for i, id := range s {
			if id == v.ID {
				o.slots[ws] = append(s[:i:i], s[i+1:]...)
				return o
			}
		}
	}
	return o
}
