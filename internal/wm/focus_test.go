package wm

import "testing"

func TestCycleFocusAlternates(t *testing.T) {
	m, b := newTestManager(t, 4)
	m.HandleEvent(OutputAdded{Handle: 100, Width: 800, Height: 600})
	mapView(m, 1)
	mapView(m, 2)
	// The newest view was focused on placement.
	if b.focus != 2 {
		t.Fatalf("focus = %d, want 2", b.focus)
	}

	want := []Handle{1, 2, 1}
	for i, h := range want {
		m.HandleEvent(press('x', ctrlShift))
		if b.focus != h {
			t.Fatalf("cycle %d: focus = %d, want %d", i, b.focus, h)
		}
	}
}

func TestCycleFocusFromOutsideThePair(t *testing.T) {
	m, b := newTestManager(t, 4)
	m.HandleEvent(OutputAdded{Handle: 100, Width: 800, Height: 600})
	mapView(m, 1)
	mapView(m, 2)
	b.focus = 99

	b.reset()
	m.HandleEvent(press('X', ctrlShift))
	assertCalls(t, b, []string{"focus 1"})
}

func TestCycleFocusNeedsTwoViews(t *testing.T) {
	m, b := newTestManager(t, 4)
	m.HandleEvent(OutputAdded{Handle: 100, Width: 800, Height: 600})
	m.HandleEvent(press('x', ctrlShift))
	mapView(m, 1)
	b.reset()
	m.HandleEvent(press('x', ctrlShift))
	assertCalls(t, b, nil)
}

func TestCycleFocusOnlyCurrentWorkspace(t *testing.T) {
	m, b := newTestManager(t, 2)
	m.HandleEvent(OutputAdded{Handle: 100, Width: 800, Height: 600})
	for h := Handle(1); h <= 4; h++ {
		mapView(m, h)
	}
	// Workspace 1 is current and holds views 1 and 2.
	b.focus = 1
	b.reset()
	m.HandleEvent(press('x', ctrlShift))
	assertCalls(t, b, []string{"focus 2"})
}

func TestCycleFocusEachOutput(t *testing.T) {
	m, b := newTestManager(t, 1)
	m.HandleEvent(OutputAdded{Handle: 100, Width: 800, Height: 600})
	m.HandleEvent(OutputAdded{Handle: 200, X: 800, Width: 800, Height: 600})
	for h := Handle(1); h <= 4; h++ {
		mapView(m, h)
	}
	b.focus = 3
	b.reset()
	m.HandleEvent(press('x', ctrlShift))
	// The request for the first output lands first, so the second output
	// no longer sees its own view focused.
	assertCalls(t, b, []string{"focus 1", "focus 3"})
}
