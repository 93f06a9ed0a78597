package main

import "testing"

var canvasOrigin = point{0, toolbarHeight}

func newDragFixture(edit bool) (*Store, *DragController) {
	s := NewStore(&Config{Mac: true, EditMode: edit})
	return s, NewDragController(canvasOrigin, edit)
}

func nodeAt(t *testing.T, s *Store, id string) Node {
	t.Helper()
	n, ok := s.Node(id)
	if !ok {
		t.Fatalf("node %q not found", id)
	}
	return n
}

func TestDragMovesOnlyTarget(t *testing.T) {
	s, d := newDragFixture(true)
	before := s.Nodes()

	// website sits at (2,2), so (10,4) on screen is offset (8,1).
	if !d.PointerDown(s, "website", point{10, 4}) {
		t.Fatal("expected drag to start")
	}
	if id, ok := d.Dragging(); !ok || id != "website" {
		t.Fatalf("dragging = %q, %v", id, ok)
	}
	d.PointerMove(s, point{30, 10})

	n := nodeAt(t, s, "website")
	if n.Left != 22 || n.Top != 8 {
		t.Errorf("website at (%d,%d), want (22,8)", n.Left, n.Top)
	}
	for _, b := range before {
		if b.ID == "website" {
			continue
		}
		if got := nodeAt(t, s, b.ID); got != b {
			t.Errorf("%s moved: %+v -> %+v", b.ID, b, got)
		}
	}
}

func TestDragOffsetCapturedOnce(t *testing.T) {
	s, d := newDragFixture(true)
	d.PointerDown(s, "website", point{10, 3})

	d.PointerMove(s, point{20, 10})
	n := nodeAt(t, s, "website")
	if n.Left != 12 || n.Top != 9 {
		t.Fatalf("website at (%d,%d), want (12,9)", n.Left, n.Top)
	}

	d.PointerMove(s, point{21, 10})
	n = nodeAt(t, s, "website")
	if n.Left != 13 || n.Top != 9 {
		t.Errorf("website at (%d,%d), want (13,9)", n.Left, n.Top)
	}
}

func TestDragIsNotClamped(t *testing.T) {
	s, d := newDragFixture(true)
	d.PointerDown(s, "website", point{10, 4})
	d.PointerMove(s, point{0, 0})

	n := nodeAt(t, s, "website")
	if n.Left != -8 || n.Top != -2 {
		t.Errorf("website at (%d,%d), want (-8,-2)", n.Left, n.Top)
	}
}

func TestDragIgnoredInViewMode(t *testing.T) {
	s, d := newDragFixture(false)
	if d.PointerDown(s, "website", point{10, 4}) {
		t.Error("drag started while detached")
	}

	// attached but the store says view mode
	d.Attach()
	if d.PointerDown(s, "website", point{10, 4}) {
		t.Error("drag started outside edit mode")
	}
	if d.State() != DragIdle {
		t.Errorf("state = %v, want idle", d.State())
	}
	if n := nodeAt(t, s, "website"); n.Left != 2 || n.Top != 2 {
		t.Errorf("website moved to (%d,%d)", n.Left, n.Top)
	}
}

func TestSecondPointerDownIgnored(t *testing.T) {
	s, d := newDragFixture(true)
	d.PointerDown(s, "website", point{10, 4})
	if d.PointerDown(s, "terminal", point{60, 4}) {
		t.Error("second drag started during a drag")
	}
	if id, _ := d.Dragging(); id != "website" {
		t.Errorf("dragging %q, want website", id)
	}
}

func TestPointerDownUnknownNode(t *testing.T) {
	s, d := newDragFixture(true)
	if d.PointerDown(s, "nope", point{1, 1}) {
		t.Error("drag started for unknown node")
	}
}

func TestPointerUpEndsDrag(t *testing.T) {
	s, d := newDragFixture(true)
	d.PointerDown(s, "terminal", point{60, 3})
	d.PointerMove(s, point{50, 13})

	move, ok := d.PointerUp(s)
	if !ok {
		t.Fatal("expected a finished move")
	}
	want := MoveNodeData{ID: "terminal", FromLeft: 54, FromTop: 2, ToLeft: 44, ToTop: 12}
	if move != want {
		t.Errorf("move = %+v, want %+v", move, want)
	}
	if d.State() != DragIdle {
		t.Error("expected idle after release")
	}

	if d.PointerMove(s, point{0, 0}) {
		t.Error("move after release changed the store")
	}
	if n := nodeAt(t, s, "terminal"); n.Left != 44 || n.Top != 12 {
		t.Errorf("terminal at (%d,%d), want (44,12)", n.Left, n.Top)
	}
}

func TestDetachAbandonsDrag(t *testing.T) {
	s, d := newDragFixture(true)
	d.PointerDown(s, "website", point{10, 3})
	d.PointerMove(s, point{20, 10})

	s.ToggleEditMode()
	move, ok := d.Detach(s)
	if !ok || move.ToLeft != 12 || move.ToTop != 9 {
		t.Errorf("detach = %+v, %v", move, ok)
	}
	if _, dragging := d.Dragging(); dragging {
		t.Error("still dragging after detach")
	}
	if d.Attached() {
		t.Error("still attached after detach")
	}
	if d.PointerMove(s, point{40, 20}) {
		t.Error("move after detach changed the store")
	}
	if _, ok := d.PointerUp(s); ok {
		t.Error("release after detach reported a move")
	}
}
