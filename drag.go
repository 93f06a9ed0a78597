package main

type DragState int

const (
	DragIdle DragState = iota
	DragDragging
)

// DragController moves at most one node at a time. Move and release events
// only reach it while it is attached, which tracks edit mode.
type DragController struct {
	state    DragState
	nodeID   string
	offset   point
	origin   point
	start    point
	attached bool
}

// NewDragController returns an idle controller for a canvas whose top-left
// corner sits at origin on screen.
func NewDragController(origin point, attached bool) *DragController {
	return &DragController{origin: origin, attached: attached}
}

func (d *DragController) Attached() bool { return d.attached }
func (d *DragController) State() DragState { return d.state }

func (d *DragController) Dragging() (string, bool) {
	if d.state != DragDragging {
		return "", false
	}
	return d.nodeID, true
}

func (d *DragController) Attach() {
	d.attached = true
}

// Detach stops routing pointer events and abandons any drag in progress.
// The returned move covers whatever distance the node already travelled.
func (d *DragController) Detach(s *Store) (MoveNodeData, bool) {
	d.attached = false
	return d.finish(s)
}

// PointerDown starts dragging id. The offset between the pointer and the
// node's top-left corner is captured here and reused for the whole gesture.
func (d *DragController) PointerDown(s *Store, id string, pointer point) bool {
	if !s.EditMode() || !d.attached || d.state == DragDragging {
		return false
	}
	n, ok := s.Node(id)
	if !ok {
		return false
	}
	d.state = DragDragging
	d.nodeID = id
	d.start = point{n.Left, n.Top}
	d.offset = point{
		X: pointer.X - (d.origin.X + n.Left),
		Y: pointer.Y - (d.origin.Y + n.Top),
	}
	return true
}

func (d *DragController) PointerMove(s *Store, pointer point) bool {
	if d.state != DragDragging || !d.attached || !s.EditMode() {
		return false
	}
	left := pointer.X - d.origin.X - d.offset.X
	top := pointer.Y - d.origin.Y - d.offset.Y
	return s.SetNodePosition(d.nodeID, left, top)
}

func (d *DragController) PointerUp(s *Store) (MoveNodeData, bool) {
	if !d.attached {
		return MoveNodeData{}, false
	}
	return d.finish(s)
}

func (d *DragController) finish(s *Store) (MoveNodeData, bool) {
	if d.state != DragDragging {
		return MoveNodeData{}, false
	}
	move := MoveNodeData{ID: d.nodeID, FromLeft: d.start.X, FromTop: d.start.Y}
	if n, ok := s.Node(d.nodeID); ok {
		move.ToLeft, move.ToTop = n.Left, n.Top
	}
	d.state = DragIdle
	d.nodeID = ""
	d.offset = point{}
	return move, true
}
