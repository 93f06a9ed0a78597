package main

type EventKind int

const (
	EventPointerDown EventKind = iota
	EventPointerMove
	EventPointerUp
	EventToggleEdit
	EventToggleOS
	EventSubmitTerminal
	EventSetURL
	EventSetIframe
	EventSetTerminalInput
)

func (k EventKind) String() string {
	switch k {
	case EventPointerDown:
		return "pointer-down"
	case EventPointerMove:
		return "pointer-move"
	case EventPointerUp:
		return "pointer-up"
	case EventToggleEdit:
		return "toggle-edit"
	case EventToggleOS:
		return "toggle-os"
	case EventSubmitTerminal:
		return "submit-terminal"
	case EventSetURL:
		return "set-url"
	case EventSetIframe:
		return "set-iframe"
	case EventSetTerminalInput:
		return "set-terminal-input"
	default:
		return "unknown"
	}
}

type Event struct {
	Kind    EventKind
	NodeID  string
	Pointer point
	Text    string
}

// Result reports what a dispatched event did. Move is set when a drag ended,
// either by release or because edit mode was switched off mid-gesture.
type Result struct {
	Changed bool
	Moved   bool
	Move    MoveNodeData
}

// Dispatch applies one event to the store. Every state change in the editor
// goes through here.
func Dispatch(s *Store, d *DragController, ev Event) Result {
	switch ev.Kind {
	case EventPointerDown:
		return Result{Changed: d.PointerDown(s, ev.NodeID, ev.Pointer)}
	case EventPointerMove:
		return Result{Changed: d.PointerMove(s, ev.Pointer)}
	case EventPointerUp:
		move, ok := d.PointerUp(s)
		return Result{Changed: ok, Moved: ok && move.changed(), Move: move}
	case EventToggleEdit:
		s.ToggleEditMode()
		if s.EditMode() {
			d.Attach()
			return Result{Changed: true}
		}
		move, ok := d.Detach(s)
		return Result{Changed: true, Moved: ok && move.changed(), Move: move}
	case EventToggleOS:
		s.ToggleOSFlavor()
		return Result{Changed: true}
	case EventSubmitTerminal:
		return Result{Changed: s.SubmitTerminal()}
	case EventSetURL:
		s.SetWebsiteURL(ev.Text)
		return Result{Changed: true}
	case EventSetIframe:
		s.SetIframeCode(ev.Text)
		return Result{Changed: true}
	case EventSetTerminalInput:
		s.SetTerminalInput(ev.Text)
		return Result{Changed: true}
	}
	return Result{}
}
