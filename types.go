package main

import (
	"github.com/charmbracelet/bubbles/textinput"
)

type model struct {
	width          int
	height         int
	store          *Store
	drag           *DragController
	undoStack      []Action
	redoStack      []Action
	urlInput       textinput.Model
	terminalInput  textinput.Model
	iframeInput    textinput.Model
	focus          Focus
	mode           Mode
	confirmAction  ConfirmAction
	help           bool
	helpScroll     int
	errorMessage   string
	successMessage string
	config         *Config
}

type point struct {
	X, Y int
}

type rect struct {
	X, Y, W, H int
}

func (r rect) contains(p point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

func (r rect) intersect(o rect) rect {
	x0, y0 := max(r.X, o.X), max(r.Y, o.Y)
	x1, y1 := min(r.X+r.W, o.X+o.W), min(r.Y+r.H, o.Y+o.H)
	if x1 <= x0 || y1 <= y0 {
		return rect{}
	}
	return rect{x0, y0, x1 - x0, y1 - y0}
}

// Node is one draggable panel. Geometry is in terminal cells relative to the
// editor canvas origin.
type Node struct {
	ID     string
	Kind   NodeKind
	Left   int
	Top    int
	Width  int
	Height int
	ZIndex int
}

type TerminalLine struct {
	ID        int
	Text      string
	IsCommand bool
}

type Action struct {
	Type    ActionType
	Data    interface{}
	Inverse interface{}
}

type MoveNodeData struct {
	ID       string
	FromLeft int
	FromTop  int
	ToLeft   int
	ToTop    int
}

func (d MoveNodeData) changed() bool {
	return d.FromLeft != d.ToLeft || d.FromTop != d.ToTop
}

type OriginalNodeState struct {
	ID   string
	Left int
	Top  int
}
