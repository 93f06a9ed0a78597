package main

import "sort"

// Store holds all editor state. Renderers only read it; the transitions below
// are the only writers.
type Store struct {
	editMode      bool
	mac           bool
	websiteURL    string
	iframeCode    string
	terminalInput string
	transcript    []TerminalLine
	nextLineID    int
	nodes         []Node
}

func defaultNodes() []Node {
	return []Node{
		{ID: "website", Kind: KindWebsite, Left: 2, Top: 2, Width: 50, Height: 14, ZIndex: 1},
		{ID: "terminal", Kind: KindTerminal, Left: 54, Top: 2, Width: 32, Height: 14, ZIndex: 2},
		{ID: "iframe", Kind: KindIframe, Left: 2, Top: 17, Width: 84, Height: 9, ZIndex: 3},
	}
}

func NewStore(cfg *Config) *Store {
	if cfg == nil {
		cfg = defaultConfig()
	}
	return &Store{
		editMode:   cfg.EditMode,
		mac:        cfg.Mac,
		websiteURL: cfg.WebsiteURL,
		transcript: []TerminalLine{{ID: 1, Text: welcomeLineText}},
		nextLineID: 2,
		nodes:      defaultNodes(),
	}
}

func (s *Store) EditMode() bool { return s.editMode }
func (s *Store) Mac() bool { return s.mac }
func (s *Store) WebsiteURL() string { return s.websiteURL }
func (s *Store) IframeCode() string { return s.iframeCode }
func (s *Store) TerminalInput() string { return s.terminalInput }
func (s *Store) NextLineID() int { return s.nextLineID }

func (s *Store) Transcript() []TerminalLine {
	out := make([]TerminalLine, len(s.transcript))
	copy(out, s.transcript)
	return out
}

// Nodes returns a copy of the node list in declaration order.
func (s *Store) Nodes() []Node {
	out := make([]Node, len(s.nodes))
	copy(out, s.nodes)
	return out
}

// NodesByZ returns a copy of the node list in ascending stacking order.
func (s *Store) NodesByZ() []Node {
	out := s.Nodes()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ZIndex < out[j].ZIndex
	})
	return out
}

func (s *Store) Node(id string) (Node, bool) {
	for _, n := range s.nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

// SetNodePosition moves a single node. Positions are not clamped.
func (s *Store) SetNodePosition(id string, left, top int) bool {
	for i := range s.nodes {
		if s.nodes[i].ID == id {
			s.nodes[i].Left = left
			s.nodes[i].Top = top
			return true
		}
	}
	return false
}

func (s *Store) SetWebsiteURL(url string) { s.websiteURL = url }
func (s *Store) SetIframeCode(code string) { s.iframeCode = code }
func (s *Store) SetTerminalInput(input string) { s.terminalInput = input }
func (s *Store) ToggleEditMode() { s.editMode = !s.editMode }
func (s *Store) ToggleOSFlavor() { s.mac = !s.mac }
