package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	config, err := loadConfig()
	if err != nil {
		log.Printf("using defaults: %v", err)
	}

	// Anything written to stderr would land on top of the alt screen.
	if path := os.Getenv("NODEDIT_DEBUG"); path != "" {
		f, err := tea.LogToFile(path, "nodedit")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	p := tea.NewProgram(
		initialModel(config),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
}

func newInput(placeholder, value string) textinput.Model {
	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = placeholder
	in.SetValue(value)
	return in
}

func initialModel(config *Config) model {
	if config == nil {
		config = defaultConfig()
	}
	store := NewStore(config)
	return model{
		store:         store,
		drag:          NewDragController(point{0, toolbarHeight}, store.EditMode()),
		urlInput:      newInput("https://", store.WebsiteURL()),
		terminalInput: newInput("Type command here...", ""),
		iframeInput:   newInput("<iframe src='...'></iframe>", ""),
		focus:         FocusNone,
		mode:          ModeNormal,
		config:        config,
	}
}

func (m model) screenSize() (int, int) {
	width, height := m.width, m.height
	if width < 1 {
		width = defaultWidth
	}
	if height < 1 {
		height = defaultHeight
	}
	return width, height
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.MouseMsg:
		if m.help || m.mode == ModeConfirm {
			return m, nil
		}
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case exportDoneMsg:
		if msg.err != nil {
			log.Printf("export failed: %v", msg.err)
			m.errorMessage = msg.err.Error()
			m.successMessage = ""
		} else {
			log.Printf("exported %s", msg.path)
			m.successMessage = "Exported " + msg.path
			m.errorMessage = ""
		}
		return m, nil

	case clipboardMsg:
		if msg.err != nil {
			m.errorMessage = msg.err.Error()
			m.successMessage = ""
			return m, nil
		}
		m.errorMessage = ""
		if msg.paste {
			m.insertIntoFocused(msg.text)
		} else {
			m.successMessage = "Transcript copied"
		}
		return m, nil
	}
	return m, nil
}

// dispatch routes an event through the store and keeps the undo history and
// the text inputs in step with the result.
func (m *model) dispatch(ev Event) Result {
	res := Dispatch(m.store, m.drag, ev)
	if res.Moved {
		m.recordAction(ActionMoveNode,
			res.Move,
			OriginalNodeState{ID: res.Move.ID, Left: res.Move.FromLeft, Top: res.Move.FromTop})
		log.Printf("moved %s to (%d,%d)", res.Move.ID, res.Move.ToLeft, res.Move.ToTop)
	}
	switch ev.Kind {
	case EventPointerDown, EventPointerMove, EventPointerUp:
	default:
		if res.Changed {
			log.Printf("%s", ev.Kind)
		}
	}
	switch ev.Kind {
	case EventToggleEdit:
		if !m.store.EditMode() && m.focus == FocusIframe {
			m.setFocus(FocusNone)
		}
	case EventSubmitTerminal:
		if res.Changed {
			m.terminalInput.SetValue(m.store.TerminalInput())
		}
	}
	return res
}

func (m model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	p := point{msg.X, msg.Y}
	switch msg.Action {
	case tea.MouseActionMotion:
		if m.drag.Attached() {
			m.dispatch(Event{Kind: EventPointerMove, Pointer: p})
		}
		return m, nil
	case tea.MouseActionRelease:
		if m.drag.Attached() {
			m.dispatch(Event{Kind: EventPointerUp, Pointer: p})
		}
		return m, nil
	}

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	z, ok := m.hitTest(p)
	if !ok {
		m.setFocus(FocusNone)
		return m, nil
	}
	switch z.kind {
	case zoneModeButton:
		m.dispatch(Event{Kind: EventToggleEdit})
	case zoneURLField:
		m.setFocus(FocusURL)
	case zoneOSButton:
		m.dispatch(Event{Kind: EventToggleOS})
	case zoneTerminalInput:
		m.setFocus(FocusTerminal)
	case zoneIframeInput:
		m.setFocus(FocusIframe)
	case zoneNodeHeader:
		m.setFocus(FocusNone)
		if m.dispatch(Event{Kind: EventPointerDown, NodeID: z.nodeID, Pointer: p}).Changed {
			log.Printf("drag start %s at (%d,%d)", z.nodeID, p.X, p.Y)
		}
	case zoneNodeBody:
		if z.nodeID == "terminal" {
			m.setFocus(FocusTerminal)
		}
	}
	return m, nil
}

func (m *model) setFocus(f Focus) {
	if f == FocusIframe && !m.store.EditMode() {
		f = FocusNone
	}
	m.focus = f
	m.urlInput.Blur()
	m.terminalInput.Blur()
	m.iframeInput.Blur()
	switch f {
	case FocusURL:
		m.urlInput.Focus()
	case FocusTerminal:
		m.terminalInput.Focus()
	case FocusIframe:
		m.iframeInput.Focus()
	}
}

func (m *model) nextFocus(step int) {
	order := []Focus{FocusNone, FocusURL, FocusTerminal}
	if m.store.EditMode() {
		order = append(order, FocusIframe)
	}
	idx := 0
	for i, f := range order {
		if f == m.focus {
			idx = i
		}
	}
	idx = (idx + step + len(order)) % len(order)
	m.setFocus(order[idx])
}

func (m *model) focusedInput() *textinput.Model {
	switch m.focus {
	case FocusURL:
		return &m.urlInput
	case FocusTerminal:
		return &m.terminalInput
	case FocusIframe:
		return &m.iframeInput
	}
	return nil
}

// syncFocused copies the focused input's value into the store.
func (m *model) syncFocused() {
	switch m.focus {
	case FocusURL:
		if m.urlInput.Value() != m.store.WebsiteURL() {
			m.dispatch(Event{Kind: EventSetURL, Text: m.urlInput.Value()})
		}
	case FocusTerminal:
		if m.terminalInput.Value() != m.store.TerminalInput() {
			m.dispatch(Event{Kind: EventSetTerminalInput, Text: m.terminalInput.Value()})
		}
	case FocusIframe:
		if m.iframeInput.Value() != m.store.IframeCode() {
			m.dispatch(Event{Kind: EventSetIframe, Text: m.iframeInput.Value()})
		}
	}
}

func (m *model) insertIntoFocused(text string) {
	in := m.focusedInput()
	if in == nil || text == "" {
		return
	}
	value := []rune(in.Value())
	pos := min(in.Position(), len(value))
	inserted := []rune(text)
	in.SetValue(string(value[:pos]) + text + string(value[pos:]))
	in.SetCursor(pos + len(inserted))
	m.syncFocused()
}

func (m model) View() string {
	if m.help {
		return m.helpView()
	}
	return strings.Join(m.renderScreen().Lines(), "\n")
}

func (m model) modeString() string {
	if m.store.EditMode() {
		return "EDIT"
	}
	return "VIEW"
}

func (m model) focusString() string {
	switch m.focus {
	case FocusURL:
		return "url"
	case FocusTerminal:
		return "terminal"
	case FocusIframe:
		return "iframe"
	}
	return "canvas"
}

func (m model) drawStatusLine(c *Canvas) {
	y := c.height - statusHeight
	var status string
	if m.mode == ModeConfirm {
		switch m.confirmAction {
		case ConfirmQuit:
			status = "Mode: CONFIRM | Quit nodedit? (y/n)"
		}
	} else {
		status = fmt.Sprintf("Mode: %s | Focus: %s", m.modeString(), m.focusString())
		if id, ok := m.drag.Dragging(); ok {
			status += fmt.Sprintf(" | Dragging %s", id)
		}
		if m.errorMessage == "" && m.successMessage == "" {
			status += " | tab: fields | ? for help | q to quit"
		}
	}
	used := c.DrawString(0, y, c.width, status, styleStatus)
	switch {
	case m.errorMessage != "":
		c.DrawString(used, y, c.width-used, " | ERROR: "+m.errorMessage, styleError)
	case m.successMessage != "":
		c.DrawString(used, y, c.width-used, " | "+m.successMessage, styleSuccess)
	}
}
