package main

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.help {
		return m.handleHelpKey(msg), nil
	}

	if m.mode == ModeConfirm {
		switch msg.String() {
		case "y", "Y":
			if m.confirmAction == ConfirmQuit {
				return m, tea.Quit
			}
		}
		m.mode = ModeNormal
		return m, nil
	}

	if m.focus != FocusNone {
		return m.handleFieldKey(msg)
	}

	if msg.Type == tea.KeyEscape {
		m.errorMessage = ""
		m.successMessage = ""
		return m, nil
	}

	switch msg.String() {
	case "q":
		if m.config.Confirmations {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmQuit
			return m, nil
		}
		return m, tea.Quit
	case "?":
		m.help = true
		m.helpScroll = 0
	case "e", "ctrl+e":
		m.dispatch(Event{Kind: EventToggleEdit})
	case "o":
		m.dispatch(Event{Kind: EventToggleOS})
	case "tab":
		m.nextFocus(1)
	case "shift+tab":
		m.nextFocus(-1)
	case "t", "i":
		m.setFocus(FocusTerminal)
	case "u":
		if !m.undo() {
			m.successMessage = ""
			m.errorMessage = "Nothing to undo"
		}
	case "U":
		if !m.redo() {
			m.successMessage = ""
			m.errorMessage = "Nothing to redo"
		}
	case "P":
		return m, m.exportCmd(ExportPNG)
	case "T":
		return m, m.exportCmd(ExportTXT)
	case "y":
		return m, copyTranscriptCmd(m.store.Transcript())
	}
	return m, nil
}

func (m model) handleFieldKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.setFocus(FocusNone)
		return m, nil
	case "tab":
		m.nextFocus(1)
		return m, nil
	case "shift+tab":
		m.nextFocus(-1)
		return m, nil
	case "ctrl+e":
		m.dispatch(Event{Kind: EventToggleEdit})
		return m, nil
	case "ctrl+v":
		return m, pasteCmd()
	case "enter":
		if m.focus == FocusTerminal {
			m.dispatch(Event{Kind: EventSubmitTerminal})
		}
		return m, nil
	}

	in := m.focusedInput()
	updated, cmd := in.Update(msg)
	*in = updated
	m.syncFocused()
	return m, cmd
}
