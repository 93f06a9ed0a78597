package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

var helpLines = []string{
	"nodedit Help",
	"============",
	"",
	"Mouse:",
	"------",
	"  Drag a panel header    Move the panel (edit mode only)",
	"  [ View Mode ]          Switch between edit and view mode",
	"  [Switch to ...]        Flip the terminal between macOS and PowerShell",
	"  Click a field          Focus the URL, terminal or iframe field",
	"",
	"Fields:",
	"-------",
	"  Tab / Shift+Tab        Cycle focus: URL, terminal, iframe (edit mode)",
	"  Enter                  Submit the terminal command",
	"  Ctrl+V                 Paste clipboard into the focused field",
	"  Ctrl+E                 Toggle edit mode without leaving the field",
	"  Esc                    Leave the field",
	"",
	"Canvas (no field focused):",
	"--------------------------",
	"  e                      Toggle edit / view mode",
	"  o                      Toggle macOS / Windows terminal flavor",
	"  t                      Focus the terminal input",
	"  u                      Undo last panel move",
	"  U                      Redo last undone move",
	"  P                      Export the screen as PNG",
	"  T                      Export the screen as text",
	"  y                      Copy the terminal transcript",
	"  ?                      Toggle this help screen",
	"  q / Ctrl+C             Quit",
	"",
	"Note: the terminal only echoes commands; nothing is executed.",
	"Iframe markup is shown as text unless trusted_markup is set in ~/.nodeditrc.",
}

func (m model) handleHelpKey(msg tea.KeyMsg) model {
	switch msg.String() {
	case "j", "down":
		_, height := m.screenSize()
		maxScroll := max(0, len(helpLines)-max(1, height-1))
		if m.helpScroll < maxScroll {
			m.helpScroll++
		}
	case "k", "up":
		if m.helpScroll > 0 {
			m.helpScroll--
		}
	default:
		m.help = false
		m.helpScroll = 0
	}
	return m
}

func (m model) helpView() string {
	_, height := m.screenSize()
	visibleHeight := max(1, height-1)

	startLine := min(m.helpScroll, max(0, len(helpLines)-visibleHeight))
	endLine := min(startLine+visibleHeight, len(helpLines))

	result := strings.Join(helpLines[startLine:endLine], "\n")
	status := fmt.Sprintf("Help (%d-%d of %d lines) | j/k to scroll, any other key to close",
		startLine+1, endLine, len(helpLines))
	return result + "\n" + styleStatus.render(status)
}
