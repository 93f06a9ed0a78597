package main

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

type clipboardMsg struct {
	paste bool
	text  string
	err   error
}

func readClipboardText() (string, error) {
	if runtime.GOOS == "darwin" {
		if output, err := exec.Command("pbpaste", "-Prefer", "txt").Output(); err == nil {
			return string(output), nil
		}
	}
	return clipboard.ReadAll()
}

func pasteCmd() tea.Cmd {
	return func() tea.Msg {
		text, err := readClipboardText()
		if err != nil {
			return clipboardMsg{paste: true, err: fmt.Errorf("read clipboard: %w", err)}
		}
		return clipboardMsg{paste: true, text: cleanPastedText(text)}
	}
}

func copyTranscriptCmd(lines []TerminalLine) tea.Cmd {
	text := transcriptText(lines)
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return clipboardMsg{err: fmt.Errorf("write clipboard: %w", err)}
		}
		return clipboardMsg{}
	}
}

// cleanPastedText flattens clipboard contents onto one line for the
// single-line fields.
func cleanPastedText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimRight(text, "\n")
	var result strings.Builder
	result.Grow(len(text))
	for _, r := range text {
		switch {
		case r == '\n' || r == '\r' || r == '\t':
			result.WriteRune(' ')
		case r >= 32 && r != 127:
			result.WriteRune(r)
		}
	}
	return result.String()
}
