package main

import "strings"

// SubmitTerminal echoes the pending input into the transcript followed by a
// canned acknowledgement. Nothing is executed. Blank input is ignored.
func (s *Store) SubmitTerminal() bool {
	raw := s.terminalInput
	if strings.TrimSpace(raw) == "" {
		return false
	}
	s.transcript = append(s.transcript,
		TerminalLine{ID: s.nextLineID, Text: promptGlyph(s.mac) + raw, IsCommand: true},
		TerminalLine{ID: s.nextLineID + 1, Text: "Command \"" + raw + "\" was received."},
	)
	s.nextLineID += 2
	s.terminalInput = ""
	return true
}

func promptGlyph(mac bool) string {
	if mac {
		return "$ "
	}
	return "> "
}

func terminalTitle(mac bool) string {
	if mac {
		return "Terminal (macOS)"
	}
	return "PowerShell (Windows)"
}

func osButtonLabel(mac bool) string {
	if mac {
		return "[Switch to PowerShell]"
	}
	return "[Switch to Terminal]"
}

func transcriptText(lines []TerminalLine) string {
	texts := make([]string, len(lines))
	for i, line := range lines {
		texts[i] = line.Text
	}
	return strings.Join(texts, "\n")
}
