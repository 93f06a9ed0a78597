package main

import "github.com/charmbracelet/lipgloss"

type styleID int

const (
	styleNone styleID = iota
	styleToolbar
	styleToolbarTitle
	styleButton
	styleHint
	styleCanvas
	stylePanel
	stylePanelBorder
	stylePanelDragging
	styleHeader
	styleTerminal
	styleTerminalBorder
	styleTerminalHeader
	styleTerminalCommand
	styleTerminalAck
	styleField
	styleFieldFocused
	stylePlaceholder
	styleCursor
	styleMuted
	styleDotRed
	styleDotYellow
	styleDotGreen
	styleHeading
	styleStatus
	styleError
	styleSuccess
	numStyles
)

var palette = [numStyles]lipgloss.Style{
	styleNone:            lipgloss.NewStyle(),
	styleToolbar:         lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("255")),
	styleToolbarTitle:    lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("255")).Bold(true),
	styleButton:          lipgloss.NewStyle().Background(lipgloss.Color("25")).Foreground(lipgloss.Color("255")).Bold(true),
	styleHint:            lipgloss.NewStyle().Background(lipgloss.Color("252")).Foreground(lipgloss.Color("240")),
	styleCanvas:          lipgloss.NewStyle().Background(lipgloss.Color("254")),
	stylePanel:           lipgloss.NewStyle().Background(lipgloss.Color("255")).Foreground(lipgloss.Color("235")),
	stylePanelBorder:     lipgloss.NewStyle().Background(lipgloss.Color("255")).Foreground(lipgloss.Color("247")),
	stylePanelDragging:   lipgloss.NewStyle().Background(lipgloss.Color("255")).Foreground(lipgloss.Color("25")).Bold(true),
	styleHeader:          lipgloss.NewStyle().Background(lipgloss.Color("252")).Foreground(lipgloss.Color("235")).Bold(true),
	styleTerminal:        lipgloss.NewStyle().Background(lipgloss.Color("16")).Foreground(lipgloss.Color("83")),
	styleTerminalBorder:  lipgloss.NewStyle().Background(lipgloss.Color("16")).Foreground(lipgloss.Color("242")),
	styleTerminalHeader:  lipgloss.NewStyle().Background(lipgloss.Color("237")).Foreground(lipgloss.Color("255")).Bold(true),
	styleTerminalCommand: lipgloss.NewStyle().Background(lipgloss.Color("16")).Foreground(lipgloss.Color("255")),
	styleTerminalAck:     lipgloss.NewStyle().Background(lipgloss.Color("16")).Foreground(lipgloss.Color("83")),
	styleField:           lipgloss.NewStyle().Background(lipgloss.Color("239")).Foreground(lipgloss.Color("255")),
	styleFieldFocused:    lipgloss.NewStyle().Background(lipgloss.Color("240")).Foreground(lipgloss.Color("255")).Underline(true),
	stylePlaceholder:     lipgloss.NewStyle().Background(lipgloss.Color("239")).Foreground(lipgloss.Color("245")),
	styleCursor:          lipgloss.NewStyle().Reverse(true),
	styleMuted:           lipgloss.NewStyle().Background(lipgloss.Color("255")).Foreground(lipgloss.Color("244")),
	styleDotRed:          lipgloss.NewStyle().Background(lipgloss.Color("252")).Foreground(lipgloss.Color("196")),
	styleDotYellow:       lipgloss.NewStyle().Background(lipgloss.Color("252")).Foreground(lipgloss.Color("220")),
	styleDotGreen:        lipgloss.NewStyle().Background(lipgloss.Color("252")).Foreground(lipgloss.Color("40")),
	styleHeading:         lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("255")).Bold(true),
	styleStatus:          lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	styleError:           lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	styleSuccess:         lipgloss.NewStyle().Foreground(lipgloss.Color("40")),
}

func (s styleID) render(text string) string {
	if s == styleNone {
		return text
	}
	return palette[s].Render(text)
}
