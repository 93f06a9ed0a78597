package main

type Mode int

const (
	ModeNormal Mode = iota
	ModeConfirm
)

type ConfirmAction int

const (
	ConfirmQuit ConfirmAction = iota
)

type Focus int

const (
	FocusNone Focus = iota
	FocusURL
	FocusTerminal
	FocusIframe
)

type NodeKind int

const (
	KindWebsite NodeKind = iota
	KindTerminal
	KindIframe
)

type ActionType int

const (
	ActionMoveNode ActionType = iota
)

type ExportKind int

const (
	ExportPNG ExportKind = iota
	ExportTXT
)

const (
	toolbarHeight   = 1
	statusHeight    = 1
	urlFieldWidth   = 32
	viewIframeRows  = 10
	defaultWidth    = 80 // used before the first WindowSizeMsg arrives
	defaultHeight   = 24
	defaultURL      = "https://example.com"
	welcomeLineText = "Terminal initialized. Type a command and press Enter."
)
