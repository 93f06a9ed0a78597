package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestViewFrames(t *testing.T) {
	frames := viewFrames(80, 24)
	want := map[NodeKind]rect{
		KindWebsite:  {1, 2, 51, 14},
		KindTerminal: {53, 2, 26, 14},
		KindIframe:   {1, 16, 78, 7},
	}
	for kind, r := range want {
		if frames[kind] != r {
			t.Errorf("kind %d frame = %+v, want %+v", kind, frames[kind], r)
		}
	}

	frames = viewFrames(120, 40)
	if frames[KindIframe].H != viewIframeRows {
		t.Errorf("iframe strip height = %d, want %d", frames[KindIframe].H, viewIframeRows)
	}
}

func TestNodeFrameOffsetsToolbar(t *testing.T) {
	n := Node{Left: 4, Top: 6, Width: 10, Height: 5}
	if got := nodeFrame(n); got != (rect{4, 7, 10, 5}) {
		t.Errorf("nodeFrame = %+v", got)
	}
}

func TestPanelLayoutTerminal(t *testing.T) {
	p := panelLayout(KindTerminal, rect{54, 3, 32, 14}, true, true)
	if p.button != (rect{62, 3, 22, 1}) {
		t.Errorf("button = %+v", p.button)
	}
	if p.input != (rect{57, 15, 28, 1}) {
		t.Errorf("input = %+v", p.input)
	}
	if p.body != (rect{55, 5, 30, 10}) {
		t.Errorf("body = %+v", p.body)
	}
}

func TestPanelLayoutIframeInputOnlyInEdit(t *testing.T) {
	frame := rect{2, 18, 84, 9}
	if p := panelLayout(KindIframe, frame, true, true); p.input != (rect{19, 19, 65, 1}) {
		t.Errorf("edit input = %+v", p.input)
	}
	if p := panelLayout(KindIframe, frame, true, false); p.input != (rect{}) {
		t.Errorf("view input = %+v, want none", p.input)
	}
}

func TestHitTestStacking(t *testing.T) {
	m := sizedModel(nil)
	// terminal stacks above the website; move it over the website header
	m.store.SetNodePosition("terminal", 10, 2)

	z, ok := m.hitTest(point{20, 4})
	if !ok || z.kind != zoneNodeHeader || z.nodeID != "terminal" {
		t.Errorf("hit = %+v, %v; want terminal header", z, ok)
	}
	z, ok = m.hitTest(point{5, 4})
	if !ok || z.kind != zoneNodeHeader || z.nodeID != "website" {
		t.Errorf("hit = %+v, %v; want website header", z, ok)
	}

	z, ok = m.hitTest(point{5, 1})
	if !ok || z.kind != zoneHint {
		t.Errorf("hit = %+v, want hint row", z)
	}

	if _, ok := m.hitTest(point{110, 30}); ok {
		t.Error("empty canvas should not hit anything")
	}
}

func TestHitTestClipsOffscreenNodes(t *testing.T) {
	m := sizedModel(nil)
	m.store.SetNodePosition("website", 0, -5)

	// the frame reaches into the toolbar row but only counts inside the canvas
	if z, ok := m.hitTest(point{5, 0}); ok {
		t.Errorf("hit = %+v in the toolbar title", z)
	}
	z, ok := m.hitTest(point{5, 2})
	if !ok || z.kind != zoneNodeBody || z.nodeID != "website" {
		t.Errorf("hit = %+v, want website body", z)
	}
}

func TestEditScreenContent(t *testing.T) {
	m := sizedModel(nil)
	screen := screenText(m)
	for _, want := range []string{
		editorTitle,
		urlLabel,
		"[ View Mode ]",
		editorHint,
		"Website",
		"https://example.com",
		"In production: iframe or embedded web view",
		"Terminal (macOS)",
		"[Switch to PowerShell]",
		welcomeLineText[:20],
		"Type command here...",
		iframeTitle,
		"Enter iframe code above",
		"Mode: EDIT",
	} {
		if !strings.Contains(screen, want) {
			t.Errorf("edit screen missing %q", want)
		}
	}
	if strings.Contains(screen, viewerHeading) {
		t.Error("edit screen shows the view heading")
	}
}

func TestViewScreenContent(t *testing.T) {
	m := sizedModel(&Config{Mac: false, EditMode: false, WebsiteURL: "https://go.dev"})
	screen := screenText(m)
	for _, want := range []string{
		viewerHeading,
		"[ Edit Mode ]",
		"https://go.dev",
		"PowerShell (Windows)",
		"[Switch to Terminal]",
		"No iframe code specified",
		"Mode: VIEW",
	} {
		if !strings.Contains(screen, want) {
			t.Errorf("view screen missing %q", want)
		}
	}
	for _, unwanted := range []string{editorHint, "In production", "<iframe src="} {
		if strings.Contains(screen, unwanted) {
			t.Errorf("view screen shows %q", unwanted)
		}
	}
}

func TestViewModeLeavesNodesAlone(t *testing.T) {
	m := sizedModel(nil)
	m.store.SetNodePosition("website", 30, 11)
	m.store.SetNodePosition("iframe", -4, 40)
	before := m.store.Nodes()

	m = update(t, m, runes("e"))
	_ = m.View()
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	_ = m.View()
	m = update(t, m, runes("e"))

	after := m.store.Nodes()
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("%s changed: %+v -> %+v", before[i].ID, before[i], after[i])
		}
	}
}

func TestDraggedPanelUsesThickBorder(t *testing.T) {
	m := sizedModel(nil)
	m = update(t, m, press(10, 3))
	row := m.renderScreen().PlainLines()[3]
	if !strings.Contains(row, "┏") {
		t.Errorf("dragged panel border = %q", row)
	}
	m = update(t, m, release(10, 3))
	row = m.renderScreen().PlainLines()[3]
	if strings.Contains(row, "┏") || !strings.Contains(row, "┌") {
		t.Errorf("idle panel border = %q", row)
	}
}

func TestTranscriptShowsNewestLines(t *testing.T) {
	m := sizedModel(nil)
	for i := 0; i < 10; i++ {
		m.store.SetTerminalInput("cmd" + string(rune('a'+i)))
		m.store.SubmitTerminal()
	}
	screen := screenText(m)
	if !strings.Contains(screen, `Command "cmdj" was received.`) {
		t.Error("newest line not visible")
	}
	if strings.Contains(screen, "$ cmda") {
		t.Error("oldest command should have scrolled off")
	}
}
