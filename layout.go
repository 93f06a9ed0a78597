package main

import "github.com/mattn/go-runewidth"

const (
	editorTitle   = "WYSIWYG Node Editor"
	urlLabel      = "Website URL: "
	viewerHeading = "Terminal & Website Viewer"
	editorHint    = "Editor Mode: Drag components to reposition them"
	iframeTitle   = "Iframe Content"
)

// panelParts are the screen regions of one rendered panel.
type panelParts struct {
	frame  rect
	header rect
	button rect
	input  rect
	body   rect
}

type toolbarParts struct {
	urlLabel   point
	urlField   rect
	modeButton rect
}

func modeButtonLabel(edit bool) string {
	if edit {
		return "[ View Mode ]"
	}
	return "[ Edit Mode ]"
}

func contentRect(width, height int) rect {
	return rect{0, toolbarHeight, width, height - toolbarHeight - statusHeight}
}

func toolbarLayout(width int, edit bool) toolbarParts {
	buttonW := runewidth.StringWidth(modeButtonLabel(edit))
	buttonX := width - buttonW - 1
	titleEnd := 1 + runewidth.StringWidth(editorTitle) + 2
	labelW := runewidth.StringWidth(urlLabel)
	fieldW := min(urlFieldWidth, buttonX-2-titleEnd-labelW)
	if fieldW < 4 {
		fieldW = 4
	}
	fieldX := buttonX - 2 - fieldW
	return toolbarParts{
		urlLabel:   point{fieldX - labelW, 0},
		urlField:   rect{fieldX, 0, fieldW, 1},
		modeButton: rect{buttonX, 0, buttonW, 1},
	}
}

// nodeFrame places a node on screen relative to the editor canvas origin.
func nodeFrame(n Node) rect {
	return rect{n.Left, toolbarHeight + n.Top, n.Width, n.Height}
}

// viewFrames is the fixed view-mode arrangement: website and terminal side
// by side, iframe strip underneath. Node geometry plays no part in it.
func viewFrames(width, height int) map[NodeKind]rect {
	content := contentRect(width, height)
	top := content.Y + 1
	avail := content.H - 1
	iframeH := min(viewIframeRows, avail/3)
	colH := avail - iframeH
	inner := content.W - 2
	websiteW := (inner - 1) * 2 / 3
	return map[NodeKind]rect{
		KindWebsite:  {1, top, websiteW, colH},
		KindTerminal: {1 + websiteW + 1, top, inner - websiteW - 1, colH},
		KindIframe:   {1, top + colH, inner, iframeH},
	}
}

func panelLayout(kind NodeKind, frame rect, mac, edit bool) panelParts {
	parts := panelParts{
		frame:  frame,
		header: rect{frame.X + 1, frame.Y + 1, frame.W - 2, 1},
		body:   rect{frame.X + 1, frame.Y + 2, frame.W - 2, frame.H - 3},
	}
	switch kind {
	case KindTerminal:
		bw := runewidth.StringWidth(osButtonLabel(mac))
		parts.button = rect{frame.X + frame.W - 2 - bw, frame.Y, bw, 1}
		parts.input = rect{frame.X + 3, frame.Y + frame.H - 2, frame.W - 4, 1}
		parts.body.H = frame.H - 4
	case KindIframe:
		if edit {
			x := frame.X + 1 + runewidth.StringWidth(iframeTitle) + 2
			parts.input = rect{x, frame.Y + 1, frame.X + frame.W - 2 - x, 1}
		}
	}
	return parts
}

type zoneKind int

const (
	zoneModeButton zoneKind = iota
	zoneURLField
	zoneHint
	zoneOSButton
	zoneTerminalInput
	zoneIframeInput
	zoneNodeHeader
	zoneNodeBody
)

type zone struct {
	kind   zoneKind
	nodeID string
	r      rect
}

// zones lists the clickable regions, topmost first.
func (m model) zones() []zone {
	width, height := m.screenSize()
	edit := m.store.EditMode()
	mac := m.store.Mac()
	tb := toolbarLayout(width, edit)
	zs := []zone{
		{kind: zoneModeButton, r: tb.modeButton},
		{kind: zoneURLField, r: tb.urlField},
	}
	content := contentRect(width, height)
	if edit {
		zs = append(zs, zone{kind: zoneHint, r: rect{content.X, content.Y, content.W, 1}})
		nodes := m.store.NodesByZ()
		for i := len(nodes) - 1; i >= 0; i-- {
			n := nodes[i]
			parts := panelLayout(n.Kind, nodeFrame(n), mac, true)
			zs = append(zs, nodeZones(n, parts, content, true)...)
		}
		return zs
	}
	frames := viewFrames(width, height)
	for _, n := range m.store.Nodes() {
		parts := panelLayout(n.Kind, frames[n.Kind], mac, false)
		zs = append(zs, nodeZones(n, parts, content, false)...)
	}
	return zs
}

func nodeZones(n Node, parts panelParts, clip rect, edit bool) []zone {
	var zs []zone
	add := func(kind zoneKind, r rect) {
		if r = r.intersect(clip); r.W > 0 {
			zs = append(zs, zone{kind: kind, nodeID: n.ID, r: r})
		}
	}
	switch n.Kind {
	case KindTerminal:
		add(zoneOSButton, parts.button)
		add(zoneTerminalInput, parts.input)
	case KindIframe:
		if edit {
			add(zoneIframeInput, parts.input)
		}
	}
	if edit {
		add(zoneNodeHeader, rect{parts.frame.X, parts.frame.Y, parts.frame.W, 2})
	}
	add(zoneNodeBody, parts.frame)
	return zs
}

func (m model) hitTest(p point) (zone, bool) {
	for _, z := range m.zones() {
		if z.r.contains(p) {
			return z, true
		}
	}
	return zone{}, false
}
