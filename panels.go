package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// renderScreen paints the whole UI: toolbar, the active renderer, status line.
func (m model) renderScreen() *Canvas {
	width, height := m.screenSize()
	c := NewCanvas(width, height)
	m.drawToolbar(c)
	if m.store.EditMode() {
		m.drawEditCanvas(c)
	} else {
		m.drawFixedLayout(c)
	}
	m.drawStatusLine(c)
	return c
}

func (m model) drawToolbar(c *Canvas) {
	edit := m.store.EditMode()
	tb := toolbarLayout(c.width, edit)
	c.Fill(rect{0, 0, c.width, toolbarHeight}, ' ', styleToolbar)
	c.DrawString(1, 0, tb.urlLabel.X-2, editorTitle, styleToolbarTitle)
	c.DrawString(tb.urlLabel.X, 0, runewidth.StringWidth(urlLabel), urlLabel, styleToolbar)
	m.drawField(c, tb.urlField, m.urlInput, m.focus == FocusURL, styleField, stylePlaceholder)
	c.DrawString(tb.modeButton.X, 0, tb.modeButton.W, modeButtonLabel(edit), styleButton)
}

// drawEditCanvas is the node renderer: every panel at its stored position,
// painted in stacking order and clipped to the canvas.
func (m model) drawEditCanvas(c *Canvas) {
	content := contentRect(c.width, c.height)
	c.Fill(content, ' ', styleCanvas)
	c.SetClip(content)
	dragged, _ := m.drag.Dragging()
	for _, n := range m.store.NodesByZ() {
		parts := panelLayout(n.Kind, nodeFrame(n), m.store.Mac(), true)
		m.drawPanel(c, n.Kind, parts, true, n.ID == dragged)
	}
	hint := rect{content.X, content.Y, content.W, 1}
	c.Fill(hint, ' ', styleHint)
	c.DrawString(hint.X+1, hint.Y, hint.W-2, editorHint, styleHint)
	c.ResetClip()
}

// drawFixedLayout is the view-mode renderer. It reads node kinds only.
func (m model) drawFixedLayout(c *Canvas) {
	content := contentRect(c.width, c.height)
	c.Fill(content, ' ', styleCanvas)
	c.SetClip(content)
	heading := rect{content.X, content.Y, content.W, 1}
	c.Fill(heading, ' ', styleHeading)
	c.DrawString(heading.X+1, heading.Y, heading.W-2, viewerHeading, styleHeading)
	frames := viewFrames(c.width, c.height)
	for _, n := range m.store.Nodes() {
		parts := panelLayout(n.Kind, frames[n.Kind], m.store.Mac(), false)
		m.drawPanel(c, n.Kind, parts, false, false)
	}
	c.ResetClip()
}

func (m model) drawPanel(c *Canvas, kind NodeKind, parts panelParts, edit, dragging bool) {
	switch kind {
	case KindWebsite:
		m.drawWebsitePanel(c, parts, edit, dragging)
	case KindTerminal:
		m.drawTerminalPanel(c, parts, dragging)
	case KindIframe:
		m.drawIframePanel(c, parts, edit, dragging)
	}
}

func panelBorder(dragging bool, normal styleID) (lipgloss.Border, styleID) {
	if dragging {
		return lipgloss.ThickBorder(), stylePanelDragging
	}
	return lipgloss.NormalBorder(), normal
}

func (m model) drawWebsitePanel(c *Canvas, p panelParts, edit, dragging bool) {
	c.Fill(p.frame, ' ', stylePanel)
	border, bs := panelBorder(dragging, stylePanelBorder)
	c.DrawBorder(p.frame, border, bs)

	c.Fill(p.header, ' ', styleHeader)
	c.DrawString(p.header.X+1, p.header.Y, p.header.W-8, "Website", styleHeader)
	dots := []styleID{styleDotRed, styleDotYellow, styleDotGreen}
	for i, s := range dots {
		c.Set(p.header.X+p.header.W-7+2*i, p.header.Y, '●', s)
	}

	lines := wrapText("Website would load here: "+m.store.WebsiteURL(), p.body.W-4)
	styles := make([]styleID, len(lines))
	for i := range styles {
		styles[i] = stylePanel
	}
	if edit {
		extra := wrapText("In production: iframe or embedded web view", p.body.W-4)
		lines = append(lines, extra...)
		for range extra {
			styles = append(styles, styleMuted)
		}
	}
	y := p.body.Y + max(0, (p.body.H-len(lines))/2)
	for i, line := range lines {
		if y+i >= p.body.Y+p.body.H {
			break
		}
		c.DrawCentered(p.body, y+i, line, styles[i])
	}
}

func (m model) drawTerminalPanel(c *Canvas, p panelParts, dragging bool) {
	mac := m.store.Mac()
	c.Fill(p.frame, ' ', styleTerminal)
	border, bs := panelBorder(dragging, styleTerminalBorder)
	c.DrawBorder(p.frame, border, bs)

	c.Fill(p.header, ' ', styleTerminalHeader)
	c.DrawString(p.header.X+1, p.header.Y, p.header.W-2, terminalTitle(mac), styleTerminalHeader)
	if p.button.X > p.frame.X {
		c.DrawString(p.button.X, p.button.Y, p.button.W, osButtonLabel(mac), styleButton)
	}

	type row struct {
		text  string
		style styleID
	}
	var rows []row
	for _, line := range m.store.Transcript() {
		style := styleTerminalAck
		if line.IsCommand {
			style = styleTerminalCommand
		}
		for _, wrapped := range wrapText(line.Text, p.body.W-2) {
			rows = append(rows, row{wrapped, style})
		}
	}
	if p.body.H > 0 && len(rows) > p.body.H {
		rows = rows[len(rows)-p.body.H:]
	}
	for i, r := range rows {
		c.DrawString(p.body.X+1, p.body.Y+i, p.body.W-2, r.text, r.style)
	}

	glyph := strings.TrimSpace(promptGlyph(mac))
	c.DrawString(p.input.X-2, p.input.Y, 1, glyph, styleTerminalAck)
	m.drawField(c, p.input, m.terminalInput, m.focus == FocusTerminal, styleTerminalCommand, styleTerminalBorder)
}

func (m model) drawIframePanel(c *Canvas, p panelParts, edit, dragging bool) {
	c.Fill(p.frame, ' ', stylePanel)
	border, bs := panelBorder(dragging, stylePanelBorder)
	c.DrawBorder(p.frame, border, bs)

	c.Fill(p.header, ' ', styleHeader)
	c.DrawString(p.header.X+1, p.header.Y, p.header.W-2, iframeTitle, styleHeader)
	if edit {
		m.drawField(c, p.input, m.iframeInput, m.focus == FocusIframe, styleField, stylePlaceholder)
	}

	code := m.store.IframeCode()
	if code == "" {
		msg := "No iframe code specified"
		if edit {
			msg = "Enter iframe code above"
		}
		c.DrawCentered(p.body, p.body.Y+p.body.H/2, msg, styleMuted)
		return
	}
	lines := wrapText(renderMarkup(code, m.config.TrustedMarkup), p.body.W-2)
	for i, line := range lines {
		if i >= p.body.H {
			break
		}
		c.DrawString(p.body.X+1, p.body.Y+i, p.body.W-2, line, stylePanel)
	}
}

// drawField paints a single-line text input, scrolled so the cursor stays
// visible.
func (m model) drawField(c *Canvas, r rect, in textinput.Model, focused bool, text, placeholder styleID) {
	if r.W <= 0 {
		return
	}
	if focused {
		text = styleFieldFocused
	}
	c.Fill(r, ' ', text)
	value := []rune(in.Value())
	pos := min(in.Position(), len(value))
	if len(value) == 0 {
		c.DrawString(r.X, r.Y, r.W, in.Placeholder, placeholder)
		if focused {
			c.Set(r.X, r.Y, ' ', styleCursor)
		}
		return
	}
	start := 0
	for start < pos && runewidth.StringWidth(string(value[start:pos])) >= r.W {
		start++
	}
	c.DrawString(r.X, r.Y, r.W, string(value[start:]), text)
	if focused {
		cursor := " "
		if pos < len(value) {
			cursor = string(value[pos])
		}
		c.DrawString(r.X+runewidth.StringWidth(string(value[start:pos])), r.Y, 2, cursor, styleCursor)
	}
}
