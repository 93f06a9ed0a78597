package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

type cell struct {
	ch    rune
	style styleID
	wide  bool // second column of a double-width rune
}

// Canvas is a fixed grid of styled cells. Everything on screen is painted
// into it in back-to-front order, then flattened row by row.
type Canvas struct {
	width  int
	height int
	cells  [][]cell
	clip   rect
}

func NewCanvas(width, height int) *Canvas {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	cells := make([][]cell, height)
	for y := range cells {
		cells[y] = make([]cell, width)
		for x := range cells[y] {
			cells[y][x] = cell{ch: ' '}
		}
	}
	c := &Canvas{width: width, height: height, cells: cells}
	c.ResetClip()
	return c
}

func (c *Canvas) Bounds() rect { return rect{0, 0, c.width, c.height} }

// SetClip limits painting to r until ResetClip is called.
func (c *Canvas) SetClip(r rect) { c.clip = r.intersect(c.Bounds()) }

func (c *Canvas) ResetClip() { c.clip = c.Bounds() }

func (c *Canvas) Set(x, y int, ch rune, style styleID) {
	if !c.clip.contains(point{x, y}) {
		return
	}
	row := c.cells[y]
	if row[x].wide && x > 0 {
		row[x-1] = cell{ch: ' ', style: row[x-1].style}
	}
	if x+1 < c.width && row[x+1].wide {
		row[x+1] = cell{ch: ' ', style: row[x+1].style}
	}
	row[x] = cell{ch: ch, style: style}
}

func (c *Canvas) Fill(r rect, ch rune, style styleID) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			c.Set(x, y, ch, style)
		}
	}
}

// DrawString paints text starting at (x, y), stopping before maxWidth cells.
// It returns the number of cells used.
func (c *Canvas) DrawString(x, y, maxWidth int, text string, style styleID) int {
	used := 0
	for _, ch := range text {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if used+w > maxWidth {
			break
		}
		switch {
		case w == 1:
			c.Set(x+used, y, ch, style)
		case c.clip.contains(point{x + used + 1, y}):
			c.Set(x+used+1, y, ' ', style)
			c.Set(x+used, y, ch, style)
			if c.clip.contains(point{x + used, y}) {
				c.cells[y][x+used+1].wide = true
			}
		default:
			c.Set(x+used, y, ' ', style)
		}
		used += w
	}
	return used
}

// DrawCentered paints text centred horizontally inside r on row y.
func (c *Canvas) DrawCentered(r rect, y int, text string, style styleID) {
	text = runewidth.Truncate(text, r.W, "…")
	pad := (r.W - runewidth.StringWidth(text)) / 2
	c.DrawString(r.X+pad, y, r.W-pad, text, style)
}

func (c *Canvas) DrawBorder(r rect, border lipgloss.Border, style styleID) {
	if r.W < 2 || r.H < 2 {
		return
	}
	top, bottom := firstRune(border.Top), firstRune(border.Bottom)
	left, right := firstRune(border.Left), firstRune(border.Right)
	x1, y1 := r.X+r.W-1, r.Y+r.H-1
	for x := r.X + 1; x < x1; x++ {
		c.Set(x, r.Y, top, style)
		c.Set(x, y1, bottom, style)
	}
	for y := r.Y + 1; y < y1; y++ {
		c.Set(r.X, y, left, style)
		c.Set(x1, y, right, style)
	}
	c.Set(r.X, r.Y, firstRune(border.TopLeft), style)
	c.Set(x1, r.Y, firstRune(border.TopRight), style)
	c.Set(r.X, y1, firstRune(border.BottomLeft), style)
	c.Set(x1, y1, firstRune(border.BottomRight), style)
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return ' '
}

// Lines flattens the grid into styled rows, one lipgloss render per run of
// equally styled cells.
func (c *Canvas) Lines() []string {
	lines := make([]string, c.height)
	for y, row := range c.cells {
		var line, run strings.Builder
		current := styleNone
		for _, cl := range row {
			if cl.wide {
				continue
			}
			if cl.style != current && run.Len() > 0 {
				line.WriteString(current.render(run.String()))
				run.Reset()
			}
			current = cl.style
			run.WriteRune(cl.ch)
		}
		if run.Len() > 0 {
			line.WriteString(current.render(run.String()))
		}
		lines[y] = line.String()
	}
	return lines
}

// PlainLines returns the grid without styling, trailing spaces trimmed.
func (c *Canvas) PlainLines() []string {
	lines := make([]string, c.height)
	for y, row := range c.cells {
		var line strings.Builder
		for _, cl := range row {
			if !cl.wide {
				line.WriteRune(cl.ch)
			}
		}
		lines[y] = strings.TrimRight(line.String(), " ")
	}
	return lines
}

// wrapText hard-wraps text to width cells, keeping explicit newlines.
func wrapText(text string, width int) []string {
	if width < 1 {
		return nil
	}
	var out []string
	for _, line := range strings.Split(text, "\n") {
		out = append(out, strings.Split(runewidth.Wrap(line, width), "\n")...)
	}
	return out
}
