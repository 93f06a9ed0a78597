package main

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestDrawStringStopsAtEdge(t *testing.T) {
	c := NewCanvas(5, 1)
	used := c.DrawString(3, 0, 10, "hello", styleNone)
	if got := c.PlainLines()[0]; got != "   he" {
		t.Errorf("line = %q, want %q", got, "   he")
	}
	if used != 5 {
		t.Errorf("used = %d, want 5 (clipped cells still count)", used)
	}
}

func TestDrawStringMaxWidth(t *testing.T) {
	c := NewCanvas(10, 1)
	if used := c.DrawString(0, 0, 3, "abcdef", styleNone); used != 3 {
		t.Errorf("used = %d, want 3", used)
	}
	if got := c.PlainLines()[0]; got != "abc" {
		t.Errorf("line = %q", got)
	}
}

func TestDrawStringWideRunes(t *testing.T) {
	c := NewCanvas(6, 1)
	c.DrawString(0, 0, 6, "日本", styleNone)
	if got := c.PlainLines()[0]; got != "日本" {
		t.Errorf("line = %q, want 日本", got)
	}

	c = NewCanvas(6, 1)
	c.DrawString(0, 0, 3, "日本", styleNone)
	if got := c.PlainLines()[0]; got != "日" {
		t.Errorf("line = %q, want 日", got)
	}

	// second column falls outside the canvas
	c = NewCanvas(3, 1)
	c.DrawString(2, 0, 2, "日", styleNone)
	if got := c.PlainLines()[0]; got != "" {
		t.Errorf("line = %q, want blank", got)
	}
}

func TestOverwritingWideRune(t *testing.T) {
	c := NewCanvas(4, 1)
	c.DrawString(0, 0, 4, "日", styleNone)
	c.Set(1, 0, 'x', styleNone)
	if got := c.PlainLines()[0]; got != " x" {
		t.Errorf("line = %q, want %q", got, " x")
	}
}

func TestClip(t *testing.T) {
	c := NewCanvas(5, 2)
	c.SetClip(rect{1, 0, 2, 1})
	c.Fill(c.Bounds(), '#', styleNone)
	c.ResetClip()

	lines := c.PlainLines()
	if lines[0] != " ##" || lines[1] != "" {
		t.Errorf("lines = %q", lines)
	}
}

func TestNegativeCoordinatesIgnored(t *testing.T) {
	c := NewCanvas(3, 3)
	c.Fill(rect{-5, -5, 6, 6}, '#', styleNone)
	c.DrawString(-2, 1, 5, "abcd", styleNone)

	lines := c.PlainLines()
	if lines[0] != "#" || lines[1] != "cd" {
		t.Errorf("lines = %q", lines)
	}
}

func TestDrawBorder(t *testing.T) {
	c := NewCanvas(4, 3)
	c.DrawBorder(rect{0, 0, 4, 3}, lipgloss.NormalBorder(), styleNone)
	want := []string{"┌──┐", "│  │", "└──┘"}
	for i, line := range c.PlainLines() {
		if line != want[i] {
			t.Errorf("row %d = %q, want %q", i, line, want[i])
		}
	}
}

func TestDrawCentered(t *testing.T) {
	c := NewCanvas(10, 1)
	c.DrawCentered(rect{0, 0, 10, 1}, 0, "ab", styleNone)
	if got := c.PlainLines()[0]; got != "    ab" {
		t.Errorf("line = %q", got)
	}

	c = NewCanvas(5, 1)
	c.DrawCentered(rect{0, 0, 5, 1}, 0, "abcdefgh", styleNone)
	if got := c.PlainLines()[0]; got != "abcd…" {
		t.Errorf("line = %q", got)
	}
}

func TestLinesKeepsText(t *testing.T) {
	c := NewCanvas(12, 1)
	c.DrawString(0, 0, 5, "plain", styleNone)
	c.DrawString(6, 0, 6, "styled", styleButton)
	line := c.Lines()[0]
	if !strings.Contains(line, "plain") || !strings.Contains(line, "styled") {
		t.Errorf("styled line lost text: %q", line)
	}
}

func TestWrapText(t *testing.T) {
	if got := wrapText("abc", 0); got != nil {
		t.Errorf("zero width = %q", got)
	}
	got := wrapText("one two\nthree", 20)
	if len(got) != 2 || got[0] != "one two" || got[1] != "three" {
		t.Errorf("wrapText = %q", got)
	}
	for _, line := range wrapText("aaaa bbbb cccc", 5) {
		if len(line) > 5 {
			t.Errorf("line %q wider than 5", line)
		}
	}
}
