package main

import (
	"fmt"
	"image/color"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/mattn/go-runewidth"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

const (
	charWidth  = 8.0
	charHeight = 16.0
	fontSize   = 12.0
)

type exportDoneMsg struct {
	path string
	err  error
}

func exportFilename(kind ExportKind, now time.Time) string {
	ext := ".png"
	if kind == ExportTXT {
		ext = ".txt"
	}
	return "nodedit-" + now.Format("20060102-150405") + ext
}

// exportCmd snapshots the screen as it is now and writes it out in the
// background.
func (m model) exportCmd(kind ExportKind) tea.Cmd {
	lines := m.renderScreen().PlainLines()
	config := m.config
	return func() tea.Msg {
		path, err := config.GetExportPath(exportFilename(kind, time.Now()))
		if err != nil {
			return exportDoneMsg{err: err}
		}
		switch kind {
		case ExportTXT:
			err = exportVisualTXT(path, lines)
		default:
			err = exportPNG(path, lines)
		}
		return exportDoneMsg{path: path, err: err}
	}
}

func exportVisualTXT(filename string, lines []string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create %s: %w", filename, err)
	}
	defer file.Close()

	for _, line := range lines {
		if _, err := fmt.Fprintln(file, line); err != nil {
			return fmt.Errorf("write %s: %w", filename, err)
		}
	}
	return nil
}

func exportPNG(filename string, lines []string) error {
	cols := 0
	for _, line := range lines {
		cols = max(cols, runewidth.StringWidth(line))
	}
	if cols == 0 {
		return fmt.Errorf("nothing to export")
	}

	padding := 2
	imageWidth := int(float64(cols+2*padding) * charWidth)
	imageHeight := int(float64(len(lines)+2*padding) * charHeight)

	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetColor(color.White)
	dc.Clear()
	dc.SetColor(color.Black)

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %w", err)
	}
	dc.SetFontFace(truetype.NewFace(ttfFont, &truetype.Options{
		Size:    fontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	}))

	for row, line := range lines {
		y := float64(row+padding+1) * charHeight
		col := 0
		for _, r := range line {
			w := runewidth.RuneWidth(r)
			if w == 0 {
				continue
			}
			if r != ' ' {
				dc.DrawString(string(r), float64(col+padding)*charWidth, y)
			}
			col += w
		}
	}

	if err := dc.SavePNG(filename); err != nil {
		return fmt.Errorf("save %s: %w", filename, err)
	}
	return nil
}
