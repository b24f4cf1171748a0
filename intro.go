package main

// Handles drawing the splash screen (introduction) that appears when the
// editor starts with no file.

import (
	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"
)

// drawIntro draws an informational box with version and the key bindings.
func (e *Editor) drawIntro() {
	w, h := termbox.Size()

	// Define specific attributes for the intro screen elements.
	const (
		cTitle   = termbox.Attribute(254) | termbox.AttrBold
		cText    = termbox.Attribute(248)
		cVersion = termbox.Attribute(239)
		cKey     = termbox.Attribute(254)
	)

	// List of lines to display in the intro box.
	lines := []struct {
		text string
		fg   termbox.Attribute
	}{
		{"ted", cTitle},
		{Version, cVersion},
		{"", cText},
		{"A small terminal text editor", cText},
		{"", cText},
		{"Ctrl-S  save", cKey},
		{"Ctrl-L  load", cKey},
		{"Ctrl-F  find", cKey},
		{"Ctrl-D  logs", cKey},
		{"Ctrl-C  quit", cKey},
	}

	// Calculate the maximum line width to center the box.
	maxWidth := 0
	for _, line := range lines {
		if lw := runewidth.StringWidth(line.text); lw > maxWidth {
			maxWidth = lw
		}
	}

	startX := (w - maxWidth - 2) / 2
	startY := (h - len(lines)) / 2

	_, bg := GetThemeColor(ColorDefault)
	for i, line := range lines {
		// Center each line individually within the box.
		lineX := startX + (maxWidth-runewidth.StringWidth(line.text))/2
		for j, char := range line.text {
			termbox.SetCell(lineX+j, startY+i, char, line.fg, bg)
		}
	}
}
