package main

// Color palette and theme used by the editor. Maps semantic color names (like
// ColorSourceKeyword) to specific terminal attributes (foreground and
// background).

import "github.com/nsf/termbox-go"

// To see available colors execute `ted -colors`.

// Color represents a pair of foreground and background terminal attributes.
type Color struct {
	Background termbox.Attribute
	Foreground termbox.Attribute
}

// ColorName is an enum-like type for semantic color identifiers.
type ColorName int

const (
	ColorDefault ColorName = iota // Default terminal colors.

	// Highlight tag colors.
	ColorSourceIdentifier
	ColorSourceKeyword
	ColorSourceNumber
	ColorSourceBracket
	ColorSourceString
	ColorSourceComment
	ColorSearchMatch // Highlighting for found search phrases.

	ColorStatusBar        // Main status bar at the bottom.
	ColorEditMode         // Status bar indicator while editing.
	ColorPromptMode       // Status bar indicator during save/load/find prompts.
	ColorConfirmMode      // Status bar indicator during confirmations.
	ColorHighlightedLine  // Background for the line where the cursor is.
	ColorGutterLineNumber // Line numbers in the left gutter.
	ColorEmptyLineMarker  // The '~' marker for lines beyond EOF.
	ColorLogWindow        // Overlay window for the log tail.
	ColorLogTitle         // Header for the log window.
)

// Theme maps each ColorName to its actual visual attributes.
var Theme = map[ColorName]Color{
	ColorDefault: {Background: termbox.ColorDefault, Foreground: termbox.Attribute(254)},

	// Source code
	ColorSourceIdentifier: {Background: termbox.ColorDefault, Foreground: termbox.Attribute(80)},
	ColorSourceKeyword:    {Background: termbox.ColorDefault, Foreground: termbox.Attribute(33)},
	ColorSourceNumber:     {Background: termbox.ColorDefault, Foreground: termbox.Attribute(221)},
	ColorSourceBracket:    {Background: termbox.ColorDefault, Foreground: termbox.Attribute(172)},
	ColorSourceString:     {Background: termbox.ColorDefault, Foreground: termbox.Attribute(167)},
	ColorSourceComment:    {Background: termbox.ColorDefault, Foreground: termbox.Attribute(65)},
	ColorSearchMatch:      {Background: termbox.Attribute(166), Foreground: termbox.Attribute(1)},

	// UI colors
	ColorStatusBar:        {Background: termbox.Attribute(250), Foreground: termbox.Attribute(1)},
	ColorEditMode:         {Background: termbox.Attribute(250), Foreground: termbox.Attribute(1)},
	ColorPromptMode:       {Background: termbox.Attribute(58), Foreground: termbox.Attribute(255)},
	ColorConfirmMode:      {Background: termbox.Attribute(131), Foreground: termbox.Attribute(255)},
	ColorHighlightedLine:  {Background: termbox.Attribute(235), Foreground: termbox.ColorDefault},
	ColorGutterLineNumber: {Background: termbox.ColorDefault, Foreground: termbox.Attribute(244)},
	ColorEmptyLineMarker:  {Background: termbox.ColorDefault, Foreground: termbox.Attribute(244)},
	ColorLogWindow:        {Background: termbox.Attribute(19), Foreground: termbox.Attribute(16)},
	ColorLogTitle:         {Background: termbox.Attribute(19), Foreground: termbox.Attribute(215)},
}

// GetThemeColor returns the foreground and background attributes for a given semantic name.
func GetThemeColor(name ColorName) (termbox.Attribute, termbox.Attribute) {
	if c, ok := Theme[name]; ok {
		return c.Foreground, c.Background
	}
	// Fallback to default if name is not found.
	return termbox.ColorDefault, termbox.ColorDefault
}
