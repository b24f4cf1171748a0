package main

// The text buffer: an ordered, never-empty list of lines, each carrying the
// highlight tags for its bytes. Every mutation re-runs the tokenizer over the
// whole buffer so multi-line constructs (nested block comments, unterminated
// strings) stay correct.

import (
	"bytes"
	"fmt"
	"os"
)

// Line is one document row: its content bytes plus one highlight tag per byte.
type Line struct {
	content []byte
	tags    []HighlightTag
}

func newLine(content []byte) *Line {
	return &Line{content: content}
}

func blankLine() *Line {
	return &Line{}
}

func (l *Line) insert(index int, s []byte) {
	l.content = append(l.content[:index], append(append([]byte(nil), s...), l.content[index:]...)...)
}

func (l *Line) deleteAt(index int) {
	l.content = append(l.content[:index], l.content[index+1:]...)
}

func (l *Line) appendLine(other *Line) {
	l.content = append(l.content, other.content...)
}

// splitAt cuts the line at index; the tail becomes a new line.
func (l *Line) splitAt(index int) *Line {
	rest := append([]byte(nil), l.content[index:]...)
	l.content = l.content[:index]
	return newLine(rest)
}

func (l *Line) findPhrase(phrase []byte, start int) (int, bool) {
	if start > len(l.content) {
		return 0, false
	}
	idx := bytes.Index(l.content[start:], phrase)
	if idx < 0 {
		return 0, false
	}
	return start + idx, true
}

// Buffer owns the document lines and the active highlighting strategy.
type Buffer struct {
	lines  []*Line
	syntax Syntax
}

// NewBuffer returns a buffer holding a single blank line. A nil syntax
// disables highlighting; every byte is then tagged Standard.
func NewBuffer(syntax Syntax) *Buffer {
	b := &Buffer{lines: []*Line{blankLine()}, syntax: syntax}
	b.Retokenize()
	return b
}

func (b *Buffer) SetSyntax(syntax Syntax) {
	b.syntax = syntax
}

// Load replaces the buffer content. A read error resets the buffer to a
// single blank line without surfacing the error; an empty file and a failed
// read are indistinguishable here.
func (b *Buffer) Load(content []byte, err error) {
	if err != nil {
		b.lines = []*Line{blankLine()}
		b.Retokenize()
		return
	}
	// A trailing line break terminates the last line rather than opening a
	// new blank one.
	content = bytes.TrimSuffix(content, []byte("\n"))
	raw := bytes.Split(content, []byte("\n"))
	lines := make([]*Line, 0, len(raw))
	for _, r := range raw {
		r = bytes.TrimSuffix(r, []byte("\r"))
		lines = append(lines, newLine(append([]byte(nil), r...)))
	}
	b.lines = lines
	b.Retokenize()
}

// Save joins all lines with a single '\n' and writes them to path, creating
// the file if absent and truncating it to exactly the new length.
func (b *Buffer) Save(path string) error {
	contents := b.Contents()
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("open %q: %w", path, err)
	}
	defer file.Close()
	if err := file.Truncate(int64(len(contents))); err != nil {
		return fmt.Errorf("truncate %q: %w", path, err)
	}
	if _, err := file.Write(contents); err != nil {
		return fmt.Errorf("write %q: %w", path, err)
	}
	return nil
}

// Contents returns the lines joined by '\n', with no trailing separator
// beyond the join.
func (b *Buffer) Contents() []byte {
	parts := make([][]byte, len(b.lines))
	for i, line := range b.lines {
		parts[i] = line.content
	}
	return bytes.Join(parts, []byte("\n"))
}

// Retokenize rebuilds every line's tags from scratch.
func (b *Buffer) Retokenize() {
	if b.syntax != nil {
		b.syntax.Retokenize(b.lines)
		return
	}
	for _, line := range b.lines {
		line.tags = make([]HighlightTag, len(line.content))
	}
}

// InsertChar inserts c at the cursor's render position. A tab becomes four
// literal spaces and advances the cursor by four.
func (b *Buffer) InsertChar(c rune, cur *Cursor) {
	x, y := cur.Position()
	line := b.lines[y]
	if c == '\t' {
		line.insert(x, []byte("    "))
		cur.SetPosition(x+4, y)
	} else {
		enc := []byte(string(c))
		line.insert(x, enc)
		cur.SetPosition(x+len(enc), y)
	}
	b.Retokenize()
}

// NewLine splits the current line at the cursor; the remainder becomes a new
// line inserted right after, and the cursor moves to its start.
func (b *Buffer) NewLine(cur *Cursor) {
	x, y := cur.Position()
	rest := b.lines[y].splitAt(x)
	b.lines = append(b.lines, nil)
	copy(b.lines[y+2:], b.lines[y+1:])
	b.lines[y+1] = rest
	b.Retokenize()
	cur.SetPosition(0, y+1)
}

// DeleteChar removes the byte before the cursor. At the start of a line it
// merges the line into the previous one; at the start of the document it does
// nothing.
func (b *Buffer) DeleteChar(cur *Cursor) {
	x, y := cur.Position()
	switch {
	case x > 0:
		b.lines[y].deleteAt(x - 1)
		cur.SetPosition(x-1, y)
	case y > 0:
		prev := b.lines[y-1]
		end := len(prev.content)
		prev.appendLine(b.lines[y])
		b.lines = append(b.lines[:y], b.lines[y+1:]...)
		cur.SetPosition(end, y-1)
	}
	b.Retokenize()
}

// FindPhrase looks for phrase within one line, starting at the given byte
// offset, and returns the absolute byte offset of the first occurrence.
func (b *Buffer) FindPhrase(phrase string, index, start int) (int, bool) {
	if index >= len(b.lines) {
		return 0, false
	}
	return b.lines[index].findPhrase([]byte(phrase), start)
}

// Len returns the number of lines, always at least one.
func (b *Buffer) Len() int {
	return len(b.lines)
}

// LineLen returns the byte length of a line, or 0 for an out-of-range index.
func (b *Buffer) LineLen(index int) int {
	if index >= len(b.lines) {
		return 0
	}
	return len(b.lines[index].content)
}

func (b *Buffer) Line(index int) *Line {
	return b.lines[index]
}
