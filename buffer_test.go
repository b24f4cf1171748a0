package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func bufferOf(syntax Syntax, lines ...string) *Buffer {
	b := NewBuffer(syntax)
	b.Load([]byte(strings.Join(lines, "\n")), nil)
	return b
}

func lineContents(b *Buffer) []string {
	out := make([]string, b.Len())
	for i := 0; i < b.Len(); i++ {
		out[i] = string(b.Line(i).content)
	}
	return out
}

func TestLoadSplitsLines(t *testing.T) {
	b := NewBuffer(nil)
	b.Load([]byte("ab\ncd\nef"), nil)
	require.Equal(t, []string{"ab", "cd", "ef"}, lineContents(b))
}

func TestLoadTrailingNewlineTerminatesLastLine(t *testing.T) {
	b := NewBuffer(nil)
	b.Load([]byte("ab\ncd\n"), nil)
	require.Equal(t, []string{"ab", "cd"}, lineContents(b))
}

func TestLoadStripsCarriageReturns(t *testing.T) {
	b := NewBuffer(nil)
	b.Load([]byte("ab\r\ncd\r\n"), nil)
	require.Equal(t, []string{"ab", "cd"}, lineContents(b))
}

func TestLoadEmptyContentYieldsOneBlankLine(t *testing.T) {
	b := NewBuffer(nil)
	b.Load([]byte(""), nil)
	require.Equal(t, 1, b.Len())
	require.Equal(t, 0, b.LineLen(0))
}

func TestLoadErrorResetsToBlankLine(t *testing.T) {
	b := bufferOf(nil, "existing", "content")
	b.Load(nil, errors.New("no such file"))
	require.Equal(t, 1, b.Len())
	require.Equal(t, 0, b.LineLen(0))
}

func TestSaveJoinsWithSingleNewline(t *testing.T) {
	b := bufferOf(nil, "alpha", "beta", "gamma")
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, b.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "alpha\nbeta\ngamma", string(data))
}

func TestSaveTruncatesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, os.WriteFile(path, []byte("a much longer pre-existing content"), 0644))

	b := bufferOf(nil, "short")
	require.NoError(t, b.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "short", string(data))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	content := "first\n\nthird line\n  indented"
	b := NewBuffer(nil)
	b.Load([]byte(content), nil)

	path := filepath.Join(t.TempDir(), "rt.txt")
	require.NoError(t, b.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, content, string(data))
}

func TestSaveErrorPropagates(t *testing.T) {
	b := bufferOf(nil, "x")
	err := b.Save(filepath.Join(t.TempDir(), "no", "such", "dir", "f.txt"))
	require.Error(t, err)
}

func TestInsertCharAdvancesCursor(t *testing.T) {
	b := bufferOf(nil, "ad")
	cur := NewCursor(80, 24)
	cur.SetPosition(1, 0)

	b.InsertChar('b', cur)
	b.InsertChar('c', cur)

	require.Equal(t, []string{"abcd"}, lineContents(b))
	x, y := cur.Position()
	require.Equal(t, 3, x)
	require.Equal(t, 0, y)
}

func TestInsertTabExpandsToFourSpaces(t *testing.T) {
	b := bufferOf(nil)
	cur := NewCursor(80, 24)

	b.InsertChar('\t', cur)

	require.Equal(t, "    ", string(b.Line(0).content))
	x, _ := cur.Position()
	require.Equal(t, 4, x)
}

func TestNewLineSplitsAtCursor(t *testing.T) {
	b := bufferOf(nil, "abcd")
	cur := NewCursor(80, 24)
	cur.SetPosition(2, 0)

	b.NewLine(cur)

	require.Equal(t, []string{"ab", "cd"}, lineContents(b))
	x, y := cur.Position()
	require.Equal(t, 0, x)
	require.Equal(t, 1, y)
}

func TestDeleteCharMergesLinesAtLineStart(t *testing.T) {
	b := bufferOf(nil, "ab", "cd")
	cur := NewCursor(80, 24)
	cur.SetPosition(0, 1)

	b.DeleteChar(cur)

	require.Equal(t, []string{"abcd"}, lineContents(b))
	x, y := cur.Position()
	require.Equal(t, 2, x)
	require.Equal(t, 0, y)
}

func TestDeleteCharMidLine(t *testing.T) {
	b := bufferOf(nil, "abc")
	cur := NewCursor(80, 24)
	cur.SetPosition(2, 0)

	b.DeleteChar(cur)

	require.Equal(t, []string{"ac"}, lineContents(b))
	x, _ := cur.Position()
	require.Equal(t, 1, x)
}

func TestDeleteCharAtDocumentStartIsNoop(t *testing.T) {
	b := bufferOf(nil, "ab")
	cur := NewCursor(80, 24)

	b.DeleteChar(cur)

	require.Equal(t, []string{"ab"}, lineContents(b))
	x, y := cur.Position()
	require.Equal(t, 0, x)
	require.Equal(t, 0, y)
}

func TestFindPhrase(t *testing.T) {
	b := bufferOf(nil, "one two two")

	off, ok := b.FindPhrase("two", 0, 0)
	require.True(t, ok)
	require.Equal(t, 4, off)

	off, ok = b.FindPhrase("two", 0, 5)
	require.True(t, ok)
	require.Equal(t, 8, off)

	_, ok = b.FindPhrase("three", 0, 0)
	require.False(t, ok)

	_, ok = b.FindPhrase("two", 5, 0)
	require.False(t, ok)
}

func TestLineLenOutOfRange(t *testing.T) {
	b := bufferOf(nil, "abc")
	require.Equal(t, 3, b.LineLen(0))
	require.Equal(t, 0, b.LineLen(7))
}

// Random edit sequences keep the structural invariants: at least one line,
// one tag per content byte, cursor inside the buffer.
func TestBufferEditInvariants(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b := NewBuffer(NewSyntax(getFileType("main.go")))
		cur := NewCursor(40, 12)
		chars := []rune(`ab_12 "'(){}/*`)
		dirs := []Direction{DirUp, DirDown, DirLeft, DirRight}

		ops := rapid.IntRange(1, 60).Draw(t, "ops")
		for i := 0; i < ops; i++ {
			switch rapid.IntRange(0, 7).Draw(t, "op") {
			case 0, 1:
				b.InsertChar(rapid.SampledFrom(chars).Draw(t, "ch"), cur)
			case 2:
				b.InsertChar('\t', cur)
			case 3:
				b.NewLine(cur)
			case 4:
				b.DeleteChar(cur)
			default:
				cur.Move(b, rapid.SampledFrom(dirs).Draw(t, "dir"))
			}

			require.GreaterOrEqual(t, b.Len(), 1)
			for y := 0; y < b.Len(); y++ {
				line := b.Line(y)
				require.Equal(t, len(line.content), len(line.tags))
			}
			x, y := cur.Position()
			require.GreaterOrEqual(t, y, 0)
			require.Less(t, y, b.Len())
			require.GreaterOrEqual(t, x, 0)
			require.LessOrEqual(t, x, b.LineLen(y))
		}
	})
}
