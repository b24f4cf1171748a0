package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestEditor(t *testing.T) *Editor {
	e := NewEditor(false)
	t.Cleanup(e.Close)
	return e
}

func TestLoadFileMissingYieldsBlankBuffer(t *testing.T) {
	e := newTestEditor(t)
	e.LoadFile(filepath.Join(t.TempDir(), "missing.txt"))

	require.Equal(t, 1, e.buffer.Len())
	require.Equal(t, 0, e.buffer.LineLen(0))
	require.False(t, e.dirty)
}

func TestLoadFilePicksLanguageMode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.go")
	require.NoError(t, os.WriteFile(path, []byte("package main"), 0644))

	e := newTestEditor(t)
	e.LoadFile(path)

	require.Equal(t, "Go", e.fileType.Name)
	require.Equal(t, TagKeyword, e.buffer.Line(0).tags[0])
}

func TestSaveFileWritesJoinedLines(t *testing.T) {
	e := newTestEditor(t)
	for _, r := range "hello" {
		e.buffer.InsertChar(r, e.cursor)
	}
	e.buffer.NewLine(e.cursor)
	for _, r := range "world" {
		e.buffer.InsertChar(r, e.cursor)
	}
	e.dirty = true

	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, e.SaveFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "hello\nworld", string(data))
	require.False(t, e.dirty)
	require.Equal(t, path, e.filename)
}

func TestSaveFileFailureKeepsDirtyFlag(t *testing.T) {
	e := newTestEditor(t)
	e.buffer.InsertChar('x', e.cursor)
	e.dirty = true

	err := e.SaveFile(filepath.Join(t.TempDir(), "no", "such", "dir", "f.txt"))
	require.Error(t, err)
	require.True(t, e.dirty)
	require.Equal(t, "x", string(e.buffer.Contents()))
}

func TestSaveFileSwitchesLanguageMode(t *testing.T) {
	e := newTestEditor(t)
	e.buffer.Load([]byte("package main"), nil)
	require.Equal(t, "Text", e.fileType.Name)

	path := filepath.Join(t.TempDir(), "main.go")
	require.NoError(t, e.SaveFile(path))

	require.Equal(t, "Go", e.fileType.Name)
	require.Equal(t, TagKeyword, e.buffer.Line(0).tags[0])
}

func TestCheckFileOnDiskReloadsCleanBuffer(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f.txt")
	require.NoError(t, os.WriteFile(path, []byte("one"), 0644))

	e := newTestEditor(t)
	e.LoadFile(path)

	require.NoError(t, os.WriteFile(path, []byte("two"), 0644))
	future := time.Now().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(path, future, future))

	e.CheckFileOnDisk()
	require.Equal(t, "two", string(e.buffer.Contents()))
	require.False(t, e.dirty)
	require.Contains(t, e.message, "reloaded")
}

func TestCheckFileOnDiskWarnsOnDirtyBuffer(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f.txt")
	require.NoError(t, os.WriteFile(path, []byte("one"), 0644))

	e := newTestEditor(t)
	e.LoadFile(path)
	e.buffer.InsertChar('!', e.cursor)
	e.dirty = true

	require.NoError(t, os.WriteFile(path, []byte("two"), 0644))
	future := time.Now().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(path, future, future))

	e.CheckFileOnDisk()
	require.Equal(t, "!one", string(e.buffer.Contents()))
	require.True(t, e.dirty)
	require.Contains(t, e.message, "changed on disk")
}

func TestReloadFileClampsCursor(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f.txt")
	require.NoError(t, os.WriteFile(path, []byte("a\nb\nc\nd\ne"), 0644))

	e := newTestEditor(t)
	e.LoadFile(path)
	e.cursor.SetPosition(1, 4)

	require.NoError(t, os.WriteFile(path, []byte("z"), 0644))
	require.NoError(t, e.ReloadFile())

	x, y := e.cursor.Position()
	require.Equal(t, 0, y)
	require.LessOrEqual(t, x, e.buffer.LineLen(y))
}

func TestAddLogKeepsBoundedRing(t *testing.T) {
	e := newTestEditor(t)
	e.maxLogMessages = 5
	for i := 0; i < 20; i++ {
		e.addLog("Test", "entry")
	}
	require.Len(t, e.logMessages, 5)
}
