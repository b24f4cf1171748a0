package main

// Core of the application. Owns the buffer, cursor, and search state, the
// file on disk, and all UI rendering (text area, gutter, status and message
// bars, log window).

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"
)

// Mode represents the current operational state of the editor.
type Mode int

const (
	ModeEdit       Mode = iota
	ModeSavePrompt // Path input for Ctrl-S
	ModeLoadPrompt // Path input for Ctrl-L
	ModeFind       // Incremental find session
	ModeConfirm    // Yes/No quit confirmation
)

// Editor is the main controller struct that holds all global state.
type Editor struct {
	buffer   *Buffer     // The document.
	cursor   *Cursor     // Edit position and viewport scroll.
	search   *SearchData // State of the current/last find session.
	mode     Mode        // Current editor mode.
	filename string      // Path of the open file, empty for a scratch buffer.
	fileType *FileType   // Language settings derived from the filename.
	dirty    bool        // True if changes haven't been saved.

	promptInput []rune // Input line for the save/load/find prompts.
	savedCursor Cursor // Cursor snapshot taken when a find session opens.

	message        string   // Transient text shown in the message bar.
	logMessages    []string // Internal log ring shown in the log window.
	maxLogMessages int      // Capacity of the log ring.
	showLog        bool     // Visibility toggle for the log window.
	introDismissed bool     // Whether the splash screen was hidden.

	lastModTime time.Time         // Mod time of the file when last read/written.
	watcher     *fsnotify.Watcher // Watches the open file for external changes.

	quit    bool // Set by the quit confirmation; ends the event loop.
	devMode bool // Ctrl-C quits immediately, for development.
}

// NewEditor creates an editor with an empty plain-text buffer.
func NewEditor(devMode bool) *Editor {
	e := &Editor{
		buffer:         NewBuffer(nil),
		cursor:         NewCursor(80, 24),
		search:         NewSearchData(),
		mode:           ModeEdit,
		fileType:       getFileType(""),
		maxLogMessages: 50,
		devMode:        devMode,
	}
	e.addLog("Editor", "Editor initialized")
	return e
}

// Close releases the file watcher.
func (e *Editor) Close() {
	if e.watcher != nil {
		e.watcher.Close()
		e.watcher = nil
	}
}

func (e *Editor) addLog(group, msg string) {
	t := time.Now()
	timestamp := fmt.Sprintf("[%02d:%02d:%02d]", t.Hour(), t.Minute(), t.Second())
	logMsg := fmt.Sprintf("%s [%s] %s", timestamp, group, msg)
	e.logMessages = append(e.logMessages, logMsg)

	if len(e.logMessages) > e.maxLogMessages {
		e.logMessages = e.logMessages[len(e.logMessages)-e.maxLogMessages:]
	}

	if Config.UseLogFile {
		f, err := os.OpenFile(Config.LogFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err == nil {
			defer f.Close()
			f.WriteString(logMsg + "\n")
		}
	}
}

// LoadFile replaces the buffer with the contents of filename. A missing or
// unreadable file silently yields a fresh single-line buffer, which is
// indistinguishable from opening an empty file; the failure is only logged.
func (e *Editor) LoadFile(filename string) {
	content, err := os.ReadFile(filename)
	if err != nil {
		e.addLog("Editor", fmt.Sprintf("Open %q: %v", filename, err))
	}

	e.filename = filename
	e.fileType = getFileType(filename)
	e.buffer.SetSyntax(NewSyntax(e.fileType))
	e.buffer.Load(content, err)
	e.cursor.Reset()
	e.search = NewSearchData()
	e.dirty = false

	if info, statErr := os.Stat(filename); statErr == nil {
		e.lastModTime = info.ModTime()
	}
	e.watchFile()
	e.addLog("Editor", fmt.Sprintf("Loaded %q (%d lines, %s)", filename, e.buffer.Len(), e.fileType.Name))
}

// SaveFile writes the buffer to filename. On success the file becomes the
// buffer's file, picking up the language mode of the new name; on failure the
// buffer and the dirty flag are left untouched.
func (e *Editor) SaveFile(filename string) error {
	if err := e.buffer.Save(filename); err != nil {
		return err
	}

	if ft := getFileType(filename); ft != e.fileType {
		e.fileType = ft
		e.buffer.SetSyntax(NewSyntax(ft))
		e.buffer.Retokenize()
	}
	e.filename = filename
	e.dirty = false

	if info, err := os.Stat(filename); err == nil {
		e.lastModTime = info.ModTime()
	}
	e.watchFile()
	e.addLog("Editor", fmt.Sprintf("Saved %q (%d lines)", filename, e.buffer.Len()))
	return nil
}

// ReloadFile re-reads the open file and clamps the cursor to the new content.
func (e *Editor) ReloadFile() error {
	content, err := os.ReadFile(e.filename)
	if err != nil {
		return err
	}
	e.buffer.Load(content, nil)
	e.cursor.Clamp(e.buffer)
	e.dirty = false
	if info, err := os.Stat(e.filename); err == nil {
		e.lastModTime = info.ModTime()
	}
	return nil
}

// CheckFileOnDisk reacts to the watcher's wake-up: a clean buffer reloads in
// place, a dirty one keeps its edits and warns instead.
func (e *Editor) CheckFileOnDisk() {
	if e.filename == "" {
		return
	}
	info, err := os.Stat(e.filename)
	if err != nil || !info.ModTime().After(e.lastModTime) {
		return
	}

	if e.dirty {
		e.message = fmt.Sprintf("WARNING: %q changed on disk; buffer has unsaved changes", filepath.Base(e.filename))
		e.addLog("Editor", fmt.Sprintf("%q changed on disk but buffer is modified", e.filename))
		return
	}

	if err := e.ReloadFile(); err != nil {
		e.addLog("Editor", fmt.Sprintf("Failed to reload %q: %v", e.filename, err))
		return
	}
	e.message = fmt.Sprintf("%q reloaded from disk", filepath.Base(e.filename))
	e.addLog("Editor", fmt.Sprintf("Auto-reloaded %q (changed on disk)", filepath.Base(e.filename)))
}

// watchFile watches the open file's directory for changes to the file and
// wakes the event loop with a termbox interrupt after a debounce window. The
// goroutine never touches editor state; the reload runs on the event loop.
func (e *Editor) watchFile() {
	if e.watcher != nil {
		e.watcher.Close()
		e.watcher = nil
	}
	if e.filename == "" {
		return
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		e.addLog("Watcher", fmt.Sprintf("Failed to create watcher: %v", err))
		return
	}
	if err := w.Add(filepath.Dir(e.filename)); err != nil {
		e.addLog("Watcher", fmt.Sprintf("Failed to watch %q: %v", filepath.Dir(e.filename), err))
		w.Close()
		return
	}
	e.watcher = w

	target := filepath.Clean(e.filename)
	go func() {
		var debounce *time.Timer
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
					continue
				}
				if debounce == nil {
					debounce = time.AfterFunc(Config.WatchDebounce, termbox.Interrupt)
				} else {
					debounce.Reset(Config.WatchDebounce)
				}
			case _, ok := <-w.Errors:
				if !ok {
					return
				}
			}
		}
	}()
}

func (e *Editor) promptLabel() string {
	switch e.mode {
	case ModeSavePrompt:
		return "Save to:"
	case ModeLoadPrompt:
		return "Load from:"
	case ModeFind:
		return "Find:"
	}
	return ""
}

// tagColor maps a highlight tag to its presentation colors, falling back to
// the theme defaults when no highlighter is attached. The search overlay
// shows up in plain-text buffers too.
func (e *Editor) tagColor(tag HighlightTag) (termbox.Attribute, termbox.Attribute) {
	if s := e.buffer.syntax; s != nil {
		return s.Color(tag)
	}
	if tag == TagSearchResult {
		return GetThemeColor(ColorSearchMatch)
	}
	return GetThemeColor(ColorDefault)
}

// draw repaints the whole screen: text area with gutter, splash, status bar,
// message bar, and the log window overlay.
func (e *Editor) draw() {
	_, defaultBg := GetThemeColor(ColorDefault)
	termbox.Clear(termbox.ColorDefault, defaultBg)
	w, h := termbox.Size()

	textWidth := w - Config.GutterWidth
	textHeight := h - 2
	e.cursor.Resize(textWidth, textHeight)
	e.cursor.ChangeOffset()
	xOffset, yOffset := e.cursor.Offset()

	for screenY := 0; screenY < textHeight; screenY++ {
		bufferY := screenY + yOffset
		if bufferY >= e.buffer.Len() {
			fg, bg := GetThemeColor(ColorEmptyLineMarker)
			termbox.SetCell(0, screenY, '~', fg, bg)
			continue
		}

		// Gutter line number, right aligned.
		lineNum := strconv.Itoa(bufferY + 1)
		gutterFg, gutterBg := GetThemeColor(ColorGutterLineNumber)
		for i, r := range lineNum {
			termbox.SetCell(Config.GutterWidth-len(lineNum)-1+i, screenY, r, gutterFg, gutterBg)
		}

		_, lineBg := GetThemeColor(ColorDefault)
		if bufferY == e.cursor.LineIndex() {
			_, lineBg = GetThemeColor(ColorHighlightedLine)
			for x := 0; x < textWidth; x++ {
				fg, _ := GetThemeColor(ColorDefault)
				termbox.SetCell(x+Config.GutterWidth, screenY, ' ', fg, lineBg)
			}
		}

		line := e.buffer.Line(bufferY)
		for idx := xOffset; idx < len(line.content) && idx-xOffset < textWidth; idx++ {
			fg, bg := e.tagColor(line.tags[idx])
			if bg == termbox.ColorDefault {
				bg = lineBg
			}
			termbox.SetCell(idx-xOffset+Config.GutterWidth, screenY, rune(line.content[idx]), fg, bg)
		}
	}

	if !e.introDismissed && e.filename == "" && !e.dirty && e.buffer.Len() == 1 && e.buffer.LineLen(0) == 0 {
		e.drawIntro()
	}

	e.drawStatusBar(h - 2)
	e.drawMessageBar(h - 1)

	if e.showLog {
		e.drawLogWindow()
	}

	switch e.mode {
	case ModeSavePrompt, ModeLoadPrompt, ModeFind:
		termbox.SetCursor(runewidth.StringWidth(e.promptLabel())+1+len(e.promptInput), h-1)
	default:
		sx, sy := e.cursor.ScreenPosition()
		termbox.SetCursor(sx+Config.GutterWidth, sy)
	}
	termbox.Flush()
}

func (e *Editor) drawStatusBar(statusY int) {
	w, _ := termbox.Size()

	// Fill background for the entire status line.
	for x := 0; x < w; x++ {
		fg, bg := GetThemeColor(ColorStatusBar)
		termbox.SetCell(x, statusY, ' ', fg, bg)
	}

	// Draw the primary mode indicator.
	modeStr := "EDIT"
	fg, bg := GetThemeColor(ColorEditMode)
	switch e.mode {
	case ModeSavePrompt:
		modeStr = "SAVE"
		fg, bg = GetThemeColor(ColorPromptMode)
	case ModeLoadPrompt:
		modeStr = "LOAD"
		fg, bg = GetThemeColor(ColorPromptMode)
	case ModeFind:
		modeStr = "FIND"
		fg, bg = GetThemeColor(ColorPromptMode)
	case ModeConfirm:
		modeStr = "CONFIRM"
		fg, bg = GetThemeColor(ColorConfirmMode)
	}

	termbox.SetCell(0, statusY, ' ', fg, bg)
	for i, r := range modeStr {
		termbox.SetCell(i+1, statusY, r, fg, bg)
	}
	termbox.SetCell(len(modeStr)+1, statusY, ' ', fg, bg)

	// Cursor coordinates and file metadata on the right.
	x, y := e.cursor.Position()
	totalLines := e.buffer.Len()
	percent := ((y + 1) * 100) / totalLines
	statusRight := fmt.Sprintf("(%s) %d,%d %d%% %d lines ",
		strings.ToLower(e.fileType.Name), y+1, x+1, percent, totalLines)

	// Filename and modification marker, truncated to the space left.
	fileStr := "[no file]"
	if e.filename != "" {
		fileStr = e.filename
	}
	if e.dirty {
		fileStr += " [+]"
	}
	fileX := len(modeStr) + 3
	if maxWidth := w - fileX - len(statusRight) - 1; maxWidth > 0 {
		for i, r := range runewidth.Truncate(fileStr, maxWidth, "...") {
			fg, bg := GetThemeColor(ColorStatusBar)
			termbox.SetCell(fileX+i, statusY, r, fg, bg)
		}
	}

	rightX := w - len(statusRight)
	for i, r := range statusRight {
		fg, bg := GetThemeColor(ColorStatusBar)
		termbox.SetCell(rightX+i, statusY, r, fg, bg)
	}
}

func (e *Editor) drawMessageBar(msgY int) {
	w, _ := termbox.Size()
	fg, bg := GetThemeColor(ColorDefault)
	for x := 0; x < w; x++ {
		termbox.SetCell(x, msgY, ' ', fg, bg)
	}

	var text string
	switch e.mode {
	case ModeSavePrompt, ModeLoadPrompt:
		text = e.promptLabel() + " " + string(e.promptInput)
	case ModeFind:
		text = e.promptLabel() + " " + string(e.promptInput)
		if n := e.search.Count(); n > 0 {
			text += fmt.Sprintf("  [%d matches]", n)
		} else if len(e.promptInput) > 0 {
			text += "  [no matches]"
		}
	case ModeConfirm:
		if e.dirty {
			text = "Discard unsaved changes and quit? (y/n)"
		} else {
			text = "Quit? (y/n)"
		}
	default:
		text = e.message
	}

	for i, r := range runewidth.Truncate(text, w, "...") {
		termbox.SetCell(i, msgY, r, fg, bg)
	}
}

// drawLogWindow overlays the tail of the log ring above the status bar.
func (e *Editor) drawLogWindow() {
	w, h := termbox.Size()

	height := Config.NumLogsInLogWindow + 2
	startY := h - 2 - height
	if startY < 0 {
		startY = 0
	}

	for y := startY; y < startY+height && y < h-2; y++ {
		for x := 0; x < w; x++ {
			fg, bg := GetThemeColor(ColorLogWindow)
			termbox.SetCell(x, y, ' ', fg, bg)
		}
	}

	title := "[LOG]"
	titleX := (w - len(title)) / 2
	for i, r := range title {
		fg, bg := GetThemeColor(ColorLogTitle)
		termbox.SetCell(titleX+i, startY, r, fg, bg)
	}

	start := 0
	if len(e.logMessages) > Config.NumLogsInLogWindow {
		start = len(e.logMessages) - Config.NumLogsInLogWindow
	}
	for i, msg := range e.logMessages[start:] {
		if len(msg) > w-2 {
			msg = msg[:w-5] + "..."
		}
		for j, r := range msg {
			fg, bg := GetThemeColor(ColorLogWindow)
			termbox.SetCell(1+j, startY+1+i, r, fg, bg)
		}
	}
}
