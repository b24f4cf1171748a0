package main

// Input processing engine. Contains the main event loop and dispatches key
// events to mode-specific handlers (edit, save/load prompts, find, confirm).

import (
	"fmt"

	"github.com/nsf/termbox-go"
)

// HandleEvents is the central loop that waits for and processes all user
// input. Each iteration handles exactly one event and then repaints.
func (e *Editor) HandleEvents() {
	for !e.quit {
		e.draw()
		ev := termbox.PollEvent()

		// Interrupts come from the file watcher goroutine.
		if ev.Type == termbox.EventInterrupt {
			e.CheckFileOnDisk()
			continue
		}
		if ev.Type != termbox.EventKey {
			// Resizes just fall through to the next redraw.
			continue
		}

		// Clear the message on any key press unless specifically set.
		e.message = ""

		switch e.mode {
		case ModeEdit:
			e.handleEditMode(ev)
		case ModeSavePrompt, ModeLoadPrompt:
			e.handlePromptMode(ev)
		case ModeFind:
			e.handleFindMode(ev)
		case ModeConfirm:
			e.handleConfirmMode(ev)
		}
	}
}

// handleEditMode processes keyboard input in the default editing mode.
func (e *Editor) handleEditMode(ev termbox.Event) {
	switch ev.Key {
	case termbox.KeyCtrlC:
		if e.devMode {
			e.quit = true
			return
		}
		e.mode = ModeConfirm
	case termbox.KeyCtrlS:
		e.mode = ModeSavePrompt
		e.promptInput = []rune(e.filename)
	case termbox.KeyCtrlL:
		e.mode = ModeLoadPrompt
		e.promptInput = []rune(e.filename)
	case termbox.KeyCtrlF:
		e.mode = ModeFind
		e.promptInput = nil
		e.savedCursor = *e.cursor
	case termbox.KeyCtrlD:
		e.showLog = !e.showLog
	case termbox.KeyArrowUp:
		e.cursor.Move(e.buffer, DirUp)
	case termbox.KeyArrowDown:
		e.cursor.Move(e.buffer, DirDown)
	case termbox.KeyArrowLeft:
		e.cursor.Move(e.buffer, DirLeft)
	case termbox.KeyArrowRight:
		e.cursor.Move(e.buffer, DirRight)
	case termbox.KeyEnter:
		e.buffer.NewLine(e.cursor)
		e.dirty = true
		e.introDismissed = true
	case termbox.KeyBackspace, termbox.KeyBackspace2:
		e.buffer.DeleteChar(e.cursor)
		e.dirty = true
		e.introDismissed = true
	case termbox.KeyTab:
		e.insertChar('\t')
	case termbox.KeySpace:
		e.insertChar(' ')
	default:
		if ev.Ch != 0 {
			e.insertChar(ev.Ch)
		}
	}
}

func (e *Editor) insertChar(c rune) {
	e.buffer.InsertChar(c, e.cursor)
	e.dirty = true
	e.introDismissed = true
}

// handlePromptMode processes the save and load path prompts. Enter commits,
// Esc cancels leaving everything untouched.
func (e *Editor) handlePromptMode(ev termbox.Event) {
	switch ev.Key {
	case termbox.KeyEsc:
		e.mode = ModeEdit
		e.promptInput = nil
	case termbox.KeyEnter:
		input := string(e.promptInput)
		mode := e.mode
		e.mode = ModeEdit
		e.promptInput = nil
		if input == "" {
			return
		}
		if mode == ModeSavePrompt {
			if err := e.SaveFile(input); err != nil {
				e.message = fmt.Sprintf("Save failed: %v", err)
				e.addLog("Editor", e.message)
				return
			}
			e.message = fmt.Sprintf("Saved %q", input)
		} else {
			e.LoadFile(input)
		}
	case termbox.KeyBackspace, termbox.KeyBackspace2:
		if len(e.promptInput) > 0 {
			e.promptInput = e.promptInput[:len(e.promptInput)-1]
		}
	case termbox.KeySpace:
		e.promptInput = append(e.promptInput, ' ')
	default:
		if ev.Ch != 0 {
			e.promptInput = append(e.promptInput, ev.Ch)
		}
	}
}

// handleFindMode implements the find session: every keystroke rescans and
// jumps to the first match, Left/Right cycle the existing matches, Esc
// restores the cursor snapshot, Enter keeps the cursor where it is. Both
// exits clear the search overlay with an empty-phrase scan.
func (e *Editor) handleFindMode(ev termbox.Event) {
	switch ev.Key {
	case termbox.KeyEsc:
		*e.cursor = e.savedCursor
		e.endFind()
	case termbox.KeyEnter:
		e.endFind()
	case termbox.KeyArrowRight:
		if m, ok := e.search.GetNext(); ok {
			e.cursor.SetPosition(m.X, m.Y)
		}
	case termbox.KeyArrowLeft:
		if m, ok := e.search.GetPrevious(); ok {
			e.cursor.SetPosition(m.X, m.Y)
		}
	case termbox.KeyBackspace, termbox.KeyBackspace2:
		if len(e.promptInput) > 0 {
			e.promptInput = e.promptInput[:len(e.promptInput)-1]
		}
		e.runSearch()
	case termbox.KeySpace:
		e.promptInput = append(e.promptInput, ' ')
		e.runSearch()
	default:
		if ev.Ch != 0 {
			e.promptInput = append(e.promptInput, ev.Ch)
			e.runSearch()
		}
	}
}

func (e *Editor) runSearch() {
	if m, ok := e.search.FindResults(string(e.promptInput), e.buffer); ok {
		e.cursor.SetPosition(m.X, m.Y)
	}
}

func (e *Editor) endFind() {
	e.search.FindResults("", e.buffer)
	e.promptInput = nil
	e.mode = ModeEdit
}

// handleConfirmMode processes the quit confirmation.
func (e *Editor) handleConfirmMode(ev termbox.Event) {
	switch {
	case ev.Key == termbox.KeyCtrlC || ev.Ch == 'y' || ev.Ch == 'Y':
		e.quit = true
	case ev.Key == termbox.KeyEsc || ev.Ch == 'n' || ev.Ch == 'N':
		e.mode = ModeEdit
	}
}
