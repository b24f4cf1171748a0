package main

// The entry point of the ted editor. It handles command-line flags,
// initializes the terminal interface (termbox), loads the file given as
// argument, and starts the main editor loop.

import (
	"flag"
	"fmt"
	"os"

	"github.com/nsf/termbox-go"
)

// Version of the editor, injected at build time.
var Version = "dev"

func main() {
	// Initialize configuration from flags.
	InitConfig()

	// If -version flag is provided, print version and exit.
	if Config.ShowVersion {
		fmt.Println(Version)
		return
	}

	// Print available colors if -colors flag is provided.
	if Config.ShowColors {
		PrintColors()
		return
	}

	// Print file type associations if -info flag is provided.
	if Config.ShowInfo {
		PrintInfo()
		return
	}

	// Initialize termbox for TUI handling.
	err := termbox.Init()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init termbox: %v\n", err)
		os.Exit(1)
	}
	defer termbox.Close()

	termbox.SetInputMode(termbox.InputEsc)
	// Use 256 color mode for better aesthetics.
	termbox.SetOutputMode(termbox.Output256)

	editor := NewEditor(Config.DevMode)
	defer editor.Close()

	// A single optional file argument; a missing file opens a blank buffer.
	if flag.NArg() > 0 {
		editor.LoadFile(flag.Arg(0))
	}

	// Enter the main event loop.
	editor.HandleEvents()
}
