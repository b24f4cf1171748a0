package main

// Global configuration of the editor. Settings are populated from command-line
// flags during initialization.

import (
	"flag"
	"time"
)

// Configuration holds all adjustable settings for the editor.
type Configuration struct {
	GutterWidth        int           // Width of the left line-number column.
	UseLogFile         bool          // Whether to append logs to a file.
	LogFilePath        string        // Where to store the logs.
	NumLogsInLogWindow int           // How many recent logs the log window shows.
	WatchDebounce      time.Duration // Quiet period before a disk change wakes the editor.
	DevMode            bool          // Ctrl-C quits without confirmation.
	ShowColors         bool          // Command-line flag to show available colors and exit.
	ShowInfo           bool          // Command-line flag to show file types and exit.
	ShowVersion        bool          // Command-line flag to show version and exit.
}

// Config is the global configuration instance.
var Config Configuration

// InitConfig sets up command-line flags and parses them into the global Config.
func InitConfig() {
	flag.IntVar(&Config.GutterWidth, "gutter-width", 6, "Width of the gutter")
	flag.BoolVar(&Config.UseLogFile, "log", false, "Enable logging to file")
	flag.StringVar(&Config.LogFilePath, "log-path", "/tmp/ted-debug.log", "Path to log file")
	flag.IntVar(&Config.NumLogsInLogWindow, "num-logs", 10, "Number of logs in the log window")
	flag.DurationVar(&Config.WatchDebounce, "watch-debounce", 250*time.Millisecond, "Debounce for external file changes")
	flag.BoolVar(&Config.DevMode, "dev", false, "Enable development mode")
	flag.BoolVar(&Config.ShowColors, "colors", false, "Show available colors")
	flag.BoolVar(&Config.ShowInfo, "info", false, "Show file type associations")
	flag.BoolVar(&Config.ShowVersion, "version", false, "Show version")

	flag.Parse()
}
