package main

// Provides a way to view all supported file types and the lexical settings
// the highlighter uses for them.

import (
	"fmt"
	"strings"
)

// PrintInfo prints a summary table of all supported languages.
func PrintInfo() {
	// Table header.
	fmt.Printf("%-12s %-18s %-10s %-10s %s\n", "Name", "Extensions", "Line", "Block", "Highlight")
	fmt.Println(strings.Repeat("-", 64))

	for _, ft := range fileTypes {
		highlight := "no"
		if ft.Highlight {
			highlight = "yes"
		}

		block := ""
		if ft.BlockStart != "" {
			block = ft.BlockStart + " " + ft.BlockEnd
		}

		fmt.Printf("%-12s %-18s %-10s %-10s %s\n",
			ft.Name, strings.Join(ft.Extensions, " "), ft.LineComment, block, highlight)
	}
}
