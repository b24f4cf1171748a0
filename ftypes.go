package main

// Supported file types, their extensions, and the lexical settings the
// highlighter needs: keyword sets and comment markers.

import "path/filepath"

// FileType represents the configuration for a specific programming language.
type FileType struct {
	Name        string   // Display name of the file type.
	Extensions  []string // File extensions (e.g., .go, .py) or filenames.
	Keywords    []string // Words tagged as keywords by the highlighter.
	LineComment string   // Line comment marker (e.g., // or #), empty if none.
	BlockStart  string   // Block comment opener (e.g., /*), empty if none.
	BlockEnd    string   // Block comment closer (e.g., */).
	Highlight   bool     // Whether syntax highlighting is enabled.
}

// fileTypes is a global list of all supported languages in the editor.
var fileTypes = []*FileType{
	{
		Name:       "Go",
		Extensions: []string{".go"},
		Keywords: []string{
			"break", "case", "chan", "const", "continue", "default",
			"defer", "else", "fallthrough", "for", "func", "go", "goto",
			"if", "import", "interface", "map", "package", "range",
			"return", "select", "struct", "switch", "type", "var",
		},
		LineComment: "//",
		BlockStart:  "/*",
		BlockEnd:    "*/",
		Highlight:   true,
	},
	{
		Name:       "Rust",
		Extensions: []string{".rs"},
		Keywords: []string{
			"impl", "fn", "pub", "struct", "enum", "trait", "use", "for",
			"if", "while", "else", "break", "return", "continue", "mod",
			"macro_rules", "true", "false", "loop", "match", "let", "as",
			"mut",
		},
		LineComment: "//",
		BlockStart:  "/*",
		BlockEnd:    "*/",
		Highlight:   true,
	},
	{
		Name:       "C",
		Extensions: []string{".c", ".h"},
		Keywords: []string{
			"auto", "break", "case", "char", "const", "continue",
			"default", "do", "double", "else", "enum", "extern", "float",
			"for", "goto", "if", "int", "long", "register", "return",
			"short", "signed", "sizeof", "static", "struct", "switch",
			"typedef", "union", "unsigned", "void", "volatile", "while",
		},
		LineComment: "//",
		BlockStart:  "/*",
		BlockEnd:    "*/",
		Highlight:   true,
	},
	{
		Name:       "JavaScript",
		Extensions: []string{".js", ".mjs"},
		Keywords: []string{
			"async", "await", "break", "case", "catch", "class", "const",
			"continue", "debugger", "default", "delete", "do", "else",
			"export", "extends", "finally", "for", "function", "if",
			"import", "in", "instanceof", "let", "new", "return", "super",
			"switch", "this", "throw", "try", "typeof", "var", "void",
			"while", "with", "yield",
		},
		LineComment: "//",
		BlockStart:  "/*",
		BlockEnd:    "*/",
		Highlight:   true,
	},
	{
		Name:       "Python",
		Extensions: []string{".py"},
		Keywords: []string{
			"False", "None", "True", "and", "as", "assert", "async",
			"await", "break", "class", "continue", "def", "del", "elif",
			"else", "except", "finally", "for", "from", "global", "if",
			"import", "in", "is", "lambda", "nonlocal", "not", "or",
			"pass", "raise", "return", "try", "while", "with", "yield",
		},
		LineComment: "#",
		Highlight:   true,
	},
	{
		Name:       "Bash",
		Extensions: []string{".sh"},
		Keywords: []string{
			"if", "then", "else", "elif", "fi", "for", "while", "until",
			"do", "done", "case", "esac", "function", "in", "select",
			"time", "local", "return", "exit",
		},
		LineComment: "#",
		Highlight:   true,
	},
	{
		Name:       "Lua",
		Extensions: []string{".lua"},
		Keywords: []string{
			"and", "break", "do", "else", "elseif", "end", "false",
			"for", "function", "goto", "if", "in", "local", "nil", "not",
			"or", "repeat", "return", "then", "true", "until", "while",
		},
		LineComment: "--",
		BlockStart:  "--[[",
		BlockEnd:    "]]",
		Highlight:   true,
	},
	{
		Name:       "Text",
		Extensions: []string{},
		Highlight:  false,
	},
}

// getFileType detects the file type based on the filename or extension.
func getFileType(filename string) *FileType {
	ext := filepath.Ext(filename)
	base := filepath.Base(filename)
	for _, ft := range fileTypes {
		for _, e := range ft.Extensions {
			// Check if the extension matches or if the base filename matches.
			if e == ext || e == base {
				return ft
			}
		}
	}
	// Return the default file type (Text) if no match is found.
	return fileTypes[len(fileTypes)-1]
}
