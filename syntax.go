package main

// Lexical syntax highlighting. A single left-to-right scan classifies every
// byte of the buffer into a highlight tag; the draw loop maps tags to theme
// colors. Rules are tried in a fixed priority order and the first rule that
// matches a nonzero length wins.

import (
	"bytes"

	"github.com/nsf/termbox-go"
)

// HighlightTag classifies one byte of buffer content.
type HighlightTag int

const (
	TagStandard HighlightTag = iota
	TagIdentifier
	TagKeyword
	TagNumber
	TagBracket
	TagString
	TagComment
	TagSearchResult
)

// Syntax is the highlighting strategy attached to a buffer. Retokenize
// rebuilds every line's tags from scratch; Color maps a tag to the
// foreground/background pair used when painting it.
type Syntax interface {
	Retokenize(lines []*Line)
	Color(tag HighlightTag) (termbox.Attribute, termbox.Attribute)
}

// LangSyntax scans with the keyword set and comment markers of one language.
type LangSyntax struct {
	name        string
	keywords    map[string]bool
	lineComment []byte
	blockStart  []byte
	blockEnd    []byte
}

// NewSyntax builds the highlighting strategy for a file type. File types
// without highlighting get none, which leaves every byte tagged Standard.
func NewSyntax(ft *FileType) Syntax {
	if ft == nil || !ft.Highlight {
		return nil
	}
	keywords := make(map[string]bool, len(ft.Keywords))
	for _, kw := range ft.Keywords {
		keywords[kw] = true
	}
	return &LangSyntax{
		name:        ft.Name,
		keywords:    keywords,
		lineComment: []byte(ft.LineComment),
		blockStart:  []byte(ft.BlockStart),
		blockEnd:    []byte(ft.BlockEnd),
	}
}

// Retokenize concatenates all lines with '\n' separators, scans the whole
// byte sequence once, and redistributes the tags back onto the lines. The
// separators are consumed as delimiters and never receive a line tag.
func (s *LangSyntax) Retokenize(lines []*Line) {
	total := 0
	for _, line := range lines {
		total += len(line.content) + 1
	}
	src := make([]byte, 0, total)
	for _, line := range lines {
		src = append(src, line.content...)
		src = append(src, '\n')
	}

	tags := make([]HighlightTag, 0, len(src))
	i := 0
	for i < len(src) {
		if n := wordLen(src[i:]); n > 0 {
			tag := TagIdentifier
			if s.keywords[string(src[i:i+n])] {
				tag = TagKeyword
			}
			tags = appendRun(tags, tag, n)
			i += n
			continue
		}

		if n := numberLen(src[i:]); n > 0 {
			tags = appendRun(tags, TagNumber, n)
			i += n
			continue
		}

		if n := stringLen(src[i:]); n > 0 {
			tags = appendRun(tags, TagString, n)
			i += n
			continue
		}

		if isBracket(src[i]) {
			tags = append(tags, TagBracket)
			i++
			continue
		}

		// A position where both comment forms could start takes the
		// longer candidate.
		if n := max(s.lineCommentLen(src[i:]), s.blockCommentLen(src[i:])); n > 0 {
			tags = appendRun(tags, TagComment, n)
			i += n
			continue
		}

		tags = append(tags, TagStandard)
		i++
	}

	for _, line := range lines {
		line.tags = make([]HighlightTag, 0, len(line.content))
	}
	lineIndex := 0
	for pos, c := range src {
		if c == '\n' {
			lineIndex++
		} else {
			lines[lineIndex].tags = append(lines[lineIndex].tags, tags[pos])
		}
	}
}

// Color resolves a tag through the theme.
func (s *LangSyntax) Color(tag HighlightTag) (termbox.Attribute, termbox.Attribute) {
	switch tag {
	case TagIdentifier:
		return GetThemeColor(ColorSourceIdentifier)
	case TagKeyword:
		return GetThemeColor(ColorSourceKeyword)
	case TagNumber:
		return GetThemeColor(ColorSourceNumber)
	case TagBracket:
		return GetThemeColor(ColorSourceBracket)
	case TagString:
		return GetThemeColor(ColorSourceString)
	case TagComment:
		return GetThemeColor(ColorSourceComment)
	case TagSearchResult:
		return GetThemeColor(ColorSearchMatch)
	default:
		return GetThemeColor(ColorDefault)
	}
}

// lineCommentLen measures a line comment at the start of src, including the
// newline that terminates it.
func (s *LangSyntax) lineCommentLen(src []byte) int {
	if len(s.lineComment) == 0 || !bytes.HasPrefix(src, s.lineComment) {
		return 0
	}
	n := len(s.lineComment)
	for n < len(src) {
		c := src[n]
		n++
		if c == '\n' {
			break
		}
	}
	return n
}

// blockCommentLen measures a block comment at the start of src, counting
// nested open/close pairs. An unterminated comment runs to the end of src.
func (s *LangSyntax) blockCommentLen(src []byte) int {
	if len(s.blockStart) == 0 || !bytes.HasPrefix(src, s.blockStart) {
		return 0
	}
	n := len(s.blockStart)
	depth := 1
	for n < len(src) {
		if bytes.HasPrefix(src[n:], s.blockStart) {
			depth++
			n += len(s.blockStart)
			continue
		}
		if bytes.HasPrefix(src[n:], s.blockEnd) {
			depth--
			n += len(s.blockEnd)
			continue
		}
		if depth == 0 {
			break
		}
		n++
	}
	return n
}

// wordLen measures an identifier at the start of src: a letter or underscore
// followed by letters, digits, or underscores.
func wordLen(src []byte) int {
	n := 0
	for n < len(src) {
		c := src[n]
		if isLetter(c) || c == '_' || (isDigit(c) && n > 0) {
			n++
		} else {
			break
		}
	}
	return n
}

// numberLen measures a numeric literal: a digit followed by digits with
// embedded '_' or '.' allowed after the first.
func numberLen(src []byte) int {
	n := 0
	for n < len(src) {
		c := src[n]
		if isDigit(c) || (n > 0 && (c == '_' || c == '.')) {
			n++
		} else {
			break
		}
	}
	return n
}

// stringLen measures a quoted literal. A backslash escapes the following
// byte. Without a closing quote the literal runs to the end of src, which is
// the end of the whole buffer, not just the line.
func stringLen(src []byte) int {
	if len(src) == 0 {
		return 0
	}
	quote := src[0]
	if quote != '"' && quote != '\'' {
		return 0
	}
	n := 1
	escaped := false
	for n < len(src) {
		c := src[n]
		n++
		if !escaped && c == quote {
			break
		}
		escaped = c == '\\' && !escaped
	}
	return n
}

func isBracket(c byte) bool {
	switch c {
	case '(', ')', '{', '}', '[', ']':
		return true
	}
	return false
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func appendRun(tags []HighlightTag, tag HighlightTag, n int) []HighlightTag {
	for j := 0; j < n; j++ {
		tags = append(tags, tag)
	}
	return tags
}
