package main

// Incremental phrase search. Every keystroke in a find session rebuilds the
// match list from scratch and tags the matched bytes for the renderer; the
// next full retokenization clears the overlay.

// Match is the starting position of one search hit.
type Match struct {
	X int // Byte offset within the line.
	Y int // Line index.
}

// SearchData holds the matches of the most recent scan and the position used
// for cyclic next/previous navigation.
type SearchData struct {
	results []Match
	index   int
}

func NewSearchData() *SearchData {
	return &SearchData{}
}

// FindResults rescans the whole buffer for phrase and returns the first
// match. Retokenizing first drops the previous overlay. An empty phrase just
// clears the results, which is how a find session ends. Matches within one
// line never overlap: each scan resumes past the previous match's end.
func (s *SearchData) FindResults(phrase string, b *Buffer) (Match, bool) {
	b.Retokenize()

	s.results = s.results[:0]
	if phrase == "" {
		return Match{}, false
	}
	for row := 0; row < b.Len(); row++ {
		start := 0
		for {
			col, ok := b.FindPhrase(phrase, row, start)
			if !ok {
				break
			}
			s.results = append(s.results, Match{X: col, Y: row})
			start = col + len(phrase)
		}
	}

	for _, m := range s.results {
		tags := b.lines[m.Y].tags
		for i := 0; i < len(phrase); i++ {
			tags[m.X+i] = TagSearchResult
		}
	}

	if len(s.results) == 0 {
		return Match{}, false
	}
	return s.results[0], true
}

// GetNext advances to the next match, wrapping at the end.
func (s *SearchData) GetNext() (Match, bool) {
	if len(s.results) == 0 {
		return Match{}, false
	}
	s.index = (s.index + 1) % len(s.results)
	return s.results[s.index], true
}

// GetPrevious retreats to the previous match, wrapping at the start.
func (s *SearchData) GetPrevious() (Match, bool) {
	if len(s.results) == 0 {
		return Match{}, false
	}
	s.index = (s.index + len(s.results) - 1) % len(s.results)
	return s.results[s.index], true
}

func (s *SearchData) Count() int {
	return len(s.results)
}
