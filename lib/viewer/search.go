// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package viewer

import (
	"strings"
	"sync"

	"github.com/charmbracelet/x/ansi"
	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"
)

var fuzzyInitOnce sync.Once

// searchMatch is one line that fuzzy-matches the query.
type searchMatch struct {
	// Line is the 0-based content line.
	Line int
	// Column is the display column where the match starts.
	Column int
	Score  int
}

// SearchModel holds the fuzzy line search. The caller routes
// keystrokes to HandleRune and HandleBackspace while Active and reads
// results through the accessor methods.
type SearchModel struct {
	// Input is the current query.
	Input string

	// Active is true while the query is being typed.
	Active bool

	matches []searchMatch
	current int
	slab    *util.Slab
}

// HandleRune appends a character to the query.
func (search *SearchModel) HandleRune(character rune) {
	search.Input += string(character)
}

// HandleBackspace removes the last character from the query. Returns
// false when the query was already empty.
func (search *SearchModel) HandleBackspace() bool {
	if search.Input == "" {
		return false
	}
	runes := []rune(search.Input)
	search.Input = string(runes[:len(runes)-1])
	return true
}

// Clear resets the query and drops all matches.
func (search *SearchModel) Clear() {
	search.Input = ""
	search.Active = false
	search.matches = nil
	search.current = 0
}

// Run matches the query against lines and selects the first match at
// or after line from.
func (search *SearchModel) Run(lines []string, from int) {
	if search.slab == nil {
		search.slab = util.MakeSlab(100*1024, 2048)
	}
	search.matches = fuzzyLines(lines, search.Input, search.slab)
	search.current = 0
	for index, match := range search.matches {
		if match.Line >= from {
			search.current = index
			break
		}
	}
}

// MatchCount returns the number of matching lines.
func (search *SearchModel) MatchCount() int {
	return len(search.matches)
}

// CurrentMatch returns the selected match, or nil if there is none.
func (search *SearchModel) CurrentMatch() *searchMatch {
	if len(search.matches) == 0 {
		return nil
	}
	return &search.matches[search.current]
}

// NextMatch selects the next match, wrapping around at the end.
func (search *SearchModel) NextMatch() {
	if len(search.matches) == 0 {
		return
	}
	search.current = (search.current + 1) % len(search.matches)
}

// PreviousMatch selects the previous match, wrapping to the end.
func (search *SearchModel) PreviousMatch() {
	if len(search.matches) == 0 {
		return
	}
	search.current = (search.current - 1 + len(search.matches)) % len(search.matches)
}

// fuzzyLines returns every line that fuzzy-matches query, in line
// order. Matching ignores case and styling.
func fuzzyLines(lines []string, query string, slab *util.Slab) []searchMatch {
	if query == "" {
		return nil
	}
	fuzzyInitOnce.Do(func() { algo.Init("default") })

	pattern := []rune(strings.ToLower(query))
	var matches []searchMatch
	for index, line := range lines {
		plain := ansi.Strip(line)
		chars := util.ToChars([]byte(plain))
		result, _ := algo.FuzzyMatchV2(false, true, true, &chars, pattern, false, slab)
		if result.Start < 0 {
			continue
		}
		runes := []rune(plain)
		start := min(result.Start, len(runes))
		matches = append(matches, searchMatch{
			Line:   index,
			Column: ansi.StringWidth(string(runes[:start])),
			Score:  result.Score,
		})
	}
	return matches
}
