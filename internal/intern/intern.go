// Package intern provides canonical strings for single-rune flag identifiers.
// Used by args when rendering identifiers in errors and listings.
package intern

import (
	"sync"
)

// RuneInterner caches the string forms of runes outside the ASCII letter table
type RuneInterner struct {
	bare    map[rune]string
	flagged map[rune]string
	mutex   sync.RWMutex
}

// NewRuneInterner creates an interner with optional pre-allocated capacity
func NewRuneInterner(capacity int) *RuneInterner {
	if capacity <= 0 {
		capacity = 16
	}
	return &RuneInterner{
		bare:    make(map[rune]string, capacity),
		flagged: make(map[rune]string, capacity),
	}
}

// Rune returns the canonical string for r ("x")
func (ri *RuneInterner) Rune(r rune) string {
	if i := asciiLetterIndex(r); i >= 0 {
		return bareLetters[i]
	}
	return ri.lookup(ri.bare, r, "")
}

// Flag returns the canonical dash-prefixed form of r ("-x")
func (ri *RuneInterner) Flag(r rune) string {
	if i := asciiLetterIndex(r); i >= 0 {
		return flaggedLetters[i]
	}
	return ri.lookup(ri.flagged, r, "-")
}

func (ri *RuneInterner) lookup(table map[rune]string, r rune, prefix string) string {
	ri.mutex.RLock()
	s, ok := table[r]
	ri.mutex.RUnlock()
	if ok {
		return s
	}

	ri.mutex.Lock()
	defer ri.mutex.Unlock()
	if s, ok = table[r]; ok {
		return s
	}
	s = prefix + string(r)
	table[r] = s
	return s
}

// Stats returns how many non-ASCII runes have been interned
func (ri *RuneInterner) Stats() int {
	ri.mutex.RLock()
	defer ri.mutex.RUnlock()
	return len(ri.bare) + len(ri.flagged)
}

// a-z (0-25), A-Z (26-51)
func asciiLetterIndex(r rune) int {
	switch {
	case r >= 'a' && r <= 'z':
		return int(r - 'a')
	case r >= 'A' && r <= 'Z':
		return 26 + int(r-'A')
	default:
		return -1
	}
}

var bareLetters, flaggedLetters = buildLetterTables()

func buildLetterTables() (bare, flagged [52]string) {
	for r := 'a'; r <= 'z'; r++ {
		bare[r-'a'] = string(r)
		flagged[r-'a'] = "-" + string(r)
	}
	for r := 'A'; r <= 'Z'; r++ {
		bare[26+r-'A'] = string(r)
		flagged[26+r-'A'] = "-" + string(r)
	}
	return bare, flagged
}

// Global is the process-wide interner used by args.
var Global = NewRuneInterner(0)

// Rune returns the canonical string for r using the global interner
func Rune(r rune) string {
	return Global.Rune(r)
}

// Flag returns the canonical "-r" string using the global interner
func Flag(r rune) string {
	return Global.Flag(r)
}
