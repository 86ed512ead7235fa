// Package fuzzy provides edit-distance suggestions for go-args error messages.
// Used by args.ErrorHandler to propose the closest type marker or colour name.
package fuzzy

import (
	"sort"
	"strings"
)

// Matcher ranks candidates by case-insensitive edit distance to an input
type Matcher struct {
	maxDistance int
	minLength   int
}

// NewMatcher creates a matcher accepting candidates within maxDistance edits
func NewMatcher(maxDistance int) *Matcher {
	return &Matcher{
		maxDistance: maxDistance,
		minLength:   2,
	}
}

// WithMinLength sets the shortest input (in runes) that gets suggestions.
// Type markers are one or two symbols long, so callers lower this to 1.
func (m *Matcher) WithMinLength(n int) *Matcher {
	m.minLength = n
	return m
}

// Match is a ranked candidate
type Match struct {
	Value    string
	Distance int
	Score    float64 // 0.0 to 1.0, higher is better
}

// FindBest returns the best candidate, or "" if none is close enough
func (m *Matcher) FindBest(input string, candidates []string) string {
	matches := m.FindMatches(input, candidates)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Value
}

// FindMatches returns every candidate within range, best first.
// A candidate identical to the input is never suggested; one that differs
// only in case is, with distance 0.
func (m *Matcher) FindMatches(input string, candidates []string) []Match {
	in := []rune(strings.ToLower(input))
	if len(in) < m.minLength {
		return nil
	}

	var matches []Match
	for _, candidate := range candidates {
		if candidate == input || candidate == "" {
			continue
		}
		cand := []rune(strings.ToLower(candidate))
		distance := m.distance(in, cand)
		if distance > m.maxDistance {
			continue
		}
		matches = append(matches, Match{
			Value:    candidate,
			Distance: distance,
			Score:    m.score(in, cand, distance),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score == matches[j].Score {
			return matches[i].Distance < matches[j].Distance
		}
		return matches[i].Score > matches[j].Score
	})
	return matches
}

// score weighs edit distance with prefix and length similarity
func (m *Matcher) score(a, b []rune, distance int) float64 {
	longest := max(len(a), len(b))
	if longest == 0 {
		return 1.0
	}

	editScore := 1.0 - float64(distance)/float64(longest)

	prefixBonus := 0.0
	if p := commonPrefix(a, b); p > 0 {
		prefixBonus = float64(p) / float64(min(len(a), len(b))) * 0.3
	}

	lengthBonus := (1.0 - float64(abs(len(a)-len(b)))/float64(longest)) * 0.2

	return min(editScore+prefixBonus+lengthBonus, 1.0)
}

// distance is a two-row Levenshtein that gives up once every cell in a row
// exceeds maxDistance.
func (m *Matcher) distance(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	if abs(len(a)-len(b)) > m.maxDistance {
		return m.maxDistance + 1
	}
	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)
	for i := range prev {
		prev[i] = i
	}

	for i := 1; i <= len(b); i++ {
		curr[0] = i
		rowMin := i
		for j := 1; j <= len(a); j++ {
			cost := 1
			if a[j-1] == b[i-1] {
				cost = 0
			}
			curr[j] = min(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
			rowMin = min(rowMin, curr[j])
		}
		if rowMin > m.maxDistance {
			return m.maxDistance + 1
		}
		prev, curr = curr, prev
	}
	return prev[len(a)]
}

func commonPrefix(a, b []rune) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

// SuggestMarker returns the recognised marker closest to a rejected schema tail
func SuggestMarker(input string, markers []string, maxDistance int) string {
	return NewMatcher(maxDistance).WithMinLength(1).FindBest(input, markers)
}

// SuggestName returns the closest enumerated name (e.g. a colour) to input
func SuggestName(input string, names []string, maxDistance int) string {
	return NewMatcher(maxDistance).FindBest(input, names)
}
