package filter

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/sahilm/fuzzy"
)

// Matcher selects how a text query matches an item key.
type Matcher int

const (
	// Substring matches a case-insensitive substring.
	Substring Matcher = iota
	// Fuzzy matches the query characters in order, not necessarily adjacent.
	Fuzzy
)

// ParseMatcher parses "substring" or "fuzzy". Empty selects Substring.
func ParseMatcher(s string) (Matcher, error) {
	switch strings.ToLower(s) {
	case "", "substring":
		return Substring, nil
	case "fuzzy":
		return Fuzzy, nil
	}
	return Substring, fmt.Errorf("unknown match mode %q", s)
}

func (m Matcher) String() string {
	if m == Fuzzy {
		return "fuzzy"
	}
	return "substring"
}

// ByText returns the items whose key contains query, ignoring case.
func ByText[T any](items []T, query string, key func(T) string) []T {
	return ByTextWith(Substring, items, query, key)
}

// ByTextWith returns the items whose key matches query under m,
// in input order.
func ByTextWith[T any](m Matcher, items []T, query string, key func(T) string) []T {
	if query == "" {
		out := make([]T, len(items))
		copy(out, items)
		return out
	}

	if m == Fuzzy {
		return byFuzzy(items, query, key)
	}

	q := strings.ToLower(query)
	out := make([]T, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(key(item)), q) {
			out = append(out, item)
		}
	}
	return out
}

// keySource implements fuzzy.Source over extracted keys.
type keySource []string

func (s keySource) String(i int) string { return s[i] }
func (s keySource) Len() int            { return len(s) }

func byFuzzy[T any](items []T, query string, key func(T) string) []T {
	keys := make(keySource, len(items))
	for i, item := range items {
		keys[i] = key(item)
	}

	// FindFrom orders by score; projections keep input order
	matched := make([]bool, len(items))
	for _, m := range fuzzy.FindFrom(query, keys) {
		matched[m.Index] = true
	}

	out := make([]T, 0, len(items))
	for i, item := range items {
		if matched[i] {
			out = append(out, item)
		}
	}
	return out
}

// Positions returns the rune indexes of label that match query under m,
// for highlighting. Returns nil when query is empty or does not match.
func (m Matcher) Positions(label, query string) []int {
	if query == "" {
		return nil
	}

	if m == Fuzzy {
		matches := fuzzy.Find(query, []string{label})
		if len(matches) == 0 {
			return nil
		}
		return matches[0].MatchedIndexes
	}

	hay := foldRunes(label)
	needle := foldRunes(query)
	for start := 0; start+len(needle) <= len(hay); start++ {
		if runesEqual(hay[start:start+len(needle)], needle) {
			pos := make([]int, len(needle))
			for i := range needle {
				pos[i] = start + i
			}
			return pos
		}
	}
	return nil
}

func foldRunes(s string) []rune {
	runes := []rune(s)
	for i, r := range runes {
		runes[i] = unicode.ToLower(r)
	}
	return runes
}

func runesEqual(a, b []rune) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
