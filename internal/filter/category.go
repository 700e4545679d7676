package filter

import (
	"fmt"
	"strings"
)

// Category selects a subset of a user's repositories.
// The zero value is All.
type Category int

const (
	All Category = iota
	Public
	Forks
	Archived
)

var categoryNames = [...]string{"All", "Public", "Forks", "Archived"}

// Categories returns every category in display order.
func Categories() []Category {
	return []Category{All, Public, Forks, Archived}
}

// String returns the display name, e.g. "Forks".
func (c Category) String() string {
	if c < All || c > Archived {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

// ParseCategory parses a category name, ignoring case.
// Empty selects All.
func ParseCategory(s string) (Category, error) {
	if s == "" {
		return All, nil
	}
	for _, c := range Categories() {
		if strings.EqualFold(s, c.String()) {
			return c, nil
		}
	}
	return All, fmt.Errorf("invalid category %q: must be all, public, forks, or archived", s)
}

// Set implements pflag.Value.
func (c *Category) Set(s string) error {
	parsed, err := ParseCategory(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Type implements pflag.Value.
func (c *Category) Type() string {
	return "category"
}

// Flags are the repository attributes category predicates read.
type Flags struct {
	Private  bool
	Fork     bool
	Archived bool
}

// Matches reports whether a repository with flags f belongs to c.
// Public and Archived overlap: an archived public repository is in both.
func (c Category) Matches(f Flags) bool {
	switch c {
	case Public:
		return !f.Private
	case Forks:
		return f.Fork
	case Archived:
		return f.Archived
	}
	return true
}

// ByCategory returns the items in category c, in input order.
func ByCategory[T any](items []T, c Category, flags func(T) Flags) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if c.Matches(flags(item)) {
			out = append(out, item)
		}
	}
	return out
}
