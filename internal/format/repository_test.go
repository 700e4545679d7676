package format

import (
	"testing"

	"github.com/raphi011/ghu/internal/filter"
	"github.com/raphi011/ghu/internal/github"
)

func strPtr(s string) *string { return &s }

func TestLanguageColor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		language string
		want     string
	}{
		{"Go", "#00ADD8"},
		{"go", "#00ADD8"},
		{"C++", "#00599C"},
		{"Jupyter Notebook", "#da5b0b"},
		{"Zig", DefaultLanguageColor},
		{"", DefaultLanguageColor},
	}
	for _, tt := range tests {
		if got := LanguageColor(tt.language); got != tt.want {
			t.Errorf("LanguageColor(%q) = %q, want %q", tt.language, got, tt.want)
		}
	}
}

func TestLanguage(t *testing.T) {
	t.Parallel()

	if got := Language(github.Repository{}); got != UnknownLanguage {
		t.Errorf("Language(nil) = %q, want %q", got, UnknownLanguage)
	}
	if got := Language(github.Repository{Language: strPtr("")}); got != UnknownLanguage {
		t.Errorf("Language(\"\") = %q, want %q", got, UnknownLanguage)
	}
	if got := Language(github.Repository{Language: strPtr("Rust")}); got != "Rust" {
		t.Errorf("Language(Rust) = %q", got)
	}
}

func TestCounts_HiddenWhenZero(t *testing.T) {
	t.Parallel()

	r := github.Repository{StargazersCount: 0, OpenIssuesCount: 3, Watchers: 0}
	if got := Stars(r); got != "" {
		t.Errorf("Stars = %q, want hidden", got)
	}
	if got := Issues(r); got != "3" {
		t.Errorf("Issues = %q, want 3", got)
	}
	if got := Watchers(r); got != "" {
		t.Errorf("Watchers = %q, want hidden", got)
	}
}

func TestVisibility(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		repo github.Repository
		want string
	}{
		{"public", github.Repository{Visibility: "public"}, "Public"},
		{"public archived", github.Repository{Visibility: "public", Archived: true}, "Public Archived"},
		{"uppercase input", github.Repository{Visibility: "PUBLIC"}, "Public"},
		{"private", github.Repository{Visibility: "private", Private: true}, "Private"},
		{"missing visibility private", github.Repository{Private: true}, "Private"},
		{"missing visibility public", github.Repository{}, "Public"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Visibility(tt.repo); got != tt.want {
				t.Errorf("Visibility() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDescription(t *testing.T) {
	t.Parallel()

	if got := Description(github.Repository{}); got != "" {
		t.Errorf("Description(nil) = %q", got)
	}
	got := Description(github.Repository{Description: strPtr("  multi\nline\tdescription ")})
	if got != "multi line description" {
		t.Errorf("Description = %q", got)
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	if got := Truncate("hello world", 20); got != "hello world" {
		t.Errorf("Truncate short = %q", got)
	}
	if got := Truncate("hello world", 6); got != "hello…" {
		t.Errorf("Truncate long = %q, want %q", got, "hello…")
	}
	if got := Truncate("hello", 0); got != "" {
		t.Errorf("Truncate zero width = %q", got)
	}
}

func TestLabels(t *testing.T) {
	t.Parallel()

	if got := CountLabel(3); got != "3 repositories" {
		t.Errorf("CountLabel(3) = %q", got)
	}
	if got := CountLabel(0); got != "0 repositories" {
		t.Errorf("CountLabel(0) = %q", got)
	}
	if got := CategoryTitle(filter.Forks); got != "Forks repositories" {
		t.Errorf("CategoryTitle(Forks) = %q", got)
	}
	if got := Percent(62.5); got != "62.5%" {
		t.Errorf("Percent = %q", got)
	}
}
