package styles

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

func TestSetNerdfont(t *testing.T) {
	SetNerdfont(false)
	if NerdfontEnabled() {
		t.Error("expected nerdfont to be disabled")
	}
	if got := CurrentSymbols().Star; got != "★" {
		t.Errorf("expected default star symbol, got %q", got)
	}

	SetNerdfont(true)
	if !NerdfontEnabled() {
		t.Error("expected nerdfont to be enabled")
	}
	if got := CurrentSymbols().Star; got != "\uf005" {
		t.Errorf("expected nerdfont star symbol, got %q", got)
	}

	SetNerdfont(false)
}

func TestFormatCount(t *testing.T) {
	tests := []struct {
		symbol string
		count  string
		want   string
	}{
		{"★", "12", "★ 12"},
		{"★", "", ""},
	}
	for _, tt := range tests {
		if got := FormatCount(tt.symbol, tt.count); got != tt.want {
			t.Errorf("FormatCount(%q, %q) = %q, want %q", tt.symbol, tt.count, got, tt.want)
		}
	}
}

func TestFormatBadge(t *testing.T) {
	if got := FormatBadge("", false); got != "" {
		t.Errorf("empty badge = %q", got)
	}

	for _, archived := range []bool{false, true} {
		got := ansi.Strip(FormatBadge("Public Archived", archived))
		if !strings.Contains(got, "Public Archived") {
			t.Errorf("FormatBadge(archived=%v) = %q, want badge text", archived, got)
		}
	}
}

func TestLanguageDot(t *testing.T) {
	SetNerdfont(false)
	if got := ansi.Strip(LanguageDot("#00ADD8")); got != "●" {
		t.Errorf("LanguageDot stripped = %q, want ●", got)
	}
}

func TestFormatLink(t *testing.T) {
	style := lipgloss.NewStyle()

	plain := FormatLink("alice/r1", "", style)
	if strings.Contains(plain, "\x1b]8;") {
		t.Errorf("FormatLink without url should not emit a hyperlink: %q", plain)
	}

	linked := FormatLink("alice/r1", "https://github.com/alice/r1", style)
	if !strings.Contains(linked, "https://github.com/alice/r1") {
		t.Errorf("FormatLink = %q, want hyperlink target", linked)
	}
	if got := ansi.Strip(linked); got != "alice/r1" {
		t.Errorf("FormatLink stripped = %q, want alice/r1", got)
	}
}
