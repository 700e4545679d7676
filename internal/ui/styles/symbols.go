package styles

import (
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// Symbols holds the icon set based on nerdfont configuration
type Symbols struct {
	Star     string
	Issue    string
	Watcher  string
	Fork     string
	Language string
}

// Default symbols (no patched font required)
var defaultSymbols = Symbols{
	Star:     "★",
	Issue:    "⊙",
	Watcher:  "◉",
	Fork:     "⑂",
	Language: "●",
}

// Nerd font symbols
var nerdfontSymbols = Symbols{
	Star:     "\uf005", // nf-fa-star
	Issue:    "\uf41b", // nf-oct-issue_opened
	Watcher:  "\uf441", // nf-oct-eye
	Fork:     "\uf402", // nf-oct-repo_forked
	Language: "\uf111", // nf-fa-circle
}

var useNerdfont bool

var currentSymbols = defaultSymbols

// SetNerdfont enables or disables nerd font symbols
func SetNerdfont(enabled bool) {
	useNerdfont = enabled
	if enabled {
		currentSymbols = nerdfontSymbols
	} else {
		currentSymbols = defaultSymbols
	}
}

// NerdfontEnabled returns whether nerd font symbols are enabled
func NerdfontEnabled() bool {
	return useNerdfont
}

// CurrentSymbols returns the current symbol set
func CurrentSymbols() Symbols {
	return currentSymbols
}

// LanguageDot renders the language symbol in the given hex color.
func LanguageDot(hex string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render(currentSymbols.Language)
}

// FormatCount prefixes a non-empty count with symbol. Empty counts stay
// empty so zero values disappear from the row.
func FormatCount(symbol, count string) string {
	if count == "" {
		return ""
	}
	return symbol + " " + count
}

// FormatBadge renders a visibility badge, highlighted for archived repositories.
func FormatBadge(text string, archived bool) string {
	if text == "" {
		return ""
	}
	if archived {
		return ArchivedBadgeStyle.Render(text)
	}
	return BadgeStyle.Render(text)
}

// FormatLink renders text with an OSC 8 hyperlink to url.
// Terminals without hyperlink support show the plain text.
func FormatLink(text, url string, style lipgloss.Style) string {
	if url == "" {
		return style.Render(text)
	}
	return ansi.SetHyperlink(url) + style.Render(text) + ansi.ResetHyperlink()
}
