package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/raphi011/ghu/internal/filter"
	"github.com/raphi011/ghu/internal/github"
)

// UnknownLanguage is shown for repositories without a detected language.
const UnknownLanguage = "Unknown"

// DefaultLanguageColor is used for languages missing from the palette.
const DefaultLanguageColor = "#FFFFFF"

var languageColors = map[string]string{
	"python":           "#3572a5",
	"javascript":       "#F7DF1E",
	"java":             "#b07219",
	"c":                "#A8B9CC",
	"c++":              "#00599C",
	"c#":               "#68217A",
	"ruby":             "#701516",
	"php":              "#4F5D95",
	"swift":            "#F05138",
	"objective-c":      "#438EFF",
	"kotlin":           "#a97bff",
	"go":               "#00ADD8",
	"rust":             "#000000",
	"typescript":       "#3178c6",
	"matlab":           "#0076A8",
	"r":                "#276DC3",
	"perl":             "#0298C3",
	"lua":              "#000080",
	"html":             "#E34F26",
	"css":              "#563d7c",
	"sql":              "#FFD700",
	"shell scripting":  "#4EAA25",
	"dart":             "#0175C2",
	"scala":            "#DC322F",
	"haskell":          "#5D4F85",
	"lisp":             "#3F85AF",
	"assembly":         "#6E4C13",
	"visual basic":     "#9457A1",
	"groovy":           "#4298B8",
	"tcl":              "#E4CC98",
	"cobol":            "#004B87",
	"jupyter notebook": "#da5b0b",
	"tex":              "#3d6117",
	"dockerfile":       "#384d54",
}

// LanguageColor returns the palette color for a language name, ignoring case.
func LanguageColor(language string) string {
	if c, ok := languageColors[strings.ToLower(language)]; ok {
		return c
	}
	return DefaultLanguageColor
}

// Language returns the repository language or UnknownLanguage.
func Language(r github.Repository) string {
	if r.Language == nil || *r.Language == "" {
		return UnknownLanguage
	}
	return *r.Language
}

// Count renders n, or "" when n is zero so the column stays blank.
func Count(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

// Stars returns the stargazer count, hidden when zero.
func Stars(r github.Repository) string { return Count(r.StargazersCount) }

// Issues returns the open issue count, hidden when zero.
func Issues(r github.Repository) string { return Count(r.OpenIssuesCount) }

// Watchers returns the watcher count, hidden when zero.
func Watchers(r github.Repository) string { return Count(r.Watchers) }

// Visibility returns the visibility badge text.
func Visibility(r github.Repository) string {
	vis := strings.ToLower(r.Visibility)
	if vis == "" {
		vis = "public"
		if r.Private {
			vis = "private"
		}
	}
	badge := strings.ToUpper(vis[:1]) + vis[1:]
	if r.Archived {
		badge += " Archived"
	}
	return badge
}

// Description returns the description or "".
func Description(r github.Repository) string {
	if r.Description == nil {
		return ""
	}
	return strings.Join(strings.Fields(*r.Description), " ")
}

// Truncate shortens s to width cells, appending an ellipsis when cut.
// ANSI sequences are preserved.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "…")
}

// CountLabel renders the projection size line, e.g. "3 repositories".
func CountLabel(n int) string {
	return fmt.Sprintf("%d repositories", n)
}

// CategoryTitle renders the heading for a category, e.g. "Forks repositories".
func CategoryTitle(c filter.Category) string {
	return c.String() + " repositories"
}

// Percent renders a language share with one decimal, e.g. "62.5%".
func Percent(p float64) string {
	return strconv.FormatFloat(p, 'f', 1, 64) + "%"
}
