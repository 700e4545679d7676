// Package static renders non-interactive command output: tables for users
// and repositories and the profile card printed by "ghu show".
package static

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/raphi011/ghu/internal/format"
	"github.com/raphi011/ghu/internal/github"
	"github.com/raphi011/ghu/internal/listing"
	"github.com/raphi011/ghu/internal/ui/styles"
)

// RenderTable creates a formatted table with proper column alignment.
// Headers and rows are rendered using lipgloss/table which automatically
// calculates column widths based on content. No borders are rendered.
func RenderTable(headers []string, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	var output strings.Builder

	t := table.New().
		Headers(headers...).
		Rows(rows...).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		BorderRow(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).PaddingRight(2)
			}
			return lipgloss.NewStyle().PaddingRight(2)
		})

	output.WriteString(t.String())
	output.WriteString("\n")

	return output.String()
}

// UserHeaders are the columns of the user table.
var UserHeaders = []string{"LOGIN", "NAME", "EMAIL", "COMPANY", "LOCATION"}

// UserTableRow renders one user row. Fields without detail show the
// placeholder.
func UserTableRow(p listing.Profile) []string {
	return []string{
		styles.FormatLink(p.Login(), p.User.HTMLURL, lipgloss.NewStyle()),
		p.Name(),
		p.Email(),
		p.Company(),
		p.Location(),
	}
}

// RepoHeaders are the columns of the repository table.
var RepoHeaders = []string{"NAME", "LANGUAGE", "STARS", "ISSUES", "WATCHERS", "VISIBILITY", "DESCRIPTION"}

// maxDescriptionWidth caps the description column
const maxDescriptionWidth = 60

// RepoTableRow renders one repository row. Zero counts are left blank.
func RepoTableRow(r github.Repository) []string {
	lang := format.Language(r)
	langCell := lang
	if r.Language != nil {
		langCell = styles.LanguageDot(format.LanguageColor(lang)) + " " + lang
	}

	return []string{
		styles.FormatLink(r.Name, r.HTMLURL, lipgloss.NewStyle()),
		langCell,
		format.Stars(r),
		format.Issues(r),
		format.Watchers(r),
		format.Visibility(r),
		format.Truncate(format.Description(r), maxDescriptionWidth),
	}
}

// RenderProfile renders the profile card shown by "ghu show".
func RenderProfile(p listing.Profile) string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render(p.Name()))
	if p.Name() != p.Login() {
		b.WriteString(" " + styles.MutedStyle.Render(p.Login()))
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s followers · %s following\n", p.Followers(), p.Following())

	fields := [][2]string{
		{"Email", p.Email()},
		{"Company", p.Company()},
		{"Location", p.Location()},
		{"Blog", p.Blog()},
		{"Bio", p.Bio()},
	}
	for _, f := range fields {
		fmt.Fprintf(&b, "%s %s\n", styles.MutedStyle.Render(fmt.Sprintf("%-9s", f[0])), f[1])
	}
	return b.String()
}
