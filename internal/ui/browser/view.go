package browser

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/raphi011/ghu/internal/filter"
	"github.com/raphi011/ghu/internal/format"
	"github.com/raphi011/ghu/internal/github"
	"github.com/raphi011/ghu/internal/listing"
	"github.com/raphi011/ghu/internal/ui/styles"
)

// Column widths of the users screen
const (
	loginWidth    = 20
	nameWidth     = 22
	emailWidth    = 26
	companyWidth  = 18
	locationWidth = 18
)

// View renders the active screen.
func (m *Model) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = !m.quit
	return v
}

func (m *Model) render() string {
	if m.quit {
		return ""
	}
	if m.screen == usersScreen {
		return m.usersView()
	}
	return m.reposView()
}

func (m *Model) usersView() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("GitHub users") + "\n")
	b.WriteString(m.input.View() + "\n\n")

	switch m.users.State() {
	case listing.Loading:
		if m.users.Total() == 0 {
			b.WriteString(m.spinner.View() + " Loading users...\n")
		}
	case listing.Failed:
		b.WriteString(styles.ErrorStyle.Render(m.users.Err().Error()) + "\n")
	}

	view := m.users.View()
	query := m.users.Query()
	matcher := m.users.Matcher()
	end := min(m.offset+m.pageSize(), len(view))
	for i := m.offset; i < end; i++ {
		b.WriteString(m.userRow(view[i], i == m.cursor, matcher.Positions(view[i].Login(), query)) + "\n")
	}

	if m.users.State() == listing.Ready {
		count := fmt.Sprintf("%d users", m.users.Count())
		if query != "" {
			count += fmt.Sprintf(" of %d", m.users.Total())
		}
		b.WriteString("\n" + styles.MutedStyle.Render(count) + "\n")
	}
	b.WriteString(m.footer("↑/↓ move • enter repositories • ctrl+y copy url • ctrl+r reload • esc clear/quit"))
	return b.String()
}

func (m *Model) userRow(p listing.Profile, selected bool, positions []int) string {
	marker := "  "
	login := highlight(p.Login(), positions)
	if selected {
		marker = styles.SelectedStyle.Render("> ")
		login = styles.SelectedStyle.Render(login)
	}
	return marker + strings.Join([]string{
		cell(login, loginWidth),
		cell(p.Name(), nameWidth),
		cell(styles.MutedStyle.Render(p.Email()), emailWidth),
		cell(p.Company(), companyWidth),
		cell(p.Location(), locationWidth),
	}, " ")
}

func (m *Model) reposView() string {
	var b strings.Builder

	b.WriteString(m.profileHeader() + "\n")
	b.WriteString(m.tabs() + "\n")
	b.WriteString(m.input.View() + "\n\n")
	b.WriteString(styles.Bold.Render(format.CategoryTitle(m.repos.Category())) + "\n")

	switch m.repos.State() {
	case listing.Loading:
		b.WriteString(m.spinner.View() + " Loading repositories...\n")
	case listing.Failed:
		b.WriteString(styles.ErrorStyle.Render(m.repos.Err().Error()) + "\n")
	}

	view := m.repos.View()
	end := min(m.offset+m.pageSize(), len(view))
	for i := m.offset; i < end; i++ {
		b.WriteString(m.repoRow(view[i], i == m.cursor) + "\n")
		if view[i].Name == m.expanded {
			b.WriteString(m.breakdownView())
		}
	}

	if m.repos.State() == listing.Ready {
		b.WriteString("\n" + styles.MutedStyle.Render(format.CountLabel(m.repos.Count())) + "\n")
	}
	b.WriteString(m.footer("↑/↓ move • tab category • enter languages • ctrl+y copy url • ctrl+r reload • esc back"))
	return b.String()
}

func (m *Model) profileHeader() string {
	p, ok := m.users.Select(m.repos.Login())
	if !ok {
		return styles.TitleStyle.Render(m.repos.Login())
	}
	line := styles.TitleStyle.Render(p.Name())
	if p.Name() != p.Login() {
		line += " " + styles.MutedStyle.Render(p.Login())
	}
	stats := fmt.Sprintf("%s followers · %s following", p.Followers(), p.Following())
	return line + "\n" + styles.MutedStyle.Render(stats)
}

func (m *Model) tabs() string {
	var parts []string
	for _, c := range filter.Categories() {
		if c == m.repos.Category() {
			parts = append(parts, styles.ActiveTabStyle.Render(c.String()))
		} else {
			parts = append(parts, styles.TabStyle.Render(c.String()))
		}
	}
	return strings.Join(parts, "")
}

func (m *Model) repoRow(r github.Repository, selected bool) string {
	sym := styles.CurrentSymbols()
	marker := "  "
	name := r.Name
	if selected {
		marker = styles.SelectedStyle.Render("> ")
		name = styles.SelectedStyle.Render(name)
	}

	lang := format.Language(r)
	if r.Language != nil {
		lang = styles.LanguageDot(format.LanguageColor(lang)) + " " + lang
	}

	cols := []string{
		cell(name, 28),
		cell(lang, 16),
		cell(styles.FormatCount(sym.Star, format.Stars(r)), 8),
		cell(styles.FormatCount(sym.Issue, format.Issues(r)), 8),
		cell(styles.FormatCount(sym.Watcher, format.Watchers(r)), 8),
		styles.FormatBadge(format.Visibility(r), r.Archived),
	}
	row := marker + strings.Join(cols, " ")
	if desc := format.Description(r); desc != "" {
		width := m.width - ansi.StringWidth(row) - 1
		row += " " + styles.MutedStyle.Render(format.Truncate(desc, width))
	}
	return row
}

func (m *Model) breakdownView() string {
	if m.langErr != nil {
		return "    " + styles.ErrorStyle.Render(m.langErr.Error()) + "\n"
	}
	if m.breakdown == nil {
		return "    " + m.spinner.View() + " Loading languages...\n"
	}
	if len(m.breakdown) == 0 {
		return "    " + styles.MutedStyle.Render("no languages detected") + "\n"
	}
	var b strings.Builder
	for _, share := range m.breakdown {
		fmt.Fprintf(&b, "    %s %s %s\n",
			styles.LanguageDot(format.LanguageColor(share.Name)),
			cell(share.Name, 20),
			styles.MutedStyle.Render(format.Percent(share.Percent)))
	}
	return b.String()
}

func (m *Model) footer(help string) string {
	var b strings.Builder
	if m.status != "" {
		b.WriteString(styles.InfoStyle.Render(m.status) + "\n")
	}
	b.WriteString(styles.MutedStyle.Render(help))
	return b.String()
}

// highlight renders the runes at positions with the highlight style.
func highlight(label string, positions []int) string {
	if len(positions) == 0 {
		return label
	}
	marked := make(map[int]bool, len(positions))
	for _, p := range positions {
		marked[p] = true
	}
	var b strings.Builder
	for i, r := range []rune(label) {
		if marked[i] {
			b.WriteString(styles.HighlightStyle.Render(string(r)))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// cell truncates s to width cells and pads it to exactly width.
func cell(s string, width int) string {
	s = format.Truncate(s, width)
	if pad := width - ansi.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}
