// Package browser is the interactive users and repositories browser.
//
// The model drives two list controllers. Worker results arrive through
// listener commands that block on the controller's Next and come back as
// messages, so every controller mutation happens inside Update.
package browser

import (
	"context"
	"errors"
	"os"

	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/colorprofile"

	"github.com/raphi011/ghu/internal/filter"
	"github.com/raphi011/ghu/internal/github"
	"github.com/raphi011/ghu/internal/listing"
	"github.com/raphi011/ghu/internal/log"
	"github.com/raphi011/ghu/internal/ui/styles"
)

type screen int

const (
	usersScreen screen = iota
	reposScreen
)

// Messages carrying worker results back into Update.
type (
	usersEventMsg struct{ ev listing.Event }
	reposEventMsg struct{ ev listing.Event }
	listenErrMsg  struct{ err error }
	languagesMsg  struct {
		repo  string
		langs github.Languages
		err   error
	}
)

// Model is the bubbletea model of the browser.
type Model struct {
	ctx   context.Context
	users *listing.Users
	repos *listing.Repositories
	langs *github.LanguageCache

	screen  screen
	input   textinput.Model
	spinner spinner.Model

	cursor int
	offset int
	width  int
	height int

	usersListening bool
	reposListening bool

	// expanded is the repository whose language breakdown is shown
	expanded  string
	breakdown []github.LanguageShare
	langErr   error

	status string
	copy   func(string) error
	quit   bool
}

// New creates a browser over the given controllers. langs may be nil, in
// which case enter on a repository does nothing.
func New(ctx context.Context, users *listing.Users, repos *listing.Repositories, langs *github.LanguageCache) *Model {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "type to filter"
	ti.CharLimit = 64
	ti.SetWidth(40)
	st := ti.Styles()
	st.Cursor.Shape = tea.CursorBar
	ti.SetStyles(st)
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.PrimaryStyle

	return &Model{
		ctx:     ctx,
		users:   users,
		repos:   repos,
		langs:   langs,
		input:   ti,
		spinner: sp,
		width:   100,
		height:  24,
		copy:    clipboard.WriteAll,
	}
}

// Run starts the browser on stderr and blocks until the user quits.
func Run(ctx context.Context, users *listing.Users, repos *listing.Repositories, langs *github.LanguageCache) error {
	m := New(ctx, users, repos, langs)
	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithOutput(os.Stderr),
		tea.WithColorProfile(colorprofile.Detect(os.Stderr, os.Environ())))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

// Init loads the user list.
func (m *Model) Init() tea.Cmd {
	m.users.Load()
	return tea.Batch(m.spinner.Tick, textinput.Blink, m.listenUsers())
}

// Update applies a message.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampCursor()
		return m, nil

	case usersEventMsg:
		m.usersListening = false
		if m.users.Handle(msg.ev) && m.screen == usersScreen {
			m.clampCursor()
		}
		return m, m.listenUsers()

	case reposEventMsg:
		m.reposListening = false
		if m.repos.Handle(msg.ev) && m.screen == reposScreen {
			m.clampCursor()
		}
		return m, m.listenRepos()

	case languagesMsg:
		if msg.repo == m.expanded {
			m.langErr = msg.err
			m.breakdown = msg.langs.Breakdown()
		}
		return m, nil

	case listenErrMsg:
		if !errors.Is(msg.err, listing.ErrClosed) && !errors.Is(msg.err, context.Canceled) {
			log.FromContext(m.ctx).Debug("listener stopped", "err", msg.err)
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch msg.String() {
	case "ctrl+c":
		m.quit = true
		return m, tea.Quit
	case "esc":
		return m.escape()
	case "up":
		m.move(-1)
		return m, nil
	case "down":
		m.move(1)
		return m, nil
	case "pgup":
		m.move(-m.pageSize())
		return m, nil
	case "pgdown":
		m.move(m.pageSize())
		return m, nil
	case "home":
		m.cursor = 0
		m.clampCursor()
		return m, nil
	case "end":
		m.cursor = m.count() - 1
		m.clampCursor()
		return m, nil
	case "enter":
		return m.enter()
	case "tab":
		m.cycleCategory(1)
		return m, nil
	case "shift+tab":
		m.cycleCategory(-1)
		return m, nil
	case "ctrl+r":
		return m.reload()
	case "ctrl+y":
		m.copyURL()
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != before {
		m.setQuery(v)
	}
	return m, cmd
}

// escape clears the query first, then leaves the repository screen, then
// quits.
func (m *Model) escape() (tea.Model, tea.Cmd) {
	if m.input.Value() != "" {
		m.input.SetValue("")
		m.setQuery("")
		return m, nil
	}
	if m.screen == reposScreen {
		m.screen = usersScreen
		m.expanded = ""
		m.breakdown = nil
		m.input.SetValue(m.users.Query())
		m.cursor = m.indexOfLogin(m.repos.Login())
		m.clampCursor()
		return m, nil
	}
	m.quit = true
	return m, tea.Quit
}

func (m *Model) enter() (tea.Model, tea.Cmd) {
	if m.screen == usersScreen {
		view := m.users.View()
		if m.cursor >= len(view) {
			return m, nil
		}
		login := view[m.cursor].Login()
		m.screen = reposScreen
		m.cursor, m.offset = 0, 0
		m.input.SetValue("")
		if login != m.repos.Login() || m.repos.State() == listing.Failed {
			m.repos.SetQuery("")
			m.repos.Load(login)
		} else {
			m.input.SetValue(m.repos.Query())
		}
		return m, m.listenRepos()
	}

	view := m.repos.View()
	if m.cursor >= len(view) || m.langs == nil {
		return m, nil
	}
	repo := view[m.cursor]
	if m.expanded == repo.Name {
		m.expanded = ""
		m.breakdown = nil
		return m, nil
	}
	m.expanded = repo.Name
	m.breakdown = nil
	m.langErr = nil
	return m, m.fetchLanguages(repo)
}

func (m *Model) reload() (tea.Model, tea.Cmd) {
	if m.screen == usersScreen {
		m.users.Load()
		m.input.SetValue("")
		m.cursor, m.offset = 0, 0
		return m, tea.Batch(m.spinner.Tick, m.listenUsers())
	}
	if m.repos.Login() == "" {
		return m, nil
	}
	m.repos.Load(m.repos.Login())
	m.expanded = ""
	m.breakdown = nil
	return m, tea.Batch(m.spinner.Tick, m.listenRepos())
}

func (m *Model) copyURL() {
	url := m.highlightedURL()
	if url == "" {
		return
	}
	if err := m.copy(url); err != nil {
		m.status = "copy failed: " + err.Error()
		return
	}
	m.status = "copied " + url
}

func (m *Model) highlightedURL() string {
	if m.screen == usersScreen {
		view := m.users.View()
		if m.cursor < len(view) {
			return view[m.cursor].User.HTMLURL
		}
		return ""
	}
	view := m.repos.View()
	if m.cursor < len(view) {
		return view[m.cursor].HTMLURL
	}
	if p, ok := m.users.Select(m.repos.Login()); ok {
		return p.User.HTMLURL
	}
	return ""
}

func (m *Model) cycleCategory(step int) {
	if m.screen != reposScreen {
		return
	}
	cats := filter.Categories()
	next := (int(m.repos.Category()) + step + len(cats)) % len(cats)
	m.repos.SetCategory(cats[next])
	m.cursor, m.offset = 0, 0
}

func (m *Model) setQuery(q string) {
	if m.screen == usersScreen {
		m.users.SetQuery(q)
	} else {
		m.repos.SetQuery(q)
	}
	m.cursor, m.offset = 0, 0
}

func (m *Model) listenUsers() tea.Cmd {
	if m.usersListening || m.users.Pending() == 0 {
		return nil
	}
	m.usersListening = true
	return listen(m.ctx, m.users.Next, func(ev listing.Event) tea.Msg { return usersEventMsg{ev} })
}

func (m *Model) listenRepos() tea.Cmd {
	if m.reposListening || m.repos.Pending() == 0 {
		return nil
	}
	m.reposListening = true
	return listen(m.ctx, m.repos.Next, func(ev listing.Event) tea.Msg { return reposEventMsg{ev} })
}

func listen(ctx context.Context, next func(context.Context) (listing.Event, error), wrap func(listing.Event) tea.Msg) tea.Cmd {
	return func() tea.Msg {
		ev, err := next(ctx)
		if err != nil {
			return listenErrMsg{err}
		}
		return wrap(ev)
	}
}

func (m *Model) fetchLanguages(repo github.Repository) tea.Cmd {
	ctx, langs := m.ctx, m.langs
	return func() tea.Msg {
		l, err := langs.GetLanguages(ctx, repo.LanguagesURL)
		return languagesMsg{repo: repo.Name, langs: l, err: err}
	}
}

func (m *Model) count() int {
	if m.screen == usersScreen {
		return m.users.Count()
	}
	return m.repos.Count()
}

func (m *Model) indexOfLogin(login string) int {
	for i, p := range m.users.View() {
		if p.Login() == login {
			return i
		}
	}
	return 0
}

func (m *Model) move(delta int) {
	m.cursor += delta
	m.clampCursor()
}

// clampCursor keeps the cursor inside the projection and the scroll
// window around the cursor.
func (m *Model) clampCursor() {
	n := m.count()
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	page := m.pageSize()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+page {
		m.offset = m.cursor - page + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// pageSize is the number of list rows that fit below the header.
func (m *Model) pageSize() int {
	reserved := 6
	if m.screen == reposScreen {
		reserved = 11
	}
	if n := m.height - reserved; n > 1 {
		return n
	}
	return 1
}

// Cursor returns the index of the highlighted row.
func (m *Model) Cursor() int { return m.cursor }

// Query returns the search input value.
func (m *Model) Query() string { return m.input.Value() }

// OnRepositories reports whether the repository screen is active.
func (m *Model) OnRepositories() bool { return m.screen == reposScreen }
