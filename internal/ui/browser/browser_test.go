package browser

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raphi011/ghu/internal/filter"
	"github.com/raphi011/ghu/internal/github"
	"github.com/raphi011/ghu/internal/listing"
)

type stubGateway struct {
	users   []github.User
	details map[string]github.UserDetail
	repos   map[string][]github.Repository
}

func (s *stubGateway) ListUsers(context.Context) ([]github.User, error) {
	return s.users, nil
}

func (s *stubGateway) GetUserDetail(_ context.Context, login string) (github.UserDetail, error) {
	if d, ok := s.details[login]; ok {
		return d, nil
	}
	return github.UserDetail{}, errors.New("no detail")
}

func (s *stubGateway) ListUserRepositories(_ context.Context, login string) ([]github.Repository, error) {
	return s.repos[login], nil
}

type stubLanguages map[string]github.Languages

func (s stubLanguages) GetLanguages(_ context.Context, url string) (github.Languages, error) {
	if l, ok := s[url]; ok {
		return l, nil
	}
	return nil, errors.New("not found")
}

func strPtr(s string) *string { return &s }

func newGateway() *stubGateway {
	return &stubGateway{
		users: []github.User{
			{Login: "alice", HTMLURL: "https://github.com/alice"},
			{Login: "bob", HTMLURL: "https://github.com/bob"},
			{Login: "carol", HTMLURL: "https://github.com/carol"},
		},
		details: map[string]github.UserDetail{
			"alice": {Login: "alice", Name: strPtr("Alice Liddell"), Followers: 7, Following: 2},
		},
		repos: map[string][]github.Repository{
			"alice": {
				{ID: 1, Name: "wonderland", Language: strPtr("Go"), HTMLURL: "https://github.com/alice/wonderland", LanguagesURL: "langs/wonderland"},
				{ID: 2, Name: "looking-glass", Fork: true},
				{ID: 3, Name: "rabbit-hole", Archived: true},
			},
		},
	}
}

// newTestModel returns an initialized browser with the user list loaded.
func newTestModel(t *testing.T) *Model {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	gw := newGateway()
	users := listing.NewUsers(ctx, gw, nil, listing.Options{})
	repos := listing.NewRepositories(ctx, gw, listing.Options{})
	t.Cleanup(users.Close)
	t.Cleanup(repos.Close)

	langs, err := github.NewLanguageCache(stubLanguages{
		"langs/wonderland": {"Go": 300, "Shell": 100},
	}, 0)
	require.NoError(t, err)

	m := New(ctx, users, repos, langs)
	m.Init()
	drain(t, m)
	return m
}

// drain feeds worker results into Update until nothing is pending.
func drain(t *testing.T, m *Model) {
	t.Helper()
	for m.users.Pending() > 0 {
		ev, err := m.users.Next(m.ctx)
		require.NoError(t, err)
		m.Update(usersEventMsg{ev})
	}
	for m.repos.Pending() > 0 {
		ev, err := m.repos.Next(m.ctx)
		require.NoError(t, err)
		m.Update(reposEventMsg{ev})
	}
}

func keyMsg(key string) tea.KeyPressMsg {
	switch key {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "tab":
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case "shift+tab":
		return tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}
	case "backspace":
		return tea.KeyPressMsg{Code: tea.KeyBackspace}
	case "ctrl+c":
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	case "ctrl+r":
		return tea.KeyPressMsg{Code: 'r', Mod: tea.ModCtrl}
	case "ctrl+y":
		return tea.KeyPressMsg{Code: 'y', Mod: tea.ModCtrl}
	default:
		if len(key) == 1 {
			r := rune(key[0])
			return tea.KeyPressMsg{Code: r, Text: key}
		}
		return tea.KeyPressMsg{}
	}
}

func press(m *Model, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = m.Update(keyMsg(k))
	}
	return cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func screenText(m *Model) string {
	return ansi.Strip(m.render())
}

func TestBrowser_InitialLoad(t *testing.T) {
	m := newTestModel(t)

	assert.Equal(t, listing.Ready, m.users.State())
	out := screenText(m)
	assert.Contains(t, out, "3 users")
	assert.Contains(t, out, "Alice Liddell")
	assert.Contains(t, out, "--", "users without detail show the placeholder")
}

func TestBrowser_TypingFilters(t *testing.T) {
	m := newTestModel(t)

	press(m, "o")
	assert.Equal(t, "o", m.Query())
	assert.Equal(t, "o", m.users.Query())
	assert.Equal(t, 2, m.users.Count(), "bob and carol contain o")
	assert.Contains(t, screenText(m), "2 users of 3")

	press(m, "b")
	assert.Equal(t, 1, m.users.Count())

	press(m, "backspace")
	assert.Equal(t, "o", m.users.Query())
	assert.Equal(t, 2, m.users.Count())
}

func TestBrowser_CursorMovement(t *testing.T) {
	m := newTestModel(t)

	press(m, "down", "down", "down", "down")
	assert.Equal(t, 2, m.Cursor(), "cursor stops at the last row")

	press(m, "up", "up", "up")
	assert.Equal(t, 0, m.Cursor())

	press(m, "down", "down", "c")
	assert.Equal(t, 0, m.Cursor(), "typing resets the cursor")
}

func TestBrowser_EscapeClearsThenQuits(t *testing.T) {
	m := newTestModel(t)

	press(m, "a")
	cmd := press(m, "esc")
	assert.False(t, isQuit(cmd))
	assert.Empty(t, m.Query())
	assert.Equal(t, 3, m.users.Count())

	cmd = press(m, "esc")
	assert.True(t, isQuit(cmd))
	assert.Empty(t, m.render())
}

func TestBrowser_CtrlCQuits(t *testing.T) {
	m := newTestModel(t)
	assert.True(t, isQuit(press(m, "ctrl+c")))
}

func TestBrowser_OpenRepositories(t *testing.T) {
	m := newTestModel(t)

	press(m, "enter")
	require.True(t, m.OnRepositories())
	assert.Equal(t, "alice", m.repos.Login())
	drain(t, m)

	out := screenText(m)
	assert.Contains(t, out, "Alice Liddell")
	assert.Contains(t, out, "7 followers · 2 following")
	assert.Contains(t, out, "All repositories")
	assert.Contains(t, out, "3 repositories")
	assert.Contains(t, out, "wonderland")
}

func TestBrowser_CategoryTabsComposeWithQuery(t *testing.T) {
	m := newTestModel(t)
	press(m, "enter")
	drain(t, m)

	press(m, "tab")
	assert.Equal(t, filter.Public, m.repos.Category())
	assert.Contains(t, screenText(m), "Public repositories")
	assert.Equal(t, 3, m.repos.Count())

	press(m, "tab", "tab")
	assert.Equal(t, filter.Archived, m.repos.Category())
	assert.Equal(t, 1, m.repos.Count())

	press(m, "shift+tab")
	assert.Equal(t, filter.Forks, m.repos.Category())
	press(m, "w")
	assert.Zero(t, m.repos.Count(), "no fork matches w")
	assert.Contains(t, screenText(m), "0 repositories")

	press(m, "tab", "tab")
	assert.Equal(t, filter.All, m.repos.Category(), "tab wraps around")
	assert.Equal(t, 1, m.repos.Count())
}

func TestBrowser_EscapeReturnsToUsers(t *testing.T) {
	m := newTestModel(t)
	press(m, "b")
	press(m, "backspace")
	press(m, "down", "enter")
	drain(t, m)
	require.True(t, m.OnRepositories())

	press(m, "r")
	press(m, "esc")
	assert.True(t, m.OnRepositories(), "first esc clears the repository query")
	assert.Empty(t, m.repos.Query())

	cmd := press(m, "esc")
	assert.False(t, isQuit(cmd))
	assert.False(t, m.OnRepositories())
	assert.Equal(t, 1, m.Cursor(), "cursor returns to the opened user")
}

func TestBrowser_LanguageBreakdown(t *testing.T) {
	m := newTestModel(t)
	press(m, "enter")
	drain(t, m)

	cmd := press(m, "enter")
	require.NotNil(t, cmd)
	assert.Contains(t, screenText(m), "Loading languages")

	m.Update(cmd())
	out := screenText(m)
	assert.Contains(t, out, "Go")
	assert.Contains(t, out, "75.0%")
	assert.Contains(t, out, "25.0%")

	press(m, "enter")
	assert.NotContains(t, screenText(m), "75.0%", "enter again collapses the breakdown")
}

func TestBrowser_LanguageBreakdownError(t *testing.T) {
	m := newTestModel(t)
	press(m, "enter")
	drain(t, m)

	press(m, "down")
	cmd := press(m, "enter")
	require.NotNil(t, cmd)
	m.Update(cmd())
	assert.Contains(t, screenText(m), "not found")
}

func TestBrowser_CopyURL(t *testing.T) {
	m := newTestModel(t)
	var copied []string
	m.copy = func(s string) error {
		copied = append(copied, s)
		return nil
	}

	press(m, "down", "ctrl+y")
	assert.Equal(t, []string{"https://github.com/bob"}, copied)
	assert.Contains(t, screenText(m), "copied https://github.com/bob")

	press(m, "up", "enter")
	drain(t, m)
	press(m, "ctrl+y")
	assert.Equal(t, "https://github.com/alice/wonderland", copied[len(copied)-1])

	m.copy = func(string) error { return errors.New("no clipboard") }
	press(m, "ctrl+y")
	assert.Contains(t, screenText(m), "copy failed: no clipboard")
}

func TestBrowser_ReloadResetsQuery(t *testing.T) {
	m := newTestModel(t)
	press(m, "a")
	gen := m.users.Generation()

	press(m, "ctrl+r")
	assert.Equal(t, gen+1, m.users.Generation())
	assert.Empty(t, m.Query())
	drain(t, m)
	assert.Equal(t, 3, m.users.Count())
}

func TestBrowser_MatchHighlight(t *testing.T) {
	got := highlight("alice", []int{0, 3})
	assert.Equal(t, "alice", ansi.Strip(got))
	assert.Equal(t, "alice", highlight("alice", nil))
}

func TestCell(t *testing.T) {
	assert.Equal(t, "ab   ", cell("ab", 5))
	assert.Equal(t, "abcd…", cell("abcdefgh", 5))
	assert.True(t, strings.HasPrefix(ansi.Strip(cell("\x1b[1mab\x1b[0m", 4)), "ab"))
}
