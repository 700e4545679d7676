package listing

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/raphi011/ghu/internal/filter"
	"github.com/raphi011/ghu/internal/github"
)

func newTestRepos(t *testing.T, opts Options) (*Repositories, *fakeGateway) {
	t.Helper()
	f := newFakeGateway()
	r := NewRepositories(testContext(t), f, opts)
	t.Cleanup(r.Close)
	return r, f
}

func loadRepos(t *testing.T, r *Repositories, f *fakeGateway, login string, repos []github.Repository) {
	t.Helper()
	r.Load(login)
	c := recv(t, f.repos)
	if c.login != login {
		t.Fatalf("fetched repositories of %q, want %q", c.login, login)
	}
	c.reply <- reposReply{repos: repos}
	if !r.Handle(nextEvent(t, r.Next)) {
		t.Fatal("repository result was not applied")
	}
}

func wantRepos(t *testing.T, r *Repositories, want ...string) {
	t.Helper()
	got := repoNames(r.View())
	if len(got) == 0 && len(want) == 0 {
		return
	}
	if !slices.Equal(got, want) {
		t.Errorf("View() names = %v, want %v", got, want)
	}
}

func TestRepositories_CategoryAndQueryCompose(t *testing.T) {
	t.Parallel()

	r, f := newTestRepos(t, Options{})
	loadRepos(t, r, f, "alice", []github.Repository{
		{ID: 1, Name: "r1"},
		{ID: 2, Name: "r2", Fork: true},
	})
	if r.Category() != filter.All || r.Count() != 2 {
		t.Fatalf("initial category=%v count=%d, want All and 2", r.Category(), r.Count())
	}

	r.SetCategory(filter.Forks)
	wantRepos(t, r, "r2")

	r.SetQuery("r1")
	wantRepos(t, r)
	if r.Count() != 0 {
		t.Errorf("Count() = %d, want 0", r.Count())
	}

	r.SetCategory(filter.All)
	wantRepos(t, r, "r1")
}

func TestRepositories_InclusiveOverlap(t *testing.T) {
	t.Parallel()

	r, f := newTestRepos(t, Options{})
	loadRepos(t, r, f, "alice", []github.Repository{
		{ID: 1, Name: "legacy", Archived: true},
		{ID: 2, Name: "secret", Private: true},
		{ID: 3, Name: "current"},
	})

	tests := []struct {
		category filter.Category
		want     []string
	}{
		{filter.All, []string{"legacy", "secret", "current"}},
		{filter.Public, []string{"legacy", "current"}},
		{filter.Archived, []string{"legacy"}},
		{filter.Forks, nil},
	}
	for _, tt := range tests {
		t.Run(tt.category.String(), func(t *testing.T) {
			r.SetCategory(tt.category)
			wantRepos(t, r, tt.want...)
		})
	}
}

func TestRepositories_LoadAppliesCurrentCategory(t *testing.T) {
	t.Parallel()

	r, f := newTestRepos(t, Options{Category: filter.Archived})
	loadRepos(t, r, f, "alice", []github.Repository{
		{ID: 1, Name: "a", Archived: true},
		{ID: 2, Name: "b"},
		{ID: 3, Name: "c", Archived: true, Fork: true},
	})

	if r.Category() != filter.Archived {
		t.Errorf("Category() = %v, want Archived", r.Category())
	}
	wantRepos(t, r, "a", "c")
	if r.Count() != 2 || r.Total() != 3 {
		t.Errorf("Count()=%d Total()=%d, want 2 and 3", r.Count(), r.Total())
	}

	r.SetQuery("C")
	loadRepos(t, r, f, "alice", []github.Repository{
		{ID: 3, Name: "c", Archived: true},
		{ID: 4, Name: "cc"},
	})
	// reload keeps category and query
	wantRepos(t, r, "c")
}

func TestRepositories_StaleGenerationDiscarded(t *testing.T) {
	t.Parallel()

	r, f := newTestRepos(t, Options{})

	r.Load("alice")
	c1 := recv(t, f.repos)
	r.Load("bob")
	c2 := recv(t, f.repos)
	if r.Login() != "bob" {
		t.Errorf("Login() = %q, want bob", r.Login())
	}

	c2.reply <- reposReply{repos: []github.Repository{{ID: 2, Name: "bobs"}}}
	if !r.Handle(nextEvent(t, r.Next)) {
		t.Fatal("current result was not applied")
	}

	c1.reply <- reposReply{repos: []github.Repository{{ID: 1, Name: "alices"}}}
	if r.Handle(nextEvent(t, r.Next)) {
		t.Error("stale result must be discarded")
	}

	wantRepos(t, r, "bobs")
	if _, ok := r.Find("alices"); ok {
		t.Error("Find(alices) should miss")
	}
	repo, ok := r.Find("bobs")
	if !ok || repo.ID != 2 {
		t.Errorf("Find(bobs) = %+v, %v", repo, ok)
	}
}

func TestRepositories_LoadFailure(t *testing.T) {
	t.Parallel()

	r, f := newTestRepos(t, Options{})
	loadRepos(t, r, f, "alice", []github.Repository{{ID: 1, Name: "r1"}})

	r.Load("alice")
	recv(t, f.repos).reply <- reposReply{err: &github.FetchError{Kind: github.KindHTTPStatus, StatusCode: 403, URL: "u"}}
	if !r.Handle(nextEvent(t, r.Next)) {
		t.Fatal("failure was not applied")
	}

	if r.State() != Failed {
		t.Errorf("State() = %v, want Failed", r.State())
	}
	if !github.IsAuth(r.Err()) {
		t.Errorf("Err() = %v, want an auth error", r.Err())
	}
	if !strings.Contains(r.Err().Error(), "alice") {
		t.Errorf("Err() = %q, should name the login", r.Err())
	}
	wantRepos(t, r)
}

func TestRepositories_LoadOtherUserClearsList(t *testing.T) {
	t.Parallel()

	r, f := newTestRepos(t, Options{})
	loadRepos(t, r, f, "alice", []github.Repository{{ID: 1, Name: "r1"}})

	r.Load("bob")
	if r.State() != Loading {
		t.Errorf("State() = %v, want Loading", r.State())
	}
	if len(r.View()) != 0 {
		t.Errorf("previous owner's repositories shown while loading: %v", repoNames(r.View()))
	}
	recv(t, f.repos).reply <- reposReply{err: errors.New("boom")}
	r.Handle(nextEvent(t, r.Next))
}

func TestRepositories_ViewIsCopy(t *testing.T) {
	t.Parallel()

	r, f := newTestRepos(t, Options{})
	loadRepos(t, r, f, "alice", []github.Repository{{ID: 1, Name: "r1"}})

	view := r.View()
	view[0].Name = "changed"
	wantRepos(t, r, "r1")
}
