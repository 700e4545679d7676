package listing

import (
	"context"
	"fmt"

	"github.com/raphi011/ghu/internal/filter"
	"github.com/raphi011/ghu/internal/github"
)

// Repositories controls one user's repository list, filtered by category
// and by name.
type Repositories struct {
	core
	gw       Gateway
	login    string
	category filter.Category
	base     []github.Repository
	view     []github.Repository
}

// NewRepositories creates a Repositories controller starting in
// opts.Category.
func NewRepositories(ctx context.Context, gw Gateway, opts Options) *Repositories {
	return &Repositories{
		core:     newCore(ctx, opts),
		gw:       gw,
		category: opts.Category,
	}
}

// RepoFlags extracts the attributes category predicates read.
func RepoFlags(r github.Repository) filter.Flags {
	return filter.Flags{Private: r.Private, Fork: r.Fork, Archived: r.Archived}
}

func repoName(r github.Repository) string {
	return r.Name
}

// Load fetches login's repositories under a new generation and returns it.
// Category and query are kept.
func (r *Repositories) Load(login string) uint64 {
	gen := r.begin()
	if login != r.login {
		r.base = nil
		r.view = nil
	}
	r.login = login
	r.log.Debug("loading repositories", "login", login, "gen", gen)
	r.run.spawn(func(ctx context.Context) Event {
		repos, err := r.gw.ListUserRepositories(ctx, login)
		return Event{kind: evRepos, gen: gen, login: login, repos: repos, err: err}
	})
	r.notify()
	return gen
}

// Handle applies a worker result. It reports whether the projection changed.
func (r *Repositories) Handle(ev Event) bool {
	if !r.run.accept(ev) || ev.kind != evRepos {
		return false
	}
	if !r.current(ev, "repository list") {
		return false
	}

	if ev.err != nil {
		r.state = Failed
		r.err = fmt.Errorf("failed to list repositories of %s: %w", ev.login, ev.err)
		r.base = nil
		r.view = nil
		r.notify()
		return true
	}
	r.base = ev.repos
	r.state = Ready
	r.project()
	r.notify()
	return true
}

// Wait handles worker results until none are pending.
func (r *Repositories) Wait(ctx context.Context) error {
	return r.run.wait(ctx, r.Handle)
}

// SetCategory recomputes the projection from the base list.
func (r *Repositories) SetCategory(c filter.Category) {
	r.category = c
	r.project()
	r.notify()
}

// SetQuery filters the projection by repository name.
func (r *Repositories) SetQuery(q string) {
	r.query = q
	r.project()
	r.notify()
}

// Category returns the current category.
func (r *Repositories) Category() filter.Category {
	return r.category
}

// Login returns the owner of the listed repositories.
func (r *Repositories) Login() string {
	return r.login
}

// View returns a copy of the projection.
func (r *Repositories) View() []github.Repository {
	out := make([]github.Repository, len(r.view))
	copy(out, r.view)
	return out
}

// Count returns the projection size.
func (r *Repositories) Count() int {
	return len(r.view)
}

// Total returns the base list size.
func (r *Repositories) Total() int {
	return len(r.base)
}

// Find returns the repository named name from the base list.
func (r *Repositories) Find(name string) (github.Repository, bool) {
	for _, repo := range r.base {
		if repo.Name == name {
			return repo, true
		}
	}
	return github.Repository{}, false
}

func (r *Repositories) project() {
	byCategory := filter.ByCategory(r.base, r.category, RepoFlags)
	r.view = filter.ByTextWith(r.matcher, byCategory, r.query, repoName)
}
