package listing

import (
	"context"
	"fmt"

	"github.com/raphi011/ghu/internal/enrich"
	"github.com/raphi011/ghu/internal/filter"
	"github.com/raphi011/ghu/internal/github"
)

// Users controls the user list and drives profile detail enrichment.
type Users struct {
	core
	gw    Gateway
	cache *enrich.Cache
	base  []github.User
	view  []Profile

	skipDetails bool
}

// NewUsers creates a Users controller. ctx bounds the lifetime of its
// workers and carries the logger. cache may be shared across controllers.
func NewUsers(ctx context.Context, gw Gateway, cache *enrich.Cache, opts Options) *Users {
	if cache == nil {
		cache = enrich.New()
	}
	return &Users{
		core:        newCore(ctx, opts),
		gw:          gw,
		cache:       cache,
		skipDetails: opts.SkipDetails,
	}
}

// Load fetches the user list under a new generation and returns it.
func (u *Users) Load() uint64 {
	gen := u.begin()
	u.log.Debug("loading users", "gen", gen)
	u.run.spawn(func(ctx context.Context) Event {
		users, err := u.gw.ListUsers(ctx)
		return Event{kind: evUsers, gen: gen, users: users, err: err}
	})
	u.notify()
	return gen
}

// Handle applies a worker result. It reports whether the projection changed.
func (u *Users) Handle(ev Event) bool {
	if !u.run.accept(ev) {
		return false
	}

	switch ev.kind {
	case evUsers:
		if !u.current(ev, "user list") {
			return false
		}
		if ev.err != nil {
			u.state = Failed
			u.err = fmt.Errorf("failed to list users: %w", ev.err)
			u.base = nil
			u.view = nil
			u.notify()
			return true
		}
		u.base = ev.users
		u.query = ""
		u.state = Ready
		u.project()
		if !u.skipDetails {
			u.enrich(ev.gen)
		}
		u.notify()
		return true

	case evDetail:
		if ev.err != nil {
			u.cache.Abandon(ev.login)
			u.log.Debug("detail fetch failed", "login", ev.login, "err", ev.err)
			return false
		}
		// Stored even when stale; the cache is append-only
		u.cache.Store(ev.login, ev.detail)
		if !u.visible(ev.login) {
			return false
		}
		u.project()
		u.notify()
		return true
	}
	return false
}

// Wait handles worker results until none are pending.
func (u *Users) Wait(ctx context.Context) error {
	return u.run.wait(ctx, u.Handle)
}

// SetQuery filters the projection by login. The base list and in-flight
// enrichment are unaffected.
func (u *Users) SetQuery(q string) {
	u.query = q
	u.project()
	u.notify()
}

// View returns a copy of the projection.
func (u *Users) View() []Profile {
	out := make([]Profile, len(u.view))
	copy(out, u.view)
	return out
}

// Count returns the projection size.
func (u *Users) Count() int {
	return len(u.view)
}

// Total returns the base list size.
func (u *Users) Total() int {
	return len(u.base)
}

// Select returns the base user merged with cached detail. It never waits
// for enrichment.
func (u *Users) Select(login string) (Profile, bool) {
	for _, user := range u.base {
		if user.Login == login {
			return u.profile(user), true
		}
	}
	return Profile{}, false
}

// Cache returns the enrichment cache.
func (u *Users) Cache() *enrich.Cache {
	return u.cache
}

// Matcher returns the text matcher.
func (u *Users) Matcher() filter.Matcher {
	return u.matcher
}

func (u *Users) project() {
	users := filter.ByTextWith(u.matcher, u.base, u.query, func(user github.User) string { return user.Login })
	view := make([]Profile, len(users))
	for i, user := range users {
		view[i] = u.profile(user)
	}
	u.view = view
}

func (u *Users) profile(user github.User) Profile {
	p := Profile{User: user}
	if detail, ok := u.cache.Get(user.Login); ok {
		p.Detail = &detail
	}
	return p
}

// enrich claims and fetches detail for every base user not yet cached.
func (u *Users) enrich(gen uint64) {
	for _, user := range u.base {
		login := user.Login
		if u.cache.Has(login) || !u.cache.BeginFetch(login) {
			continue
		}
		u.run.spawnLimited(func(ctx context.Context) Event {
			detail, err := u.gw.GetUserDetail(ctx, login)
			return Event{kind: evDetail, gen: gen, login: login, detail: detail, err: err}
		})
	}
}

func (u *Users) visible(login string) bool {
	for _, user := range u.base {
		if user.Login == login {
			return true
		}
	}
	return false
}
