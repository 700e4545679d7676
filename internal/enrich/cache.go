// Package enrich holds user profile details fetched lazily after the user
// list is shown.
//
// The cache is append-only: a stored detail is never replaced or evicted
// for the lifetime of the process. BeginFetch is an atomic claim that
// guarantees at most one in-flight fetch per login, and a login whose
// fetches keep failing is given up on after MaxAttempts.
package enrich

import (
	"sync"

	"github.com/raphi011/ghu/internal/github"
)

// MaxAttempts is how many times a login may be claimed without a stored
// result: the first fetch plus one retry.
const MaxAttempts = 2

type entry struct {
	detail   github.UserDetail
	stored   bool
	inFlight bool
	attempts int
}

// Cache maps login to UserDetail. Safe for concurrent use.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*entry
	stored  int
}

// New creates an empty cache.
func New() *Cache {
	return &Cache{entries: make(map[string]*entry)}
}

// Has reports whether detail for login has been stored.
func (c *Cache) Has(login string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[login]
	return ok && e.stored
}

// Get returns the stored detail for login.
func (c *Cache) Get(login string) (github.UserDetail, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[login]
	if !ok || !e.stored {
		return github.UserDetail{}, false
	}
	return e.detail, true
}

// BeginFetch claims login for fetching. It returns true exactly once until
// the claim is released by Store or Abandon, and false when detail is
// already stored or the login has used up its attempts.
func (c *Cache) BeginFetch(login string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[login]
	if !ok {
		e = &entry{}
		c.entries[login] = e
	}
	if e.stored || e.inFlight || e.attempts >= MaxAttempts {
		return false
	}
	e.inFlight = true
	e.attempts++
	return true
}

// Store records detail for login and releases any claim on it.
// The first stored value wins; later calls are no-ops.
func (c *Cache) Store(login string, detail github.UserDetail) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[login]
	if !ok {
		e = &entry{}
		c.entries[login] = e
	}
	e.inFlight = false
	if e.stored {
		return
	}
	e.detail = detail
	e.stored = true
	c.stored++
}

// Abandon releases the claim on login after a failed fetch. The failed
// attempt still counts towards MaxAttempts.
func (c *Cache) Abandon(login string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[login]; ok {
		e.inFlight = false
	}
}

// InFlight reports whether login is currently claimed.
func (c *Cache) InFlight(login string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[login]
	return ok && e.inFlight
}

// Len returns the number of stored details.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stored
}
