// Package listing holds the list controllers that sit between the API
// gateway and the presentation layer.
//
// A controller owns a base list fetched from the API, the current filter
// state, and the projection derived from both. All state is owned by a
// single consumer goroutine: API calls run on worker goroutines that post
// results to the controller inbox, and the consumer applies them with
// Handle (or Wait, which handles until nothing is pending).
//
// Every Load is tagged with a new generation. Results whose generation is
// no longer current are discarded, so a superseded fetch never replaces
// the base list.
package listing

import (
	"context"

	"github.com/raphi011/ghu/internal/filter"
	"github.com/raphi011/ghu/internal/github"
	"github.com/raphi011/ghu/internal/log"
)

// State is the lifecycle of a controller's base list.
type State int

const (
	Idle State = iota
	Loading
	Ready
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Gateway is the subset of the API client the controllers call.
type Gateway interface {
	ListUsers(ctx context.Context) ([]github.User, error)
	GetUserDetail(ctx context.Context, login string) (github.UserDetail, error)
	ListUserRepositories(ctx context.Context, login string) ([]github.Repository, error)
}

// Options configure a controller.
type Options struct {
	// MaxConcurrent bounds parallel detail fetches (default 8).
	MaxConcurrent int
	// Matcher selects substring or fuzzy text filtering.
	Matcher filter.Matcher
	// Category is the initial repository category.
	Category filter.Category
	// SkipDetails disables profile detail fetches after a user list load.
	SkipDetails bool
}

const defaultMaxConcurrent = 8

// core is the state shared by both controllers.
type core struct {
	run       *runner
	log       *log.Logger
	matcher   filter.Matcher
	gen       uint64
	state     State
	err       error
	query     string
	listeners []func()
}

func newCore(ctx context.Context, opts Options) core {
	limit := opts.MaxConcurrent
	if limit <= 0 {
		limit = defaultMaxConcurrent
	}
	return core{
		run:     newRunner(ctx, limit),
		log:     log.FromContext(ctx),
		matcher: opts.Matcher,
	}
}

// State returns the lifecycle state.
func (c *core) State() State { return c.state }

// Err returns the error of the last failed load, nil otherwise.
func (c *core) Err() error { return c.err }

// Query returns the current text query.
func (c *core) Query() string { return c.query }

// Generation returns the generation of the latest Load.
func (c *core) Generation() uint64 { return c.gen }

// Pending returns the number of worker results not yet handled.
func (c *core) Pending() int { return c.run.pending }

// Events exposes the inbox for consumers that multiplex it with other
// channels, such as an event loop. Every event received must be passed
// to Handle.
func (c *core) Events() <-chan Event { return c.run.inbox }

// Next blocks until a worker result is available. It returns ErrClosed
// after Close.
func (c *core) Next(ctx context.Context) (Event, error) {
	return c.run.next(ctx)
}

// Subscribe registers fn to run on the consumer after every projection
// change. The returned func removes it.
func (c *core) Subscribe(fn func()) func() {
	c.listeners = append(c.listeners, fn)
	idx := len(c.listeners) - 1
	return func() {
		if idx < len(c.listeners) {
			c.listeners[idx] = nil
		}
	}
}

// Close cancels in-flight workers. Their results are dropped.
func (c *core) Close() {
	c.run.close()
}

func (c *core) notify() {
	for _, fn := range c.listeners {
		if fn != nil {
			fn()
		}
	}
}

// begin starts a new generation and enters Loading.
func (c *core) begin() uint64 {
	c.gen++
	c.state = Loading
	c.err = nil
	return c.gen
}

// current reports whether ev belongs to the latest generation, logging
// discarded ones.
func (c *core) current(ev Event, what string) bool {
	if ev.gen == c.gen {
		return true
	}
	c.log.Debug("discarding stale "+what, "gen", ev.gen, "current", c.gen)
	return false
}
