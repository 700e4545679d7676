package listing

import (
	"context"
	"errors"

	"github.com/raphi011/ghu/internal/github"
)

// ErrClosed is returned by Wait and Next after Close.
var ErrClosed = errors.New("listing: controller closed")

type eventKind int

const (
	evUsers eventKind = iota + 1
	evDetail
	evRepos
)

// Event is a worker result waiting to be applied by the consumer.
// Obtain events from Next or Events and pass them to Handle on the
// goroutine that owns the controller.
type Event struct {
	src    *runner
	kind   eventKind
	gen    uint64
	login  string
	users  []github.User
	detail github.UserDetail
	repos  []github.Repository
	err    error
}

// Generation returns the load generation the event was produced for.
// Detail events carry the generation that spawned them.
func (e Event) Generation() uint64 {
	return e.gen
}

// runner spawns workers scoped to a controller lifetime and collects their
// results in an inbox. pending is only touched by the consumer.
type runner struct {
	ctx     context.Context
	cancel  context.CancelFunc
	inbox   chan Event
	sem     chan struct{}
	pending int
}

func newRunner(parent context.Context, limit int) *runner {
	if limit <= 0 {
		limit = 1
	}
	ctx, cancel := context.WithCancel(parent)
	return &runner{
		ctx:    ctx,
		cancel: cancel,
		inbox:  make(chan Event),
		sem:    make(chan struct{}, limit),
	}
}

// spawn runs fn on a new goroutine and posts its event to the inbox.
// The result is dropped if the runner is closed first.
func (r *runner) spawn(fn func(ctx context.Context) Event) {
	r.pending++
	go func() {
		r.post(fn(r.ctx))
	}()
}

// spawnLimited is spawn bounded by the runner semaphore.
func (r *runner) spawnLimited(fn func(ctx context.Context) Event) {
	r.pending++
	go func() {
		select {
		case r.sem <- struct{}{}:
		case <-r.ctx.Done():
			return
		}
		ev := fn(r.ctx)
		<-r.sem
		r.post(ev)
	}()
}

func (r *runner) post(ev Event) {
	ev.src = r
	select {
	case r.inbox <- ev:
	case <-r.ctx.Done():
	}
}

// accept reports whether ev belongs to this runner and settles its
// pending count.
func (r *runner) accept(ev Event) bool {
	if ev.src != r {
		return false
	}
	if r.pending > 0 {
		r.pending--
	}
	return true
}

// next blocks for the next event.
func (r *runner) next(ctx context.Context) (Event, error) {
	if r.closed() {
		return Event{}, ErrClosed
	}
	select {
	case ev := <-r.inbox:
		return ev, nil
	case <-ctx.Done():
		return Event{}, ctx.Err()
	case <-r.ctx.Done():
		return Event{}, ErrClosed
	}
}

// wait applies events with handle until nothing is pending.
func (r *runner) wait(ctx context.Context, handle func(Event) bool) error {
	for r.pending > 0 {
		ev, err := r.next(ctx)
		if err != nil {
			return err
		}
		handle(ev)
	}
	return nil
}

func (r *runner) close() {
	r.cancel()
}

func (r *runner) closed() bool {
	return r.ctx.Err() != nil
}
