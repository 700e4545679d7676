package listing

import (
	"context"
	"testing"
	"time"

	"github.com/raphi011/ghu/internal/github"
)

type usersReply struct {
	users []github.User
	err   error
}

type detailReply struct {
	detail github.UserDetail
	err    error
}

type reposReply struct {
	repos []github.Repository
	err   error
}

type usersCall struct {
	reply chan usersReply
}

type detailCall struct {
	login string
	reply chan detailReply
}

type reposCall struct {
	login string
	reply chan reposReply
}

// fakeGateway hands every call to the test through a channel and blocks
// until the test replies, so result ordering is under test control.
type fakeGateway struct {
	users   chan usersCall
	details chan detailCall
	repos   chan reposCall
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		users:   make(chan usersCall),
		details: make(chan detailCall),
		repos:   make(chan reposCall),
	}
}

func (f *fakeGateway) ListUsers(ctx context.Context) ([]github.User, error) {
	c := usersCall{reply: make(chan usersReply, 1)}
	select {
	case f.users <- c:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	select {
	case r := <-c.reply:
		return r.users, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (f *fakeGateway) GetUserDetail(ctx context.Context, login string) (github.UserDetail, error) {
	c := detailCall{login: login, reply: make(chan detailReply, 1)}
	select {
	case f.details <- c:
	case <-ctx.Done():
		return github.UserDetail{}, ctx.Err()
	}
	select {
	case r := <-c.reply:
		return r.detail, r.err
	case <-ctx.Done():
		return github.UserDetail{}, ctx.Err()
	}
}

func (f *fakeGateway) ListUserRepositories(ctx context.Context, login string) ([]github.Repository, error) {
	c := reposCall{login: login, reply: make(chan reposReply, 1)}
	select {
	case f.repos <- c:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	select {
	case r := <-c.reply:
		return r.repos, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// serve answers every call automatically until ctx is done.
func (f *fakeGateway) serve(ctx context.Context, users []github.User, details map[string]github.UserDetail) {
	go func() {
		for {
			select {
			case c := <-f.users:
				c.reply <- usersReply{users: users}
			case c := <-f.details:
				c.reply <- detailReply{detail: details[c.login]}
			case <-ctx.Done():
				return
			}
		}
	}()
}

const testTimeout = 2 * time.Second

func recv[T any](t *testing.T, ch <-chan T) T {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(testTimeout):
		t.Fatal("timed out waiting for gateway call")
	}
	var zero T
	return zero
}

// noCall fails if the gateway receives a call on ch within a short window.
func noCall[T any](t *testing.T, ch <-chan T) {
	t.Helper()
	select {
	case <-ch:
		t.Fatal("unexpected gateway call")
	case <-time.After(50 * time.Millisecond):
	}
}

func nextEvent(t *testing.T, next func(context.Context) (Event, error)) Event {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()
	ev, err := next(ctx)
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	return ev
}

func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return ctx
}

func strPtr(s string) *string { return &s }

func logins(ps []Profile) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Login()
	}
	return out
}

func repoNames(rs []github.Repository) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.Name
	}
	return out
}
