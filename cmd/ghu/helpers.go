package main

import (
	"context"
	"fmt"

	"github.com/raphi011/ghu/internal/config"
	"github.com/raphi011/ghu/internal/filter"
	"github.com/raphi011/ghu/internal/github"
	"github.com/raphi011/ghu/internal/listing"
)

// newClient builds an API client from the config in ctx. A config that
// failed to load is fatal here so the token is never sent to a fallback host.
func newClient(ctx context.Context) (*github.Client, error) {
	if err := config.LoadError(ctx); err != nil {
		return nil, fmt.Errorf("%w\nhint: fix the config or run 'ghu config init --force'", err)
	}
	cfg := config.FromContext(ctx)
	return github.New(github.Config{
		BaseURL:   cfg.BaseURL,
		Token:     cfg.Token,
		Timeout:   cfg.Timeout,
		PerPage:   cfg.PerPage,
		UserAgent: "ghu/" + version,
	})
}

// listingOptions maps the config onto controller options.
func listingOptions(cfg *config.Config) (listing.Options, error) {
	matcher, err := filter.ParseMatcher(cfg.Match)
	if err != nil {
		return listing.Options{}, err
	}
	category, err := filter.ParseCategory(cfg.DefaultCategory)
	if err != nil {
		return listing.Options{}, err
	}
	return listing.Options{
		MaxConcurrent: cfg.MaxConcurrentFetches,
		Matcher:       matcher,
		Category:      category,
	}, nil
}

// withAuthHint adds a token hint to authentication failures of
// unauthenticated requests.
func withAuthHint(cfg *config.Config, err error) error {
	if err == nil || cfg.HasToken() || !github.IsAuth(err) {
		return err
	}
	return fmt.Errorf("%w\nhint: set GHU_TOKEN or GITHUB_TOKEN to authenticate and raise the rate limit", err)
}

// loadUntilSettled handles controller events until the base list load
// finished. Detail fetches still in flight are left to the caller.
func loadUntilSettled(ctx context.Context, state func() listing.State, next func(context.Context) (listing.Event, error), handle func(listing.Event) bool) error {
	for state() == listing.Loading {
		ev, err := next(ctx)
		if err != nil {
			return err
		}
		handle(ev)
	}
	return nil
}
