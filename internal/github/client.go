package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"github.com/raphi011/ghu/internal/log"
)

// Defaults
const (
	DefaultBaseURL = "https://api.github.com/"
	DefaultTimeout = 30 * time.Second
	DefaultPerPage = 100
	apiVersion     = "2022-11-28"
	mediaType      = "application/vnd.github+json"
)

// Config configures a Client.
type Config struct {
	BaseURL   string        // API root, defaults to DefaultBaseURL
	Token     string        // sent as a bearer token when non-empty
	Timeout   time.Duration // per request, defaults to DefaultTimeout
	PerPage   int           // repositories per user, clamped to 1..100
	UserAgent string        // defaults to "ghu"

	// Transport is the base round tripper, http.DefaultTransport when nil.
	Transport http.RoundTripper
}

// Client issues requests against the GitHub REST API.
type Client struct {
	http      *http.Client
	base      *url.URL
	perPage   int
	userAgent string
}

// New creates a Client from cfg.
func New(cfg Config) (*Client, error) {
	raw := cfg.BaseURL
	if raw == "" {
		raw = DefaultBaseURL
	}
	base, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", raw, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q: must be absolute", raw)
	}
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	perPage := cfg.PerPage
	switch {
	case perPage <= 0:
		perPage = DefaultPerPage
	case perPage > 100:
		perPage = 100
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = "ghu"
	}

	transport := cfg.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	if cfg.Token != "" {
		transport = &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token}),
			Base:   transport,
		}
	}

	return &Client{
		http:      &http.Client{Transport: transport, Timeout: timeout},
		base:      base,
		perPage:   perPage,
		userAgent: userAgent,
	}, nil
}

// BaseURL returns the API root requests are resolved against.
func (c *Client) BaseURL() string {
	return c.base.String()
}

// ListUsers fetches the first page of GET /users.
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var users []User
	if err := c.get(ctx, c.base.JoinPath("users").String(), &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetUserDetail fetches the profile of login.
func (c *Client) GetUserDetail(ctx context.Context, login string) (UserDetail, error) {
	var detail UserDetail
	if err := c.get(ctx, c.base.JoinPath("users", login).String(), &detail); err != nil {
		return UserDetail{}, err
	}
	return detail, nil
}

// ListUserRepositories fetches a single page of login's public repositories.
func (c *Client) ListUserRepositories(ctx context.Context, login string) ([]Repository, error) {
	u := c.base.JoinPath("users", login, "repos")
	u.RawQuery = url.Values{"per_page": {strconv.Itoa(c.perPage)}}.Encode()

	var repos []Repository
	if err := c.get(ctx, u.String(), &repos); err != nil {
		return nil, err
	}
	return repos, nil
}

// GetLanguages fetches a repository's languages_url. Relative URLs are
// resolved against the base URL. Absolute URLs must point at the base URL's
// scheme and host, since every request carries the token.
func (c *Client) GetLanguages(ctx context.Context, languagesURL string) (Languages, error) {
	ref, err := url.Parse(languagesURL)
	if err != nil {
		return nil, fmt.Errorf("invalid languages URL %q: %w", languagesURL, err)
	}
	target := c.base.ResolveReference(ref)
	if target.Scheme != c.base.Scheme || target.Host != c.base.Host {
		return nil, fmt.Errorf("languages URL %q is not on %s", languagesURL, c.base.Host)
	}

	langs := Languages{}
	if err := c.get(ctx, target.String(), &langs); err != nil {
		return nil, err
	}
	return langs, nil
}

// errorBody is the JSON error document GitHub returns with non-2xx statuses
type errorBody struct {
	Message string `json:"message"`
}

func (c *Client) get(ctx context.Context, endpoint string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return &FetchError{Kind: KindNetwork, URL: endpoint, Err: err}
	}
	req.Header.Set("Accept", mediaType)
	req.Header.Set("X-GitHub-Api-Version", apiVersion)
	req.Header.Set("User-Agent", c.userAgent)

	done := log.FromContext(ctx).Request(req.Method, endpoint)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		done(0, time.Since(start))
		return &FetchError{Kind: KindNetwork, URL: endpoint, Err: err}
	}
	defer resp.Body.Close()
	done(resp.StatusCode, time.Since(start))

	if resp.StatusCode == http.StatusNotFound {
		return &FetchError{Kind: KindNotFound, StatusCode: resp.StatusCode, URL: endpoint}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		fe := &FetchError{Kind: KindHTTPStatus, StatusCode: resp.StatusCode, URL: endpoint}
		var body errorBody
		if data, err := io.ReadAll(io.LimitReader(resp.Body, 4096)); err == nil && json.Unmarshal(data, &body) == nil {
			fe.Message = body.Message
		}
		return fe
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		// A body cut off by cancellation is a transport failure, not bad JSON
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
			return &FetchError{Kind: KindNetwork, URL: endpoint, Err: err}
		}
		return &FetchError{Kind: KindDecode, URL: endpoint, Err: err}
	}
	return nil
}
