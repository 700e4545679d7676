package listing

import (
	"strconv"

	"github.com/raphi011/ghu/internal/github"
)

// Placeholder is shown for profile fields that are absent or not yet fetched.
const Placeholder = "--"

// Profile is a user merged with cached detail, if any.
type Profile struct {
	User   github.User        `json:"user" yaml:"user"`
	Detail *github.UserDetail `json:"detail,omitempty" yaml:"detail,omitempty"` // nil until enrichment resolves
}

// Login returns the user's login.
func (p Profile) Login() string {
	return p.User.Login
}

// Enriched reports whether detail has been fetched.
func (p Profile) Enriched() bool {
	return p.Detail != nil
}

// Name returns the display name, falling back to the login.
func (p Profile) Name() string {
	if p.Detail != nil && p.Detail.Name != nil && *p.Detail.Name != "" {
		return *p.Detail.Name
	}
	return p.User.Login
}

// Email returns the public email or Placeholder.
func (p Profile) Email() string {
	return p.field(func(d *github.UserDetail) *string { return d.Email })
}

// Company returns the company or Placeholder.
func (p Profile) Company() string {
	return p.field(func(d *github.UserDetail) *string { return d.Company })
}

// Location returns the location or Placeholder.
func (p Profile) Location() string {
	return p.field(func(d *github.UserDetail) *string { return d.Location })
}

// Bio returns the bio or Placeholder.
func (p Profile) Bio() string {
	return p.field(func(d *github.UserDetail) *string { return d.Bio })
}

// Blog returns the blog URL or Placeholder.
func (p Profile) Blog() string {
	if p.Detail == nil || p.Detail.Blog == "" {
		return Placeholder
	}
	return p.Detail.Blog
}

// Followers returns the follower count or Placeholder.
func (p Profile) Followers() string {
	if p.Detail == nil {
		return Placeholder
	}
	return strconv.Itoa(p.Detail.Followers)
}

// Following returns the following count or Placeholder.
func (p Profile) Following() string {
	if p.Detail == nil {
		return Placeholder
	}
	return strconv.Itoa(p.Detail.Following)
}

func (p Profile) field(get func(*github.UserDetail) *string) string {
	if p.Detail == nil {
		return Placeholder
	}
	if v := get(p.Detail); v != nil && *v != "" {
		return *v
	}
	return Placeholder
}
