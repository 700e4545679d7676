package github

import (
	"encoding/json"
)

// User is an entry of GET /users, keyed by Login.
type User struct {
	Login     string `json:"login" yaml:"login"`
	ID        int64  `json:"id" yaml:"id"`
	AvatarURL string `json:"avatar_url" yaml:"avatar_url"`
	HTMLURL   string `json:"html_url" yaml:"html_url"`
	Type      string `json:"type" yaml:"type"`
	SiteAdmin bool   `json:"site_admin" yaml:"site_admin"`

	Raw json.RawMessage `json:"-" yaml:"-"`
}

// UnmarshalJSON decodes the typed fields and keeps the full object in Raw.
func (u *User) UnmarshalJSON(data []byte) error {
	type plain User
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*u = User(p)
	u.Raw = append(json.RawMessage(nil), data...)
	return nil
}

// UserDetail is the response of GET /users/{login}.
// Nil string pointers are fields the API returned as null.
type UserDetail struct {
	Login       string  `json:"login" yaml:"login"`
	Name        *string `json:"name" yaml:"name,omitempty"`
	Email       *string `json:"email" yaml:"email,omitempty"`
	Company     *string `json:"company" yaml:"company,omitempty"`
	Location    *string `json:"location" yaml:"location,omitempty"`
	Bio         *string `json:"bio" yaml:"bio,omitempty"`
	Blog        string  `json:"blog" yaml:"blog,omitempty"`
	PublicRepos int     `json:"public_repos" yaml:"public_repos"`
	Followers   int     `json:"followers" yaml:"followers"`
	Following   int     `json:"following" yaml:"following"`

	Raw json.RawMessage `json:"-" yaml:"-"`
}

// UnmarshalJSON decodes the typed fields and keeps the full object in Raw.
func (d *UserDetail) UnmarshalJSON(data []byte) error {
	type plain UserDetail
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*d = UserDetail(p)
	d.Raw = append(json.RawMessage(nil), data...)
	return nil
}

// Repository is an entry of GET /users/{login}/repos, keyed by ID.
type Repository struct {
	ID              int64   `json:"id" yaml:"id"`
	Name            string  `json:"name" yaml:"name"`
	FullName        string  `json:"full_name" yaml:"full_name"`
	Description     *string `json:"description" yaml:"description,omitempty"`
	Language        *string `json:"language" yaml:"language,omitempty"`
	HTMLURL         string  `json:"html_url" yaml:"html_url"`
	LanguagesURL    string  `json:"languages_url" yaml:"languages_url"`
	StargazersCount int     `json:"stargazers_count" yaml:"stargazers_count"`
	OpenIssuesCount int     `json:"open_issues_count" yaml:"open_issues_count"`
	Watchers        int     `json:"watchers" yaml:"watchers"`
	ForksCount      int     `json:"forks_count" yaml:"forks_count"`
	Visibility      string  `json:"visibility" yaml:"visibility"`
	Private         bool    `json:"private" yaml:"private"`
	Archived        bool    `json:"archived" yaml:"archived"`
	Fork            bool    `json:"fork" yaml:"fork"`

	Raw json.RawMessage `json:"-" yaml:"-"`
}

// UnmarshalJSON decodes the typed fields and keeps the full object in Raw.
func (r *Repository) UnmarshalJSON(data []byte) error {
	type plain Repository
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*r = Repository(p)
	r.Raw = append(json.RawMessage(nil), data...)
	return nil
}
