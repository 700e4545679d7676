// Package github is the API gateway for the GitHub REST endpoints ghu reads.
//
// A Client is constructed explicitly from a Config (base URL, token,
// timeout) and injected into the listing controllers; there is no
// package-level client. Every call blocks the calling goroutine, so callers
// that must stay responsive run them on worker goroutines.
//
// # Endpoints
//
//   - ListUsers: GET /users
//   - GetUserDetail: GET /users/{login}
//   - ListUserRepositories: GET /users/{login}/repos?per_page=N (single page)
//   - GetLanguages: GET {languages_url}
//
// # Errors
//
// Failures are returned as *FetchError with one of four kinds. Use
// errors.Is with ErrNetwork, ErrHTTPStatus, ErrDecode or ErrNotFound to
// classify them, and IsAuth to detect a missing or rejected token.
// The gateway never retries.
//
// # Pass-through payload
//
// User, UserDetail and Repository decode only the fields ghu reads. The
// complete API object is kept verbatim in the Raw field and is never
// interpreted.
package github
