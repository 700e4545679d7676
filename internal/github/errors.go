package github

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a FetchError.
type Kind int

const (
	// KindNetwork means no HTTP response was received.
	KindNetwork Kind = iota + 1
	// KindHTTPStatus means the server answered with a non-2xx status other than 404.
	KindHTTPStatus
	// KindDecode means the response body was not the expected JSON.
	KindDecode
	// KindNotFound means the server answered 404.
	KindNotFound
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindHTTPStatus:
		return "http status"
	case KindDecode:
		return "decode"
	case KindNotFound:
		return "not found"
	}
	return "unknown"
}

// Sentinel errors matched by FetchError through errors.Is.
var (
	ErrNetwork    = errors.New("network error")
	ErrHTTPStatus = errors.New("unexpected HTTP status")
	ErrDecode     = errors.New("invalid response body")
	ErrNotFound   = errors.New("not found")
)

// FetchError describes a failed API call.
type FetchError struct {
	Kind       Kind
	StatusCode int    // set for KindHTTPStatus and KindNotFound
	URL        string // request URL
	Message    string // "message" field of a GitHub error body, if any
	Err        error  // underlying transport or decode error
}

func (e *FetchError) Error() string {
	switch e.Kind {
	case KindNetwork:
		return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
	case KindHTTPStatus:
		if e.Message != "" {
			return fmt.Sprintf("%s returned HTTP %d: %s", e.URL, e.StatusCode, e.Message)
		}
		return fmt.Sprintf("%s returned HTTP %d", e.URL, e.StatusCode)
	case KindDecode:
		return fmt.Sprintf("failed to decode response from %s: %v", e.URL, e.Err)
	case KindNotFound:
		return fmt.Sprintf("%s: not found", e.URL)
	}
	return fmt.Sprintf("request to %s failed", e.URL)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel for e.Kind.
func (e *FetchError) Is(target error) bool {
	switch target {
	case ErrNetwork:
		return e.Kind == KindNetwork
	case ErrHTTPStatus:
		return e.Kind == KindHTTPStatus
	case ErrDecode:
		return e.Kind == KindDecode
	case ErrNotFound:
		return e.Kind == KindNotFound
	}
	return false
}

// IsAuth reports whether err is a 401 or 403 response, which GitHub returns
// for a missing, invalid or under-scoped token.
func IsAuth(err error) bool {
	var fe *FetchError
	if !errors.As(err, &fe) || fe.Kind != KindHTTPStatus {
		return false
	}
	return fe.StatusCode == http.StatusUnauthorized || fe.StatusCode == http.StatusForbidden
}
