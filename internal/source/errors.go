package source

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"
)

// Kind classifies why an upstream fetch produced no usable data. Every
// client and service failure is narrowed to one of these; nothing else
// may cross a package boundary.
type Kind int

const (
	// KindNotConfigured means a required credential is absent from the
	// configuration. This is a valid state, not a startup failure.
	KindNotConfigured Kind = iota
	// KindUnauthorized is an upstream 401.
	KindUnauthorized
	// KindNotFound is an upstream 404 (movie history only: unknown user).
	KindNotFound
	// KindUpstream is any other non-2xx response.
	KindUpstream
	// KindNetwork is a connection-level failure: DNS, refused, timeout.
	KindNetwork
	// KindMalformed means the response body did not match the expected
	// JSON shape.
	KindMalformed
)

func (k Kind) String() string {
	switch k {
	case KindNotConfigured:
		return "not_configured"
	case KindUnauthorized:
		return "unauthorized"
	case KindNotFound:
		return "not_found"
	case KindUpstream:
		return "upstream_error"
	case KindNetwork:
		return "network_failure"
	case KindMalformed:
		return "malformed_response"
	}
	return "unknown"
}

// snippetMax caps how much of an upstream error body is surfaced to the
// user.
const snippetMax = 200

// Error carries the source name, the failure kind, and a user-visible
// message. It never wraps a panic; services catch everything upstream
// and convert it here.
type Error struct {
	Source  string
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Source, e.Kind, e.Message)
}

// NotConfigured reports that the named credential is missing.
func NotConfigured(src, credential string) *Error {
	return &Error{
		Source:  src,
		Kind:    KindNotConfigured,
		Message: fmt.Sprintf("%s is not configured (set %s)", src, credential),
	}
}

// Network wraps a connection-level failure.
func Network(src string, err error) *Error {
	return &Error{
		Source:  src,
		Kind:    KindNetwork,
		Message: fmt.Sprintf("could not reach %s: %v", src, err),
	}
}

// Malformed reports an unexpected response shape.
func Malformed(src string, err error) *Error {
	return &Error{
		Source:  src,
		Kind:    KindMalformed,
		Message: fmt.Sprintf("unexpected response from %s: %v", src, err),
	}
}

// FromStatus maps a non-2xx upstream status to an Error. The body is
// truncated to 200 characters for display.
func FromStatus(src string, status int, body []byte) *Error {
	switch status {
	case http.StatusUnauthorized:
		return &Error{
			Source:  src,
			Kind:    KindUnauthorized,
			Message: fmt.Sprintf("%s rejected the configured credentials", src),
		}
	case http.StatusNotFound:
		return &Error{
			Source:  src,
			Kind:    KindNotFound,
			Message: fmt.Sprintf("%s: not found", src),
		}
	default:
		return &Error{
			Source:  src,
			Kind:    KindUpstream,
			Message: fmt.Sprintf("%s returned status %d: %s", src, status, Snippet(body)),
		}
	}
}

// Snippet returns at most 200 characters of body, trimmed, with control
// of utf8 boundaries so a truncated rune is dropped rather than split.
func Snippet(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) <= snippetMax {
		return s
	}
	s = s[:snippetMax]
	for len(s) > 0 && !utf8.ValidString(s) {
		s = s[:len(s)-1]
	}
	return s
}

// KindOf extracts the Kind from err, defaulting to KindUpstream for
// anything that is not a *source.Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUpstream
}
