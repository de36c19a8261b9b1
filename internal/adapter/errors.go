package adapter

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// Error taxonomy of the session client. Every failed exchange with the
// server, or failed attempt to reach it, matches exactly one of the kind
// sentinels below with [errors.Is]. Errors raised before a request is sent
// ([ErrInvalidPath], a session store read failure) or after a 2xx response
// ([ErrUnexpectedResponse], a failure to persist renewed tokens) are local
// failures and match none of them.
var (
	// ErrNetwork means no HTTP response was received.
	ErrNetwork = errors.New("network error")

	// ErrAuthExpired is a 401 that was not recovered by a renewal.
	ErrAuthExpired = errors.New("authentication expired")

	// ErrAuthRejected means the refresh token was refused or could not be
	// exchanged. It is always wrapped by [ErrSessionTerminated].
	ErrAuthRejected = errors.New("authentication rejected")

	// ErrValidation is any 4xx other than a recoverable 401.
	ErrValidation = errors.New("validation error")

	// ErrServer is a 5xx response.
	ErrServer = errors.New("server error")
)

// Refinements of [ErrValidation] by status code.
var (
	ErrBadRequest = errors.New("bad request")
	ErrForbidden  = errors.New("forbidden")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
)

var (
	// ErrSessionTerminated is returned once the stored session has been
	// cleared because it could not be renewed. The caller must log in again.
	ErrSessionTerminated = errors.New("session terminated")

	// ErrInvalidPath is returned for request paths that are not relative
	// API paths.
	ErrInvalidPath = errors.New("invalid request path")

	// ErrUnexpectedResponse is returned when a successful response body
	// cannot be decoded.
	ErrUnexpectedResponse = errors.New("unexpected response")
)

// APIError is a non-2xx response normalised from any of the backend's error
// shapes.
type APIError struct {
	Status     int
	Kind       error
	ErrorType  string
	Message    string
	RedirectTo string
	Fields     map[string][]string
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.fieldMessages()
	}
	if msg == "" {
		msg = http.StatusText(e.Status)
	}
	return fmt.Sprintf("%s: http %d: %s", e.Kind, e.Status, msg)
}

func (e *APIError) Unwrap() error { return e.Kind }

// Is matches the status refinements of [ErrValidation].
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrBadRequest:
		return e.Status == http.StatusBadRequest
	case ErrForbidden:
		return e.Status == http.StatusForbidden
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	case ErrConflict:
		return e.Status == http.StatusConflict
	}
	return false
}

// UserFacing returns the server message, or every field error joined in
// field order.
func (e *APIError) UserFacing() string {
	if e.Message != "" {
		return e.Message
	}
	return e.fieldMessages()
}

func (e *APIError) fieldMessages() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var msgs []string
	for _, k := range keys {
		msgs = append(msgs, e.Fields[k]...)
	}
	return strings.Join(msgs, " ")
}

// Default texts for errors without a server message.
const (
	MsgSessionExpired     = "Your session has expired. Please log in again."
	MsgNetworkUnreachable = "Unable to reach the server. Please check your connection."
)

// UserMessage picks the text a form shows for err: the server's message when
// it sent one, a fixed text for a terminated session or a network failure,
// otherwise fallback.
func UserMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, ErrSessionTerminated) {
		return MsgSessionExpired
	}
	if errors.Is(err, ErrNetwork) {
		return MsgNetworkUnreachable
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if msg := apiErr.UserFacing(); msg != "" {
			return msg
		}
	}
	return fallback
}
