package arr

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies a failed request.
type ErrorKind int

const (
	// NoInternet means no request was attempted.
	NoInternet ErrorKind = iota + 1
	// BadStatusCode means the server answered with a status >= 300.
	BadStatusCode
	// DecodeFailure means the response did not match the expected shape.
	DecodeFailure
	// RequestFailure is any other transport fault.
	RequestFailure
	// Cancelled means the caller's context was cancelled. It is not a failure.
	Cancelled
)

func (k ErrorKind) String() string {
	switch k {
	case NoInternet:
		return "no internet"
	case BadStatusCode:
		return "bad status code"
	case DecodeFailure:
		return "decode failure"
	case RequestFailure:
		return "request failure"
	case Cancelled:
		return "cancelled"
	}
	return "unknown"
}

// Error is the classified result of a failed request.
type Error struct {
	Kind ErrorKind
	Code int
	Err  error
}

var (
	// ErrNoInternet matches any NoInternet error with errors.Is.
	ErrNoInternet = &Error{Kind: NoInternet}
	// ErrCancelled matches any Cancelled error with errors.Is.
	ErrCancelled = &Error{Kind: Cancelled}
	// ErrNotInLibrary is wrapped when an operation needs a library id the item lacks.
	ErrNotInLibrary = errors.New("item is not in the library")
)

func (e *Error) Error() string {
	switch e.Kind {
	case NoInternet:
		return "request failed: no internet connection"
	case BadStatusCode:
		return fmt.Sprintf("request failed: server responded with %d %s", e.Code, http.StatusText(e.Code))
	case DecodeFailure:
		return fmt.Sprintf("request failed: decode response: %v", e.Err)
	case RequestFailure:
		return fmt.Sprintf("request failed: %v", e.Err)
	case Cancelled:
		return "request cancelled"
	}
	return "request failed"
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches errors of the same kind, and the same status code when the target
// carries one.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.Code == 0 || t.Code == e.Code
}

// Suggestion returns a recovery hint for the user.
func (e *Error) Suggestion() string {
	switch e.Kind {
	case NoInternet:
		return "Check your network connection and try again."
	case BadStatusCode:
		switch {
		case e.Code == http.StatusUnauthorized || e.Code == http.StatusForbidden:
			return "Check the API key configured for this instance."
		case e.Code == http.StatusNotFound:
			return "The item no longer exists on the server, or the instance URL is wrong."
		case e.Code >= 500:
			return "The server encountered an error. Check its logs for details."
		}
		return "Check the instance URL and try again."
	case DecodeFailure:
		return "The server returned an unexpected response. Make sure the instance is up to date."
	case RequestFailure:
		return "Make sure the instance is running and reachable from this device."
	}
	return ""
}

// StatusCode returns an Error with the BadStatusCode kind.
func StatusCode(code int) *Error { return &Error{Kind: BadStatusCode, Code: code} }

// AsError returns err as an *Error, classifying unknown errors as
// RequestFailure. It returns nil for a nil error.
func AsError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	if errors.Is(err, context.Canceled) {
		return &Error{Kind: Cancelled, Err: err}
	}
	return &Error{Kind: RequestFailure, Err: err}
}

// IsCancelled reports whether err is a cancellation.
func IsCancelled(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrCancelled) || errors.Is(err, context.Canceled)
}
