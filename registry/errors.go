package registry

import (
	"errors"
	"fmt"
)

// ErrorCode is a stable category for programmatic error handling.
type ErrorCode string

// NotFound is the only failure code resolution produces. A primitive-name
// mismatch, an unknown type URL and a stale manager version all carry this
// code on purpose: callers must not be able to distinguish "doesn't exist"
// from "exists but too old" by error shape, only by message text, and
// message text is for humans.
const NotFound ErrorCode = "NOT_FOUND"

// CodedError is the registry's structured error type.
//
// Message is intended for humans; do not match on it.
type CodedError struct {
	Code    ErrorCode
	Message string
}

func (e *CodedError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func notFoundf(format string, args ...any) error {
	return &CodedError{Code: NotFound, Message: fmt.Sprintf(format, args...)}
}

// IsNotFound reports whether err is (or wraps) a NOT_FOUND registry error.
func IsNotFound(err error) bool {
	var e *CodedError
	if !errors.As(err, &e) {
		return false
	}
	return e.Code == NotFound
}
