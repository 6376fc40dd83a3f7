package secerr

import (
	"errors"
	"fmt"
)

// ValidationError reports input that failed policy. UserMessage is safe to
// present to an end user; LogMessage carries the diagnostic detail and must
// only go to logs. The two are never merged.
type ValidationError struct {
	Context     string
	UserMessage string
	LogMessage  string
	Cause       error
}

// NewValidation builds a ValidationError for the given context label.
func NewValidation(context, userMessage, logMessage string) *ValidationError {
	return &ValidationError{
		Context:     context,
		UserMessage: userMessage,
		LogMessage:  logMessage,
	}
}

// WithCause attaches the underlying error and returns the receiver.
func (e *ValidationError) WithCause(cause error) *ValidationError {
	e.Cause = cause
	return e
}

func (e *ValidationError) Error() string {
	if e.Context == "" {
		return e.UserMessage
	}
	return fmt.Sprintf("%s: %s", e.Context, e.UserMessage)
}

func (e *ValidationError) Unwrap() error { return e.Cause }

// IntrusionError reports a failure whose pattern is itself evidence of an
// attack rather than a user mistake. It always propagates; no call mode
// swallows it into an ErrorList.
type IntrusionError struct {
	Context     string
	UserMessage string
	LogMessage  string
}

// NewIntrusion builds an IntrusionError for the given context label.
func NewIntrusion(context, userMessage, logMessage string) *IntrusionError {
	return &IntrusionError{
		Context:     context,
		UserMessage: userMessage,
		LogMessage:  logMessage,
	}
}

func (e *IntrusionError) Error() string {
	if e.Context == "" {
		return e.UserMessage
	}
	return fmt.Sprintf("%s: %s", e.Context, e.UserMessage)
}

// EncodingError reports that canonicalization could not safely resolve the
// input, typically because it was encoded more than once or in several
// schemes at the same time.
type EncodingError struct {
	Message string
	Cause   error
}

func (e *EncodingError) Error() string { return e.Message }

func (e *EncodingError) Unwrap() error { return e.Cause }

// IsValidation reports whether err is or wraps a ValidationError.
func IsValidation(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}

// IsIntrusion reports whether err is or wraps an IntrusionError.
func IsIntrusion(err error) bool {
	var ierr *IntrusionError
	return errors.As(err, &ierr)
}

// IsEncoding reports whether err is or wraps an EncodingError.
func IsEncoding(err error) bool {
	var eerr *EncodingError
	return errors.As(err, &eerr)
}
