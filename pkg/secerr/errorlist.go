package secerr

import (
	"fmt"
	"strings"
)

// Entry is one accumulated failure: the context label it was recorded under
// and the validation error itself.
type Entry struct {
	Context string
	Err     *ValidationError
}

// ErrorList accumulates validation failures across one logical validation
// pass. Entries keep insertion order. The zero value is ready to use.
//
// The list is owned by a single caller and must not be shared across
// goroutines without external synchronization.
type ErrorList struct {
	entries []Entry
}

// Add appends a failure under the given context label. Nil errors are
// ignored so call sites can append unconditionally.
func (l *ErrorList) Add(context string, err *ValidationError) {
	if err == nil {
		return
	}
	l.entries = append(l.entries, Entry{Context: context, Err: err})
}

// Len returns the number of accumulated failures.
func (l *ErrorList) Len() int { return len(l.entries) }

// Empty reports whether no failures were accumulated.
func (l *ErrorList) Empty() bool { return len(l.entries) == 0 }

// Entries returns the accumulated failures in insertion order.
func (l *ErrorList) Entries() []Entry { return l.entries }

// Errors returns the accumulated validation errors in insertion order.
func (l *ErrorList) Errors() []*ValidationError {
	out := make([]*ValidationError, 0, len(l.entries))
	for _, e := range l.entries {
		out = append(out, e.Err)
	}
	return out
}

// Contexts returns the distinct context labels in first-seen order.
func (l *ErrorList) Contexts() []string {
	var out []string
	seen := make(map[string]bool, len(l.entries))
	for _, e := range l.entries {
		if !seen[e.Context] {
			out = append(out, e.Context)
			seen[e.Context] = true
		}
	}
	return out
}

// ByContext returns the failures recorded under one context label.
func (l *ErrorList) ByContext(context string) []*ValidationError {
	var out []*ValidationError
	for _, e := range l.entries {
		if e.Context == context {
			out = append(out, e.Err)
		}
	}
	return out
}

// Error implements the error interface over the user-facing messages only.
func (l *ErrorList) Error() string {
	if l.Empty() {
		return "validation failed"
	}
	parts := make([]string, 0, len(l.entries))
	for _, e := range l.entries {
		parts = append(parts, fmt.Sprintf("%s: %s", e.Context, e.Err.UserMessage))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
