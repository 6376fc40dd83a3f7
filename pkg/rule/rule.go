package rule

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gatekit/gatekit/pkg/canonical"
	"github.com/gatekit/gatekit/pkg/secerr"
)

// Rule is a named validator. Valid canonicalizes input and checks it against
// the rule's whitelist, returning the accepted canonical form. Typed rules
// additionally expose their native result type on the concrete struct.
type Rule interface {
	TypeName() string
	Valid(context, input string) (string, error)
}

// Registry maps rule type names to rules. Registration is last-write-wins
// and there is no removal. Populate once at startup; reads are safe from any
// goroutine afterwards.
type Registry struct {
	mu    sync.RWMutex
	rules map[string]Rule
}

// NewRegistry returns an empty rule registry.
func NewRegistry() *Registry {
	return &Registry{rules: make(map[string]Rule)}
}

// Register stores the rule under its type name, overwriting any previous
// entry with that name.
func (r *Registry) Register(rule Rule) {
	if rule == nil {
		return
	}
	r.mu.Lock()
	r.rules[rule.TypeName()] = rule
	r.mu.Unlock()
}

// Lookup returns the rule registered under name, if any.
func (r *Registry) Lookup(name string) (Rule, bool) {
	r.mu.RLock()
	rule, ok := r.rules[name]
	r.mu.RUnlock()
	return rule, ok
}

// isEmpty mirrors the engine-wide notion of absent input: nil-equivalent or
// whitespace-only strings count as empty.
func isEmpty(input string) bool {
	return strings.TrimSpace(input) == ""
}

// requiredErr is the uniform "input required" failure.
func requiredErr(context, input string) *secerr.ValidationError {
	return secerr.NewValidation(context,
		"input required",
		fmt.Sprintf("input required: context=%s, input=%q", context, input))
}

// canonicalize runs the encoder and translates EncodingError into
// ValidationError so the canonicalizer's own error kind never escapes the
// rule surface.
func canonicalize(enc *canonical.Encoder, context, input string) (string, error) {
	out, err := enc.Canonicalize(input)
	if err != nil {
		return "", secerr.NewValidation(context,
			"invalid input encoding",
			fmt.Sprintf("canonicalization failed: context=%s, input=%q: %v", context, input, err),
		).WithCause(err)
	}
	return out, nil
}
