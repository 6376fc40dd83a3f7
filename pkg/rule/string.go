package rule

import (
	"fmt"
	"regexp"

	"github.com/gatekit/gatekit/pkg/canonical"
	"github.com/gatekit/gatekit/pkg/secerr"
)

// StringRule validates free text against an ordered set of whitelist
// patterns. The whitelist is closed: a canonical value must match at least
// one pattern or it is rejected. Patterns are tried in registration order and
// the first match wins, which only affects which pattern the diagnostic
// names, not the accept/reject decision.
type StringRule struct {
	typeName   string
	encoder    *canonical.Encoder
	patterns   []*regexp.Regexp
	maxLength  int
	allowEmpty bool
}

// NewStringRule returns a rule with no patterns (rejecting everything), no
// length ceiling, and empty input disallowed.
func NewStringRule(typeName string, enc *canonical.Encoder) *StringRule {
	return &StringRule{typeName: typeName, encoder: enc, maxLength: -1}
}

// AddPattern compiles expr and appends it to the whitelist. The pattern is
// anchored if it is not already, so a partial match can never accept a value.
func (r *StringRule) AddPattern(expr string) error {
	anchored := expr
	if len(anchored) == 0 || anchored[0] != '^' {
		anchored = "^" + anchored
	}
	if anchored[len(anchored)-1] != '$' {
		anchored += "$"
	}
	re, err := regexp.Compile(anchored)
	if err != nil {
		return fmt.Errorf("compile whitelist pattern %q: %w", expr, err)
	}
	r.patterns = append(r.patterns, re)
	return nil
}

// SetMaxLength caps the post-canonicalization length. Negative means no cap.
func (r *StringRule) SetMaxLength(n int) { r.maxLength = n }

// SetAllowEmpty permits nil-equivalent input, which then validates to "".
func (r *StringRule) SetAllowEmpty(b bool) { r.allowEmpty = b }

// TypeName implements Rule.
func (r *StringRule) TypeName() string { return r.typeName }

// Valid implements Rule.
func (r *StringRule) Valid(context, input string) (string, error) {
	if isEmpty(input) {
		if r.allowEmpty {
			return "", nil
		}
		return "", requiredErr(context, input)
	}

	canon, err := canonicalize(r.encoder, context, input)
	if err != nil {
		return "", err
	}

	if r.maxLength >= 0 && len(canon) > r.maxLength {
		return "", secerr.NewValidation(context,
			fmt.Sprintf("input exceeds maximum length of %d", r.maxLength),
			fmt.Sprintf("canonical input too long: context=%s, type=%s, length=%d, max=%d", context, r.typeName, len(canon), r.maxLength))
	}

	// Patterns are tried in registration order, first match wins.
	for _, p := range r.patterns {
		if p.MatchString(canon) {
			return canon, nil
		}
	}
	return "", secerr.NewValidation(context,
		fmt.Sprintf("input does not match the %s whitelist", r.typeName),
		fmt.Sprintf("whitelist rejection: context=%s, type=%s, canonical=%q, patterns=%d", context, r.typeName, canon, len(r.patterns)))
}
