package rule

import (
	"fmt"
	"time"

	"github.com/gatekit/gatekit/pkg/canonical"
	"github.com/gatekit/gatekit/pkg/secerr"
)

// DateRule validates that canonical input parses under a Go time layout.
type DateRule struct {
	typeName   string
	encoder    *canonical.Encoder
	layout     string
	allowEmpty bool
}

// NewDateRule returns a date rule for the given layout, e.g. "2006-01-02".
func NewDateRule(typeName string, enc *canonical.Encoder, layout string) *DateRule {
	return &DateRule{typeName: typeName, encoder: enc, layout: layout}
}

// SetAllowEmpty permits nil-equivalent input, which then validates to the
// zero time.
func (r *DateRule) SetAllowEmpty(b bool) { r.allowEmpty = b }

// TypeName implements Rule.
func (r *DateRule) TypeName() string { return r.typeName }

// Valid implements Rule, returning the canonical text of the accepted value.
func (r *DateRule) Valid(context, input string) (string, error) {
	t, err := r.ValidDate(context, input)
	if err != nil {
		return "", err
	}
	return t.Format(r.layout), nil
}

// ValidDate returns the accepted value as a time.Time.
func (r *DateRule) ValidDate(context, input string) (time.Time, error) {
	if isEmpty(input) {
		if r.allowEmpty {
			return time.Time{}, nil
		}
		return time.Time{}, requiredErr(context, input)
	}

	canon, err := canonicalize(r.encoder, context, input)
	if err != nil {
		return time.Time{}, err
	}

	t, perr := time.Parse(r.layout, canon)
	if perr != nil {
		return time.Time{}, secerr.NewValidation(context,
			fmt.Sprintf("input is not a valid date in the %q format", r.layout),
			fmt.Sprintf("date parse failed: context=%s, layout=%s, canonical=%q: %v", context, r.layout, canon, perr),
		).WithCause(perr)
	}
	return t, nil
}
