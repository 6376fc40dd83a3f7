package rule

import (
	"fmt"
	"math"
	"strconv"

	"github.com/gatekit/gatekit/pkg/canonical"
	"github.com/gatekit/gatekit/pkg/secerr"
)

// IntegerRule validates that canonical input parses as an integer within
// [Min, Max] inclusive.
type IntegerRule struct {
	typeName   string
	encoder    *canonical.Encoder
	min, max   int
	allowEmpty bool
}

// NewIntegerRule returns an integer rule with the given inclusive bounds.
func NewIntegerRule(typeName string, enc *canonical.Encoder, min, max int) *IntegerRule {
	return &IntegerRule{typeName: typeName, encoder: enc, min: min, max: max}
}

// SetAllowEmpty permits nil-equivalent input, which then validates to zero.
func (r *IntegerRule) SetAllowEmpty(b bool) { r.allowEmpty = b }

// TypeName implements Rule.
func (r *IntegerRule) TypeName() string { return r.typeName }

// Valid implements Rule, returning the canonical text of the accepted value.
func (r *IntegerRule) Valid(context, input string) (string, error) {
	n, err := r.ValidInt(context, input)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(n), nil
}

// ValidInt returns the accepted value as an int.
func (r *IntegerRule) ValidInt(context, input string) (int, error) {
	if isEmpty(input) {
		if r.allowEmpty {
			return 0, nil
		}
		return 0, requiredErr(context, input)
	}

	canon, err := canonicalize(r.encoder, context, input)
	if err != nil {
		return 0, err
	}

	n, perr := strconv.Atoi(canon)
	if perr != nil {
		return 0, secerr.NewValidation(context,
			"input is not a valid integer",
			fmt.Sprintf("integer parse failed: context=%s, canonical=%q: %v", context, canon, perr),
		).WithCause(perr)
	}
	if n < r.min || n > r.max {
		return 0, secerr.NewValidation(context,
			fmt.Sprintf("input must be between %d and %d", r.min, r.max),
			fmt.Sprintf("integer out of range: context=%s, value=%d, min=%d, max=%d", context, n, r.min, r.max))
	}
	return n, nil
}

// NumberRule validates that canonical input parses as a finite floating-point
// number within [Min, Max] inclusive.
type NumberRule struct {
	typeName   string
	encoder    *canonical.Encoder
	min, max   float64
	allowEmpty bool
}

// NewNumberRule returns a floating-point rule with the given inclusive bounds.
func NewNumberRule(typeName string, enc *canonical.Encoder, min, max float64) *NumberRule {
	return &NumberRule{typeName: typeName, encoder: enc, min: min, max: max}
}

// SetAllowEmpty permits nil-equivalent input, which then validates to zero.
func (r *NumberRule) SetAllowEmpty(b bool) { r.allowEmpty = b }

// TypeName implements Rule.
func (r *NumberRule) TypeName() string { return r.typeName }

// Valid implements Rule, returning the canonical text of the accepted value.
func (r *NumberRule) Valid(context, input string) (string, error) {
	f, err := r.ValidFloat(context, input)
	if err != nil {
		return "", err
	}
	return strconv.FormatFloat(f, 'g', -1, 64), nil
}

// ValidFloat returns the accepted value as a float64. NaN and infinities are
// rejected even when the bounds would admit them.
func (r *NumberRule) ValidFloat(context, input string) (float64, error) {
	if isEmpty(input) {
		if r.allowEmpty {
			return 0, nil
		}
		return 0, requiredErr(context, input)
	}

	canon, err := canonicalize(r.encoder, context, input)
	if err != nil {
		return 0, err
	}

	f, perr := strconv.ParseFloat(canon, 64)
	if perr != nil {
		return 0, secerr.NewValidation(context,
			"input is not a valid number",
			fmt.Sprintf("number parse failed: context=%s, canonical=%q: %v", context, canon, perr),
		).WithCause(perr)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, secerr.NewValidation(context,
			"input is not a valid number",
			fmt.Sprintf("non-finite number: context=%s, canonical=%q", context, canon))
	}
	if f < r.min || f > r.max {
		return 0, secerr.NewValidation(context,
			fmt.Sprintf("input must be between %v and %v", r.min, r.max),
			fmt.Sprintf("number out of range: context=%s, value=%v, min=%v, max=%v", context, f, r.min, r.max))
	}
	return f, nil
}
