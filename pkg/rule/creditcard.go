package rule

import (
	"fmt"
	"strings"

	"github.com/gatekit/gatekit/pkg/canonical"
	"github.com/gatekit/gatekit/pkg/secerr"
)

// cardShape admits digits with optional space or dash separators. The 19
// character cap matches the longest PAN format in common use.
const cardShape = `[0-9 ()-]{13,19}`

// CreditCardRule validates a payment card number: canonicalize, check the
// shape whitelist, then run the Luhn mod-10 checksum over the digits.
type CreditCardRule struct {
	typeName   string
	encoder    *canonical.Encoder
	shape      *StringRule
	allowEmpty bool
}

// NewCreditCardRule returns a credit card rule.
func NewCreditCardRule(typeName string, enc *canonical.Encoder) *CreditCardRule {
	shape := NewStringRule(typeName, enc)
	// The shape pattern is fixed; compilation cannot fail.
	if err := shape.AddPattern(cardShape); err != nil {
		panic(err)
	}
	shape.SetMaxLength(19)
	return &CreditCardRule{typeName: typeName, encoder: enc, shape: shape}
}

// SetAllowEmpty permits nil-equivalent input, which then validates to "".
func (r *CreditCardRule) SetAllowEmpty(b bool) {
	r.allowEmpty = b
	r.shape.SetAllowEmpty(b)
}

// TypeName implements Rule.
func (r *CreditCardRule) TypeName() string { return r.typeName }

// Valid implements Rule, returning the canonical card number on success.
func (r *CreditCardRule) Valid(context, input string) (string, error) {
	if isEmpty(input) {
		if r.allowEmpty {
			return "", nil
		}
		return "", requiredErr(context, input)
	}

	canon, err := r.shape.Valid(context, input)
	if err != nil {
		return "", err
	}

	digits := strings.Map(func(c rune) rune {
		if c >= '0' && c <= '9' {
			return c
		}
		return -1
	}, canon)

	if !luhn(digits) {
		return "", secerr.NewValidation(context,
			"input is not a valid credit card number",
			fmt.Sprintf("luhn checksum failed: context=%s, digits=%d", context, len(digits)))
	}
	return canon, nil
}

// luhn reports whether the digit string passes the mod-10 checksum.
func luhn(digits string) bool {
	if digits == "" {
		return false
	}
	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}
