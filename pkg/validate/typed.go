package validate

import (
	"fmt"
	"slices"
	"time"

	"github.com/gatekit/gatekit/pkg/rule"
	"github.com/gatekit/gatekit/pkg/secerr"
)

func (v *Validator) validDate(context, input, layout string, allowEmpty bool) (time.Time, error) {
	r := rule.NewDateRule("SimpleDate", v.encoder, layout)
	r.SetAllowEmpty(allowEmpty)
	t, err := r.ValidDate(context, input)
	if err != nil {
		v.logFailure(err)
	}
	return t, err
}

// IsValidDate reports whether input parses under the given Go time layout.
func (v *Validator) IsValidDate(context, input, layout string, allowEmpty bool) bool {
	return ok(func() (time.Time, error) { return v.validDate(context, input, layout, allowEmpty) })
}

// GetValidDate returns the accepted date parsed under layout.
func (v *Validator) GetValidDate(context, input, layout string, allowEmpty bool) (time.Time, error) {
	return v.validDate(context, input, layout, allowEmpty)
}

// CollectValidDate is the accumulating form of GetValidDate; the zero time
// is the placeholder on failure.
func (v *Validator) CollectValidDate(errs *secerr.ErrorList, context, input, layout string, allowEmpty bool) (time.Time, error) {
	return collect(errs, context, time.Time{}, func() (time.Time, error) {
		return v.validDate(context, input, layout, allowEmpty)
	})
}

func (v *Validator) validSafeHTML(context, input string, maxLength int, allowEmpty bool) (string, error) {
	r := rule.NewHTMLRule("safehtml", v.htmlPolicy)
	r.SetMaxLength(maxLength)
	r.SetAllowEmpty(allowEmpty)
	out, err := r.Valid(context, input)
	if err != nil {
		v.logFailure(err)
	}
	return out, err
}

// IsValidSafeHTML reports whether input survives the safe-HTML policy.
func (v *Validator) IsValidSafeHTML(context, input string, maxLength int, allowEmpty bool) bool {
	return ok(func() (string, error) { return v.validSafeHTML(context, input, maxLength, allowEmpty) })
}

// GetValidSafeHTML returns the cleaned HTML fragment. Cleaning is delegated
// to the configured policy; this engine is not a sanitizer itself.
func (v *Validator) GetValidSafeHTML(context, input string, maxLength int, allowEmpty bool) (string, error) {
	return v.validSafeHTML(context, input, maxLength, allowEmpty)
}

// CollectValidSafeHTML is the accumulating form of GetValidSafeHTML.
func (v *Validator) CollectValidSafeHTML(errs *secerr.ErrorList, context, input string, maxLength int, allowEmpty bool) (string, error) {
	return collect(errs, context, input, func() (string, error) {
		return v.validSafeHTML(context, input, maxLength, allowEmpty)
	})
}

func (v *Validator) validCreditCard(context, input string, allowEmpty bool) (string, error) {
	r := rule.NewCreditCardRule("creditcard", v.encoder)
	r.SetAllowEmpty(allowEmpty)
	out, err := r.Valid(context, input)
	if err != nil {
		v.logFailure(err)
	}
	return out, err
}

// IsValidCreditCard reports whether input is a Luhn-valid card number.
func (v *Validator) IsValidCreditCard(context, input string, allowEmpty bool) bool {
	return ok(func() (string, error) { return v.validCreditCard(context, input, allowEmpty) })
}

// GetValidCreditCard returns the canonicalized card number after shape and
// Luhn checksum validation.
func (v *Validator) GetValidCreditCard(context, input string, allowEmpty bool) (string, error) {
	return v.validCreditCard(context, input, allowEmpty)
}

// CollectValidCreditCard is the accumulating form of GetValidCreditCard.
func (v *Validator) CollectValidCreditCard(errs *secerr.ErrorList, context, input string, allowEmpty bool) (string, error) {
	return collect(errs, context, input, func() (string, error) {
		return v.validCreditCard(context, input, allowEmpty)
	})
}

func validListItem(context, input string, allowed []string) (string, error) {
	if slices.Contains(allowed, input) {
		return input, nil
	}
	return "", secerr.NewValidation(context,
		"input is not an allowed value",
		fmt.Sprintf("list membership rejection: context=%s, input=%q, allowed=%d entries", context, input, len(allowed)))
}

// IsValidListItem reports whether input exactly matches one of the allowed
// values. No canonicalization is applied: membership is byte-exact.
func (v *Validator) IsValidListItem(context, input string, allowed []string) bool {
	return ok(func() (string, error) { return validListItem(context, input, allowed) })
}

// GetValidListItem returns input if it exactly matches an allowed value.
func (v *Validator) GetValidListItem(context, input string, allowed []string) (string, error) {
	out, err := validListItem(context, input, allowed)
	if err != nil {
		v.logFailure(err)
	}
	return out, err
}

// CollectValidListItem is the accumulating form of GetValidListItem.
func (v *Validator) CollectValidListItem(errs *secerr.ErrorList, context, input string, allowed []string) (string, error) {
	return collect(errs, context, input, func() (string, error) {
		return v.GetValidListItem(context, input, allowed)
	})
}
