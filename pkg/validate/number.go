package validate

import (
	"github.com/gatekit/gatekit/pkg/rule"
	"github.com/gatekit/gatekit/pkg/secerr"
)

func (v *Validator) validInteger(context, input string, min, max int, allowEmpty bool) (int, error) {
	r := rule.NewIntegerRule("number", v.encoder, min, max)
	r.SetAllowEmpty(allowEmpty)
	n, err := r.ValidInt(context, input)
	if err != nil {
		v.logFailure(err)
	}
	return n, err
}

// IsValidInteger reports whether input is an integer in [min, max].
func (v *Validator) IsValidInteger(context, input string, min, max int, allowEmpty bool) bool {
	return ok(func() (int, error) { return v.validInteger(context, input, min, max, allowEmpty) })
}

// GetValidInteger returns the accepted integer. Bounds are inclusive.
func (v *Validator) GetValidInteger(context, input string, min, max int, allowEmpty bool) (int, error) {
	return v.validInteger(context, input, min, max, allowEmpty)
}

// CollectValidInteger is the accumulating form of GetValidInteger; it
// returns zero as the placeholder on failure.
func (v *Validator) CollectValidInteger(errs *secerr.ErrorList, context, input string, min, max int, allowEmpty bool) (int, error) {
	return collect(errs, context, 0, func() (int, error) {
		return v.validInteger(context, input, min, max, allowEmpty)
	})
}

func (v *Validator) validFloat(context, input string, min, max float64, allowEmpty bool) (float64, error) {
	r := rule.NewNumberRule("number", v.encoder, min, max)
	r.SetAllowEmpty(allowEmpty)
	f, err := r.ValidFloat(context, input)
	if err != nil {
		v.logFailure(err)
	}
	return f, err
}

// IsValidFloat reports whether input is a finite float in [min, max].
func (v *Validator) IsValidFloat(context, input string, min, max float64, allowEmpty bool) bool {
	return ok(func() (float64, error) { return v.validFloat(context, input, min, max, allowEmpty) })
}

// GetValidFloat returns the accepted floating-point value. Bounds are
// inclusive; NaN and infinities are always rejected.
func (v *Validator) GetValidFloat(context, input string, min, max float64, allowEmpty bool) (float64, error) {
	return v.validFloat(context, input, min, max, allowEmpty)
}

// CollectValidFloat is the accumulating form of GetValidFloat.
func (v *Validator) CollectValidFloat(errs *secerr.ErrorList, context, input string, min, max float64, allowEmpty bool) (float64, error) {
	return collect(errs, context, 0, func() (float64, error) {
		return v.validFloat(context, input, min, max, allowEmpty)
	})
}

// IsValidNumber reports whether input is a number within the widened
// [min, max] bounds. See GetValidNumber for the widening caveat.
func (v *Validator) IsValidNumber(context, input string, min, max int64, allowEmpty bool) bool {
	return ok(func() (float64, error) {
		return v.validFloat(context, input, float64(min), float64(max), allowEmpty)
	})
}

// GetValidNumber accepts int64 bounds and delegates to the floating-point
// validator after widening them to float64. Extreme 64-bit bounds lose
// precision in that conversion, which can shift the accepted range at the
// edges. This is a long-standing, deliberate property of this entry point;
// use GetValidInteger when exact integer bounds matter.
func (v *Validator) GetValidNumber(context, input string, min, max int64, allowEmpty bool) (float64, error) {
	return v.validFloat(context, input, float64(min), float64(max), allowEmpty)
}

// CollectValidNumber is the accumulating form of GetValidNumber.
func (v *Validator) CollectValidNumber(errs *secerr.ErrorList, context, input string, min, max int64, allowEmpty bool) (float64, error) {
	return collect(errs, context, 0, func() (float64, error) {
		return v.validFloat(context, input, float64(min), float64(max), allowEmpty)
	})
}
