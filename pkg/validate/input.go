package validate

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/gatekit/gatekit/pkg/secerr"
)

// IsValidInput reports whether input canonicalizes and matches the named
// whitelist pattern within maxLength characters.
func (v *Validator) IsValidInput(context, input, typeName string, maxLength int, allowEmpty bool) bool {
	return ok(func() (string, error) {
		return v.validInput(context, input, typeName, maxLength, allowEmpty)
	})
}

// GetValidInput returns the canonicalized input if it matches the whitelist
// pattern registered under typeName (or typeName itself interpreted as a
// pattern when no registration exists). maxLength applies to the canonical
// form.
func (v *Validator) GetValidInput(context, input, typeName string, maxLength int, allowEmpty bool) (string, error) {
	return v.validInput(context, input, typeName, maxLength, allowEmpty)
}

// CollectValidInput behaves like GetValidInput but appends validation
// failures to errs and returns the raw input as a placeholder.
func (v *Validator) CollectValidInput(errs *secerr.ErrorList, context, input, typeName string, maxLength int, allowEmpty bool) (string, error) {
	return collect(errs, context, input, func() (string, error) {
		return v.validInput(context, input, typeName, maxLength, allowEmpty)
	})
}

// redirect locations are validated against the "Redirect" pattern with a
// fixed 512 character ceiling.
const maxRedirectLength = 512

// IsValidRedirectLocation reports whether input is an acceptable redirect
// target.
func (v *Validator) IsValidRedirectLocation(context, input string, allowEmpty bool) bool {
	return v.IsValidInput(context, input, "Redirect", maxRedirectLength, allowEmpty)
}

// GetValidRedirectLocation returns the canonicalized redirect target.
func (v *Validator) GetValidRedirectLocation(context, input string, allowEmpty bool) (string, error) {
	return v.GetValidInput(context, input, "Redirect", maxRedirectLength, allowEmpty)
}

// CollectValidRedirectLocation is the accumulating form of
// GetValidRedirectLocation.
func (v *Validator) CollectValidRedirectLocation(errs *secerr.ErrorList, context, input string, allowEmpty bool) (string, error) {
	return v.CollectValidInput(errs, context, input, "Redirect", maxRedirectLength, allowEmpty)
}

func (v *Validator) validUUID(context, input string, allowEmpty bool) (string, error) {
	if strings.TrimSpace(input) == "" {
		if allowEmpty {
			return "", nil
		}
		return "", secerr.NewValidation(context,
			"input required",
			fmt.Sprintf("input required: context=%s", context))
	}

	canon, err := v.encoder.Canonicalize(input)
	if err != nil {
		return "", secerr.NewValidation(context,
			"invalid input encoding",
			fmt.Sprintf("canonicalization failed: context=%s, input=%q: %v", context, input, err),
		).WithCause(err)
	}

	id, perr := uuid.Parse(canon)
	if perr != nil || len(canon) != 36 {
		return "", secerr.NewValidation(context,
			"input is not a valid UUID",
			fmt.Sprintf("uuid parse failed: context=%s, canonical=%q: %v", context, canon, perr))
	}
	return id.String(), nil
}

// IsValidUUID reports whether input is a canonical 36 character UUID.
func (v *Validator) IsValidUUID(context, input string, allowEmpty bool) bool {
	return ok(func() (string, error) { return v.validUUID(context, input, allowEmpty) })
}

// GetValidUUID returns the accepted UUID in canonical lowercase form.
func (v *Validator) GetValidUUID(context, input string, allowEmpty bool) (string, error) {
	return v.validUUID(context, input, allowEmpty)
}

// CollectValidUUID is the accumulating form of GetValidUUID.
func (v *Validator) CollectValidUUID(errs *secerr.ErrorList, context, input string, allowEmpty bool) (string, error) {
	return collect(errs, context, input, func() (string, error) {
		return v.validUUID(context, input, allowEmpty)
	})
}
