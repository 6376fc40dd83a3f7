package validate

import (
	"fmt"
	"strings"

	"github.com/gatekit/gatekit/pkg/secerr"
)

// validPrintableBytes checks raw bytes with no decoding: every byte must be
// printable ASCII, strictly between 0x20 and 0x7E.
func validPrintableBytes(context string, input []byte, maxLength int, allowEmpty bool) ([]byte, error) {
	if len(input) == 0 {
		if allowEmpty {
			return nil, nil
		}
		return nil, secerr.NewValidation(context,
			"input bytes required",
			fmt.Sprintf("input bytes required: context=%s", context))
	}

	if len(input) > maxLength {
		return nil, secerr.NewValidation(context,
			fmt.Sprintf("input cannot exceed %d bytes", maxLength),
			fmt.Sprintf("printable input exceeds maximum length of %d by %d bytes: context=%s", maxLength, len(input)-maxLength, context))
	}

	for _, b := range input {
		if b <= 0x20 || b >= 0x7E {
			return nil, secerr.NewValidation(context,
				"input contains non-printable characters",
				fmt.Sprintf("non-printable byte 0x%02x: context=%s, input=%q", b, context, input))
		}
	}
	return input, nil
}

// IsValidPrintableBytes reports whether input is printable ASCII within
// maxLength. No decoding is performed.
func (v *Validator) IsValidPrintableBytes(context string, input []byte, maxLength int, allowEmpty bool) bool {
	return ok(func() ([]byte, error) { return validPrintableBytes(context, input, maxLength, allowEmpty) })
}

// GetValidPrintableBytes returns input if every byte is printable ASCII
// (0x21 through 0x7D) and the length is within maxLength.
func (v *Validator) GetValidPrintableBytes(context string, input []byte, maxLength int, allowEmpty bool) ([]byte, error) {
	out, err := validPrintableBytes(context, input, maxLength, allowEmpty)
	if err != nil {
		v.logFailure(err)
	}
	return out, err
}

// CollectValidPrintableBytes is the accumulating form of
// GetValidPrintableBytes.
func (v *Validator) CollectValidPrintableBytes(errs *secerr.ErrorList, context string, input []byte, maxLength int, allowEmpty bool) ([]byte, error) {
	return collect(errs, context, input, func() ([]byte, error) {
		return v.GetValidPrintableBytes(context, input, maxLength, allowEmpty)
	})
}

func (v *Validator) validPrintable(context, input string, maxLength int, allowEmpty bool) (string, error) {
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
		verr := secerr.NewValidation(context,
			"invalid printable input",
			fmt.Sprintf("canonicalization of printable input failed: context=%s, input=%q: %v", context, input, err),
		).WithCause(err)
		v.logFailure(verr)
		return "", verr
	}

	out, err := v.GetValidPrintableBytes(context, []byte(canon), maxLength, allowEmpty)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// IsValidPrintable reports whether input canonicalizes to printable ASCII
// within maxLength characters.
func (v *Validator) IsValidPrintable(context, input string, maxLength int, allowEmpty bool) bool {
	return ok(func() (string, error) { return v.validPrintable(context, input, maxLength, allowEmpty) })
}

// GetValidPrintable canonicalizes input and returns it if every character is
// printable ASCII within maxLength.
func (v *Validator) GetValidPrintable(context, input string, maxLength int, allowEmpty bool) (string, error) {
	return v.validPrintable(context, input, maxLength, allowEmpty)
}

// CollectValidPrintable is the accumulating form of GetValidPrintable.
func (v *Validator) CollectValidPrintable(errs *secerr.ErrorList, context, input string, maxLength int, allowEmpty bool) (string, error) {
	return collect(errs, context, input, func() (string, error) {
		return v.validPrintable(context, input, maxLength, allowEmpty)
	})
}
