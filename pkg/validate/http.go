package validate

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/gatekit/gatekit/pkg/secerr"
)

const (
	// maxNameLength caps parameter, cookie, and header names.
	maxNameLength = 100
	// maxValueLength caps parameter, cookie, and header values.
	maxValueLength = 65535
)

// validRequest whitelists every parameter, cookie, and header on the
// request. Names are required and capped at 100 canonical characters; values
// may be empty and are capped at 65535. The method check is the one place
// this engine raises IntrusionError directly: anything but GET or POST is
// treated as probing, not as a user mistake.
func (v *Validator) validRequest(r *http.Request) error {
	if r == nil {
		return secerr.NewValidation("HTTP request",
			"input required",
			"input required: HTTP request is nil")
	}

	if r.Method != http.MethodGet && r.Method != http.MethodPost {
		ierr := secerr.NewIntrusion("HTTP request",
			"bad HTTP method received",
			fmt.Sprintf("bad HTTP method received: %s", r.Method))
		v.logFailure(ierr)
		return ierr
	}

	if r.Form == nil {
		if err := r.ParseForm(); err != nil {
			return secerr.NewValidation("HTTP request",
				"malformed request body",
				fmt.Sprintf("form parsing failed: %v", err),
			).WithCause(err)
		}
	}

	for name, values := range r.Form {
		context := "HTTP request parameter: " + name
		if _, err := v.validInput(context, name, "HTTPParameterName", maxNameLength, false); err != nil {
			return err
		}
		for _, value := range values {
			if _, err := v.validInput(context, value, "HTTPParameterValue", maxValueLength, true); err != nil {
				return err
			}
		}
	}

	for _, cookie := range r.Cookies() {
		context := "HTTP request cookie: " + cookie.Name
		if _, err := v.validInput(context, cookie.Name, "HTTPCookieName", maxNameLength, false); err != nil {
			return err
		}
		if _, err := v.validInput(context, cookie.Value, "HTTPCookieValue", maxValueLength, true); err != nil {
			return err
		}
	}

	for name, values := range r.Header {
		// Cookies are validated above; the Cookie header itself is excluded,
		// matched case-insensitively.
		if strings.EqualFold(name, "Cookie") {
			continue
		}
		context := "HTTP request header: " + name
		if _, err := v.validInput(context, name, "HTTPHeaderName", maxNameLength, false); err != nil {
			return err
		}
		for _, value := range values {
			if _, err := v.validInput(context, value, "HTTPHeaderValue", maxValueLength, true); err != nil {
				return err
			}
		}
	}
	return nil
}

// IsValidRequest reports whether every parameter, cookie, and header on the
// request passes its whitelist and the method is GET or POST.
func (v *Validator) IsValidRequest(r *http.Request) bool {
	return v.validRequest(r) == nil
}

// AssertValidRequest validates the whole request surface, returning
// *secerr.IntrusionError for a non-GET/POST method and
// *secerr.ValidationError for whitelist failures.
func (v *Validator) AssertValidRequest(r *http.Request) error {
	return v.validRequest(r)
}

// CollectValidRequest is the accumulating form of AssertValidRequest.
// IntrusionError still propagates.
func (v *Validator) CollectValidRequest(errs *secerr.ErrorList, r *http.Request) error {
	return collectAssert(errs, "HTTP request", func() error { return v.validRequest(r) })
}

// validParameterSet checks that the parameter names present are exactly
// required ∪ optional. Missing required names are reported before extras are
// computed.
func (v *Validator) validParameterSet(context string, r *http.Request, required, optional []string) error {
	if r == nil {
		return secerr.NewValidation(context,
			"input required",
			"input required: HTTP request is nil")
	}
	if r.Form == nil {
		if err := r.ParseForm(); err != nil {
			return secerr.NewValidation(context,
				"malformed request body",
				fmt.Sprintf("form parsing failed: %v", err),
			).WithCause(err)
		}
	}

	actual := make(map[string]bool, len(r.Form))
	for name := range r.Form {
		actual[name] = true
	}

	var missing []string
	for _, name := range required {
		if !actual[name] {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return secerr.NewValidation(context,
			"missing parameters",
			fmt.Sprintf("request is missing required parameters %v: context=%s", missing, context))
	}

	allowed := make(map[string]bool, len(required)+len(optional))
	for _, name := range required {
		allowed[name] = true
	}
	for _, name := range optional {
		allowed[name] = true
	}
	var extra []string
	for name := range actual {
		if !allowed[name] {
			extra = append(extra, name)
		}
	}
	if len(extra) > 0 {
		sort.Strings(extra)
		return secerr.NewValidation(context,
			fmt.Sprintf("extra parameters %v", extra),
			fmt.Sprintf("request carries parameters outside the allowed set %v: context=%s", extra, context))
	}
	return nil
}

// IsValidParameterSet reports whether the request's parameter names are
// exactly the union of required and optional.
func (v *Validator) IsValidParameterSet(context string, r *http.Request, required, optional []string) bool {
	return v.validParameterSet(context, r, required, optional) == nil
}

// AssertValidParameterSet fails with "missing parameters" when any required
// name is absent and with "extra parameters" when names outside
// required ∪ optional are present.
func (v *Validator) AssertValidParameterSet(context string, r *http.Request, required, optional []string) error {
	err := v.validParameterSet(context, r, required, optional)
	if err != nil {
		v.logFailure(err)
	}
	return err
}

// CollectValidParameterSet is the accumulating form of
// AssertValidParameterSet.
func (v *Validator) CollectValidParameterSet(errs *secerr.ErrorList, context string, r *http.Request, required, optional []string) error {
	return collectAssert(errs, context, func() error {
		return v.AssertValidParameterSet(context, r, required, optional)
	})
}
