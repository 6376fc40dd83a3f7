package rule

import (
	"fmt"
	"regexp"

	"github.com/gatekit/gatekit/pkg/secerr"
)

// Policy cleans an HTML fragment down to its safe subset. Full HTML
// sanitization is out of this engine's scope, so the work is delegated: a
// host can plug in any sanitizer that honors this contract.
type Policy interface {
	Sanitize(fragment string) (string, error)
}

// HTMLRule validates an HTML fragment by delegating to a Policy and returning
// the cleaned result. Unlike the text rules it does not canonicalize first:
// entity references are legitimate content in HTML and the policy is
// responsible for interpreting them.
type HTMLRule struct {
	typeName   string
	policy     Policy
	maxLength  int
	allowEmpty bool
}

// NewHTMLRule returns an HTML rule using the given policy, or the built-in
// stripping policy when policy is nil.
func NewHTMLRule(typeName string, policy Policy) *HTMLRule {
	if policy == nil {
		policy = defaultPolicy{}
	}
	return &HTMLRule{typeName: typeName, policy: policy, maxLength: -1}
}

// SetMaxLength caps the fragment length. Negative means no cap.
func (r *HTMLRule) SetMaxLength(n int) { r.maxLength = n }

// SetAllowEmpty permits nil-equivalent input, which then validates to "".
func (r *HTMLRule) SetAllowEmpty(b bool) { r.allowEmpty = b }

// TypeName implements Rule.
func (r *HTMLRule) TypeName() string { return r.typeName }

// Valid implements Rule, returning the cleaned fragment.
func (r *HTMLRule) Valid(context, input string) (string, error) {
	if isEmpty(input) {
		if r.allowEmpty {
			return "", nil
		}
		return "", requiredErr(context, input)
	}

	if r.maxLength >= 0 && len(input) > r.maxLength {
		return "", secerr.NewValidation(context,
			fmt.Sprintf("input exceeds maximum length of %d", r.maxLength),
			fmt.Sprintf("html fragment too long: context=%s, length=%d, max=%d", context, len(input), r.maxLength))
	}

	clean, err := r.policy.Sanitize(input)
	if err != nil {
		return "", secerr.NewValidation(context,
			"input is not valid safe HTML",
			fmt.Sprintf("html policy rejection: context=%s, input=%q: %v", context, input, err),
		).WithCause(err)
	}
	return clean, nil
}

var (
	scriptTagRe = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script>`)
	eventAttrRe = regexp.MustCompile(`(?i)\s*on\w+\s*=\s*("[^"]*"|'[^']*'|[^\s>]+)`)
	jsProtoRe   = regexp.MustCompile(`(?i)javascript\s*:`)
)

// defaultPolicy strips the classic XSS vectors: script elements, inline event
// handlers, and javascript: protocol references. It never errors; hostile
// markup is simply removed.
type defaultPolicy struct{}

func (defaultPolicy) Sanitize(fragment string) (string, error) {
	out := scriptTagRe.ReplaceAllString(fragment, "")
	out = eventAttrRe.ReplaceAllString(out, "")
	out = jsProtoRe.ReplaceAllString(out, "")
	return out, nil
}
