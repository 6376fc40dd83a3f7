package validate

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/gatekit/gatekit/pkg/canonical"
	"github.com/gatekit/gatekit/pkg/config"
	"github.com/gatekit/gatekit/pkg/rule"
	"github.com/gatekit/gatekit/pkg/secerr"
)

// Validator is the engine instance. Construct it once at startup with New;
// after that every method is a pure function of its arguments plus the
// read-only configuration, so a single Validator is safe for concurrent use.
type Validator struct {
	encoder    *canonical.Encoder
	rules      *rule.Registry
	sec        config.Security
	htmlPolicy rule.Policy
	log        *slog.Logger

	// fileEncoder is the dedicated canonicalizer for filesystem-path checks.
	// It is built from the fixed default codec set and never from caller
	// customization, so path validation cannot be weakened by application
	// configuration.
	fileEncoder *canonical.Encoder
	filePattern map[string]string
}

// Option configures a Validator.
type Option func(*Validator)

// WithEncoder replaces the caller-facing canonicalizer. The filesystem-path
// encoder is unaffected.
func WithEncoder(enc *canonical.Encoder) Option {
	return func(v *Validator) {
		if enc != nil {
			v.encoder = enc
		}
	}
}

// WithSecurity supplies the security configuration (patterns, allowed
// extensions, upload ceiling).
func WithSecurity(sec config.Security) Option {
	return func(v *Validator) { v.sec = sec }
}

// WithHTMLPolicy replaces the safe-HTML cleaning policy.
func WithHTMLPolicy(p rule.Policy) Option {
	return func(v *Validator) {
		if p != nil {
			v.htmlPolicy = p
		}
	}
}

// WithLogger sets the diagnostics logger. Only the detailed log messages go
// through it; user-facing messages never do.
func WithLogger(log *slog.Logger) Option {
	return func(v *Validator) {
		if log != nil {
			v.log = log
		}
	}
}

// WithRule registers a reusable rule into the engine's registry.
func WithRule(r rule.Rule) Option {
	return func(v *Validator) { v.rules.Register(r) }
}

// New returns a Validator with the default encoder (HTML entity + percent
// codecs), default security configuration, and a discard logger.
func New(opts ...Option) *Validator {
	v := &Validator{
		encoder:     canonical.NewEncoder(canonical.HTMLEntityCodec{}, canonical.PercentCodec{}),
		rules:       rule.NewRegistry(),
		sec:         config.Default(),
		log:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		fileEncoder: canonical.FileEncoder(),
		filePattern: config.DefaultPatterns,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// AddRule registers a rule under its type name, overwriting any previous
// rule with that name.
func (v *Validator) AddRule(r rule.Rule) { v.rules.Register(r) }

// Rule returns the rule registered under name, if any.
func (v *Validator) Rule(name string) (rule.Rule, bool) { return v.rules.Lookup(name) }

// validInput is the single core behind the Input call forms: resolve the
// named whitelist pattern (falling back to treating the name itself as a
// pattern), build a string rule, and validate.
func (v *Validator) validInput(context, input, typeName string, maxLength int, allowEmpty bool) (string, error) {
	r := rule.NewStringRule(typeName, v.encoder)
	expr, ok := v.sec.Pattern(typeName)
	if !ok {
		expr = typeName
	}
	if err := r.AddPattern(expr); err != nil {
		return "", secerr.NewValidation(context,
			"invalid validation configuration",
			fmt.Sprintf("whitelist pattern for type %s does not compile: %v", typeName, err),
		).WithCause(err)
	}
	r.SetMaxLength(maxLength)
	r.SetAllowEmpty(allowEmpty)

	out, err := r.Valid(context, input)
	if err != nil {
		v.logFailure(err)
	}
	return out, err
}

// fileInput validates against the fixed filesystem shape patterns using the
// dedicated file encoder.
func (v *Validator) fileInput(context, input, typeName string, maxLength int, allowEmpty bool) (string, error) {
	r := rule.NewStringRule(typeName, v.fileEncoder)
	if err := r.AddPattern(v.filePattern[typeName]); err != nil {
		return "", secerr.NewValidation(context,
			"invalid validation configuration",
			fmt.Sprintf("filesystem shape pattern %s does not compile: %v", typeName, err),
		).WithCause(err)
	}
	r.SetMaxLength(maxLength)
	r.SetAllowEmpty(allowEmpty)
	return r.Valid(context, input)
}

func (v *Validator) logFailure(err error) {
	var verr *secerr.ValidationError
	if errors.As(err, &verr) {
		v.log.Debug("validation failure", "context", verr.Context, "detail", verr.LogMessage)
		return
	}
	var ierr *secerr.IntrusionError
	if errors.As(err, &ierr) {
		v.log.Warn("intrusion detected", "context", ierr.Context, "detail", ierr.LogMessage)
	}
}

// ok derives the predicate form: true iff the strict core succeeds.
func ok[T any](fn func() (T, error)) bool {
	_, err := fn()
	return err == nil
}

// collect derives the accumulating form: ValidationErrors are appended to
// errs and fallback is returned; anything else (IntrusionError included)
// propagates as the error return.
func collect[T any](errs *secerr.ErrorList, context string, fallback T, fn func() (T, error)) (T, error) {
	out, err := fn()
	if err == nil {
		return out, nil
	}
	var verr *secerr.ValidationError
	if errors.As(err, &verr) {
		errs.Add(context, verr)
		return fallback, nil
	}
	return fallback, err
}

// collectAssert is collect for operations without a result value.
func collectAssert(errs *secerr.ErrorList, context string, fn func() error) error {
	err := fn()
	if err == nil {
		return nil
	}
	var verr *secerr.ValidationError
	if errors.As(err, &verr) {
		errs.Add(context, verr)
		return nil
	}
	return err
}
