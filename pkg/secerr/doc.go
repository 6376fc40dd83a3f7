// Package secerr defines the error kinds shared by the validation engine.
//
// Three kinds exist, with strictly different propagation rules:
//
//   - ValidationError: the input is malformed relative to policy. This is a
//     normal outcome for hostile and benign-mistake input alike. Accumulating
//     call forms collect these instead of returning them.
//   - IntrusionError: the failure pattern itself is evidence of deliberate
//     probing (e.g. an unexpected HTTP method). Never collected, always
//     returned, so the host application can escalate.
//   - EncodingError: the canonicalizer could not safely resolve the input
//     (multiple or mixed encodings). It is always translated into a
//     ValidationError before reaching a caller of the public surface.
//
// Every ValidationError carries two messages: a sanitized one safe to show to
// end users, and a detailed one for logs. They are intentionally kept apart so
// that raw attack payloads and canonical filesystem paths never leak into
// user-facing output.
//
// ErrorList is the caller-owned accumulator used by the Collect* call forms.
// It is not safe for concurrent use; serialize access if you share one.
package secerr
