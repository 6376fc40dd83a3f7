// Package validate is the canonicalization-aware whitelist validation
// engine. Untrusted input (form fields, HTTP request surfaces, file paths
// and names, numbers, dates) is first reduced to canonical form and then
// accepted only if it matches an explicit whitelist.
//
// # Call modes
//
// Every semantic kind is implemented once and exposed in three forms with
// identical validation semantics:
//
//   - IsValidX: predicate. Returns false on any failure, validation or
//     otherwise. Callers cannot distinguish "invalid input" from an internal
//     fault on this path; that is a documented property, not a defect.
//   - GetValidX / AssertValidX: strict. Returns the accepted canonical value
//     or a *secerr.ValidationError; *secerr.IntrusionError where the failure
//     is evidence of an attack.
//   - CollectValidX: accumulating. ValidationErrors are appended to the
//     caller-supplied *secerr.ErrorList and the raw input is returned as a
//     placeholder; check the list, not the return value. IntrusionError is
//     never collected; it comes back as the error return.
//
// # Canonical-path equality
//
// Directory and filename validation require the canonicalized form (symlinks
// and relative segments resolved) to be byte-identical to the raw input.
// "Resolves to something valid" is not enough; a path that means something
// other than what was literally supplied is rejected. Filesystem checks run
// through a dedicated encoder with a fixed codec set, so application-level
// whitelist customization can never weaken them.
//
// The engine is stateless per call: construct one Validator at startup and
// share it freely across goroutines.
package validate
