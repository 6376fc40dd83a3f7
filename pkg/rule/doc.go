// Package rule defines the pluggable validation rules the engine dispatches
// to, and the registry they are looked up from.
//
// A rule is a named, typed validator over a closed whitelist: any canonical
// value not matching at least one of its patterns (or failing its typed
// bounds) is rejected. The set of kinds is fixed: text pattern, date, integer,
// floating-point number, credit card, and safe HTML. All of them share the
// same contract (canonicalize first, then compare) and report failures as
// *secerr.ValidationError.
//
// Rules are registered once at startup into a Registry owned by the engine
// instance and are read-only afterwards, so concurrent lookups need no
// locking beyond what Registry provides.
package rule
