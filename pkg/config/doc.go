// Package config supplies the security configuration the validation engine
// reads at startup: named whitelist patterns, the allowed upload extensions,
// and the global upload size ceiling.
//
// Values come from environment variables (a .env file is honored if present)
// with safe built-in defaults. Named patterns start from DefaultPatterns and
// can be extended or overridden by a YAML file referenced via
// GATEKIT_PATTERN_FILE:
//
//	SafeString: '^[a-zA-Z0-9. ]{0,1024}$'
//	AccountID:  '^[A-Z]{2}[0-9]{8}$'
//
// The resulting Security value is read-only at validation time.
package config
