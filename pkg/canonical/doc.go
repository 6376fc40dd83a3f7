// Package canonical reduces untrusted input to its canonical form before any
// whitelist comparison happens.
//
// A value is canonical iff re-applying any known decode transform yields no
// change. The Encoder applies its codecs in a loop until that fixed point is
// reached. While doing so it watches for two signatures of evasion:
//
//   - multiple encoding: one scheme had to be decoded more than once
//     (e.g. "%2526" which is "%26" percent-encoded again), and
//   - mixed encoding: more than one scheme carried encoded content
//     (e.g. "%26lt%3B" which percent-decodes to "&lt;").
//
// Both are rejected with *secerr.EncodingError, because a pattern whitelist
// that only recognizes single-encoded hostile sequences would otherwise be
// blind to the second decode pass.
//
// The package-level codec registry ships pre-populated with exactly the
// percent and HTML-entity codecs. FileEncoder builds the encoder used for
// filesystem-path validation from that registry so path checks are never
// influenced by application-specific codec customization.
package canonical
