package canonical

import (
	"fmt"
	"sort"

	"golang.org/x/text/unicode/norm"

	"github.com/gatekit/gatekit/pkg/secerr"
)

// Encoder canonicalizes input through an ordered set of codecs. It performs
// no validation of its own; every whitelist comparison downstream must run on
// the value it returns, never on the raw input.
type Encoder struct {
	codecs []Codec
}

// NewEncoder returns an encoder applying the given codecs. Nil codecs are
// dropped.
func NewEncoder(codecs ...Codec) *Encoder {
	e := &Encoder{}
	for _, c := range codecs {
		if c != nil {
			e.codecs = append(e.codecs, c)
		}
	}
	return e
}

// FileEncoder returns the encoder used for filesystem-path validation, built
// from the default codec registry. It is constructed fresh per call so hosts
// cannot accidentally share mutable state with their own encoder.
func FileEncoder() *Encoder {
	reg := DefaultRegistry()
	htmlCodec, _ := reg.Lookup(HTMLEntityCodec{}.Name())
	pctCodec, _ := reg.Lookup(PercentCodec{}.Name())
	return NewEncoder(htmlCodec, pctCodec)
}

// Canonicalize decodes raw to its fixed point under all codecs, rejecting
// input that carries multiple or mixed encodings. The returned value is
// idempotent: canonicalizing it again yields the same string.
func (e *Encoder) Canonicalize(raw string) (string, error) {
	// Composed and decomposed Unicode forms must canonicalize identically,
	// otherwise two spellings of the same payload compare differently.
	working := norm.NFC.String(raw)

	passes := make(map[string]int)
	for {
		clean := true
		for _, c := range e.codecs {
			decoded := c.Decode(working)
			if decoded != working {
				passes[c.Name()]++
				working = decoded
				clean = false
			}
		}
		if clean {
			break
		}
	}

	multiple := 0
	for _, n := range passes {
		if n > multiple {
			multiple = n
		}
	}
	if multiple > 1 || len(passes) > 1 {
		names := make([]string, 0, len(passes))
		for name := range passes {
			names = append(names, name)
		}
		sort.Strings(names)
		return "", &secerr.EncodingError{
			Message: fmt.Sprintf("unsafe encoding detected: %d scheme(s) %v, deepest %d pass(es)", len(names), names, multiple),
		}
	}

	return working, nil
}
