package canonical

import (
	"html"
	"strings"
)

// Codec performs a single decode pass for one encoding scheme. Decode returns
// its input unchanged when nothing decodable is present; the Encoder relies on
// that to detect the fixed point.
type Codec interface {
	Name() string
	Decode(s string) string
}

// PercentCodec decodes URL percent-encoding. Only well-formed %XX pairs are
// decoded; a stray '%' that is not followed by two hex digits passes through
// untouched rather than failing the whole value.
type PercentCodec struct{}

// Name implements Codec.
func (PercentCodec) Name() string { return "percent" }

// Decode implements Codec.
func (PercentCodec) Decode(s string) string {
	if !strings.ContainsRune(s, '%') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '%' && i+2 < len(s) {
			hi, okHi := unhex(s[i+1])
			lo, okLo := unhex(s[i+2])
			if okHi && okLo {
				b.WriteByte(hi<<4 | lo)
				i += 2
				continue
			}
		}
		b.WriteByte(c)
	}
	return b.String()
}

func unhex(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// HTMLEntityCodec decodes HTML character references, both named ("&lt;") and
// numeric ("&#60;", "&#x3c;").
type HTMLEntityCodec struct{}

// Name implements Codec.
func (HTMLEntityCodec) Name() string { return "html-entity" }

// Decode implements Codec.
func (HTMLEntityCodec) Decode(s string) string {
	if !strings.ContainsRune(s, '&') {
		return s
	}
	return html.UnescapeString(s)
}
