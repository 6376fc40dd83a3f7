package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatekit/gatekit/pkg/validate"
)

func TestValidPrintableBytes(t *testing.T) {
	t.Parallel()

	v := validate.New()

	t.Run("boundary bytes", func(t *testing.T) {
		t.Parallel()
		tests := []struct {
			name  string
			input []byte
			valid bool
		}{
			{"lowest printable 0x21", []byte{0x21}, true},
			{"highest printable 0x7D", []byte{0x7D}, true},
			{"space 0x20 excluded", []byte{0x20}, false},
			{"tilde 0x7E excluded", []byte{0x7E}, false},
			{"tab excluded", []byte{0x09}, false},
			{"del excluded", []byte{0x7F}, false},
			{"high byte excluded", []byte{0xC3}, false},
			{"mixed fails on the bad byte", []byte("abc\ndef"), false},
			{"plain ascii", []byte("abc123!@#"), true},
		}
		for _, tt := range tests {
			tt := tt
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()
				assert.Equal(t, tt.valid, v.IsValidPrintableBytes("field", tt.input, 100, false))
			})
		}
	})

	t.Run("length cap", func(t *testing.T) {
		t.Parallel()
		assert.True(t, v.IsValidPrintableBytes("field", []byte("12345"), 5, false))
		assert.False(t, v.IsValidPrintableBytes("field", []byte("123456"), 5, false))
	})

	t.Run("empty requires opt-in", func(t *testing.T) {
		t.Parallel()
		assert.False(t, v.IsValidPrintableBytes("field", nil, 10, false))
		assert.True(t, v.IsValidPrintableBytes("field", nil, 10, true))
	})
}

func TestValidPrintable(t *testing.T) {
	t.Parallel()

	v := validate.New()

	t.Run("canonicalizes before the byte check", func(t *testing.T) {
		t.Parallel()
		out, err := v.GetValidPrintable("field", "abc%41", 100, false)
		require.NoError(t, err)
		assert.Equal(t, "abcA", out)
	})

	t.Run("decoded control characters are caught", func(t *testing.T) {
		t.Parallel()
		// %0A decodes to a newline.
		assert.False(t, v.IsValidPrintable("field", "abc%0Adef", 100, false))
	})

	t.Run("double encoding rejected", func(t *testing.T) {
		t.Parallel()
		assert.False(t, v.IsValidPrintable("field", "%2541", 100, false))
	})
}
