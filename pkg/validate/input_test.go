package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatekit/gatekit/pkg/secerr"
	"github.com/gatekit/gatekit/pkg/validate"
)

func TestValidInput(t *testing.T) {
	t.Parallel()

	v := validate.New()

	t.Run("accepts safe input under a named pattern", func(t *testing.T) {
		t.Parallel()
		out, err := v.GetValidInput("comment", "Hello world. 123", "SafeString", 100, false)
		require.NoError(t, err)
		assert.Equal(t, "Hello world. 123", out)
	})

	t.Run("returns the canonical form", func(t *testing.T) {
		t.Parallel()
		out, err := v.GetValidInput("comment", "Hello%20world", "SafeString", 100, false)
		require.NoError(t, err)
		assert.Equal(t, "Hello world", out)
	})

	t.Run("rejects on whitelist miss", func(t *testing.T) {
		t.Parallel()
		_, err := v.GetValidInput("comment", "<script>alert(1)</script>", "SafeString", 100, false)
		require.Error(t, err)
		assert.True(t, secerr.IsValidation(err))
	})

	t.Run("rejects double encoding", func(t *testing.T) {
		t.Parallel()
		_, err := v.GetValidInput("comment", "%2541", "SafeString", 100, false)
		require.Error(t, err)
		assert.True(t, secerr.IsValidation(err))
	})

	t.Run("unregistered type name is used as the pattern", func(t *testing.T) {
		t.Parallel()
		out, err := v.GetValidInput("code", "AB1234", `[A-Z]{2}[0-9]{4}`, 10, false)
		require.NoError(t, err)
		assert.Equal(t, "AB1234", out)

		_, err = v.GetValidInput("code", "ab1234", `[A-Z]{2}[0-9]{4}`, 10, false)
		assert.Error(t, err)
	})

	t.Run("length cap on the canonical form", func(t *testing.T) {
		t.Parallel()
		_, err := v.GetValidInput("comment", "toolong", "SafeString", 5, false)
		assert.Error(t, err)
	})

	t.Run("call forms agree", func(t *testing.T) {
		t.Parallel()
		tests := []struct {
			name  string
			input string
			valid bool
		}{
			{"clean value", "hello", true},
			{"encoded clean value", "he%6Clo", true},
			{"hostile value", "<img onerror=x>", false},
			{"double encoded", "%2526", false},
			{"empty not allowed", "", false},
		}
		for _, tt := range tests {
			tt := tt
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()
				is := v.IsValidInput("field", tt.input, "SafeString", 100, false)
				_, getErr := v.GetValidInput("field", tt.input, "SafeString", 100, false)

				var errs secerr.ErrorList
				_, colErr := v.CollectValidInput(&errs, "field", tt.input, "SafeString", 100, false)
				require.NoError(t, colErr)

				assert.Equal(t, tt.valid, is, "predicate form")
				assert.Equal(t, tt.valid, getErr == nil, "strict form")
				assert.Equal(t, tt.valid, errs.Empty(), "accumulating form")
			})
		}
	})

	t.Run("accumulating form keeps collecting", func(t *testing.T) {
		t.Parallel()
		var errs secerr.ErrorList
		_, err := v.CollectValidInput(&errs, "first", "bad<", "SafeString", 100, false)
		require.NoError(t, err)
		_, err = v.CollectValidInput(&errs, "second", "also|bad", "SafeString", 100, false)
		require.NoError(t, err)
		_, err = v.CollectValidInput(&errs, "third", "fine", "SafeString", 100, false)
		require.NoError(t, err)

		assert.Equal(t, 2, errs.Len())
		assert.Equal(t, []string{"first", "second"}, errs.Contexts())
	})
}

func TestValidRedirectLocation(t *testing.T) {
	t.Parallel()

	v := validate.New()

	t.Run("accepts a site-relative target", func(t *testing.T) {
		t.Parallel()
		out, err := v.GetValidRedirectLocation("redirect", "/account/settings?tab=profile", false)
		require.NoError(t, err)
		assert.Equal(t, "/account/settings?tab=profile", out)
	})

	t.Run("rejects absolute URLs", func(t *testing.T) {
		t.Parallel()
		assert.False(t, v.IsValidRedirectLocation("redirect", "http://evil.example/", false))
	})

	t.Run("rejects protocol-relative targets", func(t *testing.T) {
		t.Parallel()
		assert.False(t, v.IsValidRedirectLocation("redirect", "//evil.example/", false))
	})
}

func TestValidUUID(t *testing.T) {
	t.Parallel()

	v := validate.New()

	t.Run("accepts and lowercases", func(t *testing.T) {
		t.Parallel()
		out, err := v.GetValidUUID("id", "6BA7B810-9DAD-11D1-80B4-00C04FD430C8", false)
		require.NoError(t, err)
		assert.Equal(t, "6ba7b810-9dad-11d1-80b4-00c04fd430c8", out)
	})

	t.Run("rejects non-canonical lengths", func(t *testing.T) {
		t.Parallel()
		// Parseable by lenient parsers but not 36 characters.
		for _, input := range []string{
			"urn:uuid:6ba7b810-9dad-11d1-80b4-00c04fd430c8",
			"6ba7b8109dad11d180b400c04fd430c8",
			"{6ba7b810-9dad-11d1-80b4-00c04fd430c8}",
		} {
			assert.False(t, v.IsValidUUID("id", input, false), "input %q", input)
		}
	})

	t.Run("rejects garbage", func(t *testing.T) {
		t.Parallel()
		assert.False(t, v.IsValidUUID("id", "not-a-uuid", false))
	})

	t.Run("empty requires opt-in", func(t *testing.T) {
		t.Parallel()
		assert.False(t, v.IsValidUUID("id", "", false))
		assert.True(t, v.IsValidUUID("id", "", true))
	})
}
