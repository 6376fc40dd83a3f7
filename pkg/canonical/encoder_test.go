package canonical_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatekit/gatekit/pkg/canonical"
	"github.com/gatekit/gatekit/pkg/secerr"
)

func newEncoder() *canonical.Encoder {
	return canonical.NewEncoder(canonical.HTMLEntityCodec{}, canonical.PercentCodec{})
}

func TestEncoderCanonicalize(t *testing.T) {
	t.Parallel()

	t.Run("plain text passes through", func(t *testing.T) {
		t.Parallel()
		out, err := newEncoder().Canonicalize("hello world")
		require.NoError(t, err)
		assert.Equal(t, "hello world", out)
	})

	t.Run("single percent encoding decodes", func(t *testing.T) {
		t.Parallel()
		out, err := newEncoder().Canonicalize("%3Cscript%3E")
		require.NoError(t, err)
		assert.Equal(t, "<script>", out)
	})

	t.Run("single entity encoding decodes", func(t *testing.T) {
		t.Parallel()
		out, err := newEncoder().Canonicalize("&lt;script&gt;")
		require.NoError(t, err)
		assert.Equal(t, "<script>", out)
	})

	t.Run("double percent encoding rejected", func(t *testing.T) {
		t.Parallel()
		_, err := newEncoder().Canonicalize("%2526lt%253B")
		require.Error(t, err)
		assert.True(t, secerr.IsEncoding(err))
	})

	t.Run("mixed schemes rejected", func(t *testing.T) {
		t.Parallel()
		// Percent-decodes to "&lt;", which entity-decodes to "<".
		_, err := newEncoder().Canonicalize("%26lt%3B")
		require.Error(t, err)
		assert.True(t, secerr.IsEncoding(err))
	})

	t.Run("nested entity encoding rejected", func(t *testing.T) {
		t.Parallel()
		_, err := newEncoder().Canonicalize("&amp;lt;")
		require.Error(t, err)
		assert.True(t, secerr.IsEncoding(err))
	})

	t.Run("idempotent on accepted values", func(t *testing.T) {
		t.Parallel()
		enc := newEncoder()
		inputs := []string{"plain", "a b c", "%41lpha", "&lt;tag&gt;"}
		for _, input := range inputs {
			once, err := enc.Canonicalize(input)
			require.NoError(t, err, "input %q", input)
			twice, err := enc.Canonicalize(once)
			require.NoError(t, err, "canonical %q", once)
			assert.Equal(t, once, twice, "canonicalization must be a fixed point for %q", input)
		}
	})

	t.Run("unicode forms converge", func(t *testing.T) {
		t.Parallel()
		enc := newEncoder()
		composed, err := enc.Canonicalize("café")
		require.NoError(t, err)
		decomposed, err := enc.Canonicalize("café")
		require.NoError(t, err)
		assert.Equal(t, composed, decomposed)
	})
}

func TestFileEncoder(t *testing.T) {
	t.Parallel()

	enc := canonical.FileEncoder()
	out, err := enc.Canonicalize("%2Fprivate%2Fetc")
	require.NoError(t, err)
	assert.Equal(t, "/private/etc", out)

	_, err = enc.Canonicalize("%252Fetc")
	assert.Error(t, err)
}
