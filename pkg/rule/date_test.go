package rule_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatekit/gatekit/pkg/rule"
)

func TestDateRule(t *testing.T) {
	t.Parallel()

	r := rule.NewDateRule("TestDate", testEncoder(), "2006-01-02")

	t.Run("accepts a well-formed date", func(t *testing.T) {
		t.Parallel()
		got, err := r.ValidDate("field", "2015-06-07")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2015, time.June, 7, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("rejects the wrong layout", func(t *testing.T) {
		t.Parallel()
		for _, input := range []string{"07/06/2015", "2015-6-7", "June 7, 2015"} {
			_, err := r.ValidDate("field", input)
			assert.Error(t, err, "input %q", input)
		}
	})

	t.Run("rejects impossible dates", func(t *testing.T) {
		t.Parallel()
		_, err := r.ValidDate("field", "2015-02-30")
		assert.Error(t, err)
	})

	t.Run("canonical text form round-trips", func(t *testing.T) {
		t.Parallel()
		out, err := r.Valid("field", "2015-06-07")
		require.NoError(t, err)
		assert.Equal(t, "2015-06-07", out)
	})

	t.Run("empty input requires opt-in", func(t *testing.T) {
		t.Parallel()
		_, err := r.ValidDate("field", "")
		require.Error(t, err)

		lenient := rule.NewDateRule("Lenient", testEncoder(), "2006-01-02")
		lenient.SetAllowEmpty(true)
		got, err := lenient.ValidDate("field", "")
		require.NoError(t, err)
		assert.True(t, got.IsZero())
	})
}
