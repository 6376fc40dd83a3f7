package validate_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatekit/gatekit/pkg/secerr"
	"github.com/gatekit/gatekit/pkg/validate"
)

func TestValidRequest(t *testing.T) {
	t.Parallel()

	v := validate.New()

	t.Run("accepts a clean GET", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/search?q=hello&page=2", nil)
		r.Header.Set("Accept", "text/html")
		r.AddCookie(&http.Cookie{Name: "session", Value: "abc123"})

		assert.True(t, v.IsValidRequest(r))
		assert.NoError(t, v.AssertValidRequest(r))
	})

	t.Run("rejects a hostile parameter value", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/search?q=%3Cscript%3E", nil)
		err := v.AssertValidRequest(r)
		require.Error(t, err)
		assert.True(t, secerr.IsValidation(err))
		assert.Contains(t, err.Error(), "HTTP request parameter: q")
	})

	t.Run("rejects a hostile parameter name", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/search?bad%21name=1", nil)
		err := v.AssertValidRequest(r)
		require.Error(t, err)
		assert.True(t, secerr.IsValidation(err))
	})

	t.Run("rejects a hostile cookie value", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: "pref", Value: "x*y"})
		err := v.AssertValidRequest(r)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "HTTP request cookie: pref")
	})

	t.Run("rejects a hostile header value", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("X-Custom", "bad<value>")
		err := v.AssertValidRequest(r)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "HTTP request header: X-Custom")
	})

	t.Run("the Cookie header itself is exempt", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		// The raw Cookie header would never pass the generic header
		// whitelist; cookies are validated individually instead.
		r.AddCookie(&http.Cookie{Name: "a", Value: "1"})
		r.AddCookie(&http.Cookie{Name: "b", Value: "2"})
		assert.True(t, v.IsValidRequest(r))
	})

	t.Run("non-GET-or-POST methods are intrusions", func(t *testing.T) {
		t.Parallel()
		for _, method := range []string{http.MethodDelete, http.MethodPut, http.MethodTrace, "PROPFIND"} {
			r := httptest.NewRequest(method, "/", nil)
			err := v.AssertValidRequest(r)
			require.Error(t, err, "method %s", method)
			assert.True(t, secerr.IsIntrusion(err), "method %s", method)
		}
	})

	t.Run("nil request", func(t *testing.T) {
		t.Parallel()
		err := v.AssertValidRequest(nil)
		require.Error(t, err)
		assert.True(t, secerr.IsValidation(err))
	})

	t.Run("accumulating form swallows validation but not intrusion", func(t *testing.T) {
		t.Parallel()
		var errs secerr.ErrorList
		bad := httptest.NewRequest(http.MethodGet, "/?q=bad%21", nil)
		require.NoError(t, v.CollectValidRequest(&errs, bad))
		assert.Equal(t, 1, errs.Len())

		var errs2 secerr.ErrorList
		probe := httptest.NewRequest(http.MethodDelete, "/", nil)
		err := v.CollectValidRequest(&errs2, probe)
		require.Error(t, err)
		assert.True(t, secerr.IsIntrusion(err))
		assert.True(t, errs2.Empty())
	})
}

func TestValidParameterSet(t *testing.T) {
	t.Parallel()

	v := validate.New()
	required := []string{"id"}
	optional := []string{"page"}

	t.Run("exact required set passes", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/item?id=7", nil)
		assert.True(t, v.IsValidParameterSet("query", r, required, optional))
	})

	t.Run("optional parameters are admitted", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/item?id=7&page=2", nil)
		assert.NoError(t, v.AssertValidParameterSet("query", r, required, optional))
	})

	t.Run("extra parameters are named", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/item?id=7&page=2&debug=1", nil)
		err := v.AssertValidParameterSet("query", r, required, optional)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "extra parameters")
		assert.Contains(t, err.Error(), "debug")
	})

	t.Run("missing required parameters fail", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/item?page=2", nil)
		err := v.AssertValidParameterSet("query", r, required, optional)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing parameters")
	})

	t.Run("missing wins over extra", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/item?debug=1", nil)
		err := v.AssertValidParameterSet("query", r, required, optional)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing parameters")
		assert.NotContains(t, err.Error(), "extra parameters")
	})

	t.Run("accumulating form", func(t *testing.T) {
		t.Parallel()
		var errs secerr.ErrorList
		r := httptest.NewRequest(http.MethodGet, "/item?debug=1", nil)
		require.NoError(t, v.CollectValidParameterSet(&errs, "query", r, required, optional))
		assert.Equal(t, 1, errs.Len())
	})
}
