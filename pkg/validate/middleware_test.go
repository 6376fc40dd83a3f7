package validate_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/gatekit/gatekit/pkg/validate"
)

func TestMiddleware(t *testing.T) {
	t.Parallel()

	router := chi.NewRouter()
	router.Use(validate.Middleware(validate.New()))
	router.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("pong"))
	})

	t.Run("clean request passes through", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping?q=hello", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "pong", rec.Body.String())
	})

	t.Run("whitelist failure answers 400", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping?q=bad%21value", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unexpected method answers 403", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/ping", nil))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
