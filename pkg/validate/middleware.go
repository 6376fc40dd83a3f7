package validate

import (
	"net/http"

	"github.com/gatekit/gatekit/pkg/secerr"
)

// Middleware returns net/http middleware that validates the whole request
// surface before invoking the next handler. Whitelist failures answer 400;
// an unexpected HTTP method answers 403.
func Middleware(v *Validator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := v.AssertValidRequest(r); err != nil {
				if secerr.IsIntrusion(err) {
					http.Error(w, "forbidden", http.StatusForbidden)
					return
				}
				http.Error(w, "invalid request", http.StatusBadRequest)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
