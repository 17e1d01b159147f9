// internal/middleware/admin.go
package middleware

import (
	"crypto/subtle"
	"net/http"
)

// AdminMiddleware guards administrative endpoints with a shared token. An
// empty configured token disables the surface entirely.
func AdminMiddleware(adminToken string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if adminToken == "" {
				respondWithError(w, http.StatusForbidden, "Admin surface is disabled")
				return
			}

			provided := r.Header.Get("X-Admin-Token")
			if subtle.ConstantTimeCompare([]byte(provided), []byte(adminToken)) != 1 {
				respondWithError(w, http.StatusForbidden, "Invalid admin token")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
