// internal/middleware/auth.go
package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/fieldworks/territory/internal/auth"
	"github.com/fieldworks/territory/internal/domain"
	"github.com/fieldworks/territory/internal/repository"
	"github.com/google/uuid"
)

type contextKey string

const (
	UserIDKey    = contextKey("territory_user_id")
	CompanyIDKey = contextKey("territory_company_id")
)

// AuthMiddleware validates the bearer token and resolves the caller's
// company. Requests from users without a bootstrapped workspace are
// rejected; every downstream query is scoped to the company id placed in
// the context here.
func AuthMiddleware(tokenManager *auth.TokenManager, tenants repository.TenantRepositoryIface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				respondWithError(w, http.StatusUnauthorized, "No authorization header")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				respondWithError(w, http.StatusUnauthorized, "Invalid authorization header")
				return
			}

			claims, err := tokenManager.Validate(parts[1])
			if err != nil {
				respondWithError(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			userID, err := claims.UserID()
			if err != nil {
				respondWithError(w, http.StatusUnauthorized, "Invalid token subject")
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)

			// Tokens minted after bootstrap carry the company id directly.
			if claims.CompanyID != "" {
				if companyID, parseErr := uuid.Parse(claims.CompanyID); parseErr == nil {
					ctx = context.WithValue(ctx, CompanyIDKey, companyID)
					next.ServeHTTP(w, r.WithContext(ctx))
					return
				}
			}

			// No company claim yet; resolve it from the user's profile.
			profile, err := tenants.FindProfileByUserID(r.Context(), userID)
			if err != nil {
				if errors.Is(err, domain.ErrProfileNotFound) {
					respondWithError(w, http.StatusForbidden, "No workspace for user")
					return
				}
				respondWithError(w, http.StatusInternalServerError, "Failed to resolve user")
				return
			}
			if profile.CompanyID == nil {
				respondWithError(w, http.StatusForbidden, "User is not assigned to a company")
				return
			}

			ctx = context.WithValue(ctx, CompanyIDKey, *profile.CompanyID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext returns the authenticated user id.
func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(UserIDKey).(uuid.UUID)
	return id, ok
}

// CompanyIDFromContext returns the caller's company id.
func CompanyIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(CompanyIDKey).(uuid.UUID)
	return id, ok
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}
