package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"tardis-journal/internal/model"
	"tardis-journal/pkg/apierror"
)

type identityResolver interface {
	ResolveUser(ctx context.Context, token string) (model.User, error)
}

type contextKey string

const userContextKey contextKey = "auth_user"

type AuthMiddleware struct {
	resolver identityResolver
}

func NewAuthMiddleware(resolver identityResolver) *AuthMiddleware {
	return &AuthMiddleware{resolver: resolver}
}

// RequireAuth resolves the bearer token to a user record and stores it in the
// request context. Anything short of a valid token naming a live user is a
// 401.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := strings.TrimSpace(r.Header.Get("Authorization"))
		if header == "" || !strings.HasPrefix(strings.ToLower(header), "bearer ") {
			writeUnauthorized(w, "Not authenticated")
			return
		}

		token := strings.TrimSpace(header[7:])
		user, err := m.resolver.ResolveUser(r.Context(), token)
		if err != nil {
			var apiErr *apierror.APIError
			if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized {
				writeUnauthorized(w, apiErr.Detail)
			} else {
				writeUnauthorized(w, "Invalid authentication credentials")
			}
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func UserFromContext(ctx context.Context) (model.User, bool) {
	user, ok := ctx.Value(userContextKey).(model.User)
	return user, ok
}

func writeUnauthorized(w http.ResponseWriter, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(apierror.APIError{Detail: detail})
}
