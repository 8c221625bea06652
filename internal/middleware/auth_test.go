package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tardis-journal/internal/model"
	"tardis-journal/pkg/apierror"
)

type stubResolver struct {
	user model.User
	err  error
}

func (s *stubResolver) ResolveUser(_ context.Context, _ string) (model.User, error) {
	return s.user, s.err
}

func runRequireAuth(t *testing.T, resolver identityResolver, authorization string) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		_, ok := UserFromContext(r.Context())
		assert.True(t, ok, "user must be in context for authed requests")
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/journeys", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	rec := httptest.NewRecorder()
	NewAuthMiddleware(resolver).RequireAuth(next).ServeHTTP(rec, req)
	return rec, called
}

func decodeDetail(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Detail string `json:"detail"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Detail
}

func TestRequireAuth(t *testing.T) {
	t.Parallel()

	t.Run("missing header is 401 Not authenticated", func(t *testing.T) {
		rec, called := runRequireAuth(t, &stubResolver{}, "")

		assert.False(t, called)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Not authenticated", decodeDetail(t, rec))
	})

	t.Run("non-bearer scheme is rejected", func(t *testing.T) {
		rec, called := runRequireAuth(t, &stubResolver{}, "Basic dXNlcjpwYXNz")

		assert.False(t, called)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("resolver failure propagates the detail", func(t *testing.T) {
		resolver := &stubResolver{err: apierror.Unauthorized("Invalid authentication credentials")}
		rec, called := runRequireAuth(t, resolver, "Bearer bad-token")

		assert.False(t, called)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Invalid authentication credentials", decodeDetail(t, rec))
	})

	t.Run("resolved user reaches the next handler", func(t *testing.T) {
		resolver := &stubResolver{user: model.User{ID: 1, Login: "rose", CharacterID: 7}}
		rec, called := runRequireAuth(t, resolver, "Bearer good-token")

		assert.True(t, called)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
