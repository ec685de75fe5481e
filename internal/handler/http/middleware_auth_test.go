package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-kv-keeper/internal/service"
	"github.com/MKhiriev/go-kv-keeper/internal/utils"
	"github.com/MKhiriev/go-kv-keeper/models"
)

// newAuthedHandler wraps the auth middleware around a handler that records whether
// it was reached and with which login in context.
func newAuthedHandler(t *testing.T, auth service.AuthService) (http.Handler, *string) {
	t.Helper()

	var reachedLogin string
	h := newTestHandler(t, nil, auth, true)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if login, ok := utils.GetLoginFromContext(r.Context()); ok {
			reachedLogin = login
		}
		w.WriteHeader(http.StatusOK)
	})

	return h.auth(next), &reachedLogin
}

func TestAuthMiddleware_MissingHeaderReturns401(t *testing.T) {
	handler, _ := newAuthedHandler(t, &mockAuthService{})

	req := httptest.NewRequest(http.MethodGet, "/api/greeting", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Authorization")
}

func TestAuthMiddleware_MalformedHeaderReturns401(t *testing.T) {
	handler, _ := newAuthedHandler(t, &mockAuthService{})

	req := httptest.NewRequest(http.MethodGet, "/api/greeting", nil)
	req.Header.Set("Authorization", "Bearer")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_ExpiredTokenReturns401(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(ctx context.Context, tokenString string) (models.Token, error) {
			return models.Token{}, service.ErrTokenIsExpired
		},
	}
	handler, _ := newAuthedHandler(t, auth)

	req := httptest.NewRequest(http.MethodGet, "/api/greeting", nil)
	req.Header.Set("Authorization", "Bearer expired-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "expired")
}

func TestAuthMiddleware_ValidTokenReachesHandlerWithLogin(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(ctx context.Context, tokenString string) (models.Token, error) {
			require.Equal(t, "valid-token", tokenString)
			return models.Token{Login: "admin"}, nil
		},
	}
	handler, reachedLogin := newAuthedHandler(t, auth)

	req := httptest.NewRequest(http.MethodGet, "/api/greeting", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "admin", *reachedLogin)
}
