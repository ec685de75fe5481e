package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-kv-keeper/internal/service"
	"github.com/MKhiriev/go-kv-keeper/models"
)

// ─────────────────────────────────────────────
// POST /api/auth/login
// ─────────────────────────────────────────────

func TestLogin_ReturnsBearerTokenHeader(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(ctx context.Context, credentials models.Credentials) (models.Token, error) {
			assert.Equal(t, "admin", credentials.Login)
			return models.Token{SignedString: "signed-token", Login: credentials.Login}, nil
		},
	}
	router := newTestHandler(t, nil, auth, true).Init()

	body := jsonBody(t, models.Credentials{Login: "admin", Password: "secret"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer signed-token", rec.Header().Get("Authorization"))
}

func TestLogin_WrongCredentialsReturns401(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(ctx context.Context, credentials models.Credentials) (models.Token, error) {
			return models.Token{}, service.ErrWrongCredentials
		},
	}
	router := newTestHandler(t, nil, auth, true).Init()

	body := jsonBody(t, models.Credentials{Login: "admin", Password: "guess"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogin_EmptyCredentialsReturns400(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(ctx context.Context, credentials models.Credentials) (models.Token, error) {
			return models.Token{}, service.ErrInvalidDataProvided
		},
	}
	router := newTestHandler(t, nil, auth, true).Init()

	body := jsonBody(t, models.Credentials{})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin_InvalidJSONReturns400(t *testing.T) {
	router := newTestHandler(t, nil, &mockAuthService{}, true).Init()

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader("{broken"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// TestLogin_RouteAbsentWhenAuthDisabled verifies the login endpoint is not
// registered at all when authentication is turned off.
func TestLogin_RouteAbsentWhenAuthDisabled(t *testing.T) {
	router := newTestHandler(t, nil, nil, false).Init()

	body := jsonBody(t, models.Credentials{Login: "admin", Password: "secret"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
