package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-kv-keeper/models"
)

// ─────────────────────────────────────────────
// Plain routes
// ─────────────────────────────────────────────

func TestRootBanner(t *testing.T) {
	router := newTestHandler(t, nil, nil, false).Init()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Root dir", rec.Body.String())
}

func TestVersionRoute(t *testing.T) {
	router := newTestHandler(t, nil, nil, false).Init()

	req := httptest.NewRequest(http.MethodGet, "/version", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "test", rec.Body.String())
}

// ─────────────────────────────────────────────
// Method handling
// ─────────────────────────────────────────────

// TestUnsupportedMethodReturns404 verifies the MethodNotAllowed override:
// a wrong method on a known path answers 404 instead of 405.
func TestUnsupportedMethodReturns404(t *testing.T) {
	router := newTestHandler(t, nil, nil, false).Init()

	req := httptest.NewRequest(http.MethodDelete, "/version", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUnknownRouteReturns404(t *testing.T) {
	router := newTestHandler(t, nil, nil, false).Init()

	req := httptest.NewRequest(http.MethodGet, "/definitely/not/here", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ─────────────────────────────────────────────
// Auth wiring
// ─────────────────────────────────────────────

// TestKeyRoutesRequireTokenWhenAuthEnabled verifies the auth middleware
// guards the key routes once authentication is switched on.
func TestKeyRoutesRequireTokenWhenAuthEnabled(t *testing.T) {
	kv := &mockKeyValueService{
		readFn: func(ctx context.Context, key string) (models.Entry, error) {
			return models.Entry{Key: key, Value: "hello"}, nil
		},
	}
	router := newTestHandler(t, kv, &mockAuthService{}, true).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/greeting", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestKeyRoutesOpenWhenAuthDisabled(t *testing.T) {
	kv := &mockKeyValueService{
		readFn: func(ctx context.Context, key string) (models.Entry, error) {
			return models.Entry{Key: key, Value: "hello"}, nil
		},
	}
	router := newTestHandler(t, kv, nil, false).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/greeting", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

// ─────────────────────────────────────────────
// Trace propagation through the full stack
// ─────────────────────────────────────────────

func TestTraceIDPresentOnEveryResponse(t *testing.T) {
	router := newTestHandler(t, nil, nil, false).Init()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}
