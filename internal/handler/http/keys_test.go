package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-kv-keeper/internal/service"
	"github.com/MKhiriev/go-kv-keeper/internal/store"
	"github.com/MKhiriev/go-kv-keeper/models"
)

// ─────────────────────────────────────────────
// GET /api/{key}
// ─────────────────────────────────────────────

func TestRead_ReturnsPlainTextValue(t *testing.T) {
	kv := &mockKeyValueService{
		readFn: func(ctx context.Context, key string) (models.Entry, error) {
			assert.Equal(t, "greeting", key)
			return models.Entry{Key: key, Value: "hello"}, nil
		},
	}
	router := newTestHandler(t, kv, nil, false).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/greeting", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "hello", rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
}

func TestRead_MissingKeyReturns404(t *testing.T) {
	kv := &mockKeyValueService{
		readFn: func(ctx context.Context, key string) (models.Entry, error) {
			return models.Entry{}, store.ErrKeyNotFound
		},
	}
	router := newTestHandler(t, kv, nil, false).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/nothing", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ─────────────────────────────────────────────
// POST /api/{key}
// ─────────────────────────────────────────────

func TestUpsert_StoresValue(t *testing.T) {
	kv := &mockKeyValueService{
		upsertFn: func(ctx context.Context, key string, value string) (models.Entry, error) {
			assert.Equal(t, "greeting", key)
			assert.Equal(t, "hello", value)
			return models.Entry{Key: key, Value: value}, nil
		},
	}
	router := newTestHandler(t, kv, nil, false).Init()

	body := jsonBody(t, models.ValuePayload{Value: "hello"})
	req := httptest.NewRequest(http.MethodPost, "/api/greeting", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var saved models.Entry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &saved))
	assert.Equal(t, "greeting", saved.Key)
	assert.Equal(t, "hello", saved.Value)
}

func TestUpsert_EmptyValueReturns400(t *testing.T) {
	kv := &mockKeyValueService{
		upsertFn: func(ctx context.Context, key string, value string) (models.Entry, error) {
			return models.Entry{}, service.ErrInvalidDataProvided
		},
	}
	router := newTestHandler(t, kv, nil, false).Init()

	body := jsonBody(t, models.ValuePayload{Value: ""})
	req := httptest.NewRequest(http.MethodPost, "/api/greeting", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpsert_InvalidJSONReturns400(t *testing.T) {
	router := newTestHandler(t, &mockKeyValueService{}, nil, false).Init()

	req := httptest.NewRequest(http.MethodPost, "/api/greeting", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// PUT /api/{key}
// ─────────────────────────────────────────────

func TestUpdate_ReplacesValue(t *testing.T) {
	kv := &mockKeyValueService{
		updateFn: func(ctx context.Context, key string, value string) (models.Entry, error) {
			return models.Entry{Key: key, Value: value}, nil
		},
	}
	router := newTestHandler(t, kv, nil, false).Init()

	body := jsonBody(t, models.ValuePayload{Value: "hi"})
	req := httptest.NewRequest(http.MethodPut, "/api/greeting", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdate_MissingKeyReturns404(t *testing.T) {
	kv := &mockKeyValueService{
		updateFn: func(ctx context.Context, key string, value string) (models.Entry, error) {
			return models.Entry{}, store.ErrKeyNotFound
		},
	}
	router := newTestHandler(t, kv, nil, false).Init()

	body := jsonBody(t, models.ValuePayload{Value: "hi"})
	req := httptest.NewRequest(http.MethodPut, "/api/nothing", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ─────────────────────────────────────────────
// DELETE /api/{key}
// ─────────────────────────────────────────────

func TestRemove_Returns204(t *testing.T) {
	removed := false
	kv := &mockKeyValueService{
		removeFn: func(ctx context.Context, key string) error {
			removed = true
			return nil
		},
	}
	router := newTestHandler(t, kv, nil, false).Init()

	req := httptest.NewRequest(http.MethodDelete, "/api/greeting", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.True(t, removed)
}

// ─────────────────────────────────────────────
// GET /api/
// ─────────────────────────────────────────────

func TestKeys_ReturnsJSONListing(t *testing.T) {
	kv := &mockKeyValueService{
		keysFn: func(ctx context.Context, prefix string) ([]string, error) {
			assert.Empty(t, prefix)
			return []string{"alpha", "beta"}, nil
		},
	}
	router := newTestHandler(t, kv, nil, false).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var listing models.KeysResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listing))
	assert.Equal(t, []string{"alpha", "beta"}, listing.Keys)
	assert.Equal(t, 2, listing.Length)
}

func TestKeys_PrefixQueryIsForwarded(t *testing.T) {
	kv := &mockKeyValueService{
		keysFn: func(ctx context.Context, prefix string) ([]string, error) {
			assert.Equal(t, "user:", prefix)
			return []string{"user:alice"}, nil
		},
	}
	router := newTestHandler(t, kv, nil, false).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/?prefix=user:", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
