// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-kv-keeper/internal/config"
	"github.com/MKhiriev/go-kv-keeper/internal/logger"
	"github.com/MKhiriev/go-kv-keeper/models"
)

// newTestAdapter builds an httpServerAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()

	a, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: serverURL}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

// ── constructor ─────────────────────────────────────────────────────────────

func TestNewHTTPServerAdapter_EmptyAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{}, logger.Nop())
	assert.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "bare host", raw: "localhost:8080", want: "http://localhost:8080"},
		{name: "full url", raw: "https://kv.example.com/", want: "https://kv.example.com"},
		{name: "whitespace", raw: "  127.0.0.1:8080  ", want: "http://127.0.0.1:8080"},
		{name: "empty", raw: "", wantErr: true},
		{name: "scheme only", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── Login ───────────────────────────────────────────────────────────────────

func TestLogin_StoresBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)

		var credentials models.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&credentials))
		assert.Equal(t, "admin", credentials.Login)

		w.Header().Set("Authorization", "Bearer issued-token")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.Login(context.Background(), models.Credentials{Login: "admin", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "issued-token", a.Token())
}

func TestLogin_WrongCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid login/password", http.StatusUnauthorized)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.Login(context.Background(), models.Credentials{Login: "admin", Password: "guess"})

	assert.True(t, errors.Is(err, ErrUnauthorized))
	assert.Empty(t, a.Token())
}

// ── Get ─────────────────────────────────────────────────────────────────────

func TestGet_ReturnsValue(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/greeting", r.URL.Path)
		assert.Equal(t, "Bearer stored-token", r.Header.Get("Authorization"))
		w.Write([]byte("hello"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("stored-token")

	value, err := a.Get(context.Background(), "greeting")
	require.NoError(t, err)
	assert.Equal(t, "hello", value)
}

func TestGet_MissReturnsErrNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Not Found", http.StatusNotFound)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Get(context.Background(), "nothing")

	assert.True(t, errors.Is(err, ErrNotFound))
}

// ── Upsert / Update / Remove ────────────────────────────────────────────────

func TestUpsert_SendsValuePayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/greeting", r.URL.Path)

		var payload models.ValuePayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "hello", payload.Value)

		json.NewEncoder(w).Encode(models.Entry{Key: "greeting", Value: payload.Value})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	saved, err := a.Upsert(context.Background(), "greeting", "hello")

	require.NoError(t, err)
	assert.Equal(t, "greeting", saved.Key)
	assert.Equal(t, "hello", saved.Value)
}

func TestUpdate_MissReturnsErrNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		http.Error(w, "Not Found", http.StatusNotFound)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Update(context.Background(), "nothing", "x")

	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestRemove_Succeeds(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	assert.NoError(t, a.Remove(context.Background(), "greeting"))
}

// ── Keys / Version ──────────────────────────────────────────────────────────

func TestKeys_DecodesListing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/", r.URL.Path)
		assert.Equal(t, "user:", r.URL.Query().Get("prefix"))
		json.NewEncoder(w).Encode(models.KeysResponse{Keys: []string{"user:alice"}, Length: 1})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	keys, err := a.Keys(context.Background(), "user:")

	require.NoError(t, err)
	assert.Equal(t, []string{"user:alice"}, keys)
}

func TestVersion_ReturnsPlainText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/version", r.URL.Path)
		w.Write([]byte("1.2.3"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	version, err := a.Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.2.3", version)
}

// ── error mapping ───────────────────────────────────────────────────────────

func TestErrorMapping_ServerOverload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Get(context.Background(), "greeting")

	assert.True(t, errors.Is(err, ErrServiceUnavailable))
}

func TestErrorMapping_ServerTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "request timed out", http.StatusRequestTimeout)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Get(context.Background(), "greeting")

	assert.True(t, errors.Is(err, ErrRequestTimeout))
}
