package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWithTimeout_SlowHandlerGets408(t *testing.T) {
	slow := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
			w.WriteHeader(http.StatusOK)
		}
	})
	handler := withTimeout(20 * time.Millisecond)(slow)

	req := httptest.NewRequest(http.MethodGet, "/api/greeting", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestTimeout, rec.Code)
	assert.Equal(t, "request timed out", rec.Body.String())
}

func TestWithTimeout_FastHandlerUnaffected(t *testing.T) {
	fast := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("done"))
	})
	handler := withTimeout(time.Second)(fast)

	req := httptest.NewRequest(http.MethodGet, "/api/greeting", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "done", rec.Body.String())
}

func TestWithTimeout_HandlerSeesDeadline(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasDeadline := r.Context().Deadline()
		assert.True(t, hasDeadline)
		w.WriteHeader(http.StatusOK)
	})
	handler := withTimeout(time.Second)(inner)

	req := httptest.NewRequest(http.MethodGet, "/api/greeting", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)
}

func TestWithTimeout_ZeroTimeoutDisablesMiddleware(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasDeadline := r.Context().Deadline()
		assert.False(t, hasDeadline)
		w.WriteHeader(http.StatusOK)
	})
	handler := withTimeout(0)(inner)

	req := httptest.NewRequest(http.MethodGet, "/api/greeting", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

// TestWithTimeout_NoDoubleWriteAfterResponse verifies that a handler which
// answered before the deadline fired does not get a stray 408 written on top.
func TestWithTimeout_NoDoubleWriteAfterResponse(t *testing.T) {
	handler := withTimeout(30 * time.Millisecond)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/greeting", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	time.Sleep(50 * time.Millisecond)

	assert.Equal(t, http.StatusCreated, rec.Code)
}
