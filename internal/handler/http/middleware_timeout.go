package http

import (
	"context"
	"net/http"
	"time"

	"github.com/MKhiriev/go-kv-keeper/internal/app"
)

// withTimeout bounds every request with a deadline. Handlers and the layers
// below them observe the deadline through the request context; when it fires
// before anything has been written, the client receives 408 Request Timeout.
//
// A zero or negative timeout disables the middleware.
func withTimeout(timeout time.Duration) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if timeout <= 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)

			lw, ok := w.(*responseWriter)
			if !ok {
				lw = &responseWriter{ResponseWriter: w}
			}

			defer func() {
				cancel()
				if ctx.Err() == context.DeadlineExceeded && !lw.wroteHeader {
					lw.WriteHeader(http.StatusRequestTimeout)
					lw.Write([]byte(app.MsgRequestTimedOut))
				}
			}()

			next.ServeHTTP(lw, r.WithContext(ctx))
		})
	}
}
