package server

import (
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-kv-keeper/internal/logger"
)

// TestHTTPServer_ShutdownReturnsAfterDrainTimeout pins that Shutdown gives
// up on connections that never finish instead of blocking the process exit.
func TestHTTPServer_ShutdownReturnsAfterDrainTimeout(t *testing.T) {
	release := make(chan struct{})
	t.Cleanup(func() { close(release) })

	inHandler := make(chan struct{})
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(inHandler)
		<-release
	})

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	h := &httpServer{
		server:       &http.Server{Handler: handler},
		drainTimeout: 50 * time.Millisecond,
		logger:       logger.Nop(),
	}
	go h.server.Serve(listener)

	go func() {
		resp, err := http.Get("http://" + listener.Addr().String() + "/")
		if err == nil {
			resp.Body.Close()
		}
	}()
	<-inHandler

	done := make(chan struct{})
	go func() {
		h.Shutdown()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Shutdown did not return after the drain timeout elapsed")
	}
}
