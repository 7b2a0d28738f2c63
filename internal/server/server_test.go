package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/vanshika/bataanroute/backend/internal/config"
)

func TestServer_ServeAndShutdown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to listen: %v", err)
	}

	handler := NewRouter(discardLogger(), RouterDependencies{})
	srv := New(discardLogger(), config.HTTPConfig{ReadTimeout: time.Second, WriteTimeout: time.Second}, handler)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		t.Fatalf("shutdown failed: %v", err)
	}
	if err := <-errCh; err != nil {
		t.Fatalf("expected nil error after shutdown, got %v", err)
	}
}
