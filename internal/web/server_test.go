package web

import (
	"context"
	"net/http"
	"testing"
	"time"
)

func TestServer_ListenBeforeStart(t *testing.T) {
	server := NewServer("127.0.0.1:0", newTestRouter(t, ""))
	if err := server.Listen(); err != nil {
		t.Fatalf("Listen() error = %v", err)
	}

	// A request made between Listen and Start waits for the server instead
	// of being refused.
	respCh := make(chan error, 1)
	go func() {
		client := &http.Client{Timeout: 5 * time.Second}
		resp, err := client.Get("http://" + server.Addr() + "/healthz")
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				err = &unexpectedStatus{resp.StatusCode}
			}
		}
		respCh <- err
	}()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- server.Start(ctx) }()

	if err := <-respCh; err != nil {
		t.Errorf("GET /healthz error = %v", err)
	}

	cancel()
	if err := <-done; err != nil {
		t.Errorf("Start() error = %v", err)
	}
}

func TestServer_ListenError(t *testing.T) {
	first := NewServer("127.0.0.1:0", http.NotFoundHandler())
	if err := first.Listen(); err != nil {
		t.Fatalf("Listen() error = %v", err)
	}
	defer first.ln.Close()

	second := NewServer(first.Addr(), http.NotFoundHandler())
	if err := second.Listen(); err == nil {
		t.Error("Listen() on a bound address succeeded")
	}
}

type unexpectedStatus struct{ code int }

func (e *unexpectedStatus) Error() string {
	return http.StatusText(e.code)
}
