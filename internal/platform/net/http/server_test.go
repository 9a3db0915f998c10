package http_test

import (
	"context"
	"testing"
	"time"

	"workdays/internal/platform/config"
	phttp "workdays/internal/platform/net/http"
)

func TestRun_StopsOnContextCancel(t *testing.T) {
	t.Setenv("PORT", "127.0.0.1:0")
	srv := phttp.NewServer(config.New())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	// let the listener come up, then ask for a graceful stop
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error after cancel: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after context cancel")
	}
}
