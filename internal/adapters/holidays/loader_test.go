package holidays

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	perr "workdays/internal/platform/errors"
)

const payload = `["2025-01-01","2025-04-17","2025-04-18","2025-12-25"]`

func newTestLoader(url string, cacheFile string) *Loader {
	l := NewLoader(Options{
		URL:        url,
		Timeout:    2 * time.Second,
		MaxRetries: 3,
		RetryBase:  time.Millisecond,
		CacheFile:  cacheFile,
	})
	l.client.sleep = func(time.Duration) {} // no real backoff in tests
	return l
}

func TestLoad_RemoteSuccess(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ua := r.Header.Get("User-Agent"); ua != defaultUA {
			t.Errorf("unexpected user agent %q", ua)
		}
		_, _ = w.Write([]byte(payload))
	}))
	defer srv.Close()

	snap, err := newTestLoader(srv.URL, "").Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.Source != "remote" || snap.Set.Len() != 4 {
		t.Fatalf("got source=%q len=%d", snap.Source, snap.Set.Len())
	}
}

func TestLoad_RetriesTransientFailures(t *testing.T) {
	t.Parallel()
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(payload))
	}))
	defer srv.Close()

	snap, err := newTestLoader(srv.URL, "").Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.Set.Len() != 4 {
		t.Fatalf("expected 4 holidays, got %d", snap.Set.Len())
	}
	if n := calls.Load(); n != 3 {
		t.Fatalf("expected 3 attempts, got %d", n)
	}
}

func TestLoad_ClientErrorIsNotRetried(t *testing.T) {
	t.Parallel()
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newTestLoader(srv.URL, "").Load(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if n := calls.Load(); n != 1 {
		t.Fatalf("404 should not be retried, got %d attempts", n)
	}
}

func TestLoad_FallsBackToCache(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	cache := filepath.Join(t.TempDir(), "holidays.json")
	if err := os.WriteFile(cache, []byte(payload), 0o644); err != nil {
		t.Fatal(err)
	}

	snap, err := newTestLoader(srv.URL, cache).Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.Source != "cache" {
		t.Fatalf("expected cache source, got %q", snap.Source)
	}
	if snap.Set.Len() != 4 {
		t.Fatalf("expected 4 holidays, got %d", snap.Set.Len())
	}
}

func TestLoad_WritesCacheOnSuccess(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(payload))
	}))
	defer srv.Close()

	cache := filepath.Join(t.TempDir(), "holidays.json")
	if _, err := newTestLoader(srv.URL, cache).Load(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := os.ReadFile(cache)
	if err != nil {
		t.Fatalf("cache not written: %v", err)
	}
	if string(got) != payload {
		t.Fatalf("cache content mismatch: %s", got)
	}
}

func TestLoad_FailureWithoutCacheIsUnavailable(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestLoader(srv.URL, "").Load(context.Background())
	if perr.CodeOf(err) != perr.ErrorCodeUnavailable {
		t.Fatalf("expected unavailable, got %v", err)
	}
}

func TestLoad_RejectsNonArrayPayload(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"not":"an array"}`))
	}))
	defer srv.Close()

	_, err := newTestLoader(srv.URL, "").Load(context.Background())
	if perr.CodeOf(err) != perr.ErrorCodeJSON {
		t.Fatalf("expected JSON error, got %v", err)
	}
}

func TestLoad_EmptyListIsAnError(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	_, err := newTestLoader(srv.URL, "").Load(context.Background())
	if err == nil {
		t.Fatal("an empty holiday list must not start the service")
	}
}
