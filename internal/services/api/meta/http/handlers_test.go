package http_test

import (
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"workdays/internal/adapters/holidays"
	"workdays/internal/core/calendar"
	"workdays/internal/platform/config"
	phttp "workdays/internal/platform/net/http"

	metahttp "workdays/internal/services/api/meta/http"
)

func mount(t *testing.T, snap *holidays.Snapshot) phttp.Router {
	t.Helper()
	r := phttp.NewServer(config.New()).Router()
	metahttp.Register(r, metahttp.Deps{
		ServiceName: "workdays-api",
		InstanceID:  "test-instance",
		StartedAt:   time.Now().Add(-time.Minute),
		Holidays:    snap,
		Timezone:    "America/Bogota",
	})
	return r
}

func get(t *testing.T, r phttp.Router, path string) (int, phttp.Envelope) {
	t.Helper()
	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest("GET", path, nil))
	var env phttp.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal: %v (%s)", err, rec.Body.String())
	}
	return rec.Code, env
}

func loadedSnapshot(t *testing.T) *holidays.Snapshot {
	t.Helper()
	set, _ := calendar.NewHolidaySet([]string{"2025-01-01"})
	return &holidays.Snapshot{Set: set, Source: "remote", LoadedAt: time.Now().UTC()}
}

func TestHealth(t *testing.T) {
	code, env := get(t, mount(t, loadedSnapshot(t)), "/health")
	if code != stdhttp.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	data := env.Data.(map[string]any)
	if data["ok"] != true || data["service"] != "workdays-api" {
		t.Fatalf("bad health payload: %+v", data)
	}
}

func TestReady_OK(t *testing.T) {
	code, env := get(t, mount(t, loadedSnapshot(t)), "/ready")
	if code != stdhttp.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	data := env.Data.(map[string]any)
	if data["status"] != "ok" {
		t.Fatalf("expected ready, got %+v", data)
	}
}

func TestReady_FailsWithoutSnapshot(t *testing.T) {
	_, env := get(t, mount(t, nil), "/ready")
	data := env.Data.(map[string]any)
	if data["status"] != "fail" {
		t.Fatalf("expected fail, got %+v", data)
	}
}

func TestService(t *testing.T) {
	code, env := get(t, mount(t, loadedSnapshot(t)), "/service")
	if code != stdhttp.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	data := env.Data.(map[string]any)
	if data["instance"] != "test-instance" || data["timezone"] != "America/Bogota" {
		t.Fatalf("bad service payload: %+v", data)
	}
	if data["uptime"].(float64) < 59 {
		t.Fatalf("uptime should reflect StartedAt: %+v", data)
	}
}

func TestVersion(t *testing.T) {
	code, env := get(t, mount(t, loadedSnapshot(t)), "/version")
	if code != stdhttp.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if env.Data == nil {
		t.Fatal("expected build info payload")
	}
}
