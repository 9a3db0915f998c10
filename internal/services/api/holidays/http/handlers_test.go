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

	holhttp "workdays/internal/services/api/holidays/http"
)

func mount(t *testing.T, snap *holidays.Snapshot) phttp.Router {
	t.Helper()
	r := phttp.NewServer(config.New()).Router()
	holhttp.Register(r, holhttp.Deps{Snapshot: snap})
	return r
}

func TestList(t *testing.T) {
	set, _ := calendar.NewHolidaySet([]string{"2025-12-25", "2025-01-01"})
	snap := &holidays.Snapshot{Set: set, Source: "cache", LoadedAt: time.Now().UTC()}

	rec := httptest.NewRecorder()
	mount(t, snap).Mux().ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var env phttp.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	data := env.Data.(map[string]any)
	if data["count"].(float64) != 2 || data["source"] != "cache" {
		t.Fatalf("bad payload: %+v", data)
	}
	dates := data["dates"].([]any)
	if dates[0] != "2025-01-01" || dates[1] != "2025-12-25" {
		t.Fatalf("dates not sorted: %v", dates)
	}
}

func TestList_UnloadedSnapshotIsUnavailable(t *testing.T) {
	rec := httptest.NewRecorder()
	mount(t, nil).Mux().ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
	if rec.Code != stdhttp.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}
