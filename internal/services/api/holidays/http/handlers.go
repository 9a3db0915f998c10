// Package http provides read-only holiday endpoints
package http

import (
	stdhttp "net/http"
	"time"

	"workdays/internal/adapters/holidays"
	"workdays/internal/modkit/httpkit"
	perr "workdays/internal/platform/errors"
)

// Deps are the handler dependencies
type Deps struct {
	Snapshot *holidays.Snapshot
}

type handlers struct{ deps Deps }

// Register mounts the holiday routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}

	httpkit.Get(r, "/", h.list)
}

// ListResponse describes the loaded holiday snapshot
type ListResponse struct {
	Count    int      `json:"count" example:"18"`
	Source   string   `json:"source" example:"remote"`
	LoadedAt string   `json:"loaded_at" example:"2026-08-28T12:00:00Z"`
	Dates    []string `json:"dates"`
}

// swagger:route GET /holidays Holidays holidaysList
// @Summary Loaded holiday dates
// @Tags Holidays
// @Produce json
// @Success 200 {object} ListResponse "ok"
// @Router /holidays [get]
func (h *handlers) list(_ *stdhttp.Request) (any, error) {
	snap := h.deps.Snapshot
	if snap == nil || snap.Set == nil {
		return nil, perr.Unavailablef("holiday snapshot not loaded")
	}
	return ListResponse{
		Count:    snap.Set.Len(),
		Source:   snap.Source,
		LoadedAt: snap.LoadedAt.UTC().Format(time.RFC3339),
		Dates:    snap.Set.Dates(),
	}, nil
}
