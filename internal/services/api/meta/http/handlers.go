// Package http provides meta endpoints
package http

import (
	"net/http"
	"time"

	"workdays/internal/adapters/holidays"
	"workdays/internal/core/version"
	"workdays/internal/modkit/httpkit"
)

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	InstanceID  string
	StartedAt   time.Time
	Holidays    *holidays.Snapshot
	Timezone    string
}

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}

	// mount routes
	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
}

//
// Swagger DTOs and route docs
//

// HealthResponse is the health payload
// swagger:model
type HealthResponse struct {
	OK      bool   `json:"ok"       example:"true"`
	Service string `json:"service"  example:"workdays-api"`
	Started string `json:"started"  example:"2026-08-28T13:00:00Z"`
	Now     string `json:"now"      example:"2026-08-28T13:05:00Z"`
}

// ReadyCheck describes a single dependency check
type ReadyCheck struct {
	Name   string `json:"name"   example:"holidays"`
	Status string `json:"status" example:"ok"` // ok fail
	Error  string `json:"error,omitempty" example:"holiday snapshot not loaded"`
}

// ReadyResponse summarizes readiness
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"` // ok fail
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2026-08-28T13:05:00Z"`
}

// ServiceResponse describes service info
type ServiceResponse struct {
	Name     string `json:"name"     example:"workdays-api"`
	Instance string `json:"instance" example:"0f8fad5b-d9cb-469f-a165-70867728950e"`
	Timezone string `json:"timezone" example:"America/Bogota"`
	Started  string `json:"started"  example:"2026-08-28T13:00:00Z"`
	Uptime   int64  `json:"uptime"   example:"300"`
}

// swagger:route GET /meta/health Meta metaHealth
// @Summary Health check
// @Tags Meta
// @Produce json
// @Success 200 type HealthResponse "ok"
// @Router /meta/health [get]
func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Now:     time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// swagger:route GET /meta/ready Meta metaReady
// @Summary Readiness probe with dependency checks
// @Tags Meta
// @Produce json
// @Success 200 type ReadyResponse ok
// @Router /meta/ready [get]
func (h *handlers) ready(_ *http.Request) (any, error) {
	// the holiday snapshot is frozen at startup; ready just proves it exists
	hol := ReadyCheck{Name: "holidays", Status: "ok"}
	if h.deps.Holidays == nil || h.deps.Holidays.Set == nil || h.deps.Holidays.Set.Len() == 0 {
		hol = ReadyCheck{Name: "holidays", Status: "fail", Error: "holiday snapshot not loaded"}
	}

	overall := "ok"
	if hol.Status != "ok" {
		overall = "fail"
	}

	return ReadyResponse{
		Status: overall,
		Checks: []ReadyCheck{hol},
		Now:    time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// swagger:route GET /meta/version Meta metaVersion
// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 type version.BuildInfo ok
// @Router /meta/version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(), nil
}

// swagger:route GET /meta/service Meta metaService
// @Summary Service info and uptime
// @Tags Meta
// @Produce json
// @Success 200 type ServiceResponse ok
// @Router /meta/service [get]
func (h *handlers) service(_ *http.Request) (any, error) {
	uptime := time.Since(h.deps.StartedAt)
	return ServiceResponse{
		Name:     h.deps.ServiceName,
		Instance: h.deps.InstanceID,
		Timezone: h.deps.Timezone,
		Started:  h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:   int64(uptime / time.Second),
	}, nil
}
