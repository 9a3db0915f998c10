// Package http provides http transport for workdate
package http

import (
	stdhttp "net/http"

	"workdays/internal/modkit/httpkit"
	"workdays/internal/services/api/workdate/domain"
	svc "workdays/internal/services/api/workdate/service"
)

// Register mounts workdate endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// target instant after adding business days/hours
	httpkit.GetQuery[domain.CalculateInput](r, "/calculate", h.calculate)
	httpkit.PostJSON[domain.CalculateInput](r, "/calculate", h.calculateBody)
}

type handlers struct{ svc svc.Service }

// swagger:route GET /workdate/calculate Workdate workdateCalculate
// @Summary Add business days and hours to an instant
// @Tags Workdate
// @Produce json
// @Param days query int false "business days to add"
// @Param hours query number false "business hours to add (fractions allowed)"
// @Param date query string false "starting instant, ISO-8601 UTC with Z suffix"
// @Success 200 {object} domain.CalculateResult "ok"
// @Router /workdate/calculate [get]
func (h *handlers) calculate(r *stdhttp.Request, in domain.CalculateInput) (any, error) {
	return h.svc.Calculate(r.Context(), in)
}

// swagger:route POST /workdate/calculate Workdate workdateCalculateBody
// @Summary Add business days and hours to an instant (JSON body)
// @Tags Workdate
// @Accept json
// @Produce json
// @Param payload body domain.CalculateInput true "advance request"
// @Success 200 {object} domain.CalculateResult "ok"
// @Router /workdate/calculate [post]
func (h *handlers) calculateBody(r *stdhttp.Request, in domain.CalculateInput) (any, error) {
	return h.svc.Calculate(r.Context(), in)
}
