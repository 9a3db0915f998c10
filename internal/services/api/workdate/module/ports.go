package module

import (
	"context"

	"workdays/internal/services/api/workdate/domain"
	wdsvc "workdays/internal/services/api/workdate/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptWorkdatePort struct{ svc wdsvc.Service }

// Calculate resolves an advance request into a target UTC instant
func (a adaptWorkdatePort) Calculate(ctx context.Context, in domain.CalculateInput) (domain.CalculateResult, error) {
	return a.svc.Calculate(ctx, in)
}
