// Package service contains the workdate calculation workflow
package service

import (
	"context"
	"time"

	"workdays/internal/core/calendar"
	perr "workdays/internal/platform/errors"
	"workdays/internal/services/api/workdate/domain"
)

// isoMillis is the response timestamp layout: ISO-8601 UTC, millisecond precision
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

// Service defines the workdate service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the workdate service over the calendar engine
type Svc struct {
	calc *calendar.Calculator
	now  func() time.Time // seam for deterministic tests
}

// New constructs a workdate service
func New(calc *calendar.Calculator) *Svc {
	if calc == nil {
		panic("workdate.Service requires a non nil Calculator")
	}
	return &Svc{calc: calc, now: time.Now}
}

// Calculate resolves the starting instant, applies the requested business day
// and hour advances, and formats the resulting UTC instant. Days are always
// applied before hours regardless of parameter order on the wire.
func (s *Svc) Calculate(_ context.Context, in domain.CalculateInput) (domain.CalculateResult, error) {
	start := s.now().UTC()
	if in.Date != nil {
		parsed, err := time.Parse(time.RFC3339, *in.Date)
		if err != nil {
			// the binder already enforces the shape; this is a belt for direct callers
			return domain.CalculateResult{}, perr.WithField(
				perr.Validationf("date must be a valid ISO 8601 UTC timestamp"), "date")
		}
		start = parsed
	}

	var days int
	if in.Days != nil {
		days = *in.Days
	}
	var hours float64
	if in.Hours != nil {
		hours = *in.Hours
	}

	target := s.calc.Calculate(start, days, hours)
	return domain.CalculateResult{Date: target.Format(isoMillis)}, nil
}
