package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Calculate(ctx context.Context, in CalculateInput) (CalculateResult, error)
}
