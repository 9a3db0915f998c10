// Package domain holds DTOs for the workdate http and service contracts
package domain

// CalculateInput is the advance request. Pointer fields distinguish an absent
// parameter from an explicit zero; at least one of days/hours must be present.
type CalculateInput struct {
	// Days is a whole number of business days to add
	Days *int `json:"days" query:"days" validate:"required_without=Hours,omitempty,min=0" example:"1"`

	// Hours is an amount of business hours to add; fractions are allowed and
	// rounded to whole minutes before any arithmetic
	Hours *float64 `json:"hours" query:"hours" validate:"required_without=Days,omitempty,min=0" example:"3.5"`

	// Date is the starting instant as ISO-8601 UTC with a literal Z suffix;
	// when absent the current instant is used
	Date *string `json:"date" query:"date" validate:"omitempty,utcdate" example:"2025-09-15T12:34:56Z"`
}

// CalculateResult carries the computed target instant, ISO-8601 UTC with
// millisecond precision
type CalculateResult struct {
	Date string `json:"date" example:"2025-09-15T22:00:00.000Z"`
}
