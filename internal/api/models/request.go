package models

// CalculateRequest represents the request body for running a calculation.
// Range checks happen in internal/validate so each field gets its own
// error message instead of a generic binding failure.
type CalculateRequest struct {
	Principal float64 `json:"principal"`
	Rate      float64 `json:"rate"`
	Time      int     `json:"time"`
	Frequency string  `json:"frequency"`
	// StartDate is optional, YYYY-MM-DD. When set, breakdown rows carry dates.
	StartDate string           `json:"startDate,omitempty"`
	Options   CalculateOptions `json:"options,omitempty"`
}

// CalculateOptions contains optional calculation parameters
type CalculateOptions struct {
	Save bool `json:"save,omitempty"` // persist the calculation to history
}
