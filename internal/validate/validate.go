// Package validate checks calculation parameters before they reach the
// engine, returning structured per-field failures that both the API layer
// and the CLI can report directly.
package validate

import (
	"fmt"
	"math"
	"strings"

	"compound-calc/internal/model"
)

// FieldError describes one failed check on one input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, fe := range e {
		msgs = append(msgs, fe.Field+": "+fe.Message)
	}
	return strings.Join(msgs, "; ")
}

// Limits bounds the accepted input envelope. The defaults keep the discrete
// exponent n*t well inside float64 range even for daily compounding.
type Limits struct {
	MaxPrincipal float64
	MaxRate      float64
	MaxTime      int
}

func DefaultLimits() Limits {
	return Limits{
		MaxPrincipal: 1e12,
		MaxRate:      100,
		MaxTime:      100,
	}
}

// CheckParams validates params against the limits. It returns nil when all
// fields pass; otherwise one FieldError per failing field.
func CheckParams(limits Limits, params model.CalculationParams) FieldErrors {
	var errs FieldErrors

	switch {
	case math.IsNaN(params.Principal) || math.IsInf(params.Principal, 0):
		errs = append(errs, FieldError{"principal", "must be a finite number"})
	case params.Principal <= 0:
		errs = append(errs, FieldError{"principal", "must be greater than zero"})
	case params.Principal > limits.MaxPrincipal:
		errs = append(errs, FieldError{"principal", fmt.Sprintf("must not exceed %g", limits.MaxPrincipal)})
	}

	switch {
	case math.IsNaN(params.Rate) || math.IsInf(params.Rate, 0):
		errs = append(errs, FieldError{"rate", "must be a finite number"})
	case params.Rate <= 0:
		errs = append(errs, FieldError{"rate", "must be greater than zero"})
	case params.Rate > limits.MaxRate:
		errs = append(errs, FieldError{"rate", fmt.Sprintf("must not exceed %g%%", limits.MaxRate)})
	}

	switch {
	case params.Time < 1:
		errs = append(errs, FieldError{"time", "must be at least 1 year"})
	case params.Time > limits.MaxTime:
		errs = append(errs, FieldError{"time", fmt.Sprintf("must not exceed %d years", limits.MaxTime)})
	}

	if !params.Frequency.Valid() {
		errs = append(errs, FieldError{"frequency", fmt.Sprintf("unknown compounding frequency %q", params.Frequency)})
	}

	if params.StartDate != nil && params.StartDate.IsZero() {
		errs = append(errs, FieldError{"startDate", "must be a valid calendar date (YYYY-MM-DD)"})
	}

	return errs
}
