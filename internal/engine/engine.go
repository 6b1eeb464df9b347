package engine

import (
	"fmt"
	"math"

	"compound-calc/internal/model"
)

// Formula labels identify which closed form produced a result. They are fixed
// strings; substituting actual numbers is a display concern.
const (
	FormulaDiscrete   = "A = P(1 + r/n)^(nt)"
	FormulaContinuous = "A = P × e^(rt)"
)

type Engine struct{}

func New() *Engine { return &Engine{} }

// Compute evaluates compound growth for the given parameters and returns the
// final amount, total interest, formula label, and the full yearly breakdown.
//
// Callers are expected to validate inputs first (see internal/validate); the
// guards here only reject values that would otherwise produce NaN or Infinity.
func (e *Engine) Compute(params model.CalculationParams) (*model.CalculationResult, error) {
	if params.Principal <= 0 {
		return nil, fmt.Errorf("principal must be positive, got %g", params.Principal)
	}
	if params.Rate <= 0 {
		return nil, fmt.Errorf("rate must be positive, got %g", params.Rate)
	}
	if params.Time < 1 {
		return nil, fmt.Errorf("time must be at least 1 year, got %d", params.Time)
	}
	if !params.Frequency.Valid() {
		return nil, fmt.Errorf("unknown compounding frequency: %q", params.Frequency)
	}

	rows := make([]model.YearlyBreakdownRow, 0, params.Time)
	prev := params.Principal

	for year := 1; year <= params.Time; year++ {
		amount := amountAtYear(params, year)
		row := model.YearlyBreakdownRow{
			Year:           year,
			Amount:         amount,
			InterestEarned: amount - prev,
		}
		if params.StartDate != nil {
			d := params.StartDate.AddYears(year)
			row.Date = &d
		}
		rows = append(rows, row)
		prev = amount
	}

	final := rows[len(rows)-1].Amount

	formula := FormulaDiscrete
	if params.Frequency.Continuous() {
		formula = FormulaContinuous
	}

	return &model.CalculationResult{
		FinalAmount:     final,
		TotalInterest:   final - params.Principal,
		YearlyBreakdown: rows,
		Formula:         formula,
	}, nil
}

// amountAtYear returns the accumulated balance after the given number of
// whole years. Year 0 is the principal.
//
// Continuous: A = P * e^((r/100) * y)
// Discrete:   A = P * (1 + (r/100)/n)^(n * y)
func amountAtYear(params model.CalculationParams, year int) float64 {
	r := params.Rate / 100
	if params.Frequency.Continuous() {
		return params.Principal * math.Exp(r*float64(year))
	}
	n, _ := params.Frequency.PeriodsPerYear()
	nf := float64(n)
	return params.Principal * math.Pow(1+r/nf, nf*float64(year))
}
