package model

// CalculationParams is the input to the compounding engine. Params are
// constructed fresh per calculation and never mutated after being passed in.
type CalculationParams struct {
	// Principal is the initial amount invested, in monetary units. Must be > 0.
	Principal float64 `json:"principal"`
	// Rate is the nominal annual interest rate as a percentage (5 means 5%). Must be > 0.
	Rate float64 `json:"rate"`
	// Time is the investment horizon in whole years. Must be >= 1.
	Time int `json:"time"`
	// Frequency selects the compounding convention.
	Frequency Frequency `json:"frequency"`
	// StartDate, when present, attaches a calendar date to each breakdown row.
	StartDate *Date `json:"startDate,omitempty"`
}

// YearlyBreakdownRow is the balance state at the end of one elapsed year.
type YearlyBreakdownRow struct {
	Year           int     `json:"year"`
	Amount         float64 `json:"amount"`
	InterestEarned float64 `json:"interestEarned"`
	Date           *Date   `json:"date,omitempty"`
}

// CalculationResult is the output of the compounding engine.
//
// YearlyBreakdown has exactly Time rows ordered by year ascending, and the
// last row's Amount equals FinalAmount.
type CalculationResult struct {
	FinalAmount     float64              `json:"finalAmount"`
	TotalInterest   float64              `json:"totalInterest"`
	YearlyBreakdown []YearlyBreakdownRow `json:"yearlyBreakdown"`
	Formula         string               `json:"formula"`
}
