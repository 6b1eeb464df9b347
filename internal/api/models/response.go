package models

import (
	"compound-calc/internal/history"
	"compound-calc/internal/model"
)

// CalculateResponse represents the response from a calculation
type CalculateResponse struct {
	Status string                  `json:"status"`
	Result model.CalculationResult `json:"result"`
	// Record is set when the calculation was saved to history.
	Record *history.Record `json:"record,omitempty"`
	// SaveError is set when the calculation succeeded but persisting it did not.
	SaveError string `json:"saveError,omitempty"`
}

// HistoryResponse lists persisted calculations, most recent first
type HistoryResponse struct {
	Records []history.Record `json:"records"`
}

// FrequencyInfo describes one compounding convention
type FrequencyInfo struct {
	Name           string `json:"name"`
	PeriodsPerYear int    `json:"periodsPerYear,omitempty"`
	Continuous     bool   `json:"continuous,omitempty"`
	Description    string `json:"description"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
