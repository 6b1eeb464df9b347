package handlers

import (
	"net/http"

	"compound-calc/internal/api/models"
	"compound-calc/internal/model"

	"github.com/gin-gonic/gin"
)

// FrequencyHandler handles frequency-related requests
type FrequencyHandler struct{}

// NewFrequencyHandler creates a new frequency handler
func NewFrequencyHandler() *FrequencyHandler {
	return &FrequencyHandler{}
}

var frequencyDescriptions = map[model.Frequency]string{
	model.Annually:     "Interest compounds once per year.",
	model.SemiAnnually: "Interest compounds twice per year.",
	model.Quarterly:    "Interest compounds four times per year.",
	model.Monthly:      "Interest compounds every month.",
	model.Weekly:       "Interest compounds every week.",
	model.Daily:        "Interest compounds every day (365 periods per year).",
	model.Continuously: "Limiting case of infinitely frequent compounding, A = P × e^(rt).",
}

// ListFrequencies handles GET /api/v1/frequencies
func (h *FrequencyHandler) ListFrequencies(c *gin.Context) {
	frequencies := make([]models.FrequencyInfo, 0, len(model.Frequencies()))
	for _, f := range model.Frequencies() {
		info := models.FrequencyInfo{
			Name:        string(f),
			Description: frequencyDescriptions[f],
		}
		if n, ok := f.PeriodsPerYear(); ok {
			info.PeriodsPerYear = n
		} else {
			info.Continuous = true
		}
		frequencies = append(frequencies, info)
	}
	c.JSON(http.StatusOK, gin.H{"frequencies": frequencies})
}
