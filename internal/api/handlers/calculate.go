package handlers

import (
	"log"
	"net/http"

	"compound-calc/internal/api/models"
	"compound-calc/internal/chart"
	"compound-calc/internal/engine"
	"compound-calc/internal/history"
	"compound-calc/internal/model"
	"compound-calc/internal/validate"

	"github.com/gin-gonic/gin"
)

// CalculateHandler handles calculation requests
type CalculateHandler struct {
	engine *engine.Engine
	store  history.Store
	limits validate.Limits
}

// NewCalculateHandler creates a new calculate handler
func NewCalculateHandler(store history.Store, limits validate.Limits) *CalculateHandler {
	return &CalculateHandler{
		engine: engine.New(),
		store:  store,
		limits: limits,
	}
}

// Calculate handles POST /api/v1/calculate
func (h *CalculateHandler) Calculate(c *gin.Context) {
	params, req, ok := h.bindParams(c)
	if !ok {
		return
	}

	result, err := h.engine.Compute(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "COMPUTE_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	response := models.CalculateResponse{
		Status: "completed",
		Result: *result,
	}

	if req.Options.Save {
		rec, err := h.store.Save(params, *result)
		if err != nil {
			// The calculation itself succeeded; report the failed save
			// alongside the result instead of failing the request.
			log.Printf("CalculateHandler: save failed: %v", err)
			response.SaveError = err.Error()
		} else {
			response.Record = &rec
		}
	}

	c.JSON(http.StatusOK, response)
}

// Chart handles POST /api/v1/calculate/chart and responds with a PNG of the
// growth series.
func (h *CalculateHandler) Chart(c *gin.Context) {
	params, _, ok := h.bindParams(c)
	if !ok {
		return
	}

	result, err := h.engine.Compute(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "COMPUTE_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	png, err := chart.RenderGrowth(params, *result)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "CHART_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

// bindParams binds and validates the request body. On failure it writes the
// error response and returns ok=false; no partial computation happens for
// invalid input.
func (h *CalculateHandler) bindParams(c *gin.Context) (model.CalculationParams, models.CalculateRequest, bool) {
	var req models.CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return model.CalculationParams{}, req, false
	}

	params := model.CalculationParams{
		Principal: req.Principal,
		Rate:      req.Rate,
		Time:      req.Time,
		Frequency: model.Frequency(req.Frequency),
	}

	var fieldErrs validate.FieldErrors
	if req.StartDate != "" {
		d, err := model.ParseDate(req.StartDate)
		if err != nil {
			fieldErrs = append(fieldErrs, validate.FieldError{
				Field:   "startDate",
				Message: "must be a valid calendar date (YYYY-MM-DD)",
			})
		} else {
			params.StartDate = &d
		}
	}
	fieldErrs = append(fieldErrs, validate.CheckParams(h.limits, params)...)

	if len(fieldErrs) > 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "VALIDATION_ERROR",
				Message: fieldErrs.Error(),
				Details: map[string]interface{}{
					"fields": fieldErrs,
				},
			},
		})
		return model.CalculationParams{}, req, false
	}

	return params, req, true
}
