package handlers

import (
	"log"
	"net/http"

	"compound-calc/internal/api/models"
	"compound-calc/internal/history"

	"github.com/gin-gonic/gin"
)

// HistoryHandler handles history-related requests
type HistoryHandler struct {
	store history.Store
}

// NewHistoryHandler creates a new history handler
func NewHistoryHandler(store history.Store) *HistoryHandler {
	return &HistoryHandler{store: store}
}

// List handles GET /api/v1/history
func (h *HistoryHandler) List(c *gin.Context) {
	records, err := h.store.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "STORE_ERROR",
				Message: err.Error(),
			},
		})
		return
	}
	if records == nil {
		records = []history.Record{}
	}
	c.JSON(http.StatusOK, models.HistoryResponse{Records: records})
}

// Delete handles DELETE /api/v1/history/:id.
// Deleting an unknown id is accepted silently.
func (h *HistoryHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.store.DeleteByID(id); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "STORE_ERROR",
				Message: err.Error(),
			},
		})
		return
	}
	c.Status(http.StatusNoContent)
}

// Clear handles DELETE /api/v1/history
func (h *HistoryHandler) Clear(c *gin.Context) {
	if err := h.store.Clear(); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "STORE_ERROR",
				Message: err.Error(),
			},
		})
		return
	}
	log.Printf("HistoryHandler: history cleared")
	c.Status(http.StatusNoContent)
}
