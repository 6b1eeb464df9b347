package middleware

import (
	"net/http"

	"compound-calc/internal/api/models"

	"github.com/gin-gonic/gin"
)

// ErrorHandler turns panics into the same ErrorResponse shape the handlers
// use, so clients see one error contract everywhere.
func ErrorHandler() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		message := "An unexpected error occurred"
		switch v := recovered.(type) {
		case string:
			message = v
		case error:
			message = v.Error()
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INTERNAL_ERROR",
				Message: message,
			},
		})
	})
}
