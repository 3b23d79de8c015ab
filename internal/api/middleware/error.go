package middleware

import (
	"net/http"

	"microgrid-twin/internal/api/models"

	"github.com/gin-gonic/gin"
)

// Recovery converts panics into a generic INTERNAL_ERROR response so the
// caller never sees a half-written body.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		msg := "An unexpected error occurred"
		switch v := recovered.(type) {
		case string:
			msg = v
		case error:
			msg = v.Error()
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INTERNAL_ERROR",
				Message: msg,
			},
		})
	})
}
