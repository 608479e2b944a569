package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIError carries a status code and a user-facing message out of an
// endpoint handler.
type APIError struct {
	Code    int
	Message string
}

// HandlerFunc is a JSON endpoint handler.
type HandlerFunc func(ctx *gin.Context) (any, *APIError)

// ResolveEndpoint adapts a HandlerFunc into a gin handler that renders
// the result, or the error, as JSON.
func ResolveEndpoint(h HandlerFunc) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		result, apiErr := h(ctx)
		if apiErr != nil {
			ctx.JSON(apiErr.Code, gin.H{"error": apiErr.Message})
			return
		}

		ctx.JSON(http.StatusOK, result)
	}
}
