package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/cryptopulse/internal/domain/dto"
)

// ErrorHandler converts errors attached to the Gin context by downstream
// handlers into a standardized JSON error response. Handlers that already
// wrote a response are left untouched.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	last := c.Errors.Last()
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("request failed", last.Err))
}

// AbortWithError stops the request with the given status and a standardized
// JSON error body.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}
