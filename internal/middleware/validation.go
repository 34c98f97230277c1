package middleware

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/yigit/collegeerp/internal/pkg/apperrors"
)

// BindJSON decodes the request body into obj. On failure it writes a 400
// response and returns false. Field rules are checked by the services.
func BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		if errors.Is(err, io.EOF) {
			HandleAPIError(c, apperrors.NewValidationError("Request body is required"))
			return false
		}
		HandleAPIError(c, apperrors.NewValidationError("Invalid request format: %s", err.Error()))
		return false
	}
	return true
}
