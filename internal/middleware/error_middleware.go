package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/collegeerp/internal/app/models/dto"
	"github.com/yigit/collegeerp/internal/pkg/apperrors"
	"github.com/yigit/collegeerp/internal/pkg/logger"
)

// errorMapping ties an error category to its HTTP status and error code
type errorMapping struct {
	target   error
	status   int
	code     dto.ErrorCode
	fallback string
}

// Checked in order, ErrInvalidCredentials before the broader ErrUnauthenticated
var errorMappings = []errorMapping{
	{apperrors.ErrValidationFailed, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Validation failed"},
	{apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid credentials"},
	{apperrors.ErrUnauthenticated, http.StatusUnauthorized, dto.ErrorCodeUnauthorized, "Authentication required"},
	{apperrors.ErrPermissionDenied, http.StatusForbidden, dto.ErrorCodeForbidden, "Access denied"},
	{apperrors.ErrResourceNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Resource not found"},
	{apperrors.ErrAlreadySubmitted, http.StatusConflict, dto.ErrorCodeAlreadySubmitted, "Already submitted"},
	{apperrors.ErrConflict, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Resource already exists"},
}

// HandleAPIError handles common API errors and returns appropriate responses
func HandleAPIError(c *gin.Context, err error) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			detail := dto.NewErrorDetail(m.code, apperrors.Message(err, m.fallback))
			var custom *apperrors.CustomError
			if errors.As(err, &custom) && custom.Details != nil {
				if field, ok := custom.Details["field"].(string); ok {
					detail = detail.WithField(field)
				} else {
					detail = detail.WithDetails(custom.Details)
				}
			}
			c.JSON(m.status, dto.NewErrorResponse(detail))
			return
		}
	}

	logger.Error().Err(err).
		Str("method", c.Request.Method).
		Str("path", c.FullPath()).
		Msg("Unhandled error")
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
		dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Server error"),
	))
}
