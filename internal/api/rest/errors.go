package rest

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/dsc-protocol/dsc-indexer/internal/api/shared/errors"
	"github.com/dsc-protocol/dsc-indexer/internal/logger"
)

// respondError writes err with the status of its code. Server side details stay in the logs
func respondError(c *gin.Context, err error) {
	var apiErr *apierrors.APIError
	if !errors.As(err, &apiErr) {
		apiErr = apierrors.NewInternalError("Internal server error")
	}

	if apiErr.Internal() {
		logger.ErrorCtx(c.Request.Context(), err,
			zap.String("component", "rest"),
			zap.String("path", c.FullPath()),
		)
		masked := *apiErr
		masked.Details = ""
		apiErr = &masked
	}

	c.JSON(apiErr.HTTPStatus(), apiErr)
}

// respondNotFound responds with a not found error
func respondNotFound(c *gin.Context, message string, details ...string) {
	respondError(c, apierrors.NewNotFoundError(message, details...))
}

// respondValidationError responds with a validation error
func respondValidationError(c *gin.Context, message string) {
	respondError(c, apierrors.NewValidationError(message))
}
