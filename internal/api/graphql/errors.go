package graphql

import (
	"context"
	"errors"
	"fmt"

	"github.com/99designs/gqlgen/graphql"
	"github.com/vektah/gqlparser/v2/gqlerror"
	"go.uber.org/zap"

	apierrors "github.com/dsc-protocol/dsc-indexer/internal/api/shared/errors"
	"github.com/dsc-protocol/dsc-indexer/internal/logger"
)

// ErrorPresenter formats resolver errors the same way the REST API reports them.
// Server side failures are logged and replaced by a generic message.
// Path and locations of the failing field are kept
func ErrorPresenter(ctx context.Context, err error) *gqlerror.Error {
	gqlErr := graphql.DefaultErrorPresenter(ctx, err)

	// parse, validation and null propagation errors come from gqlgen itself
	if gqlErr.Extensions != nil || gqlErr.Err == nil {
		return gqlErr
	}

	var apiErr *apierrors.APIError
	if !errors.As(gqlErr.Err, &apiErr) || apiErr.Internal() {
		logger.ErrorCtx(ctx, err, zap.String("component", "graphql"))
		apiErr = apierrors.NewInternalError("Internal server error")
	}

	gqlErr.Err = apiErr
	gqlErr.Message = apiMessage(apiErr)
	gqlErr.Extensions = apiExtensions(apiErr)
	return gqlErr
}

func apiMessage(apiErr *apierrors.APIError) string {
	if apiErr.Details != "" {
		return apiErr.Message + ": " + apiErr.Details
	}
	return apiErr.Message
}

func apiExtensions(apiErr *apierrors.APIError) map[string]interface{} {
	ext := map[string]interface{}{
		"code":    string(apiErr.Code),
		"message": apiErr.Message,
	}
	if apiErr.Details != "" {
		ext["details"] = apiErr.Details
	}
	return ext
}

// RecoverFunc turns a resolver panic into an internal error
func RecoverFunc(ctx context.Context, r interface{}) error {
	logger.ErrorCtx(ctx, fmt.Errorf("panic: %v", r), zap.Any("panic", r))
	return apierrors.NewInternalError("Internal server error")
}
