package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/catalog/internal/catalog/domain"
	"github.com/smallbiznis/catalog/pkg/log/ctxlogger"
	"github.com/smallbiznis/catalog/pkg/telemetry/correlation"
	"go.uber.org/zap"
)

// ErrorHandlingMiddleware converts errors attached to the gin context into
// the JSON error envelope. Handlers report failures with AbortWithError and
// never write error bodies themselves.
func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		lastErr := c.Errors.Last()
		if lastErr == nil || c.Writer.Written() {
			return
		}

		status, payload := mapError(c.Request.Context(), lastErr.Err)
		c.AbortWithStatusJSON(status, payload)
	}
}

// AbortWithError records err on the context for ErrorHandlingMiddleware and
// stops the handler chain.
func AbortWithError(c *gin.Context, err error) {
	c.Abort()
	_ = c.Error(err)
}

func mapError(ctx context.Context, err error) (int, Response) {
	payload := Response{
		Success:       false,
		CorrelationID: correlation.ExtractCorrelationID(ctx),
	}

	dErr := domain.AsError(err)
	if dErr == nil {
		ctxlogger.FromContext(ctx).Error("unhandled error", zap.Error(err))
		payload.Error = string(domain.KindInternal)
		payload.Message = "an unexpected error occurred"
		return http.StatusInternalServerError, payload
	}

	payload.Error = string(dErr.Kind)
	payload.Message = dErr.Message
	payload.Details = dErr.Details()

	switch dErr.Kind {
	case domain.KindValidation:
		return http.StatusBadRequest, payload
	case domain.KindNotFound:
		return http.StatusNotFound, payload
	case domain.KindConflict:
		return http.StatusConflict, payload
	case domain.KindStorage:
		ctxlogger.FromContext(ctx).Error("store failure", zap.Error(err))
		return http.StatusServiceUnavailable, payload
	default:
		ctxlogger.FromContext(ctx).Error("internal failure", zap.Error(err))
		return http.StatusInternalServerError, payload
	}
}
