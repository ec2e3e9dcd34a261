package server

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"
	"github.com/smallbiznis/catalog/pkg/log/ctxlogger"
	"github.com/smallbiznis/catalog/pkg/telemetry/correlation"
	"go.uber.org/zap"
)

const headerCorrelationID = "X-Correlation-Id"

// CorrelationMiddleware propagates the caller's correlation id, minting one
// when the header is absent, and echoes it back on the response.
func CorrelationMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		cid := strings.TrimSpace(c.GetHeader(headerCorrelationID))
		if cid == "" {
			cid = ulid.Make().String()
		}

		ctx := correlation.ContextWithCorrelationID(c.Request.Context(), cid)
		c.Request = c.Request.WithContext(ctx)
		c.Header(headerCorrelationID, cid)

		c.Next()
	}
}

// RequestLogger emits one structured log line per request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		logger := ctxlogger.FromContext(c.Request.Context())
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("route", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
		}
		if lastErr := c.Errors.Last(); lastErr != nil {
			fields = append(fields, zap.Error(lastErr.Err))
		}

		switch {
		case c.Writer.Status() >= 500:
			logger.Error("http request", fields...)
		case c.Writer.Status() >= 400:
			logger.Warn("http request", fields...)
		default:
			logger.Info("http request", fields...)
		}
	}
}
