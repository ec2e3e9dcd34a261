package server

import (
	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/catalog/internal/catalog/domain"
	"github.com/smallbiznis/catalog/pkg/telemetry/correlation"
)

// Response is the envelope every JSON endpoint writes. Success carries
// data plus an optional message; failures carry the error kind and a
// details map describing what went wrong.
type Response struct {
	Success       bool             `json:"success"`
	Data          any              `json:"data,omitempty"`
	Message       string           `json:"message,omitempty"`
	Error         string           `json:"error,omitempty"`
	CorrelationID string           `json:"correlationId,omitempty"`
	Details       map[string]any   `json:"details,omitempty"`
	Pagination    *domain.PageMeta `json:"pagination,omitempty"`
	Filters       *domain.Filters  `json:"filters,omitempty"`
}

func correlationID(c *gin.Context) string {
	return correlation.ExtractCorrelationID(c.Request.Context())
}

func ok(c *gin.Context, status int, data any, message string) {
	c.JSON(status, Response{
		Success:       true,
		Data:          data,
		Message:       message,
		CorrelationID: correlationID(c),
	})
}
