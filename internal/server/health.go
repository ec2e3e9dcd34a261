package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/catalog/internal/catalog/domain"
	"github.com/smallbiznis/catalog/pkg/log/ctxlogger"
	"go.uber.org/zap"
)

func (s *Server) Health(c *gin.Context) {
	if err := s.store.Ping(c.Request.Context()); err != nil {
		ctxlogger.FromContext(c.Request.Context()).Error("health check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, Response{
			Success:       false,
			Error:         string(domain.KindStorage),
			Message:       "store is unreachable",
			CorrelationID: correlationID(c),
		})
		return
	}

	ok(c, http.StatusOK, gin.H{"status": "ok", "store": "up"}, "")
}
