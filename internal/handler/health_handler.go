package handler

import (
	"context"
	"net/http"

	"relay-chat/internal/transport/httpdto"
	"relay-chat/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type HealthCheck func(ctx context.Context) error

type HealthHandler struct {
	database HealthCheck
	redis    HealthCheck
	log      *logger.Logger
}

// NewHealthHandler builds the /health endpoint. redis may be nil when no event bus is configured.
func NewHealthHandler(database, redis HealthCheck, log *logger.Logger) *HealthHandler {
	return &HealthHandler{database: database, redis: redis, log: log}
}

func (h *HealthHandler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "pong"})
}

func (h *HealthHandler) Health(c *gin.Context) {
	ctx := c.Request.Context()
	resp := httpdto.HealthResponse{Status: "healthy", Database: "ok"}
	status := http.StatusOK

	if err := h.database(ctx); err != nil {
		h.warn(ctx, "database", err)
		resp.Status, resp.Database = "unhealthy", "unavailable"
		status = http.StatusServiceUnavailable
	}
	// The event bus is best-effort, so a dead Redis degrades but does not fail health.
	if h.redis != nil {
		resp.Redis = "ok"
		if err := h.redis(ctx); err != nil {
			h.warn(ctx, "redis", err)
			resp.Redis = "unavailable"
			if status == http.StatusOK {
				resp.Status = "degraded"
			}
		}
	}
	c.JSON(status, resp)
}

func (h *HealthHandler) warn(ctx context.Context, component string, err error) {
	if h.log != nil {
		h.log.ErrorCtx(ctx, "health check failed", zap.String("component", component), zap.Error(err))
	}
}
