package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vonhatphuongahihi/venture-travel-backend/pkg/database"
	"github.com/vonhatphuongahihi/venture-travel-backend/pkg/redis"
)

const readinessTimeout = 5 * time.Second

// HealthHandler handles liveness and readiness probes
type HealthHandler struct {
	db    *database.PostgresDB
	redis *redis.Client
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(db *database.PostgresDB, redis *redis.Client) *HealthHandler {
	return &HealthHandler{
		db:    db,
		redis: redis,
	}
}

// HealthResponse represents the liveness probe response
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// ReadyResponse represents the readiness probe response
type ReadyResponse struct {
	Status     string            `json:"status"`
	Timestamp  string            `json:"timestamp"`
	Components map[string]string `json:"components"`
}

// Health handles GET /health (liveness probe)
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// Ready handles GET /ready (readiness probe) - checks backing stores
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readinessTimeout)
	defer cancel()

	components := map[string]string{
		"database": componentState(ctx, h.db != nil, func(ctx context.Context) error { return h.db.HealthCheck(ctx) }),
		"redis":    componentState(ctx, h.redis != nil, func(ctx context.Context) error { return h.redis.HealthCheck(ctx) }),
	}

	resp := ReadyResponse{
		Status:     "ready",
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Components: components,
	}
	for _, state := range components {
		if state != "healthy" && state != "not configured" {
			resp.Status = "not ready"
			c.JSON(http.StatusServiceUnavailable, resp)
			return
		}
	}

	c.JSON(http.StatusOK, resp)
}

func componentState(ctx context.Context, configured bool, check func(ctx context.Context) error) string {
	if !configured {
		return "not configured"
	}
	if err := check(ctx); err != nil {
		return "unhealthy: " + err.Error()
	}
	return "healthy"
}
