package handler

import (
	"net/http"

	"github.com/redis/go-redis/v9"
)

// HealthHandler reports liveness and readiness.
type HealthHandler struct {
	redis *redis.Client
}

// NewHealthHandler creates a new HealthHandler. The redis client may be nil
// when no cache is configured.
func NewHealthHandler(redisClient *redis.Client) *HealthHandler {
	return &HealthHandler{redis: redisClient}
}

// Liveness handles GET /health.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Readiness handles GET /ready. It checks redis connectivity when a client
// is configured.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	if h.redis != nil {
		if err := h.redis.Ping(r.Context()).Err(); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "unavailable",
				"redis":  err.Error(),
			})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}
