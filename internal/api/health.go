package api

import (
	"net/http"
	"time"

	"github.com/PickleRicc/deep-work-sub001/internal/api/respond"
)

// HealthHandler reports the service-level health aggregate.
type HealthHandler struct {
	isHealthy func() bool
}

// NewHealthHandler wires the handler to the aggregated health function.
// A nil func reports unhealthy until real wiring is in place.
func NewHealthHandler(isHealthy func() bool) *HealthHandler {
	if isHealthy == nil {
		isHealthy = func() bool { return false }
	}
	return &HealthHandler{isHealthy: isHealthy}
}

// CheckHealth GET /api/health
// Always returns 200; the body reports healthy/unhealthy.
func (h *HealthHandler) CheckHealth(w http.ResponseWriter, r *http.Request) {
	status := "unhealthy"
	if h.isHealthy() {
		status = "healthy"
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":    status,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
