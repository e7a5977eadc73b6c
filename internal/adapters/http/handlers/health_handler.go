package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/explorekerinci/web/internal/platform/health"
	"github.com/explorekerinci/web/internal/ports"
)

// HealthHandler handles liveness and readiness HTTP endpoints. They answer
// JSON for probes rather than HTML.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler creates a new HealthHandler with the given health registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live. Always returns 200 OK.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": string(health.StatusOK)})
}

// Readiness handles GET /health/ready. Returns 200 if the backend API
// answers, 503 with the failing checks otherwise.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	report := health.Summarize(h.registry.CheckAll(r.Context()))

	code := http.StatusOK
	if report.Status != health.StatusOK {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, report)
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}
