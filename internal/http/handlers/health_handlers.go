package handlers

import (
	"context"
	"net/http"
	"time"
)

type HealthResult struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// HealthHandler godoc
// @Summary Liveness and database connectivity
// @Tags health
// @Produce json
// @Success 200 {object} HealthResult
// @Failure 503 {object} HealthResult
// @Router /health [get]
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	for _, check := range healthChecks {
		if check == nil {
			continue
		}
		if err := check(ctx); err != nil {
			logger.WithError(err).Warn("health check failed")
			respond(w, http.StatusServiceUnavailable, HealthResult{Status: "unavailable", Error: err.Error()})
			return
		}
	}
	respond(w, http.StatusOK, HealthResult{Status: "ok"})
}
