package handlers

import (
	"net/http"

	"github.com/rogerio-castellano/product-catalog/internal/app"
	"github.com/rogerio-castellano/product-catalog/internal/mediator"
	"github.com/rogerio-castellano/product-catalog/internal/repo"
)

// GetCatalogMetricsHandler godoc
// @Summary Catalog metrics for admin view
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} repo.Metrics
// @Failure 500 {object} middleware.ErrorResponse
// @Router /api/admin/metrics [get]
func GetCatalogMetricsHandler(w http.ResponseWriter, r *http.Request) {
	m, err := mediator.Send[app.GetCatalogMetricsQuery, repo.Metrics](r.Context(), bus, app.GetCatalogMetricsQuery{})
	if err != nil {
		writeError(w, r, err)
		return
	}
	respond(w, http.StatusOK, m)
}
