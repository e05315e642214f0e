package handlers

import (
	"net/http"

	"github.com/rogerio-castellano/inventory-dashboard/internal/dashboard"
)

// GetDashboardSummaryHandler godoc
// @Summary Dashboard summary
// @Description Product count, stock value, low-stock count and restocks in the last 24 hours.
// @Tags dashboard
// @Produce json
// @Success 200 {object} dashboard.Summary
// @Failure 500 {object} ErrorResponse
// @Router /api/dashboard/summary [get]
func (s *Server) GetDashboardSummaryHandler(w http.ResponseWriter, r *http.Request) {
	products, err := s.products.GetAll(r.Context())
	if err != nil {
		s.serverError(w, r, "could not fetch products", err)
		return
	}

	since := s.now().UTC().Add(-dashboard.PendingWindow)
	pending, err := s.restocks.CountSince(r.Context(), since)
	if err != nil {
		s.serverError(w, r, "could not count restocks", err)
		return
	}

	s.respond(w, http.StatusOK, dashboard.Summarize(products, pending))
}

// HealthHandler godoc
// @Summary Liveness and database check
// @Tags ops
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} ErrorResponse
// @Router /healthz [get]
func (s *Server) HealthHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Ping(r.Context()); err != nil {
		s.errorJSON(w, http.StatusServiceUnavailable, "database unavailable")
		return
	}
	s.respond(w, http.StatusOK, HealthResponse{Status: "ok"})
}
