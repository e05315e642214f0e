package handlers

import (
	"errors"
	"net/http"

	"github.com/rogerio-castellano/inventory-dashboard/internal/analytics"
	"github.com/rogerio-castellano/inventory-dashboard/internal/repo"
)

// GetInventoryTrendHandler godoc
// @Summary Inventory trend for the last 30 days
// @Description Synthetic: every day reports today's total stock.
// @Tags analytics
// @Produce json
// @Success 200 {array} analytics.TrendPoint
// @Failure 500 {object} ErrorResponse
// @Router /api/analytics/inventory-trend [get]
func (s *Server) GetInventoryTrendHandler(w http.ResponseWriter, r *http.Request) {
	products, err := s.products.GetAll(r.Context())
	if err != nil {
		s.serverError(w, r, "could not fetch products", err)
		return
	}
	s.respond(w, http.StatusOK, analytics.InventoryTrend(products, s.now()))
}

// GetProductTrendHandler godoc
// @Summary Stock trend of one product for the last 30 days
// @Description Synthetic ramp ending at the current stock level.
// @Tags analytics
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {array} analytics.TrendPoint
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/analytics/product-trend/{id} [get]
func (s *Server) GetProductTrendHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(r)
	if !ok {
		s.errorJSON(w, http.StatusNotFound, repo.ErrProductNotFound.Error())
		return
	}

	product, err := s.products.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			s.errorJSON(w, http.StatusNotFound, err.Error())
			return
		}
		s.serverError(w, r, "could not fetch product", err)
		return
	}
	s.respond(w, http.StatusOK, analytics.ProductTrend(product, s.now()))
}

// GetMetricsHandler godoc
// @Summary Per-product stock metrics
// @Description changePercent is a number, or "N/A" when the series starts at 0.
// @Tags analytics
// @Produce json
// @Success 200 {array} analytics.ProductMetrics
// @Failure 500 {object} ErrorResponse
// @Router /api/analytics/metrics [get]
func (s *Server) GetMetricsHandler(w http.ResponseWriter, r *http.Request) {
	products, err := s.products.GetAll(r.Context())
	if err != nil {
		s.serverError(w, r, "could not fetch products", err)
		return
	}
	s.respond(w, http.StatusOK, analytics.Metrics(products))
}
