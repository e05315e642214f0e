package handlers

import (
	"errors"
	"net/http"

	"github.com/rogerio-castellano/inventory-dashboard/internal/dashboard"
	"github.com/rogerio-castellano/inventory-dashboard/internal/repo"
	"go.uber.org/zap"
)

// RecentRestocksLimit caps the restock feed.
const RecentRestocksLimit = 5

// RestockProductHandler godoc
// @Summary Restock a product
// @Description Adds quantity (possibly negative) to the stock level and records a restock log in one transaction.
// @Tags restocks
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param restock body RestockRequest true "Quantity change"
// @Success 200 {object} ProductResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/products/{id}/restock [post]
// @Security BearerAuth
func (s *Server) RestockProductHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(r)
	if !ok {
		s.errorJSON(w, http.StatusNotFound, repo.ErrProductNotFound.Error())
		return
	}

	var req RestockRequest
	if err := readJSON(w, r, &req); err != nil {
		s.errorJSON(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	// a well-formed body naming an unknown product is a 404 even without quantity
	if _, err := s.products.GetByID(r.Context(), id); err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			s.errorJSON(w, http.StatusNotFound, err.Error())
			return
		}
		s.serverError(w, r, "could not fetch product", err)
		return
	}

	if err := validateRestock(req); err != nil {
		s.errorJSON(w, http.StatusBadRequest, err.Error())
		return
	}

	product, err := s.restocks.Restock(r.Context(), id, *req.Quantity)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			s.errorJSON(w, http.StatusNotFound, err.Error())
			return
		}
		s.serverError(w, r, "could not restock product", err)
		return
	}

	if product.StockLevel < dashboard.LowStockThreshold {
		s.log.Warn("product below low stock threshold after restock",
			zap.Int64("product_id", product.ID),
			zap.String("sku", product.SKU),
			zap.Int("stock_level", product.StockLevel),
			zap.Int("threshold", dashboard.LowStockThreshold),
		)
	}

	s.respond(w, http.StatusOK, toProductResponse(product))
}

// GetRecentRestocksHandler godoc
// @Summary Most recent restock logs
// @Description Returns at most 5 logs, newest first.
// @Tags restocks
// @Produce json
// @Success 200 {array} RestockLogResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/restocks [get]
func (s *Server) GetRecentRestocksHandler(w http.ResponseWriter, r *http.Request) {
	logs, err := s.restocks.Recent(r.Context(), RecentRestocksLimit)
	if err != nil {
		s.serverError(w, r, "could not fetch restock logs", err)
		return
	}

	resp := make([]RestockLogResponse, len(logs))
	for i, l := range logs {
		resp[i] = toRestockLogResponse(l)
	}
	s.respond(w, http.StatusOK, resp)
}
