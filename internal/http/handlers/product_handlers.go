package handlers

import (
	"errors"
	"net/http"

	"github.com/rogerio-castellano/inventory-dashboard/internal/dashboard"
	"github.com/rogerio-castellano/inventory-dashboard/internal/models"
	"github.com/rogerio-castellano/inventory-dashboard/internal/repo"
)

// GetProductsHandler godoc
// @Summary List all products
// @Tags products
// @Produce json
// @Success 200 {array} ProductResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/products [get]
func (s *Server) GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	products, err := s.products.GetAll(r.Context())
	if err != nil {
		s.serverError(w, r, "could not fetch products", err)
		return
	}
	s.respond(w, http.StatusOK, toProductResponses(products))
}

// CreateProductHandler godoc
// @Summary Create a new product
// @Description Adds a product to the inventory. stock_level defaults to 0.
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product body ProductRequest true "Product to add"
// @Success 201 {object} ProductResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/products [post]
func (s *Server) CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		s.errorJSON(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := validateProduct(req); err != nil {
		s.errorJSON(w, http.StatusBadRequest, err.Error())
		return
	}

	product := models.Product{
		Name:     *req.Name,
		SKU:      *req.SKU,
		Category: req.Category,
		Price:    req.Price,
		Cost:     req.Cost,
	}
	if req.StockLevel != nil {
		product.StockLevel = *req.StockLevel
	}

	created, err := s.products.Create(r.Context(), product)
	if err != nil {
		s.serverError(w, r, "could not create product", err)
		return
	}
	s.respond(w, http.StatusCreated, toProductResponse(created))
}

// GetProductByIDHandler godoc
// @Summary Get product by ID
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} ProductResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/products/{id} [get]
func (s *Server) GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
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
	s.respond(w, http.StatusOK, toProductResponse(product))
}

// UpdateProductHandler godoc
// @Summary Update a product
// @Description Replaces name, sku, category, price and cost. stock_level keeps its value when omitted.
// @Tags products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param product body ProductRequest true "Updated product"
// @Success 200 {object} ProductResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/products/{id} [put]
// @Security BearerAuth
func (s *Server) UpdateProductHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(r)
	if !ok {
		s.errorJSON(w, http.StatusNotFound, repo.ErrProductNotFound.Error())
		return
	}

	existing, err := s.products.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			s.errorJSON(w, http.StatusNotFound, err.Error())
			return
		}
		s.serverError(w, r, "could not fetch product", err)
		return
	}

	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		s.errorJSON(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := validateProduct(req); err != nil {
		s.errorJSON(w, http.StatusBadRequest, err.Error())
		return
	}

	product := models.Product{
		ID:         id,
		Name:       *req.Name,
		SKU:        *req.SKU,
		StockLevel: existing.StockLevel,
		Category:   req.Category,
		Price:      req.Price,
		Cost:       req.Cost,
	}
	if req.StockLevel != nil {
		product.StockLevel = *req.StockLevel
	}

	updated, err := s.products.Update(r.Context(), product)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			s.errorJSON(w, http.StatusNotFound, err.Error())
			return
		}
		s.serverError(w, r, "could not update product", err)
		return
	}
	s.respond(w, http.StatusOK, toProductResponse(updated))
}

// DeleteProductHandler godoc
// @Summary Delete a product
// @Description Restock logs of the product are kept.
// @Tags products
// @Param id path int true "Product ID"
// @Success 204 "Deleted successfully"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/products/{id} [delete]
// @Security BearerAuth
func (s *Server) DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(r)
	if !ok {
		s.errorJSON(w, http.StatusNotFound, repo.ErrProductNotFound.Error())
		return
	}

	if err := s.products.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			s.errorJSON(w, http.StatusNotFound, err.Error())
			return
		}
		s.serverError(w, r, "could not delete product", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// LowStockProductsHandler godoc
// @Summary List products below the low-stock threshold
// @Tags dashboard
// @Produce json
// @Success 200 {array} ProductResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/products/low-stock [get]
func (s *Server) LowStockProductsHandler(w http.ResponseWriter, r *http.Request) {
	products, err := s.products.LowStock(r.Context(), dashboard.LowStockThreshold)
	if err != nil {
		s.serverError(w, r, "could not fetch low stock products", err)
		return
	}
	s.respond(w, http.StatusOK, toProductResponses(products))
}
