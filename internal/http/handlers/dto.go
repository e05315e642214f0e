package handlers

import (
	"time"

	"github.com/rogerio-castellano/inventory-dashboard/internal/models"
)

// ProductRequest is the body of create and update calls. Pointer fields tell an
// absent key apart from a zero value.
type ProductRequest struct {
	Name       *string  `json:"name"`
	SKU        *string  `json:"sku"`
	StockLevel *int     `json:"stock_level,omitempty"`
	Category   *string  `json:"category,omitempty"`
	Price      *float64 `json:"price,omitempty"`
	Cost       *float64 `json:"cost,omitempty"`
}

type ProductResponse struct {
	Id         int64    `json:"id"`
	Name       string   `json:"name"`
	SKU        string   `json:"sku"`
	StockLevel int      `json:"stock_level"`
	Category   *string  `json:"category"`
	Price      *float64 `json:"price"`
	Cost       *float64 `json:"cost"`
}

type RestockRequest struct {
	Quantity *int `json:"quantity"` // can be positive or negative
}

type RestockLogResponse struct {
	ID        int64  `json:"id"`
	ProductID int64  `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Timestamp string `json:"timestamp"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

func toProductResponse(p models.Product) ProductResponse {
	return ProductResponse{
		Id:         p.ID,
		Name:       p.Name,
		SKU:        p.SKU,
		StockLevel: p.StockLevel,
		Category:   p.Category,
		Price:      p.Price,
		Cost:       p.Cost,
	}
}

func toProductResponses(products []models.Product) []ProductResponse {
	resp := make([]ProductResponse, len(products))
	for i, p := range products {
		resp[i] = toProductResponse(p)
	}
	return resp
}

func toRestockLogResponse(l models.RestockLog) RestockLogResponse {
	return RestockLogResponse{
		ID:        l.ID,
		ProductID: l.ProductID,
		Quantity:  l.Quantity,
		Timestamp: l.Timestamp.UTC().Format(time.RFC3339Nano),
	}
}
