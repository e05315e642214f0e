package dashboard

import (
	"time"

	"github.com/rogerio-castellano/inventory-dashboard/internal/models"
	"github.com/shopspring/decimal"
)

// LowStockThreshold is the stock level below which a product counts as low stock.
const LowStockThreshold = 10

// PendingWindow is how far back restocks count as pending on the summary.
const PendingWindow = 24 * time.Hour

type Summary struct {
	TotalProducts    int     `json:"totalProducts"`
	TotalValue       float64 `json:"totalValue"`
	LowStockProducts int     `json:"lowStockProducts"`
	RestocksPending  int     `json:"restocksPending"`
}

// Summarize aggregates the product list. A product without a price adds nothing
// to the total value.
func Summarize(products []models.Product, restocksPending int) Summary {
	total := decimal.Zero
	low := 0
	for _, p := range products {
		if p.Price != nil {
			total = total.Add(decimal.NewFromFloat(*p.Price).Mul(decimal.NewFromInt(int64(p.StockLevel))))
		}
		if p.StockLevel < LowStockThreshold {
			low++
		}
	}

	return Summary{
		TotalProducts:    len(products),
		TotalValue:       total.InexactFloat64(),
		LowStockProducts: low,
		RestocksPending:  restocksPending,
	}
}
