package repo

import (
	"context"
	"time"

	"github.com/rogerio-castellano/inventory-dashboard/internal/models"
)

type RestockRepository interface {
	// Restock adds quantity to the product's stock level and appends a RestockLog
	// in a single transaction. It returns the updated product.
	Restock(ctx context.Context, productID int64, quantity int) (models.Product, error)
	// Recent returns the newest logs, ordered by timestamp then id, both descending.
	Recent(ctx context.Context, limit int) ([]models.RestockLog, error)
	// CountSince counts logs stamped at or after since.
	CountSince(ctx context.Context, since time.Time) (int, error)
}
