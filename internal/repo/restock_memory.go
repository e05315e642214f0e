package repo

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/rogerio-castellano/inventory-dashboard/internal/models"
)

// InMemoryRestockRepository keeps restock logs in memory and adjusts stock on the
// product repository it is attached to.
type InMemoryRestockRepository struct {
	mu       sync.Mutex
	products *InMemoryProductRepository
	logs     []models.RestockLog
	nextID   int64
	now      func() time.Time
}

func NewInMemoryRestockRepository(products *InMemoryProductRepository) *InMemoryRestockRepository {
	return &InMemoryRestockRepository{
		products: products,
		logs:     []models.RestockLog{},
		nextID:   1,
		now:      time.Now,
	}
}

// SetClock replaces the time source used to stamp new logs.
func (r *InMemoryRestockRepository) SetClock(now func() time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.now = now
}

func (r *InMemoryRestockRepository) Restock(_ context.Context, productID int64, quantity int) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products.mu.Lock()
	defer r.products.mu.Unlock()

	i := r.products.indexOf(productID)
	if i < 0 {
		return models.Product{}, ErrProductNotFound
	}
	r.products.products[i].StockLevel += quantity
	r.logs = append(r.logs, models.RestockLog{
		ID:        r.nextID,
		ProductID: productID,
		Quantity:  quantity,
		Timestamp: r.now().UTC(),
	})
	r.nextID++
	return r.products.products[i], nil
}

// AddLog appends a log as-is, without touching stock levels.
func (r *InMemoryRestockRepository) AddLog(entry models.RestockLog) models.RestockLog {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry.ID = r.nextID
	r.nextID++
	entry.Timestamp = entry.Timestamp.UTC()
	r.logs = append(r.logs, entry)
	return entry
}

func (r *InMemoryRestockRepository) Recent(_ context.Context, limit int) ([]models.RestockLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sorted := make([]models.RestockLog, len(r.logs))
	copy(sorted, r.logs)
	sort.Slice(sorted, func(a, b int) bool {
		if !sorted[a].Timestamp.Equal(sorted[b].Timestamp) {
			return sorted[a].Timestamp.After(sorted[b].Timestamp)
		}
		return sorted[a].ID > sorted[b].ID
	})
	if limit >= 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted, nil
}

func (r *InMemoryRestockRepository) CountSince(_ context.Context, since time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	total := 0
	for _, l := range r.logs {
		if !l.Timestamp.Before(since) {
			total++
		}
	}
	return total, nil
}
