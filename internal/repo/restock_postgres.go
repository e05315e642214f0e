package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rogerio-castellano/inventory-dashboard/internal/models"
)

type PostgresRestockRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

func NewPostgresRestockRepository(db *sqlx.DB) *PostgresRestockRepository {
	return &PostgresRestockRepository{db: db, now: time.Now}
}

// Restock increments the stock level in place, so concurrent restocks of the same
// product serialize on the row lock taken by the UPDATE.
func (r *PostgresRestockRepository) Restock(ctx context.Context, productID int64, quantity int) (models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return models.Product{}, err
	}
	defer tx.Rollback()

	var p models.Product
	err = tx.GetContext(ctx, &p, `
		UPDATE products
		SET stock_level = stock_level + $1
		WHERE id = $2
		RETURNING `+productColumns, quantity, productID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	if err != nil {
		return models.Product{}, fmt.Errorf("failed to update stock level: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO restock_logs (product_id, quantity, "timestamp") VALUES ($1, $2, $3)`,
		productID, quantity, r.now().UTC())
	if err != nil {
		return models.Product{}, fmt.Errorf("failed to log restock: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return models.Product{}, err
	}
	return p, nil
}

func (r *PostgresRestockRepository) Recent(ctx context.Context, limit int) ([]models.RestockLog, error) {
	query := `SELECT id, product_id, quantity, "timestamp" FROM restock_logs
		ORDER BY "timestamp" DESC, id DESC LIMIT $1`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	logs := []models.RestockLog{}
	if err := r.db.SelectContext(ctx, &logs, query, limit); err != nil {
		return nil, err
	}
	for i := range logs {
		logs[i].Timestamp = logs[i].Timestamp.UTC()
	}
	return logs, nil
}

func (r *PostgresRestockRepository) CountSince(ctx context.Context, since time.Time) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var total int
	err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM restock_logs WHERE "timestamp" >= $1`, since.UTC())
	return total, err
}
