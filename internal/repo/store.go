package repo

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"
)

// Store bundles the repositories of one storage backend.
type Store struct {
	Products ProductRepository
	Restocks RestockRepository

	ping  func(ctx context.Context) error
	close func() error
}

func NewPostgresStore(db *sqlx.DB) *Store {
	return &Store{
		Products: NewPostgresProductRepository(db),
		Restocks: NewPostgresRestockRepository(db),
		ping:     db.PingContext,
		close:    db.Close,
	}
}

func NewGormStore(db *gorm.DB) (*Store, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB from gorm: %w", err)
	}
	return &Store{
		Products: NewGormProductRepository(db),
		Restocks: NewGormRestockRepository(db),
		ping:     sqlDB.PingContext,
		close:    sqlDB.Close,
	}, nil
}

func NewInMemoryStore() *Store {
	products := NewInMemoryProductRepository()
	return &Store{
		Products: products,
		Restocks: NewInMemoryRestockRepository(products),
	}
}

// Ping reports whether the backing database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	if s.ping == nil {
		return nil
	}
	return s.ping(ctx)
}

func (s *Store) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}
