package handlers

import (
	"time"

	"github.com/rogerio-castellano/inventory-dashboard/internal/repo"
	"go.uber.org/zap"
)

// Server carries the dependencies shared by every handler.
type Server struct {
	store    *repo.Store
	products repo.ProductRepository
	restocks repo.RestockRepository
	log      *zap.Logger
	now      func() time.Time
}

func NewServer(store *repo.Store, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		store:    store,
		products: store.Products,
		restocks: store.Restocks,
		log:      log,
		now:      time.Now,
	}
}

// SetClock replaces the time source used for dashboard windows and trend dates.
func (s *Server) SetClock(now func() time.Time) {
	s.now = now
}
