package cli

import (
	"github.com/rogerio-castellano/inventory-dashboard/internal/config"
	"github.com/rogerio-castellano/inventory-dashboard/internal/db"
	"github.com/rogerio-castellano/inventory-dashboard/internal/repo"
	"go.uber.org/zap"
)

// openStore connects to the configured database. Postgres goes through sqlx over
// pgx; sqlite goes through gorm and is migrated on open.
func openStore(cfg config.DatabaseConfig, log *zap.Logger) (*repo.Store, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		gdb, err := db.OpenGorm(cfg)
		if err != nil {
			return nil, err
		}
		if err := db.Migrate(gdb); err != nil {
			return nil, err
		}
		log.Info("connected to sqlite", zap.String("url", cfg.URL))
		return repo.NewGormStore(gdb)
	default:
		sqlxDB, err := db.ConnectPostgres(cfg)
		if err != nil {
			return nil, err
		}
		log.Info("connected to postgres")
		return repo.NewPostgresStore(sqlxDB), nil
	}
}
