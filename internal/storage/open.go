package storage

import (
	"context"
	"fmt"

	"github.com/Biz-Hub01/pureez/pkg/config"
	"github.com/Biz-Hub01/pureez/pkg/postgres"
)

// Open builds the backend named by cfg.Driver.
func Open(ctx context.Context, cfg config.StoreConfig) (Store, error) {
	switch cfg.Driver {
	case config.StoreMemory:
		return NewMemory(), nil
	case config.StoreSQLite:
		return OpenSQLite(ctx, cfg.SQLitePath)
	case config.StorePostgres:
		db, err := postgres.Open(cfg.Postgres)
		if err != nil {
			return nil, err
		}
		store, err := NewPostgres(ctx, db)
		if err != nil {
			db.Close()
			return nil, err
		}
		store.ownsDB = true
		return store, nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}
