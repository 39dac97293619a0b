// Package factory turns configuration into wired components.
package factory

import (
	"fmt"

	"github.com/PickleRicc/deep-work-sub001/internal/config"
	"github.com/PickleRicc/deep-work-sub001/internal/store"
	"github.com/PickleRicc/deep-work-sub001/internal/store/postgres"
	"github.com/PickleRicc/deep-work-sub001/internal/store/sqlite"
)

// NewStore selects the store driver based on cfg.DBDriver.
func NewStore(cfg *config.Config) (store.Store, error) {
	switch cfg.DBDriver {
	case "postgres":
		db, err := postgres.Open(cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		return postgres.NewWithDB(db), nil
	case "sqlite":
		path := cfg.SQLitePath
		if path == "" {
			path = "data/planner.db"
		}
		db, err := sqlite.Open(path)
		if err != nil {
			return nil, err
		}
		if err := sqlite.EnsureSchema(db); err != nil {
			return nil, err
		}
		return sqlite.NewWithDB(db), nil
	default:
		return nil, fmt.Errorf("unknown DB driver: %s", cfg.DBDriver)
	}
}
