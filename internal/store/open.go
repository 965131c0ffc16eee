package store

import (
	"fmt"

	"github.com/zulandar/messagecraft/internal/config"
	"github.com/zulandar/messagecraft/internal/db"
)

// Open builds the KV backend selected by cfg.Store.
func Open(cfg *config.Config) (KV, error) {
	switch cfg.Store.Backend {
	case "memory":
		return NewMemoryKV(), nil
	case "sqlite":
		gdb, err := db.ConnectSQLite(cfg.Store.Path)
		if err != nil {
			return nil, err
		}
		return NewGormKV(gdb)
	case "mysql":
		m := cfg.Store.MySQL
		gdb, err := db.ConnectMySQL(m.Host, m.Port, m.User, m.Database)
		if err != nil {
			return nil, err
		}
		return NewGormKV(gdb)
	case "badger":
		return OpenBadger(cfg.Store.Dir)
	default:
		return nil, fmt.Errorf("store: unknown backend %q", cfg.Store.Backend)
	}
}
