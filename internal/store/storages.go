package store

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-kv-keeper/internal/config"
	"github.com/MKhiriev/go-kv-keeper/internal/logger"
)

// Storages bundles every repository the service layer depends on.
// Snapshotter is non-nil only for the in-memory backend; the snapshot worker
// checks it before starting.
type Storages struct {
	KeyValueRepository KeyValueRepository
	Snapshotter        Snapshotter
}

// NewStorages selects and initialises the storage backend from cfg:
//
//   - a "postgres://" (or "postgresql://") DSN connects to PostgreSQL and
//     runs migrations;
//   - any other non-empty DSN is treated as a SQLite file path;
//   - an empty DSN selects the in-memory store, optionally restored from a
//     JSON snapshot file.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	switch {
	case isPostgresDSN(cfg.DB.DSN):
		db, err := NewConnectPostgres(ctx, cfg.DB, log)
		if err != nil {
			return nil, err
		}
		if err := db.Migrate(); err != nil {
			return nil, err
		}
		return &Storages{KeyValueRepository: NewKeyValueRepository(db, log)}, nil

	case cfg.DB.DSN != "":
		db, err := NewConnectSQLite(ctx, cfg.DB, log)
		if err != nil {
			return nil, err
		}
		if err := db.Migrate(); err != nil {
			return nil, err
		}
		return &Storages{KeyValueRepository: NewKeyValueRepository(db, log)}, nil

	default:
		memory, err := NewMemoryStorage(cfg.Files, log)
		if err != nil {
			return nil, err
		}
		return &Storages{KeyValueRepository: memory, Snapshotter: memory}, nil
	}
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}
