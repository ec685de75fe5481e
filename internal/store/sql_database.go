package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-kv-keeper/internal/logger"
	"github.com/MKhiriev/go-kv-keeper/migrations"
)

// DB wraps an open *sql.DB together with the driver-specific bits the
// repository needs: the goose dialect used for migrations, the placeholder
// format squirrel should render queries with, and an optional error
// classifier for the drivers that provide rich error codes.
type DB struct {
	*sql.DB
	dialect            string
	placeholder        sq.PlaceholderFormat
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// queryBuilder returns a squirrel builder configured with the placeholder
// format of the underlying driver ($1 for pgx, ? for sqlite3).
func (db *DB) queryBuilder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(db.placeholder)
}
