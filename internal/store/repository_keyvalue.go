// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-kv-keeper/internal/logger"
	"github.com/MKhiriev/go-kv-keeper/models"
)

// keyValueRepository is the SQL-backed implementation of [KeyValueRepository].
// The same code serves PostgreSQL and SQLite: queries are rendered through
// the squirrel builder carried by [DB], which knows the placeholder format of
// the underlying driver.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type keyValueRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewKeyValueRepository constructs a [KeyValueRepository] backed by the
// provided database connection and logger.
func NewKeyValueRepository(db *DB, logger *logger.Logger) KeyValueRepository {
	logger.Debug().Msg("creating key-value repository")
	return &keyValueRepository{
		db:     db,
		logger: logger,
	}
}

// Upsert stores entry under its key, overwriting any previous value, and
// returns the entry as persisted. The row is scanned back from RETURNING:
// an overwrite keeps the original created_at, so the caller sees the
// timestamps that are actually in the database.
//
// Error handling:
//   - query build failure → wrapped [ErrBuildingSQLQuery].
//   - driver-level error → wrapped [ErrExecutingStatement].
//   - no row returned → [ErrNothingUpserted].
func (r *keyValueRepository) Upsert(ctx context.Context, entry models.Entry) (models.Entry, error) {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	entry.CreatedAt = now
	entry.UpdatedAt = now

	query, args, err := buildUpsertQuery(r.db.queryBuilder(), entry)
	if err != nil {
		log.Err(err).Str("func", "*keyValueRepository.Upsert").Msg("error building upsert query")
		return models.Entry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	saved, err := r.scanEntryWithRetry(ctx, query, args)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Error().Str("func", "*keyValueRepository.Upsert").Str("key", entry.Key).Msg("upsert returned no row")
			return models.Entry{}, ErrNothingUpserted
		}
		log.Err(err).Str("func", "*keyValueRepository.Upsert").Str("key", entry.Key).Msg("error executing upsert")
		return models.Entry{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return saved, nil
}

// Read retrieves the entry stored under key.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrKeyNotFound].
//   - any other scan failure → wrapped [ErrScanningRow].
func (r *keyValueRepository) Read(ctx context.Context, key string) (models.Entry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildReadQuery(r.db.queryBuilder(), key)
	if err != nil {
		log.Err(err).Str("func", "*keyValueRepository.Read").Msg("error building read query")
		return models.Entry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var entry models.Entry
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&entry.Key, &entry.Value, &entry.CreatedAt, &entry.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Entry{}, ErrKeyNotFound
		}
		log.Err(err).Str("func", "*keyValueRepository.Read").Str("key", key).Msg("error scanning entry row")
		return models.Entry{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return entry, nil
}

// Update replaces the value of an existing key and bumps its updated_at
// timestamp. The persisted row, original created_at included, is scanned
// back from RETURNING; when the key is absent no row comes back and the
// call yields [ErrKeyNotFound].
func (r *keyValueRepository) Update(ctx context.Context, entry models.Entry) (models.Entry, error) {
	log := logger.FromContext(ctx)

	entry.UpdatedAt = time.Now().UTC()

	query, args, err := buildUpdateQuery(r.db.queryBuilder(), entry)
	if err != nil {
		log.Err(err).Str("func", "*keyValueRepository.Update").Msg("error building update query")
		return models.Entry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := r.scanEntryWithRetry(ctx, query, args)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Entry{}, ErrKeyNotFound
		}
		log.Err(err).Str("func", "*keyValueRepository.Update").Str("key", entry.Key).Msg("error executing update")
		return models.Entry{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return updated, nil
}

// Remove deletes the entry stored under key. Deleting an absent key is a
// no-op and returns nil.
func (r *keyValueRepository) Remove(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildRemoveQuery(r.db.queryBuilder(), key)
	if err != nil {
		log.Err(err).Str("func", "*keyValueRepository.Remove").Msg("error building delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.execWithRetry(ctx, query, args); err != nil {
		log.Err(err).Str("func", "*keyValueRepository.Remove").Str("key", key).Msg("error executing delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Keys lists stored keys in lexicographic order, optionally narrowed to the
// given prefix.
func (r *keyValueRepository) Keys(ctx context.Context, prefix string) ([]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildKeysQuery(r.db.queryBuilder(), prefix)
	if err != nil {
		log.Err(err).Str("func", "*keyValueRepository.Keys").Msg("error building keys query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*keyValueRepository.Keys").Msg("error executing keys query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	keys := make([]string, 0)
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			log.Err(err).Str("func", "*keyValueRepository.Keys").Msg("error scanning key")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*keyValueRepository.Keys").Msg("error iterating keys")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return keys, nil
}

// execWithRetry executes a DML statement and retries it once when the error
// classifier reports a transient failure (connection loss, deadlock).
// Backends without a classifier get a single attempt.
func (r *keyValueRepository) execWithRetry(ctx context.Context, query string, args []any) (sql.Result, error) {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err == nil || r.db.errorClassificator == nil {
		return result, err
	}

	if r.db.errorClassificator.Classify(err) != Retryable {
		return nil, err
	}

	logger.FromContext(ctx).Warn().Err(err).Msg("retrying statement after transient database error")
	return r.db.ExecContext(ctx, query, args...)
}

// scanEntry runs a statement carrying a RETURNING clause and scans the
// resulting single entry row.
func (r *keyValueRepository) scanEntry(ctx context.Context, query string, args []any) (models.Entry, error) {
	var entry models.Entry
	row := r.db.QueryRowContext(ctx, query, args...)
	err := row.Scan(&entry.Key, &entry.Value, &entry.CreatedAt, &entry.UpdatedAt)
	return entry, err
}

// scanEntryWithRetry is the RETURNING counterpart of execWithRetry: one
// retry on a transient database error, mirroring the same classification.
// sql.ErrNoRows is never retried; it reports an outcome, not a failure.
func (r *keyValueRepository) scanEntryWithRetry(ctx context.Context, query string, args []any) (models.Entry, error) {
	entry, err := r.scanEntry(ctx, query, args)
	if err == nil || errors.Is(err, sql.ErrNoRows) || r.db.errorClassificator == nil {
		return entry, err
	}

	if r.db.errorClassificator.Classify(err) != Retryable {
		return models.Entry{}, err
	}

	logger.FromContext(ctx).Warn().Err(err).Msg("retrying statement after transient database error")
	return r.scanEntry(ctx, query, args)
}
