// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-kv-keeper/internal/logger"
	"github.com/MKhiriev/go-kv-keeper/internal/store"
	"github.com/MKhiriev/go-kv-keeper/internal/validators"
	"github.com/MKhiriev/go-kv-keeper/models"
)

// keyValueService is the concrete implementation of KeyValueService.
// It validates inbound keys and values before delegating persistence to the
// configured [store.KeyValueRepository]; storage sentinel errors pass through
// untouched so handlers can map them to HTTP statuses.
type keyValueService struct {
	repository store.KeyValueRepository

	// validator checks inbound keys and values before any repository call.
	validator validators.Validator

	logger *logger.Logger
}

// NewKeyValueService constructs a KeyValueService backed by the given
// repository.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewKeyValueService(repository store.KeyValueRepository, logger *logger.Logger) KeyValueService {
	return &keyValueService{
		repository: repository,
		validator:  validators.NewEntryValidator(),
		logger:     logger,
	}
}

// Upsert stores value under key, creating the entry or overwriting the
// previous value.
//
// Returns the persisted entry (with server-assigned timestamps) or:
//   - ErrInvalidDataProvided if key or value fails validation.
//   - A wrapped storage error if the repository call fails.
func (s *keyValueService) Upsert(ctx context.Context, key string, value string) (models.Entry, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, models.Entry{Key: key, Value: value}); err != nil {
		log.Err(err).Str("key", key).Msg("invalid entry data provided")
		return models.Entry{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	saved, err := s.repository.Upsert(ctx, models.Entry{Key: key, Value: value})
	if err != nil {
		log.Err(err).Str("key", key).Msg("entry upsert ended with error")
		return models.Entry{}, fmt.Errorf("entry upsert ended with error: %w", err)
	}

	return saved, nil
}

// Read returns the entry stored under key.
//
// Returns ErrInvalidDataProvided for an invalid key; a miss surfaces as
// [store.ErrKeyNotFound].
func (s *keyValueService) Read(ctx context.Context, key string) (models.Entry, error) {
	if err := s.validator.Validate(ctx, models.Entry{Key: key}, validators.FieldKey); err != nil {
		return models.Entry{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return s.repository.Read(ctx, key)
}

// Update replaces the value of an existing key.
//
// Returns ErrInvalidDataProvided if key or value fails validation; an absent key
// surfaces as [store.ErrKeyNotFound].
func (s *keyValueService) Update(ctx context.Context, key string, value string) (models.Entry, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, models.Entry{Key: key, Value: value}); err != nil {
		log.Err(err).Str("key", key).Msg("invalid entry data provided")
		return models.Entry{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	updated, err := s.repository.Update(ctx, models.Entry{Key: key, Value: value})
	if err != nil {
		log.Err(err).Str("key", key).Msg("entry update ended with error")
		return models.Entry{}, err
	}

	return updated, nil
}

// Remove deletes the entry stored under key. Removing an absent key is not
// an error.
func (s *keyValueService) Remove(ctx context.Context, key string) error {
	if err := s.validator.Validate(ctx, models.Entry{Key: key}, validators.FieldKey); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return s.repository.Remove(ctx, key)
}

// Keys lists stored keys in lexicographic order, optionally narrowed to a
// prefix.
func (s *keyValueService) Keys(ctx context.Context, prefix string) ([]string, error) {
	return s.repository.Keys(ctx, prefix)
}
