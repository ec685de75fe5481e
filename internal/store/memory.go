package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-kv-keeper/internal/config"
	"github.com/MKhiriev/go-kv-keeper/internal/logger"
	"github.com/MKhiriev/go-kv-keeper/models"
)

// memoryStorage is the in-memory implementation of [KeyValueRepository].
// It is the default backend when no database DSN is configured. When a
// snapshot path is set, the map is loaded from that JSON file at startup and
// can be flushed back via [memoryStorage.Snapshot].
type memoryStorage struct {
	logger *logger.Logger

	mu      sync.RWMutex
	entries map[string]models.Entry

	snapshotPath string
}

// NewMemoryStorage constructs an in-memory repository. If cfg.SnapshotPath
// names an existing snapshot file, its contents are loaded; a missing file
// is not an error, it simply means a cold start.
func NewMemoryStorage(cfg config.Files, log *logger.Logger) (*memoryStorage, error) {
	log.Debug().Msg("creating in-memory key-value storage")

	storage := &memoryStorage{
		logger:       log,
		entries:      make(map[string]models.Entry),
		snapshotPath: cfg.SnapshotPath,
	}

	if cfg.SnapshotPath != "" {
		if err := storage.loadSnapshot(); err != nil {
			log.Err(err).Str("func", "NewMemoryStorage").Msg("error loading snapshot file")
			return nil, err
		}
	}

	return storage, nil
}

func (m *memoryStorage) Upsert(_ context.Context, entry models.Entry) (models.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now().UTC()
	if previous, ok := m.entries[entry.Key]; ok {
		entry.CreatedAt = previous.CreatedAt
	} else {
		entry.CreatedAt = now
	}
	entry.UpdatedAt = now

	m.entries[entry.Key] = entry

	return entry, nil
}

func (m *memoryStorage) Read(_ context.Context, key string) (models.Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entry, ok := m.entries[key]
	if !ok {
		return models.Entry{}, ErrKeyNotFound
	}

	return entry, nil
}

func (m *memoryStorage) Update(_ context.Context, entry models.Entry) (models.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	previous, ok := m.entries[entry.Key]
	if !ok {
		return models.Entry{}, ErrKeyNotFound
	}

	entry.CreatedAt = previous.CreatedAt
	entry.UpdatedAt = time.Now().UTC()
	m.entries[entry.Key] = entry

	return entry, nil
}

func (m *memoryStorage) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries, key)

	return nil
}

func (m *memoryStorage) Keys(_ context.Context, prefix string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.entries))
	for key := range m.entries {
		if prefix != "" && !strings.HasPrefix(key, prefix) {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return keys, nil
}

// Snapshot writes the current map to the configured snapshot file as a JSON
// array of entries. The file is written atomically via a temporary file so a
// crash mid-write never corrupts a previous snapshot. With no snapshot path
// configured, Snapshot is a no-op.
func (m *memoryStorage) Snapshot() error {
	if m.snapshotPath == "" {
		return nil
	}

	m.mu.RLock()
	entries := make([]models.Entry, 0, len(m.entries))
	for _, entry := range m.entries {
		entries = append(entries, entry)
	}
	m.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshalling snapshot: %w", err)
	}

	tmpPath := m.snapshotPath + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("error writing snapshot file: %w", err)
	}
	if err := os.Rename(tmpPath, m.snapshotPath); err != nil {
		return fmt.Errorf("error replacing snapshot file: %w", err)
	}

	m.logger.Debug().Str("func", "*memoryStorage.Snapshot").Int("entries", len(entries)).Msg("snapshot written")

	return nil
}

// loadSnapshot restores the map from the snapshot file written by a previous
// run.
func (m *memoryStorage) loadSnapshot() error {
	data, err := os.ReadFile(m.snapshotPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error reading snapshot file: %w", err)
	}

	var entries []models.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("error parsing snapshot file: %w", err)
	}

	for _, entry := range entries {
		m.entries[entry.Key] = entry
	}

	m.logger.Debug().Str("func", "*memoryStorage.loadSnapshot").Int("entries", len(entries)).Msg("snapshot loaded")

	return nil
}
