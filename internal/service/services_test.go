package service

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-kv-keeper/internal/config"
	"github.com/MKhiriev/go-kv-keeper/internal/logger"
	"github.com/MKhiriev/go-kv-keeper/internal/store"
)

func TestNewServices(t *testing.T) {
	memory, err := store.NewMemoryStorage(config.Files{}, logger.Nop())
	require.NoError(t, err)

	cfg := config.StructuredConfig{
		App: config.App{Version: "1.0.0"},
		Auth: config.Auth{
			Login:         "admin",
			PasswordHash:  "hash",
			TokenSignKey:  "key",
			TokenIssuer:   "issuer",
			TokenDuration: time.Hour,
		},
	}

	services, err := NewServices(&store.Storages{KeyValueRepository: memory}, cfg, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, services.KeyValueService)
	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.AppInfoService)
}

func TestNewServices_MissingVersion(t *testing.T) {
	memory, err := store.NewMemoryStorage(config.Files{}, logger.Nop())
	require.NoError(t, err)

	_, err = NewServices(&store.Storages{KeyValueRepository: memory}, config.StructuredConfig{}, logger.Nop())
	assert.True(t, errors.Is(err, ErrVersionIsNotSpecified))
}
