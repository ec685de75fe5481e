package service

import (
	"github.com/MKhiriev/go-kv-keeper/internal/config"
	"github.com/MKhiriev/go-kv-keeper/internal/logger"
	"github.com/MKhiriev/go-kv-keeper/internal/store"
)

type Services struct {
	KeyValueService KeyValueService
	AuthService     AuthService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		KeyValueService: NewKeyValueService(storages.KeyValueRepository, logger),
		AuthService:     NewAuthService(cfg.Auth, logger),
		AppInfoService:  appInfoService,
	}, nil
}
