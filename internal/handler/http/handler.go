package http

import (
	"github.com/MKhiriev/go-kv-keeper/internal/config"
	"github.com/MKhiriev/go-kv-keeper/internal/logger"
	"github.com/MKhiriev/go-kv-keeper/internal/service"
	"github.com/MKhiriev/go-kv-keeper/internal/utils"
)

type Handler struct {
	services *service.Services

	serverCfg   config.Server
	authEnabled bool

	uuid *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:    services,
		serverCfg:   cfg.Server,
		authEnabled: cfg.Auth.Enabled,
		uuid:        utils.NewUUIDGenerator(),
		logger:      logger,
	}
}
