package http

import (
	"context"
	"time"

	"github.com/harborlight/intake-server/internal/config"
	"github.com/harborlight/intake-server/internal/logger"
	"github.com/harborlight/intake-server/internal/service"
)

// DatabasePinger is the slice of the store handle the health endpoint needs.
type DatabasePinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	services *service.Services
	db       DatabasePinger

	// dev widens error responses to include the underlying error text.
	dev            bool
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, db DatabasePinger, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		db:             db,
		dev:            cfg.Dev,
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
}
