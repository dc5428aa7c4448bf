package http

import (
	"github.com/avdeyev/go-auth-sessions/internal/logger"
	"github.com/avdeyev/go-auth-sessions/internal/service"
)

type Handler struct {
	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}
