package http

import (
	"github.com/vitalog/vitalog/internal/config"
	"github.com/vitalog/vitalog/internal/logger"
	"github.com/vitalog/vitalog/internal/service"
)

type Handler struct {
	services *service.Services

	// secureCookies controls the Secure attribute on the session cookie.
	// False only in local development over plain HTTP.
	secureCookies bool

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Auth, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:      services,
		secureCookies: cfg.SecureCookiesEnabled(),
		logger:        logger,
	}
}
