package http

import (
	"github.com/denteo/clinic-backend/internal/adapter"
	"github.com/denteo/clinic-backend/internal/logger"
	"github.com/denteo/clinic-backend/internal/service"
	"github.com/denteo/clinic-backend/internal/validators"
)

type Handler struct {
	services  *service.Services
	resolver  adapter.TokenResolver
	validator validators.Validator

	logger *logger.Logger
}

func NewHandler(services *service.Services, resolver adapter.TokenResolver, validator validators.Validator, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		resolver:  resolver,
		validator: validator,
		logger:    logger,
	}
}
