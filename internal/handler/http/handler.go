package http

import (
	"github.com/lamijafatic/blog-website-api/internal/config"
	"github.com/lamijafatic/blog-website-api/internal/logger"
	"github.com/lamijafatic/blog-website-api/internal/service"
)

type Handler struct {
	services *service.Services

	// maxUploadSize caps multipart bodies; zero means defaultMaxUploadSize.
	maxUploadSize int64
	cfg           config.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")

	maxUploadSize := cfg.MaxUploadSize
	if maxUploadSize <= 0 {
		maxUploadSize = defaultMaxUploadSize
	}

	return &Handler{
		services:      services,
		maxUploadSize: maxUploadSize,
		cfg:           cfg,
		logger:        logger,
	}
}
