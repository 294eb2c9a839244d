package main

import (
	"context"
	"fmt"

	"github.com/lamijafatic/blog-website-api/internal/adapter"
	"github.com/lamijafatic/blog-website-api/internal/config"
	"github.com/lamijafatic/blog-website-api/internal/handler"
	"github.com/lamijafatic/blog-website-api/internal/logger"
	"github.com/lamijafatic/blog-website-api/internal/server"
	"github.com/lamijafatic/blog-website-api/internal/service"
	"github.com/lamijafatic/blog-website-api/internal/store"
	"github.com/lamijafatic/blog-website-api/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewLogger("blog-server")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = log.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(context.Background()); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	imageHost, err := adapter.NewImgurImageHost(cfg.Adapter.ImageHost, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating image host client")
	}

	services := service.NewServices(storages, imageHost, *cfg, buildInfo, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Err(err).Msg("server stopped with error")
	}
}
