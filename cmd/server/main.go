package main

import (
	"context"
	"fmt"

	"github.com/heartbreaksandvodka/project-plusminus/internal/config"
	"github.com/heartbreaksandvodka/project-plusminus/internal/handler"
	"github.com/heartbreaksandvodka/project-plusminus/internal/logger"
	"github.com/heartbreaksandvodka/project-plusminus/internal/metrics"
	"github.com/heartbreaksandvodka/project-plusminus/internal/server"
	"github.com/heartbreaksandvodka/project-plusminus/internal/service"
	"github.com/heartbreaksandvodka/project-plusminus/internal/store"
	"github.com/heartbreaksandvodka/project-plusminus/internal/workers"
	"github.com/heartbreaksandvodka/project-plusminus/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(build)

	log := logger.NewLogger("plusminus-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = log.SetLevel(cfg.App.LogLevel); err != nil {
		log.Warn().Err(err).Msg("keeping default log level")
	}

	log.Debug().Str("http", cfg.Server.HTTPAddress).Str("metrics", cfg.Server.MetricsAddress).
		Bool("redis", cfg.RedisEnabled()).Bool("s3", cfg.S3Enabled()).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	m := metrics.New()
	wrk, dispatcher := workers.NewServerWorkers(cfg, storages.TokenBlacklist, m, log)
	defer func() {
		if err := wrk.Close(); err != nil {
			log.Err(err).Msg("error closing workers")
		}
	}()

	services, err := service.NewServices(storages, dispatcher, cfg, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, m, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, m, cfg.Server, log, wrk)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Err(err).Msg("server stopped with error")
	}
}
