package main

import (
	"context"
	"fmt"

	"github.com/heartbreaksandvodka/project-plusminus/internal/adapter"
	"github.com/heartbreaksandvodka/project-plusminus/internal/client"
	"github.com/heartbreaksandvodka/project-plusminus/internal/config"
	"github.com/heartbreaksandvodka/project-plusminus/internal/logger"
	"github.com/heartbreaksandvodka/project-plusminus/internal/service"
	"github.com/heartbreaksandvodka/project-plusminus/internal/store"
	"github.com/heartbreaksandvodka/project-plusminus/internal/tui"
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

	log := logger.NewClientLogger("plusminus-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = log.SetLevel(cfg.LogLevel); err != nil {
		log.Warn().Err(err).Msg("keeping default log level")
	}

	storages, err := store.NewClientStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create session storage")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("close session storage")
		}
	}()

	session, err := adapter.NewSessionClient(cfg.Adapter, storages.SessionStorage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create session client")
	}
	session.OnSessionTerminated(func() {
		log.Warn().Msg("session terminated by the server")
	})

	services := service.NewClientServices(storages.SessionStorage, adapter.NewHTTPServerAdapter(session, log), log)

	if cfg.Version != "" {
		build.Version = cfg.Version
	}
	ui := tui.New(services, build, log)

	app, err := client.NewApp(services, ui, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Err(err).Msg("client run error")
	}
}
