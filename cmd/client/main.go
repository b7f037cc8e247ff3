package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-resume-uploader/internal/adapter"
	"github.com/MKhiriev/go-resume-uploader/internal/client"
	"github.com/MKhiriev/go-resume-uploader/internal/config"
	"github.com/MKhiriev/go-resume-uploader/internal/logger"
	"github.com/MKhiriev/go-resume-uploader/internal/service"
	"github.com/MKhiriev/go-resume-uploader/models"
)

const role = "resume-uploader"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	cfg, err := config.GetClientConfig(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		logger.NewLogger(role, os.Stderr).Fatal().Err(err).Msg("error getting configs")
	}

	log, err := logger.NewClientLogger(role, cfg.App.LogFile, cfg.App.LogLevel)
	if err != nil {
		log.Warn().Err(err).Msg("logging to stderr instead")
	}

	uploadAdapter, err := adapter.NewHTTPUploadAdapter(cfg.Adapter, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create upload adapter")
	}

	services, err := service.NewClientServices(uploadAdapter, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create client services")
	}

	app, err := client.NewApp(services, cfg, os.Stdout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx); err != nil {
		stop()
		log.Fatal().Err(err).Msg("client run error")
	}
}
