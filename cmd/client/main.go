package main

import (
	"context"
	"os"

	"github.com/MKhiriev/go-attendance/internal/client"
	"github.com/MKhiriev/go-attendance/internal/config"
	"github.com/MKhiriev/go-attendance/internal/logger"
	"github.com/MKhiriev/go-attendance/internal/tui"
	"github.com/MKhiriev/go-attendance/internal/workers"
	"github.com/MKhiriev/go-attendance/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := newBuildInfo()

	log := logger.NewClientLogger("attendance-client", "")
	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	rt, err := client.NewRuntime(context.Background(), cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create client runtime")
	}
	defer rt.Close()

	ui, err := tui.New(rt.Services, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(rt.Services, ui, workers.NewClientWorkers(rt.Services, cfg.Workers), log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Error().Err(err).Msg("client run error")
		rt.Close()
		os.Exit(1)
	}
}

func newBuildInfo() models.AppBuildInfo {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}
	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}
