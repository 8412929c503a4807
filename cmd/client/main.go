package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-account-keeper/internal/client"
	"github.com/MKhiriev/go-account-keeper/internal/config"
	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/MKhiriev/go-account-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	log := logger.NewClientLogger("account-keeper-client", "")
	ctx := context.Background()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}
	cfg.App.Version = buildInfo.BuildVersion()

	app, err := client.NewApp(ctx, cfg, buildInfo, log)
	if err != nil {
		log.Error().Err(err).Msg("init client app error")
		fmt.Fprintf(os.Stderr, "init client app error: %v\n", err)
		os.Exit(1)
	}

	runErr := app.Run(ctx)
	if err = app.Close(); err != nil {
		log.Error().Err(err).Msg("closing account store")
	}
	if runErr != nil {
		log.Error().Err(runErr).Msg("client run error")
		fmt.Fprintf(os.Stderr, "client run error: %v\n", runErr)
		os.Exit(1)
	}
}
