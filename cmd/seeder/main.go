package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ritchie200/ecommerce-angular-core/internal/app"
	"github.com/ritchie200/ecommerce-angular-core/internal/config"
	"github.com/ritchie200/ecommerce-angular-core/internal/logger"
	"github.com/ritchie200/ecommerce-angular-core/internal/metrics"
	"github.com/ritchie200/ecommerce-angular-core/internal/seed"
	"github.com/ritchie200/ecommerce-angular-core/internal/service"
	"github.com/ritchie200/ecommerce-angular-core/internal/store"
	"github.com/ritchie200/ecommerce-angular-core/internal/utils"
	"github.com/ritchie200/ecommerce-angular-core/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).Print(os.Stdout)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("seeder", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("seeder", cfg.App.LogLevel)
	log.Debug().Any("seed", cfg.Seed).Any("metrics", cfg.Metrics).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := store.NewDB(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if cfg.Storage.DB.Migrate {
		if err = db.Migrate(); err != nil {
			log.Fatal().Err(err).Msg("error applying migrations")
		}
	}

	runMetrics := metrics.NewIdentityInsertMetrics()
	storages := store.NewStorages(db, cfg.Storage.DB.Schema, utils.NewUUIDGenerator(), runMetrics, log)
	services := service.NewServices(storages, log)
	loader := seed.NewLoader(storages.Registry)

	seeder := app.NewSeeder(cfg, services.SeedService, loader, runMetrics, log)
	report, err := seeder.Run(ctx)
	for _, r := range report.Results {
		log.Info().
			Str("entity", r.Key).
			Str("source", r.Source).
			Int("rows", r.Rows).
			Int64("inserted", r.Inserted).
			Bool("skipped", r.Skipped).
			Msg("dataset result")
	}
	if err != nil {
		db.Close()
		log.Fatal().Err(err).Msg("seeder failed")
	}

	log.Info().
		Int64("inserted", report.Inserted()).
		Int("skipped", report.Skipped()).
		Msg("seeder finished")
}
