package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dtroode/tablemarket-server/database"
	"github.com/dtroode/tablemarket-server/internal/app"
	"github.com/dtroode/tablemarket-server/internal/config"
	"github.com/dtroode/tablemarket-server/internal/logger"
	"github.com/dtroode/tablemarket-server/internal/repository/postgres"
	"github.com/dtroode/tablemarket-server/internal/seed"
	storage "github.com/dtroode/tablemarket-server/internal/storage/minio"
	"github.com/dtroode/tablemarket-server/internal/sweeper"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	logAppVersion()

	source, err := newSeedSource(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to initialize seed source", "error", err)
	}

	if err := database.Initialize(ctx, cfg.Database.DSN, seed.NewSeeder(source, logger)); err != nil {
		logger.Fatal("failed to initialize database", "error", err)
	}
	logger.Info("database initialized")

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	services := app.New(db, cfg, logger)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		sweeper.New(services.Reservations, cfg.Sweeper.Interval, logger).Run(ctx)
	}()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	wg.Wait()
	logger.Info("shutdown complete")
}

func newSeedSource(ctx context.Context, cfg *config.Config) (seed.Source, error) {
	if cfg.Seed.Source != config.SeedSourceMinio {
		return seed.NewEmbeddedSource(), nil
	}

	client, err := storage.Dial(ctx, storage.Options{
		Endpoint:  cfg.Storage.Endpoint,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Bucket:    cfg.Storage.Bucket,
		UseSSL:    cfg.Storage.UseSSL,
	})
	if err != nil {
		return nil, err
	}

	return seed.NewObjectSource(client, cfg.Seed.Key), nil
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
