// Command dbinit creates the database schemas and loads the development
// seed data. Re-running it duplicates the seed rows: the schemas declare no
// uniqueness on natural keys.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/sgulyaev/aviatickets/config"
	"github.com/sgulyaev/aviatickets/internal/bootstrap"
	"github.com/sgulyaev/aviatickets/internal/storage"
)

func main() {
	skipSeed := flag.Bool("skip-seed", false, "create schemas only, do not insert seed rows")
	flag.Parse()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := bootstrap.NewLogger(cfg.Log)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	flightsPool, err := storage.Open(ctx, cfg.FlightsDB)
	if err != nil {
		logger.Fatal("connect flights db", zap.Error(err))
	}
	defer flightsPool.Close()

	ticketsPool, err := storage.Open(ctx, cfg.TicketsDB)
	if err != nil {
		logger.Fatal("connect tickets db", zap.Error(err))
	}
	defer ticketsPool.Close()

	if err := storage.EnsureFlightsSchema(ctx, flightsPool); err != nil {
		logger.Fatal("ensure flights schema", zap.Error(err))
	}
	if err := storage.EnsureTicketsSchema(ctx, ticketsPool); err != nil {
		logger.Fatal("ensure tickets schema", zap.Error(err))
	}
	logger.Info("schemas ready")

	if *skipSeed {
		return
	}

	seeder := storage.NewSeeder(flightsPool, ticketsPool, logger)
	if err := seeder.Run(ctx); err != nil {
		logger.Fatal("seed failed", zap.Error(err))
	}
	logger.Info("seed complete")
}
