package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/sgulyaev/aviatickets/config"
	"github.com/sgulyaev/aviatickets/internal/bootstrap"
	"github.com/sgulyaev/aviatickets/internal/repository"
	"github.com/sgulyaev/aviatickets/internal/service/bonus"
	"github.com/sgulyaev/aviatickets/internal/service/flights"
	"github.com/sgulyaev/aviatickets/internal/service/tickets"
	"github.com/sgulyaev/aviatickets/internal/storage"
)

func main() {
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

	flightRepo := repository.NewFlightRepository(flightsPool)
	ticketRepo := repository.NewTicketRepository(ticketsPool)
	privilegeRepo := repository.NewPrivilegeRepository(ticketsPool)

	flightSvc := flights.NewFlightService(flightRepo, cfg.Flights.DefaultPageSize, cfg.Flights.MaxPageSize)
	ticketSvc := tickets.NewTicketService(ticketRepo)
	bonusSvc := bonus.NewBonusService(privilegeRepo)

	if err := bootstrap.Run(ctx, cfg, logger, flightSvc, ticketSvc, bonusSvc); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
