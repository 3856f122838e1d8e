package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sgulyaev/aviatickets/api"
	"github.com/sgulyaev/aviatickets/config"
	"github.com/sgulyaev/aviatickets/internal/service/bonus"
	"github.com/sgulyaev/aviatickets/internal/service/flights"
	"github.com/sgulyaev/aviatickets/internal/service/tickets"
)

// Run starts the HTTP server and blocks until the context is canceled or the
// server fails.
func Run(ctx context.Context, cfg *config.Config, log *zap.Logger,
	flightSvc flights.FlightUseCase, ticketSvc tickets.TicketUseCase, bonusSvc bonus.BonusUseCase) error {

	router := NewRouter(flightSvc, ticketSvc, bonusSvc)
	srv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", zap.String("address", cfg.HTTP.Address))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		log.Info("http server stopped")
		return nil
	}
}

// NewRouter assembles the gin engine with all route groups.
func NewRouter(flightSvc flights.FlightUseCase, ticketSvc tickets.TicketUseCase, bonusSvc bonus.BonusUseCase) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	api.NewFlightHandler(flightSvc).Register(router.Group("/flights"))
	api.NewTicketHandler(ticketSvc).Register(router.Group("/tickets"))
	api.NewPrivilegeHandler(bonusSvc).Register(router.Group("/privilege"))
	api.RegisterHealth(router)

	return router
}
