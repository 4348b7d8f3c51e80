package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"
	"github.com/vishaal-oss/Airplane-Reservation-System/api-server/internal/database"
	"github.com/vishaal-oss/Airplane-Reservation-System/api-server/internal/handlers"
	"github.com/vishaal-oss/Airplane-Reservation-System/api-server/internal/router"
	"github.com/vishaal-oss/Airplane-Reservation-System/api-server/internal/server"
	"github.com/vishaal-oss/Airplane-Reservation-System/api-server/internal/service"
	"github.com/vishaal-oss/Airplane-Reservation-System/api-server/internal/websocket"
	"github.com/vishaal-oss/Airplane-Reservation-System/shared/config"
	"github.com/vishaal-oss/Airplane-Reservation-System/shared/reservation"
	"go.temporal.io/sdk/client"
	tlog "go.temporal.io/sdk/log"
)

func main() {
	profileName := pflag.String("profile", "", "seat profile name (overrides SEAT_PROFILE)")
	profileFile := pflag.String("profile-file", "", "YAML seat profile overlay (overrides SEAT_PROFILE_FILE)")
	port := pflag.IntP("port", "p", 0, "preferred listen port, tried before the fallback list")
	pflag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if *profileName != "" {
		cfg.ProfileName = *profileName
	}
	if *profileFile != "" {
		cfg.ProfileFile = *profileFile
	}
	if *port != 0 {
		cfg.Ports = append([]int{*port}, cfg.Ports...)
	}

	logger := cfg.Logger(os.Stderr)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	engine, err := buildEngine(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to build reservation engine", "error", err)
		os.Exit(1)
	}

	hub := websocket.NewHub(logger)
	go hub.Run(ctx)

	opts := service.Options{Broadcaster: hub, Logger: logger}
	if cfg.TemporalHost != "" {
		c, err := client.Dial(client.Options{
			HostPort: cfg.TemporalHost,
			Logger:   tlog.NewStructuredLogger(logger),
		})
		if err != nil {
			logger.Error("failed to create Temporal client", "host", cfg.TemporalHost, "error", err)
			os.Exit(1)
		}
		defer c.Close()
		opts.Notifier = service.NewTemporalNotifier(c, cfg.TaskQueue)
		logger.Info("connected to Temporal", "host", cfg.TemporalHost, "taskQueue", cfg.TaskQueue)
	}

	bookingService := service.NewBookingService(engine, opts)
	h := handlers.NewHandler(bookingService, logger)
	r := router.NewRouter(h, hub.ServeWS)

	ln, err := server.Listen(cfg.Host, cfg.Ports, logger)
	if err != nil {
		logger.Error("failed to bind listener", "ports", cfg.Ports, "error", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("API server starting", "addr", ln.Addr().String(), "port", server.Port(ln), "profile", cfg.ProfileName)
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server stopped")
}

// buildEngine assembles the engine from the configured profile. When a
// database is configured its flights replace the profile's catalog.
func buildEngine(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*reservation.Engine, error) {
	profile, err := cfg.Profile()
	if err != nil {
		return nil, err
	}
	catalog, inventory, err := profile.Build()
	if err != nil {
		return nil, err
	}

	if cfg.DatabaseURL != "" {
		pool, err := database.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		defer pool.Close()

		if err := database.EnsureSchema(ctx, pool); err != nil {
			return nil, err
		}
		flights, err := database.NewRepository(pool).GetAllFlights(ctx)
		if err != nil {
			return nil, err
		}
		if catalog, err = reservation.NewCatalog(flights); err != nil {
			return nil, err
		}
		logger.Info("loaded flight catalog from database", "flights", catalog.Len())
	}

	return reservation.NewEngine(catalog, inventory, reservation.WithLogger(logger)), nil
}
