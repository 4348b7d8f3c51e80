package main

import (
	"log/slog"
	"os"

	"github.com/spf13/pflag"
	"github.com/vishaal-oss/Airplane-Reservation-System/console/internal/menu"
	"github.com/vishaal-oss/Airplane-Reservation-System/shared/config"
	"github.com/vishaal-oss/Airplane-Reservation-System/shared/reservation"
)

func main() {
	profileName := pflag.String("profile", "", "seat profile name (overrides SEAT_PROFILE)")
	profileFile := pflag.String("profile-file", "", "YAML seat profile overlay (overrides SEAT_PROFILE_FILE)")
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

	// stdout belongs to the menu
	logger := cfg.Logger(os.Stderr)

	profile, err := cfg.Profile()
	if err != nil {
		logger.Error("failed to resolve seat profile", "error", err)
		os.Exit(1)
	}
	catalog, inventory, err := profile.Build()
	if err != nil {
		logger.Error("failed to build seat profile", "profile", profile.Name, "error", err)
		os.Exit(1)
	}

	engine := reservation.NewEngine(catalog, inventory, reservation.WithLogger(logger))
	if err := menu.New(engine, os.Stdin, os.Stdout).Run(); err != nil {
		logger.Error("console failed", "error", err)
		os.Exit(1)
	}
}
