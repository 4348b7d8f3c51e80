// Package config loads runtime configuration from the environment, an
// optional .env file and an optional YAML seat profile.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/vishaal-oss/Airplane-Reservation-System/shared/models"
	"github.com/vishaal-oss/Airplane-Reservation-System/shared/reservation"
	"gopkg.in/yaml.v3"
)

const (
	DefaultHost      = ""
	DefaultPorts     = "8080,8081,8082,8083,8084"
	DefaultLogLevel  = "info"
	DefaultEnvFile   = ".env"
	DefaultTaskQueue = models.DefaultTaskQueue
)

// Config holds runtime settings shared by the server, console and worker.
type Config struct {
	Host         string
	Ports        []int
	ProfileName  string
	ProfileFile  string
	DatabaseURL  string
	TemporalHost string
	TaskQueue    string
	LogLevel     slog.Level
}

// Load reads the .env file (if present) and then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(DefaultEnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", DefaultEnvFile, err)
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables only.
func FromEnv() (*Config, error) {
	ports, err := parsePorts(getEnv("API_PORT", ""), getEnv("API_PORTS", DefaultPorts))
	if err != nil {
		return nil, err
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(getEnv("LOG_LEVEL", DefaultLogLevel))); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	return &Config{
		Host:         getEnv("API_HOST", DefaultHost),
		Ports:        ports,
		ProfileName:  getEnv("SEAT_PROFILE", reservation.DefaultProfile),
		ProfileFile:  os.Getenv("SEAT_PROFILE_FILE"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		TemporalHost: os.Getenv("TEMPORAL_HOST"),
		TaskQueue:    getEnv("TASK_QUEUE", DefaultTaskQueue),
		LogLevel:     level,
	}, nil
}

// Profile resolves the active seat profile: the named built-in profile,
// overlaid with the YAML file when one is configured.
func (c *Config) Profile() (reservation.Profile, error) {
	p, err := reservation.LookupProfile(c.ProfileName)
	if err != nil {
		return reservation.Profile{}, fmt.Errorf("unknown SEAT_PROFILE (have %s): %w",
			strings.Join(reservation.ProfileNames(), ", "), err)
	}
	if c.ProfileFile == "" {
		return p, nil
	}

	data, err := os.ReadFile(c.ProfileFile)
	if err != nil {
		return reservation.Profile{}, fmt.Errorf("failed to read profile file: %w", err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return reservation.Profile{}, fmt.Errorf("failed to parse profile file %s: %w", c.ProfileFile, err)
	}
	if err := p.Validate(); err != nil {
		return reservation.Profile{}, err
	}
	return p, nil
}

// Logger returns a text logger writing to w at the configured level.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: c.LogLevel}))
}

// parsePorts puts the preferred port first, followed by the fallback list
// without duplicates.
func parsePorts(preferred, fallback string) ([]int, error) {
	var ports []int
	seen := make(map[int]bool)

	add := func(raw string) error {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			return nil
		}
		p, err := strconv.Atoi(raw)
		if err != nil || p <= 0 || p > 65535 {
			return fmt.Errorf("invalid port %q", raw)
		}
		if !seen[p] {
			seen[p] = true
			ports = append(ports, p)
		}
		return nil
	}

	if err := add(preferred); err != nil {
		return nil, err
	}
	for _, raw := range strings.Split(fallback, ",") {
		if err := add(raw); err != nil {
			return nil, err
		}
	}
	if len(ports) == 0 {
		return nil, fmt.Errorf("no listen ports configured")
	}
	return ports, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
