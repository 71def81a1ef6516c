package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/ilmanen/sunpaper/internal/gallery"
	"github.com/ilmanen/sunpaper/internal/location"
	"github.com/ilmanen/sunpaper/internal/wallpaper"
	"github.com/ilmanen/sunpaper/pkg/config"
	"github.com/ilmanen/sunpaper/pkg/health"
	"github.com/ilmanen/sunpaper/pkg/mqtt"
)

func main() {
	// Load configuration with hierarchy: defaults → file → env → flags
	cfg := config.NewConfig()
	if path := config.FileFromArgs(os.Args[1:]); path != "" {
		if err := cfg.LoadFromFile(path); err != nil {
			fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.LoadFromEnv()
	cfg.LoadFromFlags()

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	// Set up structured logging
	logLevel := parseLogLevel(cfg.LogLevel)
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// Resolve the render location
	coords := location.Coordinates{Latitude: cfg.Latitude, Longitude: cfg.Longitude}
	if !cfg.CoordsSet {
		var err error
		coords, err = location.Resolve(cfg.City)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
			os.Exit(1)
		}
	}

	logger.Info("Starting sunpaper",
		"city", cfg.City,
		"latitude", coords.Latitude,
		"longitude", coords.Longitude,
		"rate_minutes", cfg.RateMinutes,
		"output", cfg.TempPath,
		"log_level", cfg.LogLevel)

	// Set up context with cancellation for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Enumerate the frame set; any problem here is fatal
	folder := expandHome(cfg.Folder)
	entries, err := gallery.Scan(folder)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	setter := wallpaper.NewSetter(cfg.Command, logger)

	// Set the middle frame right away so something reasonable is
	// visible while the full set decodes
	if setter.Enabled() && !cfg.NoInitial {
		if err := setter.Set(ctx, entries.Middle()); err != nil {
			logger.Warn("Initial wallpaper set failed", "error", err)
		} else {
			logger.Info("Initial wallpaper set", "image", entries.Middle())
		}
	}

	seq, err := gallery.Load(entries)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load images: %v\n", err)
		os.Exit(1)
	}
	logger.Info("Loaded wallpaper frames", "count", seq.Len(), "folder", folder)

	// Initialize MQTT telemetry when a broker is configured
	var mqttClient mqtt.Client
	if cfg.MQTTEnabled() {
		mqttClient = mqtt.NewClient(cfg, logger)
	}

	// Create the wallpaper agent
	agent := wallpaper.NewAgent(cfg, coords, seq, setter, mqttClient, logger)

	// Start health check server when configured
	var httpServer *http.Server
	if cfg.HealthEnabled() {
		healthChecker := health.NewChecker(agent, mqttClient, logger)
		httpServer = startHealthServer(cfg.HealthPort, healthChecker, logger)
	}

	// Start agent in a goroutine
	agentErr := make(chan error, 1)
	go func() {
		if err := agent.Start(ctx); err != nil {
			logger.Error("Agent error", "error", err)
			agentErr <- err
		}
	}()

	// Wait for shutdown signal or agent error
	select {
	case <-sigChan:
		logger.Info("Shutdown signal received (SIGTERM/SIGINT)")
	case err := <-agentErr:
		logger.Error("Agent failed", "error", err)
	}

	// Graceful shutdown
	logger.Info("Initiating graceful shutdown")
	cancel()

	if err := agent.Stop(); err != nil {
		logger.Error("Error stopping agent", "error", err)
	}

	if httpServer != nil {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("Error shutting down health server", "error", err)
		}
	}

	logger.Info("Sunpaper shutdown complete")
}

func startHealthServer(port int, checker *health.Checker, logger *slog.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", checker.HandlerFunc())

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: mux,
	}

	go func() {
		logger.Info("Starting health check server", "port", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Health server error", "error", err)
		}
	}()

	return server
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// expandHome replaces a leading ~ with the user's home directory
func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
