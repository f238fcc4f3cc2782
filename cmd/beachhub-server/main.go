// Command beachhub-server serves the tournament hub API: the classified
// tournament list, detail pages, rankings, live scores and calendar
// exports. The dataset written by beachhub-sync is loaded once at startup
// and served as a read-only snapshot.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/sandpoint/beachhub/internal/api"
	"github.com/sandpoint/beachhub/internal/detail"
	"github.com/sandpoint/beachhub/internal/fetch"
	"github.com/sandpoint/beachhub/internal/logger"
	"github.com/sandpoint/beachhub/internal/ranking"
	"github.com/sandpoint/beachhub/internal/storage"
)

const serviceName = "beachhub"

type config struct {
	Port       string
	DataFile   string
	SourceBase string
	LogLevel   string
}

func loadConfig() config {
	// A missing .env file is fine; the environment still applies
	_ = godotenv.Load()

	return config{
		Port:       getEnv("PORT", "8080"),
		DataFile:   getEnv("DATA_FILE", storage.DefaultPath),
		SourceBase: getEnv("SOURCE_BASE", fetch.SourceBase),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func main() {
	cfg := loadConfig()
	logger.SetDefault(logger.New(logger.ParseLevel(cfg.LogLevel), os.Stdout))

	logger.Info("Starting server", logger.Fields{
		"service": serviceName,
		"port":    cfg.Port,
		"source":  cfg.SourceBase,
	})

	store, err := storage.New(cfg.DataFile)
	if err != nil {
		logger.Error("Failed to initialize storage", logger.Fields{"path": cfg.DataFile}, err)
		os.Exit(1)
	}

	records, err := store.Load()
	if err != nil {
		logger.Error("Failed to load dataset", logger.Fields{"path": store.Path()}, err)
		os.Exit(1)
	}
	if len(records) == 0 {
		logger.Warn("Dataset is empty, run beachhub-sync to populate it", logger.Fields{
			"path": store.Path(),
		})
	}
	logger.SetGauge("dataset.size", float64(len(records)))

	fetcher := fetch.New()
	handler := api.NewHandler(
		records,
		ranking.NewClientWithBase(cfg.SourceBase),
		detail.NewClientWithBase(fetcher, cfg.SourceBase),
		fetcher,
		cfg.SourceBase,
	)
	server := api.NewServer(cfg.Port, handler)

	// Serve until interrupted
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		logger.Error("Server failed", nil, err)
		os.Exit(1)
	case sig := <-stop:
		logger.Info("Shutting down", logger.Fields{"signal": sig.String()})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Shutdown failed", nil, err)
		os.Exit(1)
	}

	logger.Info("Server stopped", nil)
}
