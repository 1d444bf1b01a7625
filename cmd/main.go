package main

import (
	"context"
	"errors"
	"net/http"
	"os"

	"github.com/Memetgms/kitapinceleme/internal/repositories"
	"github.com/Memetgms/kitapinceleme/internal/services"
	"github.com/Memetgms/kitapinceleme/internal/session"
	"github.com/Memetgms/kitapinceleme/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		} else {
			logger.Warnf("failed to load config.toml, using defaults: %v", err)
		}
	}
	shared.SetDateFormat(config.Output.DateFormat)

	db, err := shared.NewDatabase(config.Database.Path)
	if err != nil {
		logger.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()
	shared.ConfigureDatabase(db, config.Database.MaxOpenConns, config.Database.MaxIdleConns)
	if err := shared.RunMigrations(db); err != nil {
		logger.Warnf("migrations failed, run 'kitap setup database': %v", err)
	}

	httpClient := &http.Client{Timeout: config.API.Timeout()}
	api := services.NewClient(config.API.BaseURL, httpClient)
	api.SetRateLimit(config.API.RateLimit)

	kv := repositories.NewKVStore(db)
	sess := session.NewStore(kv, api, logger)
	api.SetTokenSource(sess.TokenSource())

	runner := NewRunner(RunnerOpts{
		Config:  config,
		API:     api,
		Session: sess,
		DB:      db,
		Cache:   repositories.NewBookCacheRepository(db),
		Logger:  logger,
	})

	app := &cli.Command{
		Name:     "kitap",
		Usage:    "Browse, review and manage the kitapinceleme bookstore",
		Version:  "0.3.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		err_ := errors.Unwrap(err)
		if errors.Is(err_, shared.ErrNotImplemented) {
			logger.Warn("not implemented")
			os.Exit(0)
		} else {
			logger.Fatalf("application error: %v", err)
		}
	}
}
