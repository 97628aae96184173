package main

import (
	"log"
	"log/slog"

	"shopdata/internal/app"
	"shopdata/internal/config"
	"shopdata/internal/util"
)

func main() {
	cfg, err := config.Load(config.ConfigPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := util.InitLogger(cfg.LogLevel)

	appCore, err := app.New(app.Config{
		File:   cfg,
		Logger: logger,
	})
	if err != nil {
		log.Fatalf("failed to init app: %v", err)
	}
	defer func() {
		if err := appCore.Close(); err != nil {
			logger.Error("close backend", "err", err)
		}
	}()

	counters := appCore.Store.Counters()
	slog.Info("store ready",
		"backend", cfg.Backend,
		"users", len(appCore.Store.Users()),
		"products", len(appCore.Store.Products()),
		"orders", len(appCore.Store.Orders()),
		"nextUserId", counters.NextUserID,
		"nextProductId", counters.NextProductID,
		"nextOrderId", counters.NextOrderID,
	)
	if u, ok := appCore.Sessions.CurrentUser(); ok {
		slog.Info("session restored", "userId", u.ID, "role", u.Role)
	} else {
		slog.Info("no active session")
	}
}
