// Command seeder fills empty collections of the configured store with the
// demo records. Collections that already hold data are left untouched, so it
// is safe to run repeatedly.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/Rkreels/powerbi-sub001/internal/app"
	"github.com/Rkreels/powerbi-sub001/internal/config"
	"github.com/Rkreels/powerbi-sub001/internal/service/data"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	if err := cfg.RequirePersistentStorage(); err != nil {
		logger.Error("refusing to seed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	st, err := app.OpenStorage(ctx, *cfg, logger)
	if err != nil {
		logger.Error("open storage", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer st.Close()

	svc := data.NewService(logger, st.Repositories(cfg.Storage.KeyPrefix))

	res, err := svc.InitializeSampleData(ctx)
	if err != nil {
		logger.Error("seed failed", slog.String("error", err.Error()))
		st.Close()
		os.Exit(1)
	}

	logger.Info("seed completed",
		slog.String("storage", st.Driver),
		slog.Int("reports", res.Reports),
		slog.Int("dashboards", res.Dashboards),
		slog.Int("datasets", res.Datasets),
		slog.Int("workspaces", res.Workspaces),
		slog.Int("notifications", res.Notifications),
	)
}
