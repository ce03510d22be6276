// Command cleanup removes read notifications older than the configured
// retention period. It is intended to be invoked by an external cron job.
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
		logger.Error("refusing to purge", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	st, err := app.OpenStorage(ctx, *cfg, logger)
	if err != nil {
		logger.Error("open storage", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer st.Close()

	svc := data.NewService(logger, st.Repositories(cfg.Storage.KeyPrefix))

	threshold := time.Now().UTC().AddDate(0, 0, -cfg.Notifications.RetentionDays)

	deleted, err := svc.PurgeReadNotifications(ctx, threshold)
	if err != nil {
		logger.Error("purge failed",
			slog.String("error", err.Error()),
			slog.Time("threshold", threshold),
		)
		st.Close()
		os.Exit(1)
	}

	logger.Info("purge completed",
		slog.Int("deleted", deleted),
		slog.Time("threshold", threshold),
	)
}
