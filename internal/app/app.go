package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/Rkreels/powerbi-sub001/internal/auth"
	"github.com/Rkreels/powerbi-sub001/internal/config"
	"github.com/Rkreels/powerbi-sub001/internal/service/data"
	"github.com/Rkreels/powerbi-sub001/internal/service/export"
	"github.com/Rkreels/powerbi-sub001/internal/transport/middleware"
	"github.com/Rkreels/powerbi-sub001/internal/transport/rest"
)

const rateLimitSweepInterval = time.Minute

// Run loads configuration, wires every backend and serves HTTP until ctx is
// cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("storage", cfg.Storage.Driver),
		slog.String("export", cfg.Export.Driver),
		slog.String("events", cfg.Events.Driver),
		slog.Bool("auth", cfg.Auth.Enabled()),
	)

	st, err := OpenStorage(ctx, *cfg, logger)
	if err != nil {
		return err
	}
	defer st.Close()

	dataSvc := data.NewService(logger, st.Repositories(cfg.Storage.KeyPrefix))

	if cfg.Storage.SeedOnStartup {
		res, err := dataSvc.InitializeSampleData(ctx)
		if err != nil {
			return fmt.Errorf("seed sample data: %w", err)
		}
		logger.Info("sample data checked", slog.Int("inserted", res.Total()))
	}

	blobs, blobPinger, err := openBlobStore(ctx, cfg.Export, logger)
	if err != nil {
		return err
	}

	events, eventsPinger, closeEvents, err := openEventPublisher(cfg.Events, logger)
	if err != nil {
		return err
	}
	defer closeEvents()

	exportSvc := export.NewService(logger, dataSvc, dataSvc, dataSvc, blobs, events)

	extra := make(map[string]rest.Pinger)
	if blobPinger != nil {
		extra["export"] = blobPinger
	}
	if eventsPinger != nil {
		extra["events"] = eventsPinger
	}

	limiter := middleware.NewRateLimiter(rateLimitSweepInterval)
	defer limiter.Stop()

	handler := newHandler(cfg, logger, limiter, dataSvc, exportSvc, rest.NewHealthHandler(st, BuildVersion(), extra))

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           handler,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	return serve(ctx, srv, cfg.Server.ShutdownTimeout, logger)
}

// newHandler mounts the REST routes behind the middleware chain. Auth is
// only installed when a JWT secret is configured.
func newHandler(
	cfg *config.Config,
	logger *slog.Logger,
	limiter *middleware.RateLimiter,
	dataSvc *data.Service,
	exportSvc *export.Service,
	health *rest.HealthHandler,
) http.Handler {
	mux := http.NewServeMux()
	rest.Handlers{
		Health:        health,
		Reports:       rest.NewReportHandler(dataSvc, logger),
		Dashboards:    rest.NewDashboardHandler(dataSvc, logger),
		Datasets:      rest.NewDatasetHandler(dataSvc, logger),
		Workspaces:    rest.NewWorkspaceHandler(dataSvc, logger),
		Notifications: rest.NewNotificationHandler(dataSvc, logger),
		Query:         rest.NewQueryHandler(dataSvc, logger),
		Export:        rest.NewExportHandler(exportSvc, logger),
		Seed:          rest.NewSeedHandler(dataSvc, logger),
	}.Register(mux)

	mws := []middleware.Middleware{
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		limiter.Limit(cfg.Server.RateLimitPerMinute),
	}
	if cfg.Auth.Enabled() {
		jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
		mws = append(mws, middleware.Auth(jwt))
	}

	return middleware.Chain(mws...)(mux)
}

func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", shutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}
