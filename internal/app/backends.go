package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Rkreels/powerbi-sub001/internal/adapter/memory"
	"github.com/Rkreels/powerbi-sub001/internal/adapter/minio"
	"github.com/Rkreels/powerbi-sub001/internal/adapter/rabbitmq"
	"github.com/Rkreels/powerbi-sub001/internal/config"
	"github.com/Rkreels/powerbi-sub001/internal/transport/rest"
)

const (
	memoryExportBaseURL = "memory://exports"
	memoryEventCapacity = 1000
)

type blobStore interface {
	Put(ctx context.Context, key, contentType string, data []byte) (string, error)
}

type eventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
}

// openBlobStore returns the export store and, for remote backends, the
// pinger reported by /health.
func openBlobStore(ctx context.Context, cfg config.ExportConfig, log *slog.Logger) (blobStore, rest.Pinger, error) {
	switch cfg.Driver {
	case config.DriverMinIO:
		store, err := minio.NewBlobStore(ctx, log, cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("open export store: %w", err)
		}
		return store, store, nil
	case config.DriverMemory, "":
		return memory.NewBlobStore(memoryExportBaseURL), nil, nil
	default:
		return nil, nil, fmt.Errorf("unknown export driver %q", cfg.Driver)
	}
}

// openEventPublisher returns the publisher, an optional pinger and a close
// function that is always safe to call.
func openEventPublisher(cfg config.EventsConfig, log *slog.Logger) (eventPublisher, rest.Pinger, func(), error) {
	switch cfg.Driver {
	case config.DriverRabbitMQ:
		pub, err := rabbitmq.NewPublisher(log, cfg.URL, cfg.Exchange)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("open event publisher: %w", err)
		}
		closeFn := func() {
			if err := pub.Close(); err != nil {
				log.Warn("close event publisher", slog.String("error", err.Error()))
			}
		}
		return pub, pub, closeFn, nil
	case config.DriverMemory, "":
		log.Debug("events kept in process", slog.Int("capacity", memoryEventCapacity))
		return memory.NewEventLog(memoryEventCapacity), nil, func() {}, nil
	default:
		return nil, nil, nil, fmt.Errorf("unknown events driver %q", cfg.Driver)
	}
}
