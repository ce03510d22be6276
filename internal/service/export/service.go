package export

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Rkreels/powerbi-sub001/internal/domain"
	"github.com/Rkreels/powerbi-sub001/internal/service/data"
)

type reportReader interface {
	GetReport(ctx context.Context, id string) (*domain.Report, error)
}

type dataQuerier interface {
	QueryData(ctx context.Context, datasetName string, filter domain.QueryFilter) ([]domain.Row, error)
}

type notifier interface {
	CreateNotification(ctx context.Context, input data.CreateNotificationInput) (*domain.Notification, error)
}

type blobStore interface {
	Put(ctx context.Context, key, contentType string, data []byte) (string, error)
}

type eventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
}

// RoutingKeyReportExported is the event published after a successful export.
const RoutingKeyReportExported = "report.exported"

// Service renders report data to files and stores them.
type Service struct {
	reports  reportReader
	query    dataQuerier
	notifier notifier
	blobs    blobStore
	events   eventPublisher
	log      *slog.Logger

	now   func() time.Time
	newID func() string
}

// NewService creates a new export service.
func NewService(
	log *slog.Logger,
	reports reportReader,
	query dataQuerier,
	notifier notifier,
	blobs blobStore,
	events eventPublisher,
) *Service {
	return &Service{
		reports:  reports,
		query:    query,
		notifier: notifier,
		blobs:    blobs,
		events:   events,
		log:      log.With("service", "export"),
		now:      func() time.Time { return time.Now().UTC() },
		newID:    uuid.NewString,
	}
}
