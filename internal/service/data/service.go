package data

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Rkreels/powerbi-sub001/internal/domain"
)

// repo is the persistence contract for one entity collection.
type repo[T any] interface {
	ListAll(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id string) (T, bool, error)
	Count(ctx context.Context, pred func(T) bool) (int, error)
	Insert(ctx context.Context, rec T) error
	InsertFirst(ctx context.Context, rec T) error
	InsertIfEmpty(ctx context.Context, recs []T) (int, error)
	UpdateByID(ctx context.Context, id string, mutate func(*T) error) (T, bool, error)
	UpdateWhere(ctx context.Context, mutate func(*T) bool) (int, error)
	DeleteByID(ctx context.Context, id string) (bool, error)
	DeleteWhere(ctx context.Context, pred func(T) bool) (int, error)
}

// Repositories bundles the five collections the service owns.
type Repositories struct {
	Reports       repo[domain.Report]
	Dashboards    repo[domain.Dashboard]
	Datasets      repo[domain.Dataset]
	Workspaces    repo[domain.Workspace]
	Notifications repo[domain.Notification]
}

// Service is the single authority over the entity collections, the sample
// corpus and demo seeding.
type Service struct {
	reports       repo[domain.Report]
	dashboards    repo[domain.Dashboard]
	datasets      repo[domain.Dataset]
	workspaces    repo[domain.Workspace]
	notifications repo[domain.Notification]
	corpus        []sampleDataset
	log           *slog.Logger

	now   func() time.Time
	newID func() string
}

// NewService creates a new data service.
func NewService(log *slog.Logger, repos Repositories) *Service {
	return &Service{
		reports:       repos.Reports,
		dashboards:    repos.Dashboards,
		datasets:      repos.Datasets,
		workspaces:    repos.Workspaces,
		notifications: repos.Notifications,
		corpus:        sampleCorpus(),
		log:           log.With("service", "data"),
		now:           func() time.Time { return time.Now().UTC() },
		newID:         newID,
	}
}

// newID returns a time-ordered UUIDv7, falling back to v4 if the clock read fails.
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

func notFound(entity, id string) error {
	return &domain.NotFoundError{Entity: entity, ID: id}
}

// orEmpty turns a nil slice into an empty one so it serializes as [].
func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
