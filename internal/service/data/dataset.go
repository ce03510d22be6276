package data

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Rkreels/powerbi-sub001/internal/domain"
)

// ListDatasets returns every registered dataset in stored order.
func (s *Service) ListDatasets(ctx context.Context) ([]domain.Dataset, error) {
	datasets, err := s.datasets.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list datasets: %w", err)
	}
	return datasets, nil
}

// GetDataset returns one dataset or domain.ErrNotFound.
func (s *Service) GetDataset(ctx context.Context, id string) (*domain.Dataset, error) {
	dataset, found, err := s.datasets.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get dataset: %w", err)
	}
	if !found {
		return nil, notFound("dataset", id)
	}
	return &dataset, nil
}

// CreateDataset appends a new dataset. An empty status is stored as active.
func (s *Service) CreateDataset(ctx context.Context, input CreateDatasetInput) (*domain.Dataset, error) {
	status := input.Status
	if status == "" {
		status = domain.DatasetStatusActive
	}
	if !status.IsValid() {
		return nil, domain.NewValidationError("status", "must be active, inactive or refreshing")
	}

	now := s.now()
	dataset := domain.Dataset{
		ID:          s.newID(),
		Name:        input.Name,
		Description: input.Description,
		Source:      input.Source,
		Created:     now,
		Modified:    now,
		Owner:       input.Owner,
		Size:        input.Size,
		Status:      status,
	}

	if err := s.datasets.Insert(ctx, dataset); err != nil {
		return nil, fmt.Errorf("create dataset: %w", err)
	}

	s.log.InfoContext(ctx, "dataset created",
		slog.String("dataset_id", dataset.ID),
		slog.String("source", dataset.Source),
	)

	return &dataset, nil
}

// UpdateDataset merges the provided fields and re-stamps Modified.
func (s *Service) UpdateDataset(ctx context.Context, id string, input UpdateDatasetInput) (*domain.Dataset, error) {
	if input.Status != nil && !input.Status.IsValid() {
		return nil, domain.NewValidationError("status", "must be active, inactive or refreshing")
	}

	updated, found, err := s.datasets.UpdateByID(ctx, id, func(d *domain.Dataset) error {
		if input.Name != nil {
			d.Name = *input.Name
		}
		if input.Description != nil {
			d.Description = *input.Description
		}
		if input.Source != nil {
			d.Source = *input.Source
		}
		if input.Owner != nil {
			d.Owner = *input.Owner
		}
		if input.Size != nil {
			d.Size = *input.Size
		}
		if input.Status != nil {
			d.Status = *input.Status
		}
		d.Modified = s.now()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("update dataset: %w", err)
	}
	if !found {
		return nil, notFound("dataset", id)
	}

	s.log.InfoContext(ctx, "dataset updated", slog.String("dataset_id", id))

	return &updated, nil
}

// DeleteDataset removes a dataset and reports whether one was removed.
func (s *Service) DeleteDataset(ctx context.Context, id string) (bool, error) {
	removed, err := s.datasets.DeleteByID(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete dataset: %w", err)
	}

	if removed {
		s.log.InfoContext(ctx, "dataset deleted", slog.String("dataset_id", id))
	}
	return removed, nil
}
