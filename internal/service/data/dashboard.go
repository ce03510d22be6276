package data

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Rkreels/powerbi-sub001/internal/domain"
)

// ListDashboards returns every dashboard in stored order.
func (s *Service) ListDashboards(ctx context.Context) ([]domain.Dashboard, error) {
	dashboards, err := s.dashboards.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list dashboards: %w", err)
	}
	return dashboards, nil
}

// GetDashboard returns one dashboard or domain.ErrNotFound.
func (s *Service) GetDashboard(ctx context.Context, id string) (*domain.Dashboard, error) {
	dashboard, found, err := s.dashboards.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get dashboard: %w", err)
	}
	if !found {
		return nil, notFound("dashboard", id)
	}
	return &dashboard, nil
}

// CreateDashboard appends a new dashboard. Report ids are stored as given;
// they are not checked against the report collection.
func (s *Service) CreateDashboard(ctx context.Context, input CreateDashboardInput) (*domain.Dashboard, error) {
	now := s.now()
	dashboard := domain.Dashboard{
		ID:          s.newID(),
		Name:        input.Name,
		Description: input.Description,
		Created:     now,
		Modified:    now,
		Owner:       input.Owner,
		Workspace:   input.Workspace,
		Reports:     orEmpty(input.Reports),
	}

	if err := s.dashboards.Insert(ctx, dashboard); err != nil {
		return nil, fmt.Errorf("create dashboard: %w", err)
	}

	s.log.InfoContext(ctx, "dashboard created",
		slog.String("dashboard_id", dashboard.ID),
		slog.Int("reports", len(dashboard.Reports)),
	)

	return &dashboard, nil
}

// UpdateDashboard merges the provided fields and re-stamps Modified.
func (s *Service) UpdateDashboard(ctx context.Context, id string, input UpdateDashboardInput) (*domain.Dashboard, error) {
	updated, found, err := s.dashboards.UpdateByID(ctx, id, func(d *domain.Dashboard) error {
		if input.Name != nil {
			d.Name = *input.Name
		}
		if input.Description != nil {
			d.Description = *input.Description
		}
		if input.Owner != nil {
			d.Owner = *input.Owner
		}
		if input.Workspace != nil {
			d.Workspace = *input.Workspace
		}
		if input.Reports != nil {
			d.Reports = orEmpty(*input.Reports)
		}
		d.Modified = s.now()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("update dashboard: %w", err)
	}
	if !found {
		return nil, notFound("dashboard", id)
	}

	s.log.InfoContext(ctx, "dashboard updated", slog.String("dashboard_id", id))

	return &updated, nil
}

// DeleteDashboard removes a dashboard and reports whether one was removed.
func (s *Service) DeleteDashboard(ctx context.Context, id string) (bool, error) {
	removed, err := s.dashboards.DeleteByID(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete dashboard: %w", err)
	}

	if removed {
		s.log.InfoContext(ctx, "dashboard deleted", slog.String("dashboard_id", id))
	}
	return removed, nil
}
