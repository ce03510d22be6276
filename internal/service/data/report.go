package data

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Rkreels/powerbi-sub001/internal/domain"
)

// ListReports returns every report in stored order.
func (s *Service) ListReports(ctx context.Context) ([]domain.Report, error) {
	reports, err := s.reports.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	return reports, nil
}

// GetReport returns one report or domain.ErrNotFound.
func (s *Service) GetReport(ctx context.Context, id string) (*domain.Report, error) {
	report, found, err := s.reports.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get report: %w", err)
	}
	if !found {
		return nil, notFound("report", id)
	}
	return &report, nil
}

// CreateReport stamps identity and timestamps on a new report and appends it.
// Field presence is the caller's responsibility; malformed visualizations are rejected.
func (s *Service) CreateReport(ctx context.Context, input CreateReportInput) (*domain.Report, error) {
	if err := domain.ValidateVisualizations(input.Visualizations); err != nil {
		return nil, err
	}

	now := s.now()
	report := domain.Report{
		ID:             s.newID(),
		Name:           input.Name,
		Description:    input.Description,
		Created:        now,
		Modified:       now,
		Owner:          input.Owner,
		Workspace:      input.Workspace,
		IsPublished:    input.IsPublished,
		Visualizations: orEmpty(input.Visualizations),
	}

	if err := s.reports.Insert(ctx, report); err != nil {
		return nil, fmt.Errorf("create report: %w", err)
	}

	s.log.InfoContext(ctx, "report created",
		slog.String("report_id", report.ID),
		slog.String("name", report.Name),
	)

	return &report, nil
}

// UpdateReport merges the provided fields over an existing report and
// re-stamps Modified. A missing id returns domain.ErrNotFound and writes nothing.
func (s *Service) UpdateReport(ctx context.Context, id string, input UpdateReportInput) (*domain.Report, error) {
	if input.Visualizations != nil {
		if err := domain.ValidateVisualizations(*input.Visualizations); err != nil {
			return nil, err
		}
	}

	updated, found, err := s.reports.UpdateByID(ctx, id, func(r *domain.Report) error {
		if input.Name != nil {
			r.Name = *input.Name
		}
		if input.Description != nil {
			r.Description = *input.Description
		}
		if input.Owner != nil {
			r.Owner = *input.Owner
		}
		if input.Workspace != nil {
			r.Workspace = *input.Workspace
		}
		if input.IsPublished != nil {
			r.IsPublished = *input.IsPublished
		}
		if input.Visualizations != nil {
			r.Visualizations = orEmpty(*input.Visualizations)
		}
		r.Modified = s.now()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("update report: %w", err)
	}
	if !found {
		return nil, notFound("report", id)
	}

	s.log.InfoContext(ctx, "report updated", slog.String("report_id", id))

	return &updated, nil
}

// DeleteReport removes a report and reports whether one was removed.
// Dashboards referencing it are left as they are.
func (s *Service) DeleteReport(ctx context.Context, id string) (bool, error) {
	removed, err := s.reports.DeleteByID(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete report: %w", err)
	}

	if removed {
		s.log.InfoContext(ctx, "report deleted", slog.String("report_id", id))
	}
	return removed, nil
}
