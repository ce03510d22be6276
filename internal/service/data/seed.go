package data

import (
	"context"
	"fmt"
	"log/slog"
)

// SeedResult reports how many demo records were inserted per collection.
type SeedResult struct {
	Reports       int `json:"reports"`
	Dashboards    int `json:"dashboards"`
	Datasets      int `json:"datasets"`
	Workspaces    int `json:"workspaces"`
	Notifications int `json:"notifications"`
}

// Total returns the number of inserted records.
func (r SeedResult) Total() int {
	return r.Reports + r.Dashboards + r.Datasets + r.Workspaces + r.Notifications
}

// InitializeSampleData fills every empty collection with demo records.
// Each collection is checked on its own, so repeated calls are no-ops once
// a collection holds at least one record.
func (s *Service) InitializeSampleData(ctx context.Context) (SeedResult, error) {
	var (
		res SeedResult
		err error
	)

	if res.Reports, err = s.reports.InsertIfEmpty(ctx, seedReports()); err != nil {
		return res, fmt.Errorf("seed reports: %w", err)
	}
	if res.Dashboards, err = s.dashboards.InsertIfEmpty(ctx, seedDashboards()); err != nil {
		return res, fmt.Errorf("seed dashboards: %w", err)
	}
	if res.Datasets, err = s.datasets.InsertIfEmpty(ctx, seedDatasets()); err != nil {
		return res, fmt.Errorf("seed datasets: %w", err)
	}
	if res.Workspaces, err = s.workspaces.InsertIfEmpty(ctx, seedWorkspaces()); err != nil {
		return res, fmt.Errorf("seed workspaces: %w", err)
	}
	if res.Notifications, err = s.notifications.InsertIfEmpty(ctx, seedNotifications()); err != nil {
		return res, fmt.Errorf("seed notifications: %w", err)
	}

	s.log.InfoContext(ctx, "sample data initialized",
		slog.Int("reports", res.Reports),
		slog.Int("dashboards", res.Dashboards),
		slog.Int("datasets", res.Datasets),
		slog.Int("workspaces", res.Workspaces),
		slog.Int("notifications", res.Notifications),
	)

	return res, nil
}
