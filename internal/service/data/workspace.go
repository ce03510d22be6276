package data

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Rkreels/powerbi-sub001/internal/domain"
)

// ListWorkspaces returns every workspace in stored order.
func (s *Service) ListWorkspaces(ctx context.Context) ([]domain.Workspace, error) {
	workspaces, err := s.workspaces.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list workspaces: %w", err)
	}
	return workspaces, nil
}

// GetWorkspace returns one workspace or domain.ErrNotFound.
func (s *Service) GetWorkspace(ctx context.Context, id string) (*domain.Workspace, error) {
	workspace, found, err := s.workspaces.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get workspace: %w", err)
	}
	if !found {
		return nil, notFound("workspace", id)
	}
	return &workspace, nil
}

// CreateWorkspace appends a new workspace. Workspaces have no update operation.
func (s *Service) CreateWorkspace(ctx context.Context, input CreateWorkspaceInput) (*domain.Workspace, error) {
	workspace := domain.Workspace{
		ID:          s.newID(),
		Name:        input.Name,
		Description: input.Description,
		Created:     s.now(),
		Members:     input.Members,
		IsDefault:   input.IsDefault,
	}

	if err := s.workspaces.Insert(ctx, workspace); err != nil {
		return nil, fmt.Errorf("create workspace: %w", err)
	}

	s.log.InfoContext(ctx, "workspace created",
		slog.String("workspace_id", workspace.ID),
		slog.Int("members", workspace.Members),
	)

	return &workspace, nil
}

// DeleteWorkspace removes a workspace and reports whether one was removed.
// Reports and dashboards naming it are left as they are.
func (s *Service) DeleteWorkspace(ctx context.Context, id string) (bool, error) {
	removed, err := s.workspaces.DeleteByID(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete workspace: %w", err)
	}

	if removed {
		s.log.InfoContext(ctx, "workspace deleted", slog.String("workspace_id", id))
	}
	return removed, nil
}
