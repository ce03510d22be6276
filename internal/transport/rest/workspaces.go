package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/Rkreels/powerbi-sub001/internal/domain"
	"github.com/Rkreels/powerbi-sub001/internal/service/data"
)

type workspaceService interface {
	ListWorkspaces(ctx context.Context) ([]domain.Workspace, error)
	GetWorkspace(ctx context.Context, id string) (*domain.Workspace, error)
	CreateWorkspace(ctx context.Context, input data.CreateWorkspaceInput) (*domain.Workspace, error)
	DeleteWorkspace(ctx context.Context, id string) (bool, error)
}

// WorkspaceHandler serves /api/workspaces. Workspaces have no update route.
type WorkspaceHandler struct {
	svc workspaceService
	log *slog.Logger
}

// NewWorkspaceHandler creates a WorkspaceHandler.
func NewWorkspaceHandler(svc workspaceService, logger *slog.Logger) *WorkspaceHandler {
	return &WorkspaceHandler{svc: svc, log: logger.With("handler", "workspaces")}
}

type createWorkspaceRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Members     int    `json:"members"`
	IsDefault   bool   `json:"isDefault"`
}

func (h *WorkspaceHandler) List(w http.ResponseWriter, r *http.Request) {
	workspaces, err := h.svc.ListWorkspaces(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, workspaces)
}

func (h *WorkspaceHandler) Get(w http.ResponseWriter, r *http.Request) {
	workspace, err := h.svc.GetWorkspace(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, workspace)
}

func (h *WorkspaceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createWorkspaceRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := data.CreateWorkspaceInput{
		Name:        req.Name,
		Description: req.Description,
		Members:     req.Members,
		IsDefault:   req.IsDefault,
	}
	if err := input.Validate(); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	workspace, err := h.svc.CreateWorkspace(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, workspace)
}

func (h *WorkspaceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	removed, err := h.svc.DeleteWorkspace(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeDeleted(w, removed)
}
