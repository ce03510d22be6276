package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/Rkreels/powerbi-sub001/internal/domain"
	"github.com/Rkreels/powerbi-sub001/internal/service/data"
)

type dashboardService interface {
	ListDashboards(ctx context.Context) ([]domain.Dashboard, error)
	GetDashboard(ctx context.Context, id string) (*domain.Dashboard, error)
	CreateDashboard(ctx context.Context, input data.CreateDashboardInput) (*domain.Dashboard, error)
	UpdateDashboard(ctx context.Context, id string, input data.UpdateDashboardInput) (*domain.Dashboard, error)
	DeleteDashboard(ctx context.Context, id string) (bool, error)
}

// DashboardHandler serves /api/dashboards.
type DashboardHandler struct {
	svc dashboardService
	log *slog.Logger
}

// NewDashboardHandler creates a DashboardHandler.
func NewDashboardHandler(svc dashboardService, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{svc: svc, log: logger.With("handler", "dashboards")}
}

type createDashboardRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Owner       string   `json:"owner"`
	Workspace   string   `json:"workspace"`
	Reports     []string `json:"reports"`
}

type updateDashboardRequest struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Owner       *string   `json:"owner"`
	Workspace   *string   `json:"workspace"`
	Reports     *[]string `json:"reports"`
}

func (h *DashboardHandler) List(w http.ResponseWriter, r *http.Request) {
	dashboards, err := h.svc.ListDashboards(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dashboards)
}

func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.svc.GetDashboard(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dashboard)
}

func (h *DashboardHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createDashboardRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := data.CreateDashboardInput{
		Name:        req.Name,
		Description: req.Description,
		Owner:       ownerOrCaller(r.Context(), req.Owner),
		Workspace:   req.Workspace,
		Reports:     req.Reports,
	}
	if err := input.Validate(); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	dashboard, err := h.svc.CreateDashboard(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, dashboard)
}

func (h *DashboardHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateDashboardRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := data.UpdateDashboardInput{
		Name:        req.Name,
		Description: req.Description,
		Owner:       req.Owner,
		Workspace:   req.Workspace,
		Reports:     req.Reports,
	}
	if err := input.Validate(); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	dashboard, err := h.svc.UpdateDashboard(r.Context(), r.PathValue("id"), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dashboard)
}

func (h *DashboardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	removed, err := h.svc.DeleteDashboard(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeDeleted(w, removed)
}
