package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/Rkreels/powerbi-sub001/internal/domain"
	"github.com/Rkreels/powerbi-sub001/internal/service/data"
)

type reportService interface {
	ListReports(ctx context.Context) ([]domain.Report, error)
	GetReport(ctx context.Context, id string) (*domain.Report, error)
	CreateReport(ctx context.Context, input data.CreateReportInput) (*domain.Report, error)
	UpdateReport(ctx context.Context, id string, input data.UpdateReportInput) (*domain.Report, error)
	DeleteReport(ctx context.Context, id string) (bool, error)
}

// ReportHandler serves /api/reports.
type ReportHandler struct {
	svc reportService
	log *slog.Logger
}

// NewReportHandler creates a ReportHandler.
func NewReportHandler(svc reportService, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{svc: svc, log: logger.With("handler", "reports")}
}

type createReportRequest struct {
	Name           string                 `json:"name"`
	Description    string                 `json:"description"`
	Owner          string                 `json:"owner"`
	Workspace      string                 `json:"workspace"`
	IsPublished    bool                   `json:"isPublished"`
	Visualizations []domain.Visualization `json:"visualizations"`
}

type updateReportRequest struct {
	Name           *string                 `json:"name"`
	Description    *string                 `json:"description"`
	Owner          *string                 `json:"owner"`
	Workspace      *string                 `json:"workspace"`
	IsPublished    *bool                   `json:"isPublished"`
	Visualizations *[]domain.Visualization `json:"visualizations"`
}

// List handles GET /api/reports.
func (h *ReportHandler) List(w http.ResponseWriter, r *http.Request) {
	reports, err := h.svc.ListReports(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, reports)
}

// Get handles GET /api/reports/{id}.
func (h *ReportHandler) Get(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.GetReport(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// Create handles POST /api/reports.
func (h *ReportHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createReportRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := data.CreateReportInput{
		Name:           req.Name,
		Description:    req.Description,
		Owner:          ownerOrCaller(r.Context(), req.Owner),
		Workspace:      req.Workspace,
		IsPublished:    req.IsPublished,
		Visualizations: req.Visualizations,
	}
	if err := input.Validate(); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	report, err := h.svc.CreateReport(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, report)
}

// Update handles PATCH /api/reports/{id}.
func (h *ReportHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateReportRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := data.UpdateReportInput{
		Name:           req.Name,
		Description:    req.Description,
		Owner:          req.Owner,
		Workspace:      req.Workspace,
		IsPublished:    req.IsPublished,
		Visualizations: req.Visualizations,
	}
	if err := input.Validate(); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	report, err := h.svc.UpdateReport(r.Context(), r.PathValue("id"), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// Delete handles DELETE /api/reports/{id}.
func (h *ReportHandler) Delete(w http.ResponseWriter, r *http.Request) {
	removed, err := h.svc.DeleteReport(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeDeleted(w, removed)
}
