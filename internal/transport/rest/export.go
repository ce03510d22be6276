package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/Rkreels/powerbi-sub001/internal/domain"
	"github.com/Rkreels/powerbi-sub001/internal/service/export"
)

type exportService interface {
	Export(ctx context.Context, input export.ExportInput) (*domain.ExportResult, error)
}

// ExportHandler serves POST /api/reports/{id}/export.
type ExportHandler struct {
	svc exportService
	log *slog.Logger
}

// NewExportHandler creates an ExportHandler.
func NewExportHandler(svc exportService, logger *slog.Logger) *ExportHandler {
	return &ExportHandler{svc: svc, log: logger.With("handler", "export")}
}

type exportRequest struct {
	Format string `json:"format"`
}

// Export renders the report and stores the artifact. Format defaults to csv.
func (h *ExportHandler) Export(w http.ResponseWriter, r *http.Request) {
	var req exportRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	format := domain.ExportFormatCSV
	if req.Format != "" {
		format = domain.ExportFormat(req.Format)
	}

	result, err := h.svc.Export(r.Context(), export.ExportInput{
		ReportID: r.PathValue("id"),
		Format:   format,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, result)
}
