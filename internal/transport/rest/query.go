package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/Rkreels/powerbi-sub001/internal/domain"
)

type queryService interface {
	QueryData(ctx context.Context, datasetName string, filter domain.QueryFilter) ([]domain.Row, error)
	ListSampleDatasets(ctx context.Context) []domain.SampleDatasetInfo
	SummarizeData(ctx context.Context, datasetName string, filter domain.QueryFilter, field string) (*domain.Summary, error)
}

// QueryHandler serves the read-only sample corpus under /api/query.
type QueryHandler struct {
	svc queryService
	log *slog.Logger
}

// NewQueryHandler creates a QueryHandler.
func NewQueryHandler(svc queryService, logger *slog.Logger) *QueryHandler {
	return &QueryHandler{svc: svc, log: logger.With("handler", "query")}
}

type queryRequest struct {
	Dataset string             `json:"dataset"`
	Filters domain.QueryFilter `json:"filters"`
}

type summaryRequest struct {
	Dataset string             `json:"dataset"`
	Filters domain.QueryFilter `json:"filters"`
	Field   string             `json:"field"`
}

type queryResponse struct {
	Dataset string       `json:"dataset"`
	Count   int          `json:"count"`
	Rows    []domain.Row `json:"rows"`
}

// Datasets handles GET /api/query/datasets.
func (h *QueryHandler) Datasets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.ListSampleDatasets(r.Context()))
}

// Query handles POST /api/query. An unknown dataset yields an empty result.
func (h *QueryHandler) Query(w http.ResponseWriter, r *http.Request) {
	var req queryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rows, err := h.svc.QueryData(r.Context(), req.Dataset, req.Filters)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, queryResponse{Dataset: req.Dataset, Count: len(rows), Rows: rows})
}

// Summary handles POST /api/query/summary.
func (h *QueryHandler) Summary(w http.ResponseWriter, r *http.Request) {
	var req summaryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	summary, err := h.svc.SummarizeData(r.Context(), req.Dataset, req.Filters, req.Field)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
