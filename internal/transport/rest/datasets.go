package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/Rkreels/powerbi-sub001/internal/domain"
	"github.com/Rkreels/powerbi-sub001/internal/service/data"
)

type datasetService interface {
	ListDatasets(ctx context.Context) ([]domain.Dataset, error)
	GetDataset(ctx context.Context, id string) (*domain.Dataset, error)
	CreateDataset(ctx context.Context, input data.CreateDatasetInput) (*domain.Dataset, error)
	UpdateDataset(ctx context.Context, id string, input data.UpdateDatasetInput) (*domain.Dataset, error)
	DeleteDataset(ctx context.Context, id string) (bool, error)
}

// DatasetHandler serves /api/datasets, the registered data sources. The
// queryable sample corpus lives under /api/query.
type DatasetHandler struct {
	svc datasetService
	log *slog.Logger
}

// NewDatasetHandler creates a DatasetHandler.
func NewDatasetHandler(svc datasetService, logger *slog.Logger) *DatasetHandler {
	return &DatasetHandler{svc: svc, log: logger.With("handler", "datasets")}
}

type createDatasetRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Source      string `json:"source"`
	Owner       string `json:"owner"`
	Size        string `json:"size"`
	Status      string `json:"status"`
}

type updateDatasetRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Source      *string `json:"source"`
	Owner       *string `json:"owner"`
	Size        *string `json:"size"`
	Status      *string `json:"status"`
}

func (h *DatasetHandler) List(w http.ResponseWriter, r *http.Request) {
	datasets, err := h.svc.ListDatasets(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, datasets)
}

func (h *DatasetHandler) Get(w http.ResponseWriter, r *http.Request) {
	dataset, err := h.svc.GetDataset(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dataset)
}

func (h *DatasetHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createDatasetRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := data.CreateDatasetInput{
		Name:        req.Name,
		Description: req.Description,
		Source:      req.Source,
		Owner:       ownerOrCaller(r.Context(), req.Owner),
		Size:        req.Size,
		Status:      domain.DatasetStatus(req.Status),
	}
	if err := input.Validate(); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	dataset, err := h.svc.CreateDataset(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, dataset)
}

func (h *DatasetHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateDatasetRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := data.UpdateDatasetInput{
		Name:        req.Name,
		Description: req.Description,
		Source:      req.Source,
		Owner:       req.Owner,
		Size:        req.Size,
	}
	if req.Status != nil {
		status := domain.DatasetStatus(*req.Status)
		input.Status = &status
	}
	if err := input.Validate(); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	dataset, err := h.svc.UpdateDataset(r.Context(), r.PathValue("id"), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dataset)
}

func (h *DatasetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	removed, err := h.svc.DeleteDataset(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeDeleted(w, removed)
}
