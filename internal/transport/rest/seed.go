package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/Rkreels/powerbi-sub001/internal/service/data"
)

type seedService interface {
	InitializeSampleData(ctx context.Context) (data.SeedResult, error)
}

// SeedHandler serves POST /api/seed.
type SeedHandler struct {
	svc seedService
	log *slog.Logger
}

// NewSeedHandler creates a SeedHandler.
func NewSeedHandler(svc seedService, logger *slog.Logger) *SeedHandler {
	return &SeedHandler{svc: svc, log: logger.With("handler", "seed")}
}

// Seed fills empty collections with demo data. Repeated calls insert nothing.
func (h *SeedHandler) Seed(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.InitializeSampleData(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
