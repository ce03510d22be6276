package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Rkreels/powerbi-sub001/internal/domain"
	"github.com/Rkreels/powerbi-sub001/pkg/ctxutil"
)

const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error  string               `json:"error"`
	Fields []fieldErrorResponse `json:"fields,omitempty"`
}

type fieldErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// decodeJSON reads a single JSON object from the request body. An empty body
// decodes to the zero value.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode body: %w", err)
	}
	return nil
}

// handleError maps service errors onto HTTP statuses. Unknown errors are
// logged and hidden behind a generic 500.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		resp := errorResponse{Error: ve.Error()}
		for _, fe := range ve.Errors {
			resp.Fields = append(resp.Fields, fieldErrorResponse{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusBadRequest, resp)
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "already exists")
	case errors.Is(err, context.Canceled):
		log.WarnContext(r.Context(), "request cancelled", slog.String("path", r.URL.Path))
		writeError(w, http.StatusServiceUnavailable, "request cancelled")
	default:
		log.ErrorContext(r.Context(), "internal error",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// ownerOrCaller returns owner, or the authenticated user's name when owner
// is blank.
func ownerOrCaller(ctx context.Context, owner string) string {
	if strings.TrimSpace(owner) != "" {
		return owner
	}
	name, _ := ctxutil.UserNameFromCtx(ctx)
	return name
}

func writeDeleted(w http.ResponseWriter, removed bool) {
	if !removed {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
