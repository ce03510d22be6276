package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/Rkreels/powerbi-sub001/internal/domain"
	"github.com/Rkreels/powerbi-sub001/internal/service/data"
)

type notificationService interface {
	ListNotifications(ctx context.Context) ([]domain.Notification, error)
	CreateNotification(ctx context.Context, input data.CreateNotificationInput) (*domain.Notification, error)
	MarkAsRead(ctx context.Context, id string) (bool, error)
	MarkAllAsRead(ctx context.Context) (int, error)
	UnreadCount(ctx context.Context) (int, error)
}

// NotificationHandler serves /api/notifications.
type NotificationHandler struct {
	svc notificationService
	log *slog.Logger
}

// NewNotificationHandler creates a NotificationHandler.
func NewNotificationHandler(svc notificationService, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{svc: svc, log: logger.With("handler", "notifications")}
}

type createNotificationRequest struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

type countResponse struct {
	Count int `json:"count"`
}

type updatedResponse struct {
	Updated int `json:"updated"`
}

// List returns notifications newest first.
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	notifications, err := h.svc.ListNotifications(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, notifications)
}

func (h *NotificationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createNotificationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := data.CreateNotificationInput{
		Title:   req.Title,
		Message: req.Message,
		Type:    domain.NotificationType(req.Type),
	}
	if err := input.Validate(); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	notification, err := h.svc.CreateNotification(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, notification)
}

// MarkAsRead handles POST /api/notifications/{id}/read.
func (h *NotificationHandler) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	found, err := h.svc.MarkAsRead(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// MarkAllAsRead handles POST /api/notifications/read-all.
func (h *NotificationHandler) MarkAllAsRead(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.MarkAllAsRead(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updatedResponse{Updated: n})
}

// UnreadCount handles GET /api/notifications/unread-count.
func (h *NotificationHandler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.UnreadCount(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, countResponse{Count: n})
}
