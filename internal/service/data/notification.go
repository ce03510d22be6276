package data

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Rkreels/powerbi-sub001/internal/domain"
)

// ListNotifications returns notifications newest first.
func (s *Service) ListNotifications(ctx context.Context) ([]domain.Notification, error) {
	notifications, err := s.notifications.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return notifications, nil
}

// CreateNotification inserts an unread notification at the head of the list.
// An empty type is stored as info.
func (s *Service) CreateNotification(ctx context.Context, input CreateNotificationInput) (*domain.Notification, error) {
	typ := input.Type
	if typ == "" {
		typ = domain.NotificationTypeInfo
	}
	if !typ.IsValid() {
		return nil, domain.NewValidationError("type", "must be info, warning, error or success")
	}

	notification := domain.Notification{
		ID:      s.newID(),
		Title:   input.Title,
		Message: input.Message,
		Type:    typ,
		Created: s.now(),
		Read:    false,
	}

	if err := s.notifications.InsertFirst(ctx, notification); err != nil {
		return nil, fmt.Errorf("create notification: %w", err)
	}

	s.log.InfoContext(ctx, "notification created",
		slog.String("notification_id", notification.ID),
		slog.String("type", string(notification.Type)),
	)

	return &notification, nil
}

// MarkAsRead sets read = true and reports whether the notification exists.
// Marking an already read notification again still returns true.
func (s *Service) MarkAsRead(ctx context.Context, id string) (bool, error) {
	_, found, err := s.notifications.UpdateByID(ctx, id, func(n *domain.Notification) error {
		n.Read = true
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("mark notification read: %w", err)
	}
	return found, nil
}

// MarkAllAsRead marks every unread notification read and returns how many changed.
func (s *Service) MarkAllAsRead(ctx context.Context) (int, error) {
	n, err := s.notifications.UpdateWhere(ctx, func(n *domain.Notification) bool {
		if n.Read {
			return false
		}
		n.Read = true
		return true
	})
	if err != nil {
		return 0, fmt.Errorf("mark all notifications read: %w", err)
	}

	if n > 0 {
		s.log.InfoContext(ctx, "notifications marked read", slog.Int("count", n))
	}
	return n, nil
}

// UnreadCount counts unread notifications. It scans the collection on every call.
func (s *Service) UnreadCount(ctx context.Context) (int, error) {
	n, err := s.notifications.Count(ctx, func(n domain.Notification) bool { return !n.Read })
	if err != nil {
		return 0, fmt.Errorf("count unread notifications: %w", err)
	}
	return n, nil
}

// PurgeReadNotifications deletes read notifications created before olderThan
// and returns how many were removed. Unread notifications are kept regardless of age.
func (s *Service) PurgeReadNotifications(ctx context.Context, olderThan time.Time) (int, error) {
	n, err := s.notifications.DeleteWhere(ctx, func(n domain.Notification) bool {
		return n.Read && n.Created.Before(olderThan)
	})
	if err != nil {
		return 0, fmt.Errorf("purge read notifications: %w", err)
	}

	s.log.InfoContext(ctx, "read notifications purged",
		slog.Int("count", n),
		slog.Time("older_than", olderThan),
	)
	return n, nil
}
