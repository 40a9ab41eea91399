package notification

import (
	"context"
	"log/slog"

	"github.com/medishift/clinic-backend-go/internal/domain/notification"
	"github.com/medishift/clinic-backend-go/internal/pkg/sse"
)

type NotificationServiceImpl struct {
	repo notification.NotificationRepository
	hub  *sse.Hub
}

func NewNotificationService(repo notification.NotificationRepository, hub *sse.Hub) notification.Service {
	return &NotificationServiceImpl{repo: repo, hub: hub}
}

// Publish persists the notification and broadcasts it to live streams. It
// never returns an error: losing a notification must not fail the operation
// that produced it.
func (s *NotificationServiceImpl) Publish(ctx context.Context, typ notification.Type, title, message string) {
	created, err := s.repo.Create(ctx, notification.Notification{
		Type:    typ,
		Title:   title,
		Message: message,
	})
	if err != nil {
		slog.Error("Failed to persist notification", "type", typ, "error", err)
		created = notification.Notification{Type: typ, Title: title, Message: message}
	}

	if s.hub != nil {
		s.hub.Broadcast(sse.Event{Event: string(typ), Data: created})
	}
}

func (s *NotificationServiceImpl) ListRecent(ctx context.Context, limit int) ([]notification.Notification, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.repo.ListRecent(ctx, limit)
}
