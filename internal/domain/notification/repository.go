package notification

import "context"

type NotificationRepository interface {
	Create(ctx context.Context, n Notification) (Notification, error)
	ListRecent(ctx context.Context, limit int) ([]Notification, error)
}
