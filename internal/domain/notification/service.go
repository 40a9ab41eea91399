package notification

import "context"

// Service relays events: persisted for later listing, broadcast to any live
// stream subscribers. Publish failures never fail the caller's operation.
type Service interface {
	Publish(ctx context.Context, typ Type, title, message string)
	ListRecent(ctx context.Context, limit int) ([]Notification, error)
}
