package notification

import "context"

// Publisher is the producer side: services enqueue events without waiting
// for persistence or delivery.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// NotificationService is the read side used by the HTTP layer.
type NotificationService interface {
	ListMine(ctx context.Context, limit int) (ListNotificationsResponse, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context) error
}

// Consumer drains the queue: persists notifications and pushes them to
// connected clients. Run by the worker process.
type Consumer interface {
	Run(ctx context.Context) error
}
