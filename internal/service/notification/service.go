package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/campuscore/ums-backend-go/internal/domain/notification"
	"github.com/campuscore/ums-backend-go/internal/domain/user"
	"github.com/campuscore/ums-backend-go/internal/pkg/metrics"
	"github.com/campuscore/ums-backend-go/internal/pkg/queue"
	"github.com/campuscore/ums-backend-go/internal/pkg/sse"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const messageTypeEvent = "notification_event"

// QueuePublisher is the producer side of the notification pipeline. Events
// are serialized onto the queue and handled by the consumer.
type QueuePublisher struct {
	queue queue.Queue
}

func NewQueuePublisher(q queue.Queue) notification.Publisher {
	return &QueuePublisher{queue: q}
}

// Publish implements notification.Publisher.
func (p *QueuePublisher) Publish(ctx context.Context, event notification.Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal notification event: %w", err)
	}
	if err := p.queue.Publish(ctx, queue.Message{Type: messageTypeEvent, Body: body}); err != nil {
		return fmt.Errorf("failed to enqueue notification event: %w", err)
	}
	metrics.NotificationsQueued.Inc()
	return nil
}

// QueueConsumer drains the queue, persists notifications and pushes them to
// connected SSE clients.
type QueueConsumer struct {
	queue            queue.Queue
	notificationRepo notification.NotificationRepository
	hub              *sse.Hub
}

func NewQueueConsumer(q queue.Queue, notificationRepo notification.NotificationRepository, hub *sse.Hub) notification.Consumer {
	return &QueueConsumer{
		queue:            q,
		notificationRepo: notificationRepo,
		hub:              hub,
	}
}

// Run implements notification.Consumer. It blocks until ctx is cancelled.
func (c *QueueConsumer) Run(ctx context.Context) error {
	messages, err := c.queue.Consume(ctx)
	if err != nil {
		return fmt.Errorf("failed to start queue consumer: %w", err)
	}

	slog.Info("Notification consumer started")
	for msg := range messages {
		if msg.Type != messageTypeEvent {
			continue
		}

		var event notification.Event
		if err := json.Unmarshal(msg.Body, &event); err != nil {
			slog.Error("Failed to decode notification event", "error", err)
			continue
		}

		if err := c.handleEvent(ctx, event); err != nil {
			slog.Error("Failed to handle notification event", "kind", event.Kind, "error", err)
		}
	}

	slog.Info("Notification consumer stopped")
	return nil
}

func (c *QueueConsumer) handleEvent(ctx context.Context, event notification.Event) error {
	now := time.Now()
	notifications := make([]notification.Notification, 0, len(event.UserIDs))
	for _, userID := range event.UserIDs {
		notifications = append(notifications, notification.Notification{
			ID:        uuid.New().String(),
			UserID:    userID,
			Kind:      event.Kind,
			Title:     event.Title,
			Body:      event.Body,
			CreatedAt: now,
		})
	}

	if err := c.notificationRepo.BulkCreate(ctx, notifications); err != nil {
		return fmt.Errorf("failed to persist notifications: %w", err)
	}

	if c.hub != nil {
		c.hub.PublishToMany(event.UserIDs, sse.Event{
			Event: "notification",
			Data: map[string]interface{}{
				"kind":  event.Kind,
				"title": event.Title,
				"body":  event.Body,
			},
		})
	}

	metrics.NotificationsDelivered.Add(float64(len(notifications)))
	return nil
}

// NotificationServiceImpl is the read side used by the HTTP layer.
type NotificationServiceImpl struct {
	notificationRepo notification.NotificationRepository
}

func NewNotificationService(notificationRepo notification.NotificationRepository) notification.NotificationService {
	return &NotificationServiceImpl{notificationRepo: notificationRepo}
}

// ListMine implements notification.NotificationService.
func (s *NotificationServiceImpl) ListMine(ctx context.Context, limit int) (notification.ListNotificationsResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return notification.ListNotificationsResponse{}, err
	}
	if limit < 1 || limit > 100 {
		limit = 50
	}

	notifications, err := s.notificationRepo.ListByUser(ctx, userID, limit)
	if err != nil {
		return notification.ListNotificationsResponse{}, fmt.Errorf("failed to list notifications: %w", err)
	}
	unread, err := s.notificationRepo.CountUnread(ctx, userID)
	if err != nil {
		return notification.ListNotificationsResponse{}, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	response := notification.ListNotificationsResponse{
		Notifications: make([]notification.NotificationResponse, 0, len(notifications)),
		UnreadCount:   unread,
	}
	for _, n := range notifications {
		response.Notifications = append(response.Notifications, notification.NotificationResponse{
			ID:        n.ID,
			Kind:      n.Kind,
			Title:     n.Title,
			Body:      n.Body,
			Read:      n.Read,
			CreatedAt: n.CreatedAt.Format(time.RFC3339),
		})
	}
	return response, nil
}

// MarkRead implements notification.NotificationService.
func (s *NotificationServiceImpl) MarkRead(ctx context.Context, id string) error {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return err
	}
	if err := s.notificationRepo.MarkRead(ctx, id, userID); err != nil {
		if err == pgx.ErrNoRows {
			return notification.ErrNotificationNotFound
		}
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return nil
}

// MarkAllRead implements notification.NotificationService.
func (s *NotificationServiceImpl) MarkAllRead(ctx context.Context) error {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return err
	}
	if err := s.notificationRepo.MarkAllRead(ctx, userID); err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return nil
}

func userIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", user.ErrUserNotFound
	}
	return userID, nil
}
