package services

import (
	"context"
	"sort"

	"github.com/doctorconsult/appcore/internal/domain/entities"
	"github.com/doctorconsult/appcore/internal/domain/providers"
)

// NotificationService fetches and orders the notification feed
type NotificationService struct {
	backend providers.ConsultBackend
}

// NewNotificationService creates a new notification service
func NewNotificationService(backend providers.ConsultBackend) *NotificationService {
	return &NotificationService{backend: backend}
}

// Feed returns the recipient's notifications ordered most-recent-first.
// The sort is stable, so items sharing a timestamp keep their server order.
// The read flag on each item drives display only.
func (s *NotificationService) Feed(ctx context.Context, recipient entities.RecipientType, recipientID int64, unreadOnly bool) ([]*entities.Notification, error) {
	items, err := s.backend.ListNotifications(ctx, recipient, recipientID, unreadOnly)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

// MarkRead flips one notification's read flag, backend first
func (s *NotificationService) MarkRead(ctx context.Context, notificationID int64) (*entities.Notification, error) {
	return s.backend.MarkNotificationRead(ctx, notificationID)
}

// UnreadCount counts the unread items in an already-fetched feed
func UnreadCount(items []*entities.Notification) int {
	count := 0
	for _, item := range items {
		if !item.Read {
			count++
		}
	}
	return count
}
