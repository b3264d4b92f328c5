package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/doctorconsult/appcore/internal/application/services"
	"github.com/doctorconsult/appcore/internal/domain/entities"
	apperrors "github.com/doctorconsult/appcore/pkg/errors"
)

func TestFeed_OrdersMostRecentFirst(t *testing.T) {
	backend := new(MockConsultBackend)
	service := services.NewNotificationService(backend)

	base := time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC)
	t2 := base
	t1 := base.Add(1 * time.Hour)
	t3 := base.Add(2 * time.Hour)

	// Server order is arbitrary: the oldest item arrives first
	backend.On("ListNotifications", mock.Anything, entities.RecipientUser, int64(42), false).
		Return([]*entities.Notification{
			{ID: 2, Message: "approved", CreatedAt: t2},
			{ID: 1, Message: "booked", CreatedAt: t1},
			{ID: 3, Message: "reminder", CreatedAt: t3},
		}, nil)

	items, err := service.Feed(context.Background(), entities.RecipientUser, 42, false)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, []int64{3, 1, 2}, []int64{items[0].ID, items[1].ID, items[2].ID})
}

func TestFeed_EqualTimestampsKeepServerOrder(t *testing.T) {
	backend := new(MockConsultBackend)
	service := services.NewNotificationService(backend)

	at := time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC)
	backend.On("ListNotifications", mock.Anything, entities.RecipientUser, int64(42), false).
		Return([]*entities.Notification{
			{ID: 5, CreatedAt: at},
			{ID: 6, CreatedAt: at},
			{ID: 7, CreatedAt: at},
		}, nil)

	items, err := service.Feed(context.Background(), entities.RecipientUser, 42, false)
	require.NoError(t, err)
	assert.Equal(t, []int64{5, 6, 7}, []int64{items[0].ID, items[1].ID, items[2].ID})
}

func TestFeed_UnreadOnlyPassesThrough(t *testing.T) {
	backend := new(MockConsultBackend)
	service := services.NewNotificationService(backend)

	backend.On("ListNotifications", mock.Anything, entities.RecipientDoctor, int64(3), true).
		Return([]*entities.Notification{}, nil)

	items, err := service.Feed(context.Background(), entities.RecipientDoctor, 3, true)
	require.NoError(t, err)
	assert.Empty(t, items)
	backend.AssertExpectations(t)
}

func TestFeed_FetchFailure(t *testing.T) {
	backend := new(MockConsultBackend)
	service := services.NewNotificationService(backend)

	backend.On("ListNotifications", mock.Anything, entities.RecipientUser, int64(42), false).
		Return(nil, apperrors.NewFetchFailedError("failed to fetch notifications", errors.New("timeout")))

	_, err := service.Feed(context.Background(), entities.RecipientUser, 42, false)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeFetchFailed))
}

func TestMarkRead(t *testing.T) {
	backend := new(MockConsultBackend)
	service := services.NewNotificationService(backend)

	backend.On("MarkNotificationRead", mock.Anything, int64(9)).
		Return(&entities.Notification{ID: 9, Read: true}, nil)

	item, err := service.MarkRead(context.Background(), 9)
	require.NoError(t, err)
	assert.True(t, item.Read)
}

func TestUnreadCount(t *testing.T) {
	items := []*entities.Notification{
		{ID: 1, Read: true},
		{ID: 2},
		{ID: 3},
	}
	assert.Equal(t, 2, services.UnreadCount(items))
	assert.Equal(t, 0, services.UnreadCount(nil))
}
