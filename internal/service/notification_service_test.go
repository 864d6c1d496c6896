package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"lavajato/internal/errors"
	"lavajato/internal/model"
)

func newNotificationService(repo *MockNotificationRepository) NotificationService {
	// nil cache degrades to a no-op, exercising the uncached path
	return NewNotificationService(repo, nil, testLogger())
}

func TestNotificationService_CreateNotification(t *testing.T) {
	t.Run("persists the notification", func(t *testing.T) {
		repo := new(MockNotificationRepository)
		repo.On("Create", mock.Anything, mock.AnythingOfType("*model.Notification")).Return(nil)

		svc := newNotificationService(repo)
		err := svc.CreateNotification(context.Background(), &model.Notification{
			UserID:  10,
			Title:   "Agendamento Criado",
			Message: "mensagem",
			Type:    model.NotificationTypeAppointment,
		})

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("surfaces a failed write", func(t *testing.T) {
		repo := new(MockNotificationRepository)
		repo.On("Create", mock.Anything, mock.AnythingOfType("*model.Notification")).Return(gorm.ErrInvalidDB)

		svc := newNotificationService(repo)
		err := svc.CreateNotification(context.Background(), &model.Notification{UserID: 10})

		assert.ErrorIs(t, err, gorm.ErrInvalidDB)
	})
}

func TestNotificationService_UnreadCount(t *testing.T) {
	t.Run("returns the unread count from storage", func(t *testing.T) {
		repo := new(MockNotificationRepository)
		repo.On("CountUnread", mock.Anything, uint(10)).Return(int64(3), nil)

		svc := newNotificationService(repo)
		count, err := svc.UnreadCount(context.Background(), 10)

		assert.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})

	t.Run("degrades to zero when storage is unavailable", func(t *testing.T) {
		repo := new(MockNotificationRepository)
		repo.On("CountUnread", mock.Anything, uint(10)).Return(int64(0), gorm.ErrInvalidDB)

		svc := newNotificationService(repo)
		count, err := svc.UnreadCount(context.Background(), 10)

		assert.NoError(t, err)
		assert.Zero(t, count)
	})
}

func TestNotificationService_MarkAsRead(t *testing.T) {
	t.Run("marks a notification from the caller's own set", func(t *testing.T) {
		repo := new(MockNotificationRepository)
		repo.On("ListByUser", mock.Anything, uint(10)).Return([]model.Notification{
			{ID: 1, UserID: 10},
			{ID: 2, UserID: 10, IsRead: true},
		}, nil)
		repo.On("MarkAsRead", mock.Anything, uint(1)).Return(nil)

		svc := newNotificationService(repo)
		assert.NoError(t, svc.MarkAsRead(context.Background(), 1, 10))
		repo.AssertExpectations(t)
	})

	t.Run("a notification outside the set is simply not found", func(t *testing.T) {
		// id 5 exists but belongs to someone else; the membership scan never sees it
		repo := new(MockNotificationRepository)
		repo.On("ListByUser", mock.Anything, uint(10)).Return([]model.Notification{
			{ID: 1, UserID: 10},
		}, nil)

		svc := newNotificationService(repo)
		err := svc.MarkAsRead(context.Background(), 5, 10)

		assert.Equal(t, errors.ErrNotificationNotFound, err)
		repo.AssertNotCalled(t, "MarkAsRead", mock.Anything, mock.Anything)
	})
}

func TestNotificationService_MarkAllAsRead(t *testing.T) {
	repo := new(MockNotificationRepository)
	repo.On("MarkAllAsRead", mock.Anything, uint(10)).Return(nil).Twice()

	svc := newNotificationService(repo)

	// idempotent: repeating the call succeeds the same way
	assert.NoError(t, svc.MarkAllAsRead(context.Background(), 10))
	assert.NoError(t, svc.MarkAllAsRead(context.Background(), 10))
	repo.AssertExpectations(t)
}

func TestNotificationService_DeleteNotification(t *testing.T) {
	t.Run("deletes a notification from the caller's own set", func(t *testing.T) {
		repo := new(MockNotificationRepository)
		repo.On("ListByUser", mock.Anything, uint(10)).Return([]model.Notification{
			{ID: 4, UserID: 10},
		}, nil)
		repo.On("Delete", mock.Anything, uint(4)).Return(nil)

		svc := newNotificationService(repo)
		assert.NoError(t, svc.DeleteNotification(context.Background(), 4, 10))
		repo.AssertExpectations(t)
	})

	t.Run("another user's notification id yields not found", func(t *testing.T) {
		repo := new(MockNotificationRepository)
		repo.On("ListByUser", mock.Anything, uint(10)).Return([]model.Notification{}, nil)

		svc := newNotificationService(repo)
		err := svc.DeleteNotification(context.Background(), 4, 10)

		assert.Equal(t, errors.ErrNotificationNotFound, err)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestNotificationService_ListNotifications(t *testing.T) {
	t.Run("degrades to empty list when storage is unavailable", func(t *testing.T) {
		repo := new(MockNotificationRepository)
		repo.On("ListByUser", mock.Anything, uint(10)).Return(nil, gorm.ErrInvalidDB)

		svc := newNotificationService(repo)
		notifications, err := svc.ListNotifications(context.Background(), 10)

		assert.NoError(t, err)
		assert.Empty(t, notifications)
	})
}
