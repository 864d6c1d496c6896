package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"lavajato/internal/cache"
	"lavajato/internal/errors"
	"lavajato/internal/model"
	"lavajato/internal/repository"
)

const unreadCountCacheTTL = 1 * time.Minute

// NotificationService handles notification operations on behalf of a single
// user. Ownership of an individual notification is established by membership
// in the user's own list, so the only failure a non-owner can observe is
// not-found.
type NotificationService interface {
	CreateNotification(ctx context.Context, notification *model.Notification) error
	ListNotifications(ctx context.Context, userID uint) ([]model.Notification, error)
	UnreadCount(ctx context.Context, userID uint) (int64, error)
	MarkAsRead(ctx context.Context, id, userID uint) error
	MarkAllAsRead(ctx context.Context, userID uint) error
	DeleteNotification(ctx context.Context, id, userID uint) error
}

type notificationService struct {
	repo   repository.NotificationRepository
	cache  *cache.Client
	logger *logrus.Logger
}

// NewNotificationService creates a new notification service.
func NewNotificationService(repo repository.NotificationRepository, cache *cache.Client, logger *logrus.Logger) NotificationService {
	return &notificationService{repo: repo, cache: cache, logger: logger}
}

func (s *notificationService) unreadCacheKey(userID uint) string {
	return fmt.Sprintf("notifications:unread:%d", userID)
}

// CreateNotification persists a notification for its recipient and drops the
// cached unread count so the next read reflects the new entry.
func (s *notificationService) CreateNotification(ctx context.Context, notification *model.Notification) error {
	if err := s.repo.Create(ctx, notification); err != nil {
		return err
	}
	_ = s.cache.Delete(ctx, s.unreadCacheKey(notification.UserID))
	return nil
}

// ListNotifications returns the user's notifications, newest first.
// Degrades to an empty list when storage is unavailable.
func (s *notificationService) ListNotifications(ctx context.Context, userID uint) ([]model.Notification, error) {
	notifications, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.WithError(err).WithField("user_id", userID).Warn("list notifications degraded to empty result")
		return []model.Notification{}, nil
	}
	return notifications, nil
}

// UnreadCount returns the number of unread notifications, cached briefly.
func (s *notificationService) UnreadCount(ctx context.Context, userID uint) (int64, error) {
	if data, _ := s.cache.Get(ctx, s.unreadCacheKey(userID)); data != nil {
		if cached, err := strconv.ParseInt(string(data), 10, 64); err == nil {
			return cached, nil
		}
	}

	count, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		s.logger.WithError(err).WithField("user_id", userID).Warn("unread count degraded to zero")
		return 0, nil
	}

	_ = s.cache.Set(ctx, s.unreadCacheKey(userID), []byte(strconv.FormatInt(count, 10)), unreadCountCacheTTL)
	return count, nil
}

// findOwned locates a notification inside the user's own notification set.
func (s *notificationService) findOwned(ctx context.Context, id, userID uint) (*model.Notification, error) {
	notifications, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range notifications {
		if notifications[i].ID == id {
			return &notifications[i], nil
		}
	}
	return nil, errors.ErrNotificationNotFound
}

// MarkAsRead flags an owned notification as read.
func (s *notificationService) MarkAsRead(ctx context.Context, id, userID uint) error {
	if _, err := s.findOwned(ctx, id, userID); err != nil {
		return err
	}
	if err := s.repo.MarkAsRead(ctx, id); err != nil {
		return err
	}
	_ = s.cache.Delete(ctx, s.unreadCacheKey(userID))
	return nil
}

// MarkAllAsRead flags every notification of the user as read. Idempotent.
func (s *notificationService) MarkAllAsRead(ctx context.Context, userID uint) error {
	if err := s.repo.MarkAllAsRead(ctx, userID); err != nil {
		return err
	}
	_ = s.cache.Delete(ctx, s.unreadCacheKey(userID))
	return nil
}

// DeleteNotification removes an owned notification.
func (s *notificationService) DeleteNotification(ctx context.Context, id, userID uint) error {
	if _, err := s.findOwned(ctx, id, userID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.cache.Delete(ctx, s.unreadCacheKey(userID))
	return nil
}
