package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"lavajato/internal/errors"
	"lavajato/internal/service"
)

// NotificationHandler handles notification endpoints.
type NotificationHandler struct {
	notificationService service.NotificationService
}

// NewNotificationHandler creates a new notification handler.
func NewNotificationHandler(notificationService service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// UnreadCountResponse reports how many notifications are still unread.
type UnreadCountResponse struct {
	Count int64 `json:"count"`
}

// List godoc
// @Summary List the caller's notifications
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Notification
// @Failure 401 {object} errors.ErrorResponse
// @Router /notifications [get]
func (h *NotificationHandler) List(c echo.Context) error {
	userID, httpErr := currentUserID(c)
	if httpErr != nil {
		return httpErr
	}

	notifications, err := h.notificationService.ListNotifications(c.Request().Context(), userID)
	if err != nil {
		mapped := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(mapped.StatusCode, mapped.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, notifications)
}

// UnreadCount godoc
// @Summary Count the caller's unread notifications
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} UnreadCountResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /notifications/unread-count [get]
func (h *NotificationHandler) UnreadCount(c echo.Context) error {
	userID, httpErr := currentUserID(c)
	if httpErr != nil {
		return httpErr
	}

	count, err := h.notificationService.UnreadCount(c.Request().Context(), userID)
	if err != nil {
		mapped := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(mapped.StatusCode, mapped.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, UnreadCountResponse{Count: count})
}

// MarkAsRead godoc
// @Summary Mark one of the caller's notifications as read
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Notification ID"
// @Success 200 {object} SuccessResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /notifications/{id}/read [post]
func (h *NotificationHandler) MarkAsRead(c echo.Context) error {
	userID, httpErr := currentUserID(c)
	if httpErr != nil {
		return httpErr
	}
	id, httpErr := pathID(c)
	if httpErr != nil {
		return httpErr
	}

	if err := h.notificationService.MarkAsRead(c.Request().Context(), id, userID); err != nil {
		mapped := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(mapped.StatusCode, mapped.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// MarkAllAsRead godoc
// @Summary Mark all of the caller's notifications as read
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SuccessResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /notifications/read-all [post]
func (h *NotificationHandler) MarkAllAsRead(c echo.Context) error {
	userID, httpErr := currentUserID(c)
	if httpErr != nil {
		return httpErr
	}

	if err := h.notificationService.MarkAllAsRead(c.Request().Context(), userID); err != nil {
		mapped := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(mapped.StatusCode, mapped.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// Delete godoc
// @Summary Delete one of the caller's notifications
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Notification ID"
// @Success 200 {object} SuccessResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /notifications/{id} [delete]
func (h *NotificationHandler) Delete(c echo.Context) error {
	userID, httpErr := currentUserID(c)
	if httpErr != nil {
		return httpErr
	}
	id, httpErr := pathID(c)
	if httpErr != nil {
		return httpErr
	}

	if err := h.notificationService.DeleteNotification(c.Request().Context(), id, userID); err != nil {
		mapped := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(mapped.StatusCode, mapped.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, SuccessResponse{Success: true})
}
