package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"teachmatch/internal/delivery/http/response"
	"teachmatch/internal/domain/entity"
	"teachmatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
	Logger         *slog.Logger
}

// NotificationHandler holds dependencies for notification-related handlers
type NotificationHandler struct {
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: params.NotificationUC,
		logger:         params.Logger,
	}
}

// PublishNotificationRequest is the admin fan-out request: one content block
// delivered to a list of users.
type PublishNotificationRequest struct {
	UserIDs    []uuid.UUID       `json:"user_ids" validate:"required,min=1"`
	Type       string            `json:"type" validate:"required"`
	Title      string            `json:"title" validate:"required"`
	Message    string            `json:"message" validate:"required"`
	Data       map[string]string `json:"data"`
	ForcePopup bool              `json:"force_popup"`
	SendPush   *bool             `json:"send_push"`
}

// ListNotifications handles retrieving the user's notifications, newest first
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	limit, offset := parsePagination(c)
	notifications, err := h.notificationUC.ListNotifications(c.Request().Context(), userID, limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, notifications, "Notifications retrieved successfully")
}

// CountUnread handles retrieving the unread badge count
func (h *NotificationHandler) CountUnread(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	count, err := h.notificationUC.CountUnread(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"unread": count}, "Unread count retrieved successfully")
}

// MarkRead handles marking a single notification as read
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	notificationID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.notificationUC.MarkRead(c.Request().Context(), userID, notificationID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Notification marked as read")
}

// MarkAllRead handles marking every unread notification of the user
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	count, err := h.notificationUC.MarkAllRead(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"marked": count}, "Notifications marked as read")
}

// DeleteNotification handles removing a notification on user request
func (h *NotificationHandler) DeleteNotification(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	notificationID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.notificationUC.Delete(c.Request().Context(), userID, notificationID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Notification deleted successfully")
}

// PublishNotification handles the admin fan-out endpoint used by other
// platform services to emit notifications into the core.
func (h *NotificationHandler) PublishNotification(c echo.Context) error {
	var req PublishNotificationRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid notification input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	notifications, err := h.notificationUC.NotifyMany(c.Request().Context(), req.UserIDs,
		usecase.NotifyInput{
			Type:    entity.NotificationType(req.Type),
			Title:   req.Title,
			Message: req.Message,
			Data:    req.Data,
		},
		usecase.NotifyOptions{
			ForcePopup: req.ForcePopup,
			SendPush:   req.SendPush,
		})
	if err != nil && len(notifications) == 0 {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"created": len(notifications),
		"failed":  len(req.UserIDs) - len(notifications),
	}, "Notifications published")
}

// parsePagination reads limit/offset query parameters, zero when absent.
func parsePagination(c echo.Context) (limit, offset int) {
	limit, _ = strconv.Atoi(c.QueryParam("limit"))
	offset, _ = strconv.Atoi(c.QueryParam("offset"))

	return limit, offset
}
