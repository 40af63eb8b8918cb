package controllers

import (
	"log/slog"
	"net/http"

	h "cisoevents/internal/delivery/http/helpers"
	"cisoevents/internal/domain"
)

// ListNotificationsResponse is the response body for GET /admin/notifications.
type ListNotificationsResponse struct {
	Notifications []*domain.Notification `json:"notifications"`
}

type NotificationController struct {
	Logger   *slog.Logger
	Notifier domain.Notifier
}

func NewNotificationController(logger *slog.Logger, notifier domain.Notifier) *NotificationController {
	return &NotificationController{
		Logger:   logger,
		Notifier: notifier,
	}
}

// ListNotifications godoc
// @Summary Active notifications
// @Description Returns the currently active notifications in display (FIFO) order.
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains the active notifications"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /admin/notifications [get]
func (c *NotificationController) ListNotifications(w http.ResponseWriter, r *http.Request) {
	h.WriteJSONSuccess(w, http.StatusOK, ListNotificationsResponse{Notifications: c.Notifier.Active()})
}

// DismissNotification godoc
// @Summary Dismiss a notification
// @Description Removes a notification before its auto-expiry. Dismissing an unknown or already-expired id succeeds.
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Notification ID"
// @Success 200 {object} helpers.APIResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /admin/notifications/{id} [delete]
func (c *NotificationController) DismissNotification(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing id")
		return
	}
	c.Notifier.Remove(id)
	h.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "dismissed"})
}
