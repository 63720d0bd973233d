package handler

import (
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/workora/job-board-gateway/internal/middleware"
    "github.com/workora/job-board-gateway/internal/notify"
)

// NotificationHandler serves the unread feed fed by the broker consumer.
type NotificationHandler struct {
    Feed notify.Store
}

func NewNotificationHandler(feed notify.Store) *NotificationHandler {
    return &NotificationHandler{Feed: feed}
}

// List handles GET /v1/notifications: the session user's unread feed,
// newest first.
func (h *NotificationHandler) List(c echo.Context) error {
    sess := middleware.CurrentSession(c)
    items, err := h.Feed.Unread(c.Request().Context(), sess.Principal.ID)
    if err != nil {
        return respondError(c, err)
    }
    return c.JSON(http.StatusOK, echo.Map{"items": items, "count": len(items)})
}

// MarkRead handles POST /v1/notifications/read, draining the feed.
func (h *NotificationHandler) MarkRead(c echo.Context) error {
    sess := middleware.CurrentSession(c)
    if err := h.Feed.MarkRead(c.Request().Context(), sess.Principal.ID); err != nil {
        return respondError(c, err)
    }
    return c.NoContent(http.StatusNoContent)
}
