package handler

import (
    "context"
    "encoding/json"
    "net/http"
    "net/http/httptest"
    "testing"
    "time"

    "github.com/labstack/echo/v4"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/workora/job-board-gateway/internal/model"
    "github.com/workora/job-board-gateway/internal/session"
)

type memFeed struct {
    byUser map[string][]model.Notification
}

func (f *memFeed) Push(_ context.Context, n model.Notification) error {
    f.byUser[n.UserID] = append(f.byUser[n.UserID], n)
    return nil
}

func (f *memFeed) Unread(_ context.Context, userID string) ([]model.Notification, error) {
    return f.byUser[userID], nil
}

func (f *memFeed) MarkRead(_ context.Context, userID string) error {
    delete(f.byUser, userID)
    return nil
}

func sessionCtx(method, path, userID string) (echo.Context, *httptest.ResponseRecorder) {
    req := httptest.NewRequest(method, path, nil)
    rec := httptest.NewRecorder()
    c := echo.New().NewContext(req, rec)
    c.Set("session", session.Session{
        State:     session.StateAuthenticated,
        Principal: &model.Principal{ID: userID, Role: model.RoleUser},
    })
    return c, rec
}

func TestNotificationList(t *testing.T) {
    feed := &memFeed{byUser: map[string][]model.Notification{
        "u-9": {
            {ID: "n1", UserID: "u-9", Kind: model.NotificationChatMessage, Message: "hi", CreatedAt: time.Now()},
            {ID: "n2", UserID: "u-9", Kind: model.NotificationOrderDelivered, OrderID: "o-1", CreatedAt: time.Now()},
        },
        "other": {{ID: "n3", UserID: "other"}},
    }}
    h := NewNotificationHandler(feed)

    c, rec := sessionCtx(http.MethodGet, "/v1/notifications", "u-9")
    require.NoError(t, h.List(c))
    assert.Equal(t, http.StatusOK, rec.Code)

    var resp struct {
        Items []model.Notification `json:"items"`
        Count int                  `json:"count"`
    }
    require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
    assert.Equal(t, 2, resp.Count)
    require.Len(t, resp.Items, 2)
    assert.Equal(t, "n1", resp.Items[0].ID)
}

func TestNotificationMarkRead(t *testing.T) {
    feed := &memFeed{byUser: map[string][]model.Notification{
        "u-9": {{ID: "n1", UserID: "u-9"}},
    }}
    h := NewNotificationHandler(feed)

    c, rec := sessionCtx(http.MethodPost, "/v1/notifications/read", "u-9")
    require.NoError(t, h.MarkRead(c))
    assert.Equal(t, http.StatusNoContent, rec.Code)
    assert.Empty(t, feed.byUser["u-9"])
}
