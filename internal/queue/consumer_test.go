package queue

import (
    "context"
    "sync"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/workora/job-board-gateway/internal/model"
)

// memStore is an in-memory notify.Store for exercising the message path
// without a broker or Redis.
type memStore struct {
    mu     sync.Mutex
    pushed []model.Notification
}

func (s *memStore) Push(_ context.Context, n model.Notification) error {
    s.mu.Lock()
    defer s.mu.Unlock()
    s.pushed = append(s.pushed, n)
    return nil
}

func (s *memStore) Unread(_ context.Context, userID string) ([]model.Notification, error) {
    s.mu.Lock()
    defer s.mu.Unlock()
    var out []model.Notification
    for _, n := range s.pushed {
        if n.UserID == userID {
            out = append(out, n)
        }
    }
    return out, nil
}

func (s *memStore) MarkRead(_ context.Context, userID string) error {
    s.mu.Lock()
    defer s.mu.Unlock()
    kept := s.pushed[:0]
    for _, n := range s.pushed {
        if n.UserID != userID {
            kept = append(kept, n)
        }
    }
    s.pushed = kept
    return nil
}

func TestHandleMessage(t *testing.T) {
    store := &memStore{}
    body := []byte(`{
        "id": "n1",
        "type": "order.delivered",
        "user_id": "u-9",
        "order_id": "o-3",
        "message": "Your order was delivered",
        "created_at": "2026-08-01T10:30:00Z"
    }`)

    require.NoError(t, handleMessage(body, store))
    require.Len(t, store.pushed, 1)

    n := store.pushed[0]
    assert.Equal(t, "n1", n.ID)
    assert.Equal(t, "u-9", n.UserID)
    assert.Equal(t, model.NotificationOrderDelivered, n.Kind)
    assert.Equal(t, "o-3", n.OrderID)
    assert.Equal(t, time.Date(2026, 8, 1, 10, 30, 0, 0, time.UTC), n.CreatedAt)
}

func TestHandleMessage_NoRecipient(t *testing.T) {
    store := &memStore{}
    err := handleMessage([]byte(`{"id":"n1","type":"chat.message","message":"hi"}`), store)
    assert.Error(t, err)
    assert.Empty(t, store.pushed)
}

func TestHandleMessage_BadJSON(t *testing.T) {
    store := &memStore{}
    assert.Error(t, handleMessage([]byte(`{{not json`), store))
    assert.Empty(t, store.pushed)
}

func TestHandleMessage_UnknownTypeKept(t *testing.T) {
    store := &memStore{}
    body := []byte(`{"id":"n2","type":"payout.settled","user_id":"u-9","message":"paid"}`)
    require.NoError(t, handleMessage(body, store))
    require.Len(t, store.pushed, 1)
    assert.Equal(t, "payout.settled", store.pushed[0].Kind)
}

func TestHandleMessage_BadTimestampFallsBackToNow(t *testing.T) {
    store := &memStore{}
    before := time.Now().UTC()
    body := []byte(`{"id":"n3","type":"chat.message","user_id":"u-9","created_at":"yesterday"}`)
    require.NoError(t, handleMessage(body, store))
    require.Len(t, store.pushed, 1)
    got := store.pushed[0].CreatedAt
    assert.False(t, got.Before(before.Add(-time.Second)))
    assert.False(t, got.After(time.Now().UTC().Add(time.Second)))
}
