// Package notify holds the per-user unread notification feed.  Entries are
// pushed by the broker consumer and drained when the user opens the feed.
// The feed is deliberately lossy: Redis with a TTL and a per-user cap, not
// durable storage. The authoritative record of chat messages and order
// events lives in the core platform.
package notify

import (
    "context"
    "encoding/json"
    "time"

    "github.com/redis/go-redis/v9"

    "github.com/workora/job-board-gateway/internal/model"
)

// Store is the feed contract shared by the consumer (writer) and the
// handler (reader).
type Store interface {
    Push(ctx context.Context, n model.Notification) error
    Unread(ctx context.Context, userID string) ([]model.Notification, error)
    MarkRead(ctx context.Context, userID string) error
}

// maxUnread caps the per-user backlog; older entries fall off the end.
const maxUnread = 100

// RedisStore is the production Store, one Redis list per user.
type RedisStore struct {
    rdb *redis.Client
    ttl time.Duration
}

// NewRedisStore builds a RedisStore.  A nil client yields nil, which the
// router treats as "feed disabled".
func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
    if rdb == nil {
        return nil
    }
    if ttl <= 0 {
        ttl = 7 * 24 * time.Hour
    }
    return &RedisStore{rdb: rdb, ttl: ttl}
}

func feedKey(userID string) string { return "notify:unread:" + userID }

// Push prepends a notification to the user's feed and refreshes the TTL.
func (s *RedisStore) Push(ctx context.Context, n model.Notification) error {
    raw, err := json.Marshal(n)
    if err != nil {
        return err
    }
    key := feedKey(n.UserID)
    pipe := s.rdb.TxPipeline()
    pipe.LPush(ctx, key, raw)
    pipe.LTrim(ctx, key, 0, maxUnread-1)
    pipe.Expire(ctx, key, s.ttl)
    _, err = pipe.Exec(ctx)
    return err
}

// Unread returns the user's feed, newest first.  Entries that no longer
// decode are skipped rather than failing the whole read.
func (s *RedisStore) Unread(ctx context.Context, userID string) ([]model.Notification, error) {
    rows, err := s.rdb.LRange(ctx, feedKey(userID), 0, -1).Result()
    if err != nil {
        return nil, err
    }
    out := make([]model.Notification, 0, len(rows))
    for _, row := range rows {
        var n model.Notification
        if err := json.Unmarshal([]byte(row), &n); err != nil {
            continue
        }
        out = append(out, n)
    }
    return out, nil
}

// MarkRead drains the user's feed.
func (s *RedisStore) MarkRead(ctx context.Context, userID string) error {
    return s.rdb.Del(ctx, feedKey(userID)).Err()
}
