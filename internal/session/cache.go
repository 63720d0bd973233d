package session

import (
    "context"
    "crypto/sha256"
    "encoding/hex"
    "encoding/json"
    "time"

    "github.com/redis/go-redis/v9"

    "github.com/workora/job-board-gateway/internal/model"
)

// RedisCache is the production ProfileCache.  Entries are keyed by a
// SHA-256 digest of the credential so the raw token never appears in Redis,
// and carry a short TTL: the cache only has to absorb the burst of
// bootstraps a single page visit generates, not outlive the credential.
type RedisCache struct {
    rdb    *redis.Client
    ttl    time.Duration
    prefix string
}

// NewRedisCache builds a RedisCache.  A nil client yields a nil cache,
// which the Manager treats as "no fast path".
func NewRedisCache(rdb *redis.Client, ttl time.Duration) *RedisCache {
    if rdb == nil {
        return nil
    }
    if ttl <= 0 {
        ttl = time.Minute
    }
    return &RedisCache{rdb: rdb, ttl: ttl, prefix: "session:principal"}
}

func (r *RedisCache) key(credential string) string {
    sum := sha256.Sum256([]byte(credential))
    return r.prefix + ":" + hex.EncodeToString(sum[:])
}

// Get returns the cached principal or nil.  Any Redis or decode failure is
// treated as a miss; the caller falls through to the real fetch.
func (r *RedisCache) Get(ctx context.Context, credential string) *model.Principal {
    raw, err := r.rdb.Get(ctx, r.key(credential)).Bytes()
    if err != nil {
        return nil
    }
    var p model.Principal
    if err := json.Unmarshal(raw, &p); err != nil {
        return nil
    }
    return &p
}

// Put stores the principal under the credential's digest.  Failures are
// ignored; the cache is an optimization, never a source of truth.
func (r *RedisCache) Put(ctx context.Context, credential string, p *model.Principal) {
    raw, err := json.Marshal(p)
    if err != nil {
        return
    }
    _ = r.rdb.Set(ctx, r.key(credential), raw, r.ttl).Err()
}

// Invalidate drops the cached principal for a credential.
func (r *RedisCache) Invalidate(ctx context.Context, credential string) {
    _ = r.rdb.Del(ctx, r.key(credential)).Err()
}
