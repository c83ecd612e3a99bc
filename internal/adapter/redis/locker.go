package redis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/heartmarshall/encuentrame-backend/internal/domain"
)

const keyPrefix = "stall-lock:"

// releaseScript deletes the lock only if it still holds our token.
var releaseScript = goredis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`)

// StallLocker holds a short-lived exclusive lock per stall.
type StallLocker struct {
	rdb *goredis.Client
	ttl time.Duration
	log *slog.Logger
}

// NewStallLocker creates a StallLocker whose locks expire after ttl.
func NewStallLocker(logger *slog.Logger, rdb *goredis.Client, ttl time.Duration) *StallLocker {
	return &StallLocker{
		rdb: rdb,
		ttl: ttl,
		log: logger.With("adapter", "redis_lock"),
	}
}

// Lock acquires the lock for stallID. The returned function releases it and
// is safe to call once the request context is done.
// Returns domain.ErrConcurrentUpdate when another holder has the lock.
func (l *StallLocker) Lock(ctx context.Context, stallID uuid.UUID) (func(), error) {
	key := keyPrefix + stallID.String()
	token := uuid.NewString()

	ok, err := l.rdb.SetNX(ctx, key, token, l.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("acquire stall lock %s: %w", stallID, err)
	}
	if !ok {
		return nil, fmt.Errorf("stall lock %s held: %w", stallID, domain.ErrConcurrentUpdate)
	}

	return func() {
		releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
		defer cancel()

		if err := releaseScript.Run(releaseCtx, l.rdb, []string{key}, token).Err(); err != nil {
			l.log.WarnContext(ctx, "release stall lock",
				slog.String("stall_id", stallID.String()),
				slog.String("error", err.Error()),
			)
		}
	}, nil
}
