package appointment

import (
	"context"
	"fmt"
	"time"

	"tubtime/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SlotLocker serializes check-then-create sequences for one slot key so two
// concurrent submissions cannot both pass the availability check.
type SlotLocker interface {
	WithLock(ctx context.Context, key string, fn func() error) error
}

// RedisSlotLocker implements SlotLocker with a SET NX PX lock. A Redis outage
// degrades to the unserialized behavior: the function still runs, and the
// failure is logged.
type RedisSlotLocker struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisSlotLocker(client *redis.Client) *RedisSlotLocker {
	return &RedisSlotLocker{Client: client, TTL: 10 * time.Second}
}

func (l *RedisSlotLocker) WithLock(ctx context.Context, key string, fn func() error) error {
	token := uuid.New().String()
	lockKey := "slotlock:" + key

	ok, err := l.Client.SetNX(ctx, lockKey, token, l.TTL).Result()
	if err != nil {
		utils.GetLogger().Warn("slot lock unavailable, proceeding without serialization",
			zap.String("key", lockKey), zap.Error(err))
		return fn()
	}
	if !ok {
		return &SlotBusyError{Key: key}
	}

	defer func() {
		// Release only our own lock; an expired lock may belong to someone else.
		current, err := l.Client.Get(ctx, lockKey).Result()
		if err == nil && current == token {
			if err := l.Client.Del(ctx, lockKey).Err(); err != nil {
				utils.GetLogger().Warn("failed to release slot lock",
					zap.String("key", lockKey), zap.Error(err))
			}
		}
	}()

	return fn()
}

// SlotKey builds the lock key for a (date, serviceType) pair.
func SlotKey(date, serviceType string) string {
	return fmt.Sprintf("%s:%s", date, serviceType)
}

// NoopSlotLocker runs the function without locking. Used in tests.
type NoopSlotLocker struct{}

func (NoopSlotLocker) WithLock(_ context.Context, _ string, fn func() error) error {
	return fn()
}
