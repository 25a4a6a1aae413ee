package appointment

import (
	"context"
	"encoding/json"
	"time"

	"tubtime/models"
	"tubtime/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// candidateCacheTTL bounds how stale a public availability answer can be.
const candidateCacheTTL = 10 * time.Second

// CandidateCache holds short-lived per-date candidate sets for the public
// availability check. Only CheckSlot reads it; the create and reschedule
// paths always read the repository under the slot lock, so a stale entry can
// never admit a double booking.
type CandidateCache interface {
	Get(ctx context.Context, date string) ([]models.Appointment, bool)
	Set(ctx context.Context, date string, appts []models.Appointment)
	Invalidate(ctx context.Context, dates ...string)
}

// RedisCandidateCache is the Redis-backed CandidateCache. All operations are
// best-effort: a Redis failure degrades to a repository read.
type RedisCandidateCache struct {
	Client *redis.Client
}

func NewRedisCandidateCache(client *redis.Client) *RedisCandidateCache {
	return &RedisCandidateCache{Client: client}
}

func candidateKey(date string) string {
	return "slots:" + date
}

func (c *RedisCandidateCache) Get(ctx context.Context, date string) ([]models.Appointment, bool) {
	raw, err := c.Client.Get(ctx, candidateKey(date)).Bytes()
	if err != nil {
		if err != redis.Nil {
			utils.GetLogger().Debug("candidate cache read failed",
				zap.String("date", date), zap.Error(err))
		}
		return nil, false
	}
	var appts []models.Appointment
	if err := json.Unmarshal(raw, &appts); err != nil {
		utils.GetLogger().Warn("candidate cache entry corrupt, ignoring",
			zap.String("date", date), zap.Error(err))
		return nil, false
	}
	return appts, true
}

func (c *RedisCandidateCache) Set(ctx context.Context, date string, appts []models.Appointment) {
	raw, err := json.Marshal(appts)
	if err != nil {
		return
	}
	if err := c.Client.Set(ctx, candidateKey(date), raw, candidateCacheTTL).Err(); err != nil {
		utils.GetLogger().Debug("candidate cache write failed",
			zap.String("date", date), zap.Error(err))
	}
}

func (c *RedisCandidateCache) Invalidate(ctx context.Context, dates ...string) {
	keys := make([]string, 0, len(dates))
	for _, date := range dates {
		keys = append(keys, candidateKey(date))
	}
	if len(keys) == 0 {
		return
	}
	if err := c.Client.Del(ctx, keys...).Err(); err != nil {
		utils.GetLogger().Debug("candidate cache invalidation failed",
			zap.Strings("keys", keys), zap.Error(err))
	}
}
