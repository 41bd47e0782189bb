package redis

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

var (
	Client *redis.Client
	Ctx    = context.Background()
)

// SlotCacheTTL bounds how stale a cached availability list may get between
// invalidations.
const SlotCacheTTL = 2 * time.Minute

func InitRedis() {
	Client = redis.NewClient(&redis.Options{
		Addr: os.Getenv("REDIS_ADDR"),
		DB:   0,
	})

	// Test connection. The slot cache is optional; without Redis every
	// availability lookup just recomputes.
	if _, err := Client.Ping(Ctx).Result(); err != nil {
		logrus.WithError(err).Warn("Failed to connect to Redis. Slot caching disabled.")
		Client = nil
		return
	}
	logrus.Info("✅ Connected to Redis")
}

// SlotCacheKey names the cached availability list for one doctor and date.
func SlotCacheKey(doctorID uint, date string) string {
	return fmt.Sprintf("slots:%d:%s", doctorID, date)
}

// InvalidateSlots drops the cached availability list after a booking or
// cancellation changes it. Best effort; a miss just means a recompute.
func InvalidateSlots(doctorID uint, date string) {
	if Client == nil {
		return
	}
	if err := Client.Del(Ctx, SlotCacheKey(doctorID, date)).Err(); err != nil {
		logrus.WithError(err).Warn("failed to invalidate slot cache")
	}
}
