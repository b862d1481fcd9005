package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Vantrieu2000/rental-management-app-sub002/internal/domain/room"
	"github.com/Vantrieu2000/rental-management-app-sub002/pkg/logger"
)

const roomSnapshotKey = "rooms:snapshot"

// redisRoomCache stores the full room list as one JSON blob so the search
// path can load its snapshot with a single round trip.
type redisRoomCache struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

func NewRedisRoomCache(client *redis.Client, ttl time.Duration, log logger.Logger) room.SnapshotCache {
	return &redisRoomCache{client: client, ttl: ttl, logger: log}
}

func (c *redisRoomCache) Get(ctx context.Context) ([]room.Room, bool, error) {
	data, err := c.client.Get(ctx, roomSnapshotKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var rooms []room.Room
	if err := json.Unmarshal(data, &rooms); err != nil {
		c.logger.Warn("Corrupt room snapshot in cache, dropping it", zap.Error(err))
		if delErr := c.client.Del(ctx, roomSnapshotKey).Err(); delErr != nil {
			c.logger.Warn("Failed to drop corrupt room snapshot", zap.Error(delErr))
		}
		return nil, false, nil
	}
	return rooms, true, nil
}

func (c *redisRoomCache) Set(ctx context.Context, rooms []room.Room) error {
	data, err := json.Marshal(rooms)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, roomSnapshotKey, data, c.ttl).Err()
}

func (c *redisRoomCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, roomSnapshotKey).Err()
}
