package room

import (
	"context"

	"go.uber.org/zap"

	"github.com/Vantrieu2000/rental-management-app-sub002/internal/domain/room"
	"github.com/Vantrieu2000/rental-management-app-sub002/pkg/logger"
)

// SnapshotProvider loads the full room list the search engine operates on:
// Redis first, Postgres on a miss, warming the cache on the way out. Cache
// outages degrade to Postgres reads rather than failing the request.
type SnapshotProvider struct {
	roomRepo room.Repository
	cache    room.SnapshotCache
	logger   logger.Logger
}

func NewSnapshotProvider(repo room.Repository, cache room.SnapshotCache, log logger.Logger) *SnapshotProvider {
	return &SnapshotProvider{
		roomRepo: repo,
		cache:    cache,
		logger:   log,
	}
}

func (p *SnapshotProvider) Load(ctx context.Context) ([]room.Room, error) {
	rooms, ok, err := p.cache.Get(ctx)
	if err != nil {
		p.logger.Warn("Room snapshot cache unavailable, falling back to Postgres", zap.Error(err))
	} else if ok {
		return rooms, nil
	}

	rooms, err = p.roomRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	if err := p.cache.Set(ctx, rooms); err != nil {
		p.logger.Warn("Failed to warm room snapshot cache", zap.Error(err))
	}
	return rooms, nil
}

// Invalidate drops the cached snapshot so the next Load refetches.
func (p *SnapshotProvider) Invalidate(ctx context.Context) {
	if err := p.cache.Invalidate(ctx); err != nil {
		p.logger.Warn("Failed to invalidate room snapshot cache", zap.Error(err))
	}
}
