package room

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/Vantrieu2000/rental-management-app-sub002/internal/domain/room"
	"github.com/Vantrieu2000/rental-management-app-sub002/internal/domain/roomsearch"
	"github.com/Vantrieu2000/rental-management-app-sub002/pkg/logger"
)

type SearchRoomsUseCase struct {
	snapshots  *SnapshotProvider
	maxResults int
	logger     logger.Logger
}

func NewSearchRoomsUseCase(snapshots *SnapshotProvider, maxResults int, log logger.Logger) *SearchRoomsUseCase {
	return &SearchRoomsUseCase{
		snapshots:  snapshots,
		maxResults: maxResults,
		logger:     log,
	}
}

type SearchRoomsInput struct {
	Params roomsearch.FilterParams
	Limit  int
}

// RoomSearchResult pairs a ranked room with the highlight segments the
// client renders for each matchable field.
type RoomSearchResult struct {
	Room           room.Room
	CodeSegments   []roomsearch.Segment
	NameSegments   []roomsearch.Segment
	TenantSegments []roomsearch.Segment
}

type SearchRoomsOutput struct {
	Results          []RoomSearchResult
	HasActiveFilters bool
}

var tracer = otel.Tracer("room_usecase")

func (uc *SearchRoomsUseCase) Execute(ctx context.Context, input SearchRoomsInput) (*SearchRoomsOutput, error) {
	ctx, span := tracer.Start(ctx, "SearchRooms")
	defer span.End()

	limit := input.Limit
	if limit <= 0 || limit > uc.maxResults {
		limit = uc.maxResults
	}

	rooms, err := uc.snapshots.Load(ctx)
	if err != nil {
		span.RecordError(err)
		uc.logger.Error("Failed to load room snapshot", err)
		return nil, err
	}

	ranked := roomsearch.Recompute(rooms, input.Params, input.Params.Query, limit)

	results := make([]RoomSearchResult, len(ranked))
	for i, r := range ranked {
		res := RoomSearchResult{
			Room:         r,
			CodeSegments: roomsearch.HighlightText(r.RoomCode, input.Params.Query),
			NameSegments: roomsearch.HighlightText(r.RoomName, input.Params.Query),
		}
		if r.Tenant != nil {
			res.TenantSegments = roomsearch.HighlightText(r.Tenant.FullName, input.Params.Query)
		}
		results[i] = res
	}

	span.SetAttributes(
		attribute.String("query", input.Params.Query),
		attribute.Int("snapshot_size", len(rooms)),
		attribute.Int("result_count", len(results)),
	)
	uc.logger.Debug("Room search executed",
		zap.String("query", input.Params.Query),
		zap.Int("results", len(results)))

	return &SearchRoomsOutput{
		Results:          results,
		HasActiveFilters: input.Params.HasAny(),
	}, nil
}
