package room

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vantrieu2000/rental-management-app-sub002/internal/domain/room"
	"github.com/Vantrieu2000/rental-management-app-sub002/internal/domain/roomsearch"
	"github.com/Vantrieu2000/rental-management-app-sub002/pkg/logger"
)

// noStoreCache always misses, so every Load goes through to the repo.
type noStoreCache struct{}

func (noStoreCache) Get(ctx context.Context) ([]room.Room, bool, error) { return nil, false, nil }
func (noStoreCache) Set(ctx context.Context, rooms []room.Room) error   { return nil }
func (noStoreCache) Invalidate(ctx context.Context) error               { return nil }

func newTestLiveSearch(t *testing.T, repo *fakeRoomRepo, debounce time.Duration) *LiveSearchManager {
	t.Helper()
	log := logger.NewNop()
	snapshots := NewSnapshotProvider(repo, noStoreCache{}, log)
	m := NewLiveSearchManager(snapshots, debounce, 100, time.Minute, log)
	t.Cleanup(m.Close)
	return m
}

func TestLiveSearch_SessionLifecycle(t *testing.T) {
	repo := &fakeRoomRepo{rooms: testRooms()}
	m := newTestLiveSearch(t, repo, 0)
	ctx := context.Background()

	id, err := m.CreateSession(ctx)
	require.NoError(t, err)

	state, err := m.GetState(ctx, id)
	require.NoError(t, err)
	assert.Len(t, state.Results, 3)
	assert.False(t, state.HasActiveFilters)

	require.NoError(t, m.CloseSession(id))
	_, err = m.GetState(ctx, id)
	assert.Error(t, err, "closed session must be gone")
}

func TestLiveSearch_UnknownSession(t *testing.T) {
	m := newTestLiveSearch(t, &fakeRoomRepo{}, 0)
	_, err := m.GetState(context.Background(), uuid.New())
	assert.Error(t, err)
}

func TestLiveSearch_QueryDebounces(t *testing.T) {
	repo := &fakeRoomRepo{rooms: testRooms()}
	m := newTestLiveSearch(t, repo, 25*time.Millisecond)
	ctx := context.Background()

	id, err := m.CreateSession(ctx)
	require.NoError(t, err)

	state, err := m.UpdateQuery(ctx, id, "A1")
	require.NoError(t, err)
	assert.True(t, state.IsSearching)
	assert.Len(t, state.Results, 3, "results lag behind until the query settles")

	require.Eventually(t, func() bool {
		s, err := m.GetState(ctx, id)
		return err == nil && !s.IsSearching && len(s.Results) == 2
	}, time.Second, 5*time.Millisecond)
}

func TestLiveSearch_FiltersApplyImmediately(t *testing.T) {
	repo := &fakeRoomRepo{rooms: testRooms()}
	m := newTestLiveSearch(t, repo, time.Hour)
	ctx := context.Background()

	id, err := m.CreateSession(ctx)
	require.NoError(t, err)

	status := room.StatusOccupied
	state, err := m.UpdateFilters(ctx, id, roomsearch.FilterParams{Status: &status})
	require.NoError(t, err)
	require.Len(t, state.Results, 1)
	assert.Equal(t, "B201", state.Results[0].RoomCode)
	assert.True(t, state.HasActiveFilters)
}

func TestLiveSearch_ClearResetsEverythingAtOnce(t *testing.T) {
	repo := &fakeRoomRepo{rooms: testRooms()}
	m := newTestLiveSearch(t, repo, time.Hour)
	ctx := context.Background()

	id, err := m.CreateSession(ctx)
	require.NoError(t, err)

	status := room.StatusVacant
	_, err = m.UpdateFilters(ctx, id, roomsearch.FilterParams{Status: &status})
	require.NoError(t, err)
	_, err = m.UpdateQuery(ctx, id, "A101")
	require.NoError(t, err)

	state, err := m.ClearFilters(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "", state.RawQuery)
	assert.False(t, state.IsSearching, "clear must not wait for the debounce delay")
	assert.False(t, state.HasActiveFilters)
	assert.Len(t, state.Results, 3)
}

func TestLiveSearch_PicksUpNewRooms(t *testing.T) {
	repo := &fakeRoomRepo{rooms: testRooms()}
	m := newTestLiveSearch(t, repo, 0)
	ctx := context.Background()

	id, err := m.CreateSession(ctx)
	require.NoError(t, err)

	repo.rooms = append(repo.rooms, room.Room{
		ID: uuid.New(), PropertyID: uuid.New(),
		RoomCode: "C301", RoomName: "Phong C301",
		Status: room.StatusVacant, RentalPrice: 2_500_000,
	})

	state, err := m.GetState(ctx, id)
	require.NoError(t, err)
	assert.Len(t, state.Results, 4, "session must see the refreshed snapshot")
}
