package roomsearch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vantrieu2000/rental-management-app-sub002/internal/domain/room"
)

func newTestController(delay time.Duration, maxResults int) (*Controller, chan State) {
	states := make(chan State, 64)
	c := NewController(delay, maxResults, func(s State) { states <- s })
	c.SetRooms(sampleRooms())
	return c, states
}

func waitForSettled(t *testing.T, states chan State, query string) State {
	t.Helper()
	deadline := time.After(time.Second)
	for {
		select {
		case s := <-states:
			if s.DebouncedQuery == query && !s.IsSearching {
				return s
			}
		case <-deadline:
			t.Fatalf("controller never settled on query %q", query)
		}
	}
}

func TestController_InitialState(t *testing.T) {
	c, _ := newTestController(0, 0)
	defer c.Close()

	s := c.State()
	assert.Equal(t, "", s.RawQuery)
	assert.Equal(t, "", s.DebouncedQuery)
	assert.False(t, s.IsSearching)
	assert.False(t, s.HasActiveFilters)
	assert.Len(t, s.Results, 3)
}

func TestController_ZeroDelayQuery(t *testing.T) {
	c, _ := newTestController(0, 0)
	defer c.Close()

	c.SetQuery("A101")
	s := c.State()
	assert.Equal(t, "A101", s.RawQuery)
	assert.Equal(t, "A101", s.DebouncedQuery)
	assert.False(t, s.IsSearching)
	assert.True(t, s.HasActiveFilters)
	assert.Equal(t, []string{"A101"}, codes(s.Results))
}

func TestController_IsSearchingWhileDebouncing(t *testing.T) {
	c, states := newTestController(30*time.Millisecond, 0)
	defer c.Close()

	c.SetQuery("A1")
	s := c.State()
	assert.True(t, s.IsSearching, "raw ahead of debounced")
	assert.Len(t, s.Results, 3, "results still reflect the old settled query")

	settled := waitForSettled(t, states, "A1")
	assert.Equal(t, []string{"A101", "A102"}, codes(settled.Results))
	assert.False(t, settled.IsSearching)
}

func TestController_RestartsDelayOnEachKeystroke(t *testing.T) {
	c, states := newTestController(40*time.Millisecond, 0)
	defer c.Close()

	c.SetQuery("A")
	time.Sleep(10 * time.Millisecond)
	c.SetQuery("A1")
	time.Sleep(10 * time.Millisecond)
	c.SetQuery("A10")

	settled := waitForSettled(t, states, "A10")
	assert.Equal(t, "A10", settled.DebouncedQuery)

	// none of the superseded keystrokes may surface afterwards
	select {
	case s := <-states:
		assert.Equal(t, "A10", s.DebouncedQuery)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestController_StructuredFiltersApplyImmediately(t *testing.T) {
	c, _ := newTestController(time.Hour, 0)
	defer c.Close()

	c.SetFilters(FilterParams{Status: strPtr(room.StatusOccupied)})
	s := c.State()
	assert.True(t, s.HasActiveFilters)
	assert.Equal(t, []string{"B201"}, codes(s.Results))
}

func TestController_MaxResultsCap(t *testing.T) {
	c, _ := newTestController(0, 2)
	defer c.Close()

	s := c.State()
	assert.Len(t, s.Results, 2)
	assert.Equal(t, []string{"A101", "A102"}, codes(s.Results))
}

func TestController_ClearFiltersIsAtomic(t *testing.T) {
	c, _ := newTestController(time.Hour, 0)
	defer c.Close()

	c.SetFilters(FilterParams{Status: strPtr(room.StatusVacant), MinPrice: f64Ptr(1)})
	c.SetQuery("A101")
	require.True(t, c.State().HasActiveFilters)

	c.ClearFilters()
	s := c.State()
	assert.Equal(t, "", s.RawQuery)
	assert.Equal(t, "", s.DebouncedQuery)
	assert.False(t, s.IsSearching, "clear must not wait out the debounce delay")
	assert.False(t, s.HasActiveFilters)
	assert.Len(t, s.Results, 3)
}

func TestController_SetRoomsRecomputes(t *testing.T) {
	c, _ := newTestController(0, 0)
	defer c.Close()

	c.SetQuery("B2")
	require.Equal(t, []string{"B201"}, codes(c.State().Results))

	c.SetRooms(append(sampleRooms(),
		makeRoom("B202", "Phong B202", room.StatusVacant, 4_200_000)))
	assert.Equal(t, []string{"B201", "B202"}, codes(c.State().Results))
}
