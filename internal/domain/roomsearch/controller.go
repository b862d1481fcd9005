package roomsearch

import (
	"sync"
	"time"

	"github.com/Vantrieu2000/rental-management-app-sub002/internal/domain/room"
)

// State is the derived output of a Controller: everything the room-listing
// screen needs to render one frame.
type State struct {
	RawQuery         string       `json:"raw_query"`
	DebouncedQuery   string       `json:"debounced_query"`
	Params           FilterParams `json:"params"`
	Results          []room.Room  `json:"results"`
	HasActiveFilters bool         `json:"has_active_filters"`
	IsSearching      bool         `json:"is_searching"`
}

// Recompute derives the visible result list from its inputs alone:
// filter, rank, then cap. maxResults <= 0 means uncapped. The rooms slice
// is treated as read-only.
func Recompute(rooms []room.Room, params FilterParams, debouncedQuery string, maxResults int) []room.Room {
	params.Query = debouncedQuery
	matched := FilterRooms(rooms, params)
	ranked := RankRooms(matched, NormalizeQuery(debouncedQuery))
	if maxResults > 0 && len(ranked) > maxResults {
		ranked = ranked[:maxResults:maxResults]
	}
	return ranked
}

// Controller owns the reactive search state of one room-listing session.
// Derived state is recomputed on every input change as a pure function of
// (rooms, debounced query, structured filters, cap); the structured
// filters apply immediately while the query goes through the debouncer.
type Controller struct {
	mu         sync.Mutex
	rooms      []room.Room
	params     FilterParams
	debouncer  *Debouncer
	maxResults int
	onChange   func(State)
	state      State
}

// NewController creates a controller with the given debounce delay and
// result cap. onChange (optional) receives every derived state in order,
// including the one produced when the debounced query settles. It is
// called without internal locks held, so it may call back into the
// controller.
func NewController(debounceDelay time.Duration, maxResults int, onChange func(State)) *Controller {
	c := &Controller{
		maxResults: maxResults,
		onChange:   onChange,
	}
	c.debouncer = NewDebouncer(debounceDelay, func(string) {
		c.recompute()
	})
	c.mu.Lock()
	c.recomputeLocked()
	c.mu.Unlock()
	return c
}

// SetRooms replaces the room snapshot the controller searches over.
func (c *Controller) SetRooms(rooms []room.Room) {
	c.mu.Lock()
	c.rooms = rooms
	c.mu.Unlock()
	c.recompute()
}

// SetQuery records one keystroke of the raw query. The visible results
// only change once the debouncer settles; until then IsSearching is true.
func (c *Controller) SetQuery(raw string) {
	c.debouncer.Set(raw)
	c.recompute()
}

// SetFilters replaces the structured filters. The Query field inside the
// given params is ignored; the query always flows through SetQuery.
func (c *Controller) SetFilters(params FilterParams) {
	c.mu.Lock()
	params.Query = ""
	c.params = params
	c.mu.Unlock()
	c.recompute()
}

// ClearFilters resets the structured filters and the query in one atomic
// update, skipping the debounce delay.
func (c *Controller) ClearFilters() {
	c.mu.Lock()
	c.params = FilterParams{}
	c.mu.Unlock()
	c.debouncer.Reset("")
	c.recompute()
}

// State returns the most recently derived state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Close cancels any pending debounce propagation.
func (c *Controller) Close() {
	c.debouncer.Stop()
}

func (c *Controller) recompute() {
	c.mu.Lock()
	state := c.recomputeLocked()
	c.mu.Unlock()
	if c.onChange != nil {
		c.onChange(state)
	}
}

func (c *Controller) recomputeLocked() State {
	raw := c.debouncer.Raw()
	debounced := c.debouncer.Settled()

	active := c.params
	active.Query = raw
	state := State{
		RawQuery:         raw,
		DebouncedQuery:   debounced,
		Params:           c.params,
		Results:          Recompute(c.rooms, c.params, debounced, c.maxResults),
		HasActiveFilters: active.HasAny(),
		IsSearching:      raw != debounced,
	}
	c.state = state
	return state
}
