package room

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Vantrieu2000/rental-management-app-sub002/internal/domain/roomsearch"
	"github.com/Vantrieu2000/rental-management-app-sub002/pkg/apperror"
	"github.com/Vantrieu2000/rental-management-app-sub002/pkg/logger"
)

// LiveSearchManager exposes the reactive search controller to
// keystroke-driven clients. Each session owns one Controller; the client
// pushes raw query changes and filter updates and polls the derived
// state, the same loop the room-listing screen runs locally.
type LiveSearchManager struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*liveSession

	snapshots   *SnapshotProvider
	debounce    time.Duration
	maxResults  int
	idleTimeout time.Duration
	logger      logger.Logger

	stop chan struct{}
}

type liveSession struct {
	controller *roomsearch.Controller
	lastSeen   time.Time
}

func NewLiveSearchManager(snapshots *SnapshotProvider, debounce time.Duration, maxResults int, idleTimeout time.Duration, log logger.Logger) *LiveSearchManager {
	m := &LiveSearchManager{
		sessions:    make(map[uuid.UUID]*liveSession),
		snapshots:   snapshots,
		debounce:    debounce,
		maxResults:  maxResults,
		idleTimeout: idleTimeout,
		logger:      log,
		stop:        make(chan struct{}),
	}
	go m.janitor()
	return m
}

// CreateSession starts a new search session seeded with the current room
// snapshot.
func (m *LiveSearchManager) CreateSession(ctx context.Context) (uuid.UUID, error) {
	rooms, err := m.snapshots.Load(ctx)
	if err != nil {
		return uuid.Nil, err
	}

	id := uuid.New()
	controller := roomsearch.NewController(m.debounce, m.maxResults, nil)
	controller.SetRooms(rooms)

	m.mu.Lock()
	m.sessions[id] = &liveSession{controller: controller, lastSeen: time.Now()}
	m.mu.Unlock()

	m.logger.Info("Live search session created", zap.String("session_id", id.String()))
	return id, nil
}

// UpdateQuery records one keystroke and returns the state as of that
// keystroke: results still reflect the previous settled query while
// IsSearching is true.
func (m *LiveSearchManager) UpdateQuery(ctx context.Context, id uuid.UUID, raw string) (roomsearch.State, error) {
	s, err := m.touch(ctx, id)
	if err != nil {
		return roomsearch.State{}, err
	}
	s.controller.SetQuery(raw)
	return s.controller.State(), nil
}

// UpdateFilters replaces the structured filters; these apply immediately.
func (m *LiveSearchManager) UpdateFilters(ctx context.Context, id uuid.UUID, params roomsearch.FilterParams) (roomsearch.State, error) {
	s, err := m.touch(ctx, id)
	if err != nil {
		return roomsearch.State{}, err
	}
	s.controller.SetFilters(params)
	return s.controller.State(), nil
}

// ClearFilters resets filters and query in one atomic update.
func (m *LiveSearchManager) ClearFilters(ctx context.Context, id uuid.UUID) (roomsearch.State, error) {
	s, err := m.touch(ctx, id)
	if err != nil {
		return roomsearch.State{}, err
	}
	s.controller.ClearFilters()
	return s.controller.State(), nil
}

// GetState returns the current derived state of a session.
func (m *LiveSearchManager) GetState(ctx context.Context, id uuid.UUID) (roomsearch.State, error) {
	s, err := m.touch(ctx, id)
	if err != nil {
		return roomsearch.State{}, err
	}
	return s.controller.State(), nil
}

// CloseSession releases a session and its pending debounce timer.
func (m *LiveSearchManager) CloseSession(id uuid.UUID) error {
	m.mu.Lock()
	s, ok := m.sessions[id]
	if ok {
		delete(m.sessions, id)
	}
	m.mu.Unlock()
	if !ok {
		return apperror.NewNotFound("search session", id.String())
	}
	s.controller.Close()
	return nil
}

// Close stops the janitor and releases every session.
func (m *LiveSearchManager) Close() {
	close(m.stop)
	m.mu.Lock()
	for id, s := range m.sessions {
		s.controller.Close()
		delete(m.sessions, id)
	}
	m.mu.Unlock()
}

// touch looks a session up, refreshes its room snapshot and bumps its
// idle clock. Refreshing on every call mirrors the screen re-fetching
// records on each render; with a warm cache it is a single Redis read.
func (m *LiveSearchManager) touch(ctx context.Context, id uuid.UUID) (*liveSession, error) {
	m.mu.Lock()
	s, ok := m.sessions[id]
	if ok {
		s.lastSeen = time.Now()
	}
	m.mu.Unlock()
	if !ok {
		return nil, apperror.NewNotFound("search session", id.String())
	}

	rooms, err := m.snapshots.Load(ctx)
	if err != nil {
		m.logger.Warn("Keeping previous room snapshot for session", zap.Error(err), zap.String("session_id", id.String()))
		return s, nil
	}
	s.controller.SetRooms(rooms)
	return s, nil
}

func (m *LiveSearchManager) janitor() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-m.stop:
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-m.idleTimeout)
			m.mu.Lock()
			for id, s := range m.sessions {
				if s.lastSeen.Before(cutoff) {
					s.controller.Close()
					delete(m.sessions, id)
					m.logger.Info("Evicted idle search session", zap.String("session_id", id.String()))
				}
			}
			m.mu.Unlock()
		}
	}
}
