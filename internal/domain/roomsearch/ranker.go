package roomsearch

import (
	"sort"
	"strings"

	"github.com/Vantrieu2000/rental-management-app-sub002/internal/domain/room"
)

// Relevance tiers, strongest first. Each tier only decides the order of
// two rooms when every stronger tier ties, which a descending bitmask
// comparison gives for free (and keeps the comparator transitive).
const (
	tierCodeExact = 1 << (4 - iota)
	tierCodePrefix
	tierNameExact
	tierNamePrefix
	tierTenantContains
)

func relevanceScore(r room.Room, normalizedQuery string) int {
	code := foldASCII(r.RoomCode)
	name := foldASCII(r.RoomName)

	score := 0
	if code == normalizedQuery {
		score |= tierCodeExact
	}
	if strings.HasPrefix(code, normalizedQuery) {
		score |= tierCodePrefix
	}
	if name == normalizedQuery {
		score |= tierNameExact
	}
	if strings.HasPrefix(name, normalizedQuery) {
		score |= tierNamePrefix
	}
	if r.Tenant != nil && strings.Contains(foldASCII(r.Tenant.FullName), normalizedQuery) {
		score |= tierTenantContains
	}
	return score
}

// RankRooms orders rooms by relevance to an already-normalized query.
// With an empty query it is the identity. Ties keep their input order,
// so ranking an already-ranked list is a fixed point. The input slice is
// never reordered in place.
func RankRooms(rooms []room.Room, normalizedQuery string) []room.Room {
	if normalizedQuery == "" {
		return rooms
	}

	type scored struct {
		room  room.Room
		score int
	}
	buf := make([]scored, len(rooms))
	for i, r := range rooms {
		buf[i] = scored{room: r, score: relevanceScore(r, normalizedQuery)}
	}

	sort.SliceStable(buf, func(a, b int) bool {
		return buf[a].score > buf[b].score
	})

	out := make([]room.Room, len(buf))
	for i, s := range buf {
		out[i] = s.room
	}
	return out
}
