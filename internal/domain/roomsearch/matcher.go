package roomsearch

import (
	"strings"

	"github.com/Vantrieu2000/rental-management-app-sub002/internal/domain/room"
)

// Matches reports whether the room matches an already-normalized query.
// An empty query matches every room. A non-empty query matches when it is
// a substring of the room code, the room name, or the tenant's display
// name. A vacant room has no tenant, so that field simply never matches.
func Matches(r room.Room, normalizedQuery string) bool {
	if normalizedQuery == "" {
		return true
	}
	if strings.Contains(foldASCII(r.RoomCode), normalizedQuery) {
		return true
	}
	if strings.Contains(foldASCII(r.RoomName), normalizedQuery) {
		return true
	}
	if r.Tenant != nil && strings.Contains(foldASCII(r.Tenant.FullName), normalizedQuery) {
		return true
	}
	return false
}
