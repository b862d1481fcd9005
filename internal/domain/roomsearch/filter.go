package roomsearch

import (
	"github.com/Vantrieu2000/rental-management-app-sub002/internal/domain/room"
)

// FilterRooms applies every active predicate and returns the surviving
// rooms in their input order. The input slice is never mutated. With no
// active predicate the output is the same elements in the same order.
//
// The predicates are independent: status equality, inclusive price
// bounds, and text containment via Matches. A min bound above the max
// bound therefore yields an empty result rather than an error.
func FilterRooms(rooms []room.Room, params FilterParams) []room.Room {
	query := NormalizeQuery(params.Query)
	out := make([]room.Room, 0, len(rooms))
	for _, r := range rooms {
		if params.Status != nil && r.Status != *params.Status {
			continue
		}
		if params.MinPrice != nil && r.RentalPrice < *params.MinPrice {
			continue
		}
		if params.MaxPrice != nil && r.RentalPrice > *params.MaxPrice {
			continue
		}
		if !Matches(r, query) {
			continue
		}
		out = append(out, r)
	}
	return out
}
