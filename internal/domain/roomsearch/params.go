package roomsearch

import "strings"

// FilterParams are the structured filters of the room-listing screen plus
// the free-text query. Absent pointers mean the predicate does not apply.
//
// PaymentStatus is accepted for contract compatibility with the mobile
// client but is inert: no payment data is joined into the room snapshot,
// so there is nothing for the filter engine to act on.
type FilterParams struct {
	Status        *string  `json:"status,omitempty"`
	PaymentStatus *string  `json:"payment_status,omitempty"`
	MinPrice      *float64 `json:"min_price,omitempty"`
	MaxPrice      *float64 `json:"max_price,omitempty"`
	Query         string   `json:"query,omitempty"`
}

// HasAny reports whether any filter or query is active. PaymentStatus
// counts even though it is inert, so the clear-filters affordance still
// covers it.
func (p FilterParams) HasAny() bool {
	return p.Status != nil ||
		p.PaymentStatus != nil ||
		p.MinPrice != nil ||
		p.MaxPrice != nil ||
		strings.TrimSpace(p.Query) != ""
}

// NormalizeQuery trims surrounding whitespace and lower-cases ASCII
// letters. Matching is byte-wise afterwards, so folding must never change
// the byte length of the string (the highlighter slices the original text
// by the folded index).
func NormalizeQuery(q string) string {
	return foldASCII(strings.TrimSpace(q))
}

func foldASCII(s string) string {
	hasUpper := false
	for i := 0; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			hasUpper = true
			break
		}
	}
	if !hasUpper {
		return s
	}
	b := []byte(s)
	for i := 0; i < len(b); i++ {
		if b[i] >= 'A' && b[i] <= 'Z' {
			b[i] += 'a' - 'A'
		}
	}
	return string(b)
}
