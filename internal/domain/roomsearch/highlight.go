package roomsearch

import "strings"

// Segment is a contiguous slice of a rendered string, tagged for visual
// emphasis. Concatenating the segments of one HighlightText call always
// reproduces the input text.
type Segment struct {
	Text        string `json:"text"`
	Highlighted bool   `json:"highlighted"`
}

// HighlightText splits text around the first case-insensitive occurrence
// of query. The matched slice keeps the casing of the source text, not of
// the query. No occurrence, or a blank query, yields the whole text as a
// single unhighlighted segment. Only the first occurrence is marked.
func HighlightText(text, query string) []Segment {
	q := NormalizeQuery(query)
	if q == "" {
		return []Segment{{Text: text}}
	}

	idx := strings.Index(foldASCII(text), q)
	if idx < 0 {
		return []Segment{{Text: text}}
	}

	end := idx + len(q)
	segments := make([]Segment, 0, 3)
	if idx > 0 {
		segments = append(segments, Segment{Text: text[:idx]})
	}
	segments = append(segments, Segment{Text: text[idx:end], Highlighted: true})
	if end < len(text) {
		segments = append(segments, Segment{Text: text[end:]})
	}
	return segments
}
