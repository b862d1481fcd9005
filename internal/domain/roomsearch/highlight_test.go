package roomsearch

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHighlightText(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		query string
		want  []Segment
	}{
		{
			name:  "empty query yields single plain segment",
			text:  "Phong A101",
			query: "",
			want:  []Segment{{Text: "Phong A101"}},
		},
		{
			name:  "whitespace query yields single plain segment",
			text:  "Phong A101",
			query: "   ",
			want:  []Segment{{Text: "Phong A101"}},
		},
		{
			name:  "no occurrence yields single plain segment",
			text:  "Phong A101",
			query: "b2",
			want:  []Segment{{Text: "Phong A101"}},
		},
		{
			name:  "match keeps source casing",
			text:  "Hello World",
			query: "world",
			want: []Segment{
				{Text: "Hello "},
				{Text: "World", Highlighted: true},
			},
		},
		{
			name:  "match at start omits empty prefix",
			text:  "A101 tang 1",
			query: "a101",
			want: []Segment{
				{Text: "A101", Highlighted: true},
				{Text: " tang 1"},
			},
		},
		{
			name:  "match in middle yields three segments",
			text:  "Phong A101 tang 1",
			query: "a101",
			want: []Segment{
				{Text: "Phong "},
				{Text: "A101", Highlighted: true},
				{Text: " tang 1"},
			},
		},
		{
			name:  "only first occurrence is highlighted",
			text:  "A1 va A1",
			query: "a1",
			want: []Segment{
				{Text: "A1", Highlighted: true},
				{Text: " va A1"},
			},
		},
		{
			name:  "whole text match yields one highlighted segment",
			text:  "A101",
			query: "A101",
			want:  []Segment{{Text: "A101", Highlighted: true}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HighlightText(tt.text, tt.query))
		})
	}
}

func TestHighlightText_RoundTrip(t *testing.T) {
	texts := []string{"", "Phong A101", "Hello World", "aAaAaA", "Tran Thi B"}
	queries := []string{"", "a", "A1", "world", "zzz", "  A  ", "Tran"}
	for _, text := range texts {
		for _, query := range queries {
			segments := HighlightText(text, query)
			var sb strings.Builder
			for _, seg := range segments {
				sb.WriteString(seg.Text)
			}
			assert.Equal(t, text, sb.String(), "segments of %q / %q must concatenate to the input", text, query)
			assert.LessOrEqual(t, len(segments), 3)
		}
	}
}
