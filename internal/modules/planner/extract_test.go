package planner

import (
	"strings"
	"testing"
)

func TestExtractCity(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "numbered list with country",
			raw:  "1. Paris, France - The city of lights matches your cultural interests.",
			want: "Paris",
		},
		{
			name: "numbered list single name",
			raw:  "Here are my picks:\n1. Tokyo - endless food and museums\n2. Kyoto - temples",
			want: "Tokyo",
		},
		{
			name: "multi-word city",
			raw:  "1. New York, USA - a classic for first-time visitors",
			want: "New York",
		},
		{
			name: "bullet list",
			raw:  "Recommended:\n- Lisbon, Portugal: sunny and affordable\n- Porto, Portugal: wine country",
			want: "Lisbon",
		},
		{
			name: "capitalized run with punctuation",
			raw:  "Barcelona: the obvious match for beach and art lovers.",
			want: "Barcelona",
		},
		{
			name: "no structure falls back to default",
			raw:  "random text with no structure",
			want: DefaultCity,
		},
		{
			name: "empty input falls back to default",
			raw:  "",
			want: DefaultCity,
		},
		{
			name: "first candidate filtered, later candidate accepted",
			raw:  "1. Best Pick - actually we recommend:\n1. Vienna, Austria - classical music",
			want: "Vienna",
		},
		{
			// A structural match owns the decision: when the numbered-list
			// rule matches but every candidate is filtered, the default is
			// returned without consulting the looser rules below it.
			name: "winning rule with only rejected candidates",
			raw:  "1. Travel Tips - pack light and book early. Zurich is lovely though.",
			want: DefaultCity,
		},
		{
			name: "stop word prefix rejected",
			raw:  "1. Planning Guide - how to choose",
			want: DefaultCity,
		},
		{
			name: "generic city suffix rejected",
			raw:  "1. Mexico City, Mexico - vibrant street food",
			want: DefaultCity,
		},
		{
			name: "short candidate rejected",
			raw:  "1. Ur - ancient but too short to trust",
			want: DefaultCity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractCity(tt.raw)
			if got != tt.want {
				t.Fatalf("ExtractCity(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

// TestExtractCityTotal checks that arbitrary junk never yields an empty result.
func TestExtractCityTotal(t *testing.T) {
	inputs := []string{
		"",
		"\n\n\n",
		strings.Repeat("a", 10000),
		"1234567890 !@#$%^&*()",
		"1.",
		"- ",
		string([]byte{0xff, 0xfe, 0x41}),
	}
	for _, in := range inputs {
		if got := ExtractCity(in); got == "" {
			t.Fatalf("ExtractCity(%q) returned empty string", in)
		}
	}
}

func TestStripSurrogates(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"clean text untouched", "Day 1: Arrival in Paris", "Day 1: Arrival in Paris"},
		{"invalid bytes removed", "Par\xed\xa0\x80is", "Paris"},
		{"lone invalid byte removed", "a\xffb", "ab"},
		{"valid multibyte kept", "café — 東京", "café — 東京"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripSurrogates(tt.in); got != tt.want {
				t.Fatalf("StripSurrogates(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
