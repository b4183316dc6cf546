// README: Best-effort city-name extraction from raw model output.
package planner

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// cityPatterns is a priority chain, not a set of independent attempts: the
// first pattern with ANY structural match owns the decision, even when every
// candidate it yields is rejected by the filters. Later, looser patterns are
// then never consulted and the default city is returned.
var cityPatterns = []*regexp.Regexp{
	// "1. Paris, France" or "1. New York"
	regexp.MustCompile(`1\.\s*([A-Z][a-zA-Z\s]+?)(?:,\s*[A-Z][a-zA-Z\s]+?|\s*[-,:]|\n)`),
	// bullet items
	regexp.MustCompile(`[-*•]\s*([A-Z][a-zA-Z\s]+?)(?:,\s*[A-Z][a-zA-Z\s]+?|\s*[-,:]|\n)`),
	// capitalized run followed by punctuation
	regexp.MustCompile(`\b([A-Z][a-zA-Z\s]+?)\s*[-,:]`),
	// any bare capitalized run, minimum 4 characters
	regexp.MustCompile(`([A-Z][a-zA-Z\s]{3,25})`),
}

// cityStopWords are non-city words that show up in model prose around the
// recommendations. Matched case-insensitively, exact or as a prefix.
var cityStopWords = []string{
	"the", "and", "for", "with", "city", "travel", "trip", "based", "type",
	"perfect", "best", "experience", "plan", "planning", "expert", "reasons",
	"selection",
}

// ExtractCity recovers a single best-guess destination name from raw model
// output. Total: any input, including the empty string, yields a non-empty
// city, falling back to DefaultCity.
func ExtractCity(raw string) string {
	raw = StripSurrogates(raw)

	for _, pattern := range cityPatterns {
		matches := pattern.FindAllStringSubmatch(raw, -1)
		if len(matches) == 0 {
			continue
		}
		for _, m := range matches {
			city := strings.TrimSpace(m[1])
			if acceptCity(city) {
				return city
			}
		}
		return DefaultCity
	}
	return DefaultCity
}

func acceptCity(city string) bool {
	if len(city) <= 2 {
		return false
	}
	lower := strings.ToLower(city)
	if strings.HasSuffix(lower, "city") {
		return false
	}
	for _, stop := range cityStopWords {
		if lower == stop || strings.HasPrefix(lower, stop) {
			return false
		}
	}
	return true
}

// StripSurrogates removes UTF-16 surrogate code points and stray invalid
// bytes from model output so the text is always safe to render and store.
func StripSurrogates(s string) string {
	clean := true
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if (r == utf8.RuneError && size == 1) || (r >= 0xD800 && r <= 0xDFFF) {
			clean = false
			break
		}
		i += size
	}
	if clean {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size
		if (r == utf8.RuneError && size == 1) || (r >= 0xD800 && r <= 0xDFFF) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
