package importer

import (
	"strings"
	"unicode"
)

// fieldDelimiters are every way the source exports join multiple keywords
// into one free-text field. All of them are normalized in a single pass:
// picking only the first delimiter type found in the string mis-parses
// mixed-delimiter input like "JavaScript, React; Node.js | Express and
// MongoDB" as a single keyword.
var fieldDelimiters = []string{",", ";", "|", " and ", " & "}

// sep is the internal separator delimiters are normalized to. The unit
// separator cannot appear in real keyword text.
const sep = "\x1f"

// SplitKeywordField splits a free-text keyword field into normalized
// candidate labels. Slash also acts as a delimiter, but never inside URLs;
// any fragment containing "http" is dropped entirely so URL paths do not
// leak fake keywords.
func SplitKeywordField(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	normalized := text
	for _, d := range fieldDelimiters {
		normalized = strings.ReplaceAll(normalized, d, sep)
	}

	var out []string
	for _, fragment := range strings.Split(normalized, sep) {
		if strings.Contains(fragment, "http") {
			continue
		}
		// Safe to split on slash now: URL fragments are already gone.
		for _, candidate := range strings.Split(fragment, "/") {
			candidate = strings.TrimSpace(candidate)
			if candidate == "" {
				continue
			}
			out = append(out, titleCase(candidate))
		}
	}
	return out
}

// DedupeLabels removes case-insensitive duplicates, keeping first
// occurrences in order.
func DedupeLabels(labels []string) []string {
	seen := make(map[string]struct{}, len(labels))
	out := make([]string, 0, len(labels))
	for _, label := range labels {
		key := strings.ToLower(label)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, label)
	}
	return out
}

// titleCase uppercases the first rune and lowercases the rest, giving
// imported keywords a consistent display form.
func titleCase(s string) string {
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
