package scan

import "strings"

// noiseKeywords is the fixed vocabulary of receipt boilerplate. A line whose
// lowercase form contains any of these anywhere is treated as noise, not an
// item. Matching is substring, not whole-word: permissive on purpose, so
// boilerplate never leaks into the item list even at the cost of occasionally
// discarding a legitimate item whose name contains one of these words.
var noiseKeywords = []string{
	"total",
	"subtotal",
	"tax",
	"discount",
	"change",
	"cash",
	"card",
	"receipt",
	"thank you",
	"store",
	"date",
	"time",
}

// IsNoise reports whether a text line is receipt boilerplate rather than a
// candidate item line. Empty lines (after trimming) are noise.
func IsNoise(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return true
	}
	lower := strings.ToLower(line)
	for _, kw := range noiseKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
