// Package scan converts unstructured recognized text (photographed receipts,
// decoded barcode payloads) into structured line items. Parsing is pure,
// deterministic, and best-effort: malformed lines are silently skipped and a
// block yielding zero items is an empty result, never an error. A partially
// successful scan beats a failure.
package scan

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tabscan/tabscan/internal/models"
)

// itemLinePattern is the structured form of an item line: a name made only of
// letters, spaces, and hyphens, then whitespace, then an optional dollar sign
// and a price with exactly two decimal places. Nothing else before or after.
var itemLinePattern = regexp.MustCompile(`^([A-Za-z][A-Za-z -]*?)\s+\$?(\d+\.\d{2})$`)

// ParseLines extracts items from a newline-delimited text block.
// Output order matches input line order. Items are never inferred from
// multiple lines; multi-line descriptions are not supported.
func ParseLines(text string) []models.ParsedItem {
	var items []models.ParsedItem
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if IsNoise(line) {
			continue
		}
		if item, ok := parseLine(line); ok {
			items = append(items, item)
		}
	}
	return items
}

// parseLine attempts to extract a name and price from one non-noise line.
// It tries the structured pattern first, then falls back to whitespace
// tokenization with the last token as the price.
func parseLine(line string) (models.ParsedItem, bool) {
	var name string
	var price float64

	if m := itemLinePattern.FindStringSubmatch(line); m != nil {
		parsed, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			return models.ParsedItem{}, false
		}
		name = strings.TrimSpace(m[1])
		price = parsed
	} else {
		tokens := strings.Split(line, " ")
		last := strings.TrimPrefix(tokens[len(tokens)-1], "$")
		parsed, err := strconv.ParseFloat(last, 64)
		if err != nil {
			return models.ParsedItem{}, false
		}
		name = strings.TrimSpace(strings.Join(tokens[:len(tokens)-1], " "))
		price = parsed
	}

	if price <= 0 {
		return models.ParsedItem{}, false
	}
	// Re-check the name alone: catches boilerplate like "Total 15.99" whose
	// formatting slipped past line-level filtering.
	if name == "" || IsNoise(name) {
		return models.ParsedItem{}, false
	}

	return models.ParsedItem{Name: name, Price: price, Quantity: 1}, true
}
