// Package calculator implements the pure split and settlement math: equal
// splits, per-person balance aggregation, and minimal-transfer settlement
// plans. Every function is a deterministic value-in/value-out computation
// with no I/O and no shared state.
package calculator

import (
	"strings"

	"github.com/tabscan/tabscan/internal/models"
)

// EqualSplit divides a total cost evenly among the given participant names.
// Blank and whitespace-only names are filtered out; surviving names are
// trimmed. A zero total or an empty filtered list returns nil: a bill with
// nothing to collect is a valid state, not an error.
//
// Shares use plain floating-point division with no remainder redistribution,
// so the sum of shares may differ from the total by floating-point epsilon.
func EqualSplit(total float64, names []string) []models.Person {
	var filtered []string
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name != "" {
			filtered = append(filtered, name)
		}
	}
	if len(filtered) == 0 || total == 0 {
		return nil
	}

	share := total / float64(len(filtered))
	people := make([]models.Person, len(filtered))
	for i, name := range filtered {
		people[i] = models.Person{Name: name, AmountOwed: share}
	}
	return people
}
