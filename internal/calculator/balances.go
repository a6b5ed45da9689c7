package calculator

import "github.com/tabscan/tabscan/internal/models"

// AggregateBalances sums the quantity-weighted amount attributed to each
// person from individually assigned items. Unassigned items contribute
// nothing and are not an error.
func AggregateBalances(items []models.TabItem) map[string]float64 {
	balances := make(map[string]float64)
	for _, item := range items {
		if item.AssignedTo == "" {
			continue
		}
		balances[item.AssignedTo] += item.Amount()
	}
	return balances
}
