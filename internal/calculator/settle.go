package calculator

import (
	"sort"

	"github.com/tabscan/tabscan/internal/models"
)

// settleEpsilon is the tolerance below which a remaining balance counts as
// settled. Money here is plain float64, so comparisons stay cent-grained.
const settleEpsilon = 0.01

// SettlementPlan converts a balance map into an ordered list of minimal
// pairwise transfers that drives every participant's deviation from the
// average to within a cent of zero.
//
// Participants are sorted by name before the debtor/creditor worklists are
// built, so output is reproducible regardless of map iteration order.
// "Debtor" below follows the settlement sense: the person whose contribution
// is above the fair average, who is owed money back. Creditors owe.
//
// Greedy matching: repeatedly pair the first unresolved debtor with the
// first unresolved creditor, transfer the smaller of the two remaining
// amounts, and advance past anyone whose remainder drops within tolerance.
// At most len(balances)-1 transfers are produced.
func SettlementPlan(balances map[string]float64) []models.Transfer {
	if len(balances) == 0 {
		return nil
	}

	names := make([]string, 0, len(balances))
	var total float64
	for name, amount := range balances {
		names = append(names, name)
		total += amount
	}
	sort.Strings(names)
	average := total / float64(len(names))

	// remaining holds the magnitude of each party's deviation from average.
	var debtors, creditors []string
	remaining := make(map[string]float64, len(names))
	for _, name := range names {
		deviation := balances[name] - average
		switch {
		case deviation > settleEpsilon:
			debtors = append(debtors, name)
			remaining[name] = deviation
		case deviation < -settleEpsilon:
			creditors = append(creditors, name)
			remaining[name] = -deviation
		}
	}

	var transfers []models.Transfer
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		debtor := debtors[i]
		creditor := creditors[j]

		amount := remaining[debtor]
		if remaining[creditor] < amount {
			amount = remaining[creditor]
		}

		if amount > settleEpsilon {
			transfers = append(transfers, models.Transfer{
				From:   creditor,
				To:     debtor,
				Amount: amount,
			})
		}

		remaining[debtor] -= amount
		remaining[creditor] -= amount

		if remaining[debtor] <= settleEpsilon {
			i++
		}
		if remaining[creditor] <= settleEpsilon {
			j++
		}
	}

	return transfers
}
