package spending

import (
	"sort"

	"github.com/SscSPs/ecobudget_backend/internal/core/domain"
)

// LastN returns the n chronologically latest transactions, oldest first.
// Ordering uses the date prefix with ties kept in input order.
// A non-positive n disables windowing and returns txns unchanged.
func LastN(txns []domain.Transaction, n int) []domain.Transaction {
	if n <= 0 {
		return txns
	}
	sorted := make([]domain.Transaction, len(txns))
	copy(sorted, txns)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].DateKey() < sorted[j].DateKey()
	})
	if n >= len(sorted) {
		return sorted
	}
	return sorted[len(sorted)-n:]
}

// LatestDate returns the most recent parseable transaction date.
func LatestDate(txns []domain.Transaction) (domain.Transaction, bool) {
	var latest domain.Transaction
	found := false
	for _, t := range txns {
		if _, ok := t.ParsedDate(); !ok {
			continue
		}
		if !found || t.DateKey() > latest.DateKey() {
			latest = t
			found = true
		}
	}
	return latest, found
}
