package reconcile

import (
	"sort"

	"github.com/miloscript/monify/internal/model"
)

// SortedByValueDate returns a copy of txns ordered most recent first.
// The sort is stable: transactions sharing a value date keep their
// insertion order.
func SortedByValueDate(txns []model.BankTransaction) []model.BankTransaction {
	out := make([]model.BankTransaction, len(txns))
	copy(out, txns)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ValueDate.After(out[j].ValueDate)
	})
	return out
}

// SortedPersonalByValueDate is SortedByValueDate for personal transactions.
func SortedPersonalByValueDate(txns []model.PersonalTransaction) []model.PersonalTransaction {
	out := make([]model.PersonalTransaction, len(txns))
	copy(out, txns)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ValueDate.After(out[j].ValueDate)
	})
	return out
}
