package reconcile

import (
	"strings"

	"github.com/miloscript/monify/internal/model"
)

// AssignLabel returns txns with LabelID set to labelID on every transaction
// whose id is in ids. Ids with no matching transaction are ignored.
// Passing an empty labelID clears the label.
func AssignLabel(txns []model.BankTransaction, ids []string, labelID string) []model.BankTransaction {
	want := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}

	out := make([]model.BankTransaction, len(txns))
	copy(out, txns)
	for i := range out {
		if _, ok := want[out[i].ID]; ok {
			out[i].LabelID = labelID
		}
	}
	return out
}

// AssignPersonalLabel is AssignLabel for personal transactions.
func AssignPersonalLabel(txns []model.PersonalTransaction, ids []string, labelID string) []model.PersonalTransaction {
	want := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}

	out := make([]model.PersonalTransaction, len(txns))
	copy(out, txns)
	for i := range out {
		if _, ok := want[out[i].ID]; ok {
			out[i].LabelID = labelID
		}
	}
	return out
}

// SuggestLabel returns the first label whose recipient pattern matches the
// beneficiary name, case-insensitively. The match only pre-fills the label
// picker; the user decides what sticks.
func SuggestLabel(labels []model.TransactionLabel, beneficiary string) (model.TransactionLabel, bool) {
	needle := strings.ToLower(beneficiary)
	for _, l := range labels {
		if l.Recipient == "" {
			continue
		}
		if strings.Contains(needle, strings.ToLower(l.Recipient)) {
			return l, true
		}
	}
	return model.TransactionLabel{}, false
}
