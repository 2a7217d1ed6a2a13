package state

import (
	"github.com/miloscript/monify/internal/model"
	"github.com/miloscript/monify/internal/reconcile"
)

// BankingSlice owns business bank accounts, their imported transaction
// histories and the business label set.
type BankingSlice struct {
	Accounts []model.BankAccount
	Labels   []model.TransactionLabel
}

// UpsertAccount inserts or replaces a bank account by id.
func (s BankingSlice) UpsertAccount(a model.BankAccount) BankingSlice {
	s.Accounts = UpsertByID(s.Accounts, a)
	return s
}

// RemoveAccount drops an account and its transaction history.
func (s BankingSlice) RemoveAccount(id string) BankingSlice {
	s.Accounts = RemoveByID(s.Accounts, id)
	return s
}

// ImportTransactions merges a freshly parsed batch into the account's
// history through the reconciliation engine and reports how many
// transactions were actually appended. An unknown account leaves the slice
// unchanged and reports zero.
func (s BankingSlice) ImportTransactions(accountID string, batch []model.BankTransaction) (BankingSlice, int) {
	for i := range s.Accounts {
		if s.Accounts[i].ID != accountID {
			continue
		}
		a := s.Accounts[i]
		merged, appended := reconcile.MergeBank(a.Transactions, batch)
		a.Transactions = merged
		s.Accounts = UpsertByID(s.Accounts, a)
		return s, appended
	}
	return s, 0
}

// LabelTransactions assigns labelID to the named transactions of one
// account. Unknown account or transaction ids are no-ops.
func (s BankingSlice) LabelTransactions(accountID string, txnIDs []string, labelID string) BankingSlice {
	for i := range s.Accounts {
		if s.Accounts[i].ID != accountID {
			continue
		}
		a := s.Accounts[i]
		a.Transactions = reconcile.AssignLabel(a.Transactions, txnIDs, labelID)
		s.Accounts = UpsertByID(s.Accounts, a)
		return s
	}
	return s
}

// UpsertLabel inserts or replaces a label by id.
func (s BankingSlice) UpsertLabel(l model.TransactionLabel) BankingSlice {
	s.Labels = UpsertByID(s.Labels, l)
	return s
}

// RemoveLabel drops a label. Transactions keep their now-dangling labelId;
// lookups resolve it to "no label".
func (s BankingSlice) RemoveLabel(id string) BankingSlice {
	s.Labels = RemoveByID(s.Labels, id)
	return s
}
