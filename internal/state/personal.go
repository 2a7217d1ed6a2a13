package state

import (
	"github.com/miloscript/monify/internal/model"
	"github.com/miloscript/monify/internal/reconcile"
)

// PersonalSlice is the private-bookkeeping counterpart of BankingSlice,
// with its own accounts and label set.
type PersonalSlice struct {
	Accounts []model.PersonalAccount
	Labels   []model.TransactionLabel
}

// UpsertAccount inserts or replaces a personal account by id.
func (s PersonalSlice) UpsertAccount(a model.PersonalAccount) PersonalSlice {
	s.Accounts = UpsertByID(s.Accounts, a)
	return s
}

// RemoveAccount drops a personal account.
func (s PersonalSlice) RemoveAccount(id string) PersonalSlice {
	s.Accounts = RemoveByID(s.Accounts, id)
	return s
}

// ImportTransactions merges a parsed batch into the account's history.
// An unknown account leaves the slice unchanged and reports zero.
func (s PersonalSlice) ImportTransactions(accountID string, batch []model.PersonalTransaction) (PersonalSlice, int) {
	for i := range s.Accounts {
		if s.Accounts[i].ID != accountID {
			continue
		}
		a := s.Accounts[i]
		merged, appended := reconcile.MergePersonal(a.Transactions, batch)
		a.Transactions = merged
		s.Accounts = UpsertByID(s.Accounts, a)
		return s, appended
	}
	return s, 0
}

// LabelTransactions assigns labelID to the named transactions of one account.
func (s PersonalSlice) LabelTransactions(accountID string, txnIDs []string, labelID string) PersonalSlice {
	for i := range s.Accounts {
		if s.Accounts[i].ID != accountID {
			continue
		}
		a := s.Accounts[i]
		a.Transactions = reconcile.AssignPersonalLabel(a.Transactions, txnIDs, labelID)
		s.Accounts = UpsertByID(s.Accounts, a)
		return s
	}
	return s
}

// UpsertLabel inserts or replaces a personal label by id.
func (s PersonalSlice) UpsertLabel(l model.TransactionLabel) PersonalSlice {
	s.Labels = UpsertByID(s.Labels, l)
	return s
}

// RemoveLabel drops a personal label, leaving any references dangling.
func (s PersonalSlice) RemoveLabel(id string) PersonalSlice {
	s.Labels = RemoveByID(s.Labels, id)
	return s
}
