package state

import "github.com/miloscript/monify/internal/model"

// State is the canonical composed tree: every slice under its own name.
type State struct {
	User     UserSlice
	Clients  ClientsSlice
	Invoices InvoicesSlice
	Banking  BankingSlice
	Personal PersonalSlice
	Theme    ThemeSlice
}

// LegacyUser is the nesting older consumers expect: clients, invoices and
// the project-field schema hang under the user instead of standing alone.
type LegacyUser struct {
	Company       model.Company
	ProjectFields []model.ProjectField
	Clients       []model.Client
	Invoices      []model.Invoice
}

// LegacyView is the derived back-compat shape of the same tree. It is
// recomputed synchronously on every mutation, so it never lags the
// canonical view.
type LegacyView struct {
	User  LegacyUser
	Theme model.ThemeConfig
}

// Legacy projects the canonical tree into the legacy nesting. Pure; the
// projected slices are the same ones the canonical view holds.
func Legacy(s State) LegacyView {
	return LegacyView{
		User: LegacyUser{
			Company:       s.User.Company,
			ProjectFields: s.User.ProjectFields,
			Clients:       s.Clients.Clients,
			Invoices:      s.Invoices.Invoices,
		},
		Theme: s.Theme.Config,
	}
}

// FromDocument populates a tree from a loaded document. A nil document
// yields the default empty tree.
func FromDocument(doc *model.Document) State {
	if doc == nil {
		return State{}
	}
	return State{
		User: UserSlice{
			Company:       doc.Company,
			ProjectFields: doc.ProjectFields,
		},
		Clients:  ClientsSlice{Clients: doc.Clients},
		Invoices: InvoicesSlice{Invoices: doc.Invoices},
		Banking: BankingSlice{
			Accounts: doc.BankAccounts,
			Labels:   doc.Labels,
		},
		Personal: PersonalSlice{
			Accounts: doc.PersonalAccounts,
			Labels:   doc.PersonalLabels,
		},
		Theme: ThemeSlice{Config: doc.Theme},
	}
}

// ToDocument snapshots a tree into the persisted document shape. Mutators
// never edit shared slices in place, so handing the snapshot to an
// asynchronous writer is safe.
func ToDocument(s State) *model.Document {
	return &model.Document{
		Company:          s.User.Company,
		ProjectFields:    s.User.ProjectFields,
		Clients:          s.Clients.Clients,
		Invoices:         s.Invoices.Invoices,
		BankAccounts:     s.Banking.Accounts,
		Labels:           s.Banking.Labels,
		PersonalAccounts: s.Personal.Accounts,
		PersonalLabels:   s.Personal.Labels,
		Theme:            s.Theme.Config,
	}
}
