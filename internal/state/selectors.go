package state

import "github.com/miloscript/monify/internal/model"

// Selectors are pure lookups over the composed tree. They report absence
// with a false second return and never panic on missing or dangling ids.

// ClientByID finds a client in the tree.
func ClientByID(s State, id string) (model.Client, bool) {
	for _, c := range s.Clients.Clients {
		if c.ID == id {
			return c, true
		}
	}
	return model.Client{}, false
}

// ProjectByID resolves the client first, then searches its projects. A
// missing client is "not found" regardless of projectID.
func ProjectByID(s State, clientID, projectID string) (model.Project, bool) {
	c, ok := ClientByID(s, clientID)
	if !ok {
		return model.Project{}, false
	}
	for _, p := range c.Projects {
		if p.ID == projectID {
			return p, true
		}
	}
	return model.Project{}, false
}

// InvoiceByID finds an invoice in the tree.
func InvoiceByID(s State, id string) (model.Invoice, bool) {
	for _, inv := range s.Invoices.Invoices {
		if inv.ID == id {
			return inv, true
		}
	}
	return model.Invoice{}, false
}

// BankLabelByID resolves a business label reference. Dangling ids from
// deleted labels come back as not found.
func BankLabelByID(s State, id string) (model.TransactionLabel, bool) {
	return labelByID(s.Banking.Labels, id)
}

// PersonalLabelByID resolves a personal label reference.
func PersonalLabelByID(s State, id string) (model.TransactionLabel, bool) {
	return labelByID(s.Personal.Labels, id)
}

func labelByID(labels []model.TransactionLabel, id string) (model.TransactionLabel, bool) {
	if id == "" {
		return model.TransactionLabel{}, false
	}
	for _, l := range labels {
		if l.ID == id {
			return l, true
		}
	}
	return model.TransactionLabel{}, false
}
