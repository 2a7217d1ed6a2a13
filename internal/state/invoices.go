package state

import "github.com/miloscript/monify/internal/model"

// InvoicesSlice owns issued invoices. Invoices carry frozen copies of the
// company and client as they were at creation; nothing here reaches back
// into the clients slice.
type InvoicesSlice struct {
	Invoices []model.Invoice
}

// UpsertInvoice inserts or replaces an invoice by id.
func (s InvoicesSlice) UpsertInvoice(inv model.Invoice) InvoicesSlice {
	s.Invoices = UpsertByID(s.Invoices, inv)
	return s
}

// RemoveInvoice drops an invoice. A missing id is a no-op.
func (s InvoicesSlice) RemoveInvoice(id string) InvoicesSlice {
	s.Invoices = RemoveByID(s.Invoices, id)
	return s
}
