package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/miloscript/monify/internal/model"
)

func selectorState() State {
	clients := ClientsSlice{}.
		UpsertClient(namedClient("c1", "ACME")).
		UpsertProject(model.Project{ID: "p1", ClientID: "c1", Name: "Website"})

	return State{
		Clients:  clients,
		Invoices: InvoicesSlice{}.UpsertInvoice(model.Invoice{ID: "i1", Number: "2024-001"}),
		Banking:  BankingSlice{}.UpsertLabel(model.TransactionLabel{ID: "l1", Name: "Rent"}),
	}
}

func TestClientByID(t *testing.T) {
	s := selectorState()

	c, ok := ClientByID(s, "c1")
	require.True(t, ok)
	assert.Equal(t, "ACME", c.Company.Name)

	_, ok = ClientByID(s, "missing")
	assert.False(t, ok)
}

func TestProjectByID(t *testing.T) {
	s := selectorState()

	p, ok := ProjectByID(s, "c1", "p1")
	require.True(t, ok)
	assert.Equal(t, "Website", p.Name)

	_, ok = ProjectByID(s, "c1", "missing")
	assert.False(t, ok)

	// Missing client short-circuits, even for a project id that exists
	// elsewhere in the tree.
	_, ok = ProjectByID(s, "missing", "p1")
	assert.False(t, ok)
}

func TestInvoiceByID(t *testing.T) {
	s := selectorState()

	inv, ok := InvoiceByID(s, "i1")
	require.True(t, ok)
	assert.Equal(t, "2024-001", inv.Number)

	_, ok = InvoiceByID(s, "missing")
	assert.False(t, ok)
}

func TestLabelByIDDanglingReference(t *testing.T) {
	s := selectorState()

	l, ok := BankLabelByID(s, "l1")
	require.True(t, ok)
	assert.Equal(t, "Rent", l.Name)

	// A transaction may still point at a deleted label; that resolves to
	// "no label", never an error.
	s.Banking = s.Banking.RemoveLabel("l1")
	_, ok = BankLabelByID(s, "l1")
	assert.False(t, ok)

	_, ok = BankLabelByID(s, "")
	assert.False(t, ok)

	_, ok = PersonalLabelByID(s, "l1")
	assert.False(t, ok)
}
