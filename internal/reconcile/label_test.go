package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/miloscript/monify/internal/model"
)

func TestAssignLabel(t *testing.T) {
	txns := []model.BankTransaction{
		{ID: "t1"}, {ID: "t2"}, {ID: "t3"},
	}

	out := AssignLabel(txns, []string{"t1", "t3", "missing"}, "rent")

	assert.Equal(t, "rent", out[0].LabelID)
	assert.Empty(t, out[1].LabelID)
	assert.Equal(t, "rent", out[2].LabelID)

	// Originals untouched.
	assert.Empty(t, txns[0].LabelID)
}

func TestAssignLabelClears(t *testing.T) {
	txns := []model.BankTransaction{{ID: "t1", LabelID: "rent"}}

	out := AssignLabel(txns, []string{"t1"}, "")
	assert.Empty(t, out[0].LabelID)
}

func TestSuggestLabel(t *testing.T) {
	labels := []model.TransactionLabel{
		{ID: "l1", Name: "Salary"},
		{ID: "l2", Name: "Utilities", Recipient: "elektro"},
		{ID: "l3", Name: "Rent", Recipient: "acme properties"},
	}

	got, ok := SuggestLabel(labels, "ELEKTRODISTRIBUCIJA BEOGRAD")
	require.True(t, ok)
	assert.Equal(t, "l2", got.ID)

	// Labels without a recipient pattern never match.
	_, ok = SuggestLabel(labels, "Salary")
	assert.False(t, ok)

	_, ok = SuggestLabel(labels, "unrelated payee")
	assert.False(t, ok)
}
