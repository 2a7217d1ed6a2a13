package reconcile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/miloscript/monify/internal/model"
)

func TestSortedByValueDateStableDescending(t *testing.T) {
	day := func(y, m, d int) time.Time { return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC) }

	txns := []model.BankTransaction{
		{ID: "first-march", ValueDate: day(2024, 3, 15)},
		{ID: "second-march", ValueDate: day(2024, 3, 15)},
		{ID: "january", ValueDate: day(2024, 1, 1)},
	}

	sorted := SortedByValueDate(txns)

	// Both March 15 entries keep their insertion order, January sorts last.
	assert.Equal(t, "first-march", sorted[0].ID)
	assert.Equal(t, "second-march", sorted[1].ID)
	assert.Equal(t, "january", sorted[2].ID)

	// Input untouched.
	assert.Equal(t, "first-march", txns[0].ID)
}

func TestSortedByValueDateDoesNotShareBacking(t *testing.T) {
	txns := []model.BankTransaction{
		{ID: "a", ValueDate: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
		{ID: "b", ValueDate: time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)},
	}

	sorted := SortedByValueDate(txns)
	sorted[0].ID = "mutated"

	assert.Equal(t, "a", txns[0].ID)
}
