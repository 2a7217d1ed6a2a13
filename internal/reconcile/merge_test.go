package reconcile

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/miloscript/monify/internal/id"
	"github.com/miloscript/monify/internal/model"
)

func bankTxn(day int, amount, purpose string) model.BankTransaction {
	return model.BankTransaction{
		ID:                       id.New(),
		ValueDate:                time.Date(2024, 3, day, 0, 0, 0, 0, time.UTC),
		BeneficiaryOrderingParty: "ACME GMBH",
		PaymentPurpose:           purpose,
		CreditAmount:             decimal.RequireFromString(amount),
	}
}

func TestFingerprintIgnoresIDAndLabel(t *testing.T) {
	a := bankTxn(1, "100", "A")
	b := a
	b.ID = id.New()
	b.LabelID = "some-label"

	assert.Equal(t, Fingerprint(a), Fingerprint(b))
}

func TestFingerprintSensitiveToEveryOtherField(t *testing.T) {
	base := bankTxn(1, "100", "A")

	mutations := map[string]func(*model.BankTransaction){
		"valueDate":    func(x *model.BankTransaction) { x.ValueDate = x.ValueDate.AddDate(0, 0, 1) },
		"party":        func(x *model.BankTransaction) { x.BeneficiaryOrderingParty = "OTHER" },
		"address":      func(x *model.BankTransaction) { x.BeneficiaryOrderingAddr = "ELSEWHERE 1" },
		"account":      func(x *model.BankTransaction) { x.BeneficiaryAccountNumber = "160-1" },
		"paymentCode":  func(x *model.BankTransaction) { x.PaymentCode = "289" },
		"purpose":      func(x *model.BankTransaction) { x.PaymentPurpose = "B" },
		"debitModel":   func(x *model.BankTransaction) { x.DebitModel = "97" },
		"debitRef":     func(x *model.BankTransaction) { x.DebitReferenceNumber = "123" },
		"creditModel":  func(x *model.BankTransaction) { x.CreditModel = "97" },
		"creditRef":    func(x *model.BankTransaction) { x.CreditReferenceNumber = "456" },
		"debitAmount":  func(x *model.BankTransaction) { x.DebitAmount = decimal.NewFromInt(5) },
		"creditAmount": func(x *model.BankTransaction) { x.CreditAmount = decimal.NewFromInt(200) },
		"yourRef":      func(x *model.BankTransaction) { x.YourReferenceNumber = "789" },
		"complaint":    func(x *model.BankTransaction) { x.ComplaintNumber = "1" },
		"paymentRef":   func(x *model.BankTransaction) { x.PaymentReferenceNumber = "0042" },
	}

	for name, mutate := range mutations {
		changed := base
		mutate(&changed)
		assert.NotEqual(t, Fingerprint(base), Fingerprint(changed), "field %s must affect the fingerprint", name)
	}
}

func TestMergeBankIdempotent(t *testing.T) {
	batch := []model.BankTransaction{
		bankTxn(1, "100", "A"),
		bankTxn(2, "50", "B"),
	}

	merged, appended := MergeBank(nil, batch)
	require.Len(t, merged, 2)
	assert.Equal(t, 2, appended)

	// Same export again, freshly parsed ids.
	again := []model.BankTransaction{
		bankTxn(1, "100", "A"),
		bankTxn(2, "50", "B"),
	}
	merged, appended = MergeBank(merged, again)
	assert.Len(t, merged, 2)
	assert.Equal(t, 0, appended)
}

func TestMergeBankOverlappingBatches(t *testing.T) {
	first := []model.BankTransaction{bankTxn(1, "100", "A")}
	second := []model.BankTransaction{
		bankTxn(1, "100", "A"),
		bankTxn(2, "50", "B"),
	}

	merged, _ := MergeBank(nil, first)
	merged, appended := MergeBank(merged, second)

	assert.Len(t, merged, 2)
	assert.Equal(t, 1, appended)
}

func TestMergeBankFirstWriteWins(t *testing.T) {
	stored := bankTxn(1, "100", "A")
	stored.LabelID = "label-1"

	incoming := stored
	incoming.ID = id.New()
	incoming.LabelID = ""

	merged, appended := MergeBank([]model.BankTransaction{stored}, []model.BankTransaction{incoming})
	require.Len(t, merged, 1)
	assert.Equal(t, 0, appended)
	assert.Equal(t, stored.ID, merged[0].ID)
	assert.Equal(t, "label-1", merged[0].LabelID)
}

func TestMergeBankRetainsDistinct(t *testing.T) {
	a := bankTxn(1, "100", "A")
	b := a
	b.ID = id.New()
	b.PaymentPurpose = "B"

	merged, appended := MergeBank([]model.BankTransaction{a}, []model.BankTransaction{b})
	assert.Len(t, merged, 2)
	assert.Equal(t, 1, appended)
}

func TestMergePersonalIdempotent(t *testing.T) {
	txn := model.PersonalTransaction{
		ID:          id.New(),
		ValueDate:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Amount:      decimal.NewFromInt(100),
		Balance:     decimal.NewFromInt(900),
		Description: "groceries",
		Type:        model.PersonalOut,
	}

	merged, appended := MergePersonal(nil, []model.PersonalTransaction{txn})
	require.Len(t, merged, 1)
	assert.Equal(t, 1, appended)

	reparsed := txn
	reparsed.ID = id.New()
	merged, appended = MergePersonal(merged, []model.PersonalTransaction{reparsed})
	assert.Len(t, merged, 1)
	assert.Equal(t, 0, appended)
}
