package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankAccount holds one bank account's imported transaction history.
type BankAccount struct {
	ID           string            `json:"id"`
	Number       string            `json:"number"`
	Bank         string            `json:"bank"`
	Type         string            `json:"type"`
	Transactions []BankTransaction `json:"transactions"`
}

// Key returns the account id.
func (a BankAccount) Key() string { return a.ID }

// BankTransaction mirrors one row of a bank statement export. The id is
// minted fresh on every parse and carries no meaning across imports;
// deduplication works on the remaining fields (see internal/reconcile).
// LabelID is a weak reference: the label may have been deleted since.
type BankTransaction struct {
	ID                       string          `json:"id"`
	ValueDate                time.Time       `json:"valueDate"`
	BeneficiaryOrderingParty string          `json:"beneficiaryOrderingParty"`
	BeneficiaryOrderingAddr  string          `json:"beneficiaryOrderingAddress"`
	BeneficiaryAccountNumber string          `json:"beneficiaryAccountNumber"`
	PaymentCode              string          `json:"paymentCode"`
	PaymentPurpose           string          `json:"paymentPurpose"`
	DebitModel               string          `json:"debitModel"`
	DebitReferenceNumber     string          `json:"debitReferenceNumber"`
	CreditModel              string          `json:"creditModel"`
	CreditReferenceNumber    string          `json:"creditReferenceNumber"`
	DebitAmount              decimal.Decimal `json:"debitAmount"`
	CreditAmount             decimal.Decimal `json:"creditAmount"`
	YourReferenceNumber      string          `json:"yourReferenceNumber"`
	ComplaintNumber          string          `json:"complaintNumber"`
	PaymentReferenceNumber   string          `json:"paymentReferenceNumber"`
	LabelID                  string          `json:"labelId,omitempty"`
}

// Key returns the transaction id.
func (t BankTransaction) Key() string { return t.ID }

// PersonalTransactionType classifies a personal transaction's direction.
type PersonalTransactionType string

const (
	PersonalIn  PersonalTransactionType = "in"
	PersonalOut PersonalTransactionType = "out"
)

// PersonalAccount is the simpler ledger used for private bookkeeping.
type PersonalAccount struct {
	ID           string                `json:"id"`
	Name         string                `json:"name"`
	Transactions []PersonalTransaction `json:"transactions"`
}

// Key returns the account id.
func (a PersonalAccount) Key() string { return a.ID }

// PersonalTransaction is one movement on a personal account.
type PersonalTransaction struct {
	ID          string                  `json:"id"`
	ValueDate   time.Time               `json:"valueDate"`
	Amount      decimal.Decimal         `json:"amount"`
	Balance     decimal.Decimal         `json:"balance"`
	Description string                  `json:"description"`
	Type        PersonalTransactionType `json:"type"`
	LabelID     string                  `json:"labelId,omitempty"`
}

// Key returns the transaction id.
func (t PersonalTransaction) Key() string { return t.ID }

// TransactionLabel tags transactions. Recipient, when set, is a pattern
// matched against beneficiary names to pre-fill label suggestions.
type TransactionLabel struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Recipient string `json:"recipient,omitempty"`
}

// Key returns the label id.
func (l TransactionLabel) Key() string { return l.ID }
