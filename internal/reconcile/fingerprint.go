package reconcile

import (
	"strings"
	"time"

	"github.com/miloscript/monify/internal/model"
)

// Statement exports carry no stable row identity: every parse mints fresh
// ids. Duplicate detection therefore compares the full field tuple instead,
// excluding id and labelId.

// fieldSep joins fingerprint parts. Statement fields are plain text and
// never contain the unit separator.
const fieldSep = "\x1f"

// Fingerprint returns a comparison key built from every field of t except
// ID and LabelID. Two transactions with equal fingerprints are treated as
// the same real-world transaction.
func Fingerprint(t model.BankTransaction) string {
	return strings.Join([]string{
		t.ValueDate.UTC().Format(time.RFC3339),
		t.BeneficiaryOrderingParty,
		t.BeneficiaryOrderingAddr,
		t.BeneficiaryAccountNumber,
		t.PaymentCode,
		t.PaymentPurpose,
		t.DebitModel,
		t.DebitReferenceNumber,
		t.CreditModel,
		t.CreditReferenceNumber,
		t.DebitAmount.String(),
		t.CreditAmount.String(),
		t.YourReferenceNumber,
		t.ComplaintNumber,
		t.PaymentReferenceNumber,
	}, fieldSep)
}

// PersonalFingerprint is the personal-account counterpart of Fingerprint.
func PersonalFingerprint(t model.PersonalTransaction) string {
	return strings.Join([]string{
		t.ValueDate.UTC().Format(time.RFC3339),
		t.Amount.String(),
		t.Balance.String(),
		t.Description,
		string(t.Type),
	}, fieldSep)
}
