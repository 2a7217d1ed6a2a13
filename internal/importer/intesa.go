package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/miloscript/monify/internal/id"
	"github.com/miloscript/monify/internal/model"
)

// IntesaParser parses Banca Intesa business-account statement exports
// (semicolon-separated, one row per transaction).
type IntesaParser struct{}

const (
	intesaDateFormat = "02.01.2006"
	intesaNumFields  = 15

	intesaColValueDate   = 0
	intesaColParty       = 1
	intesaColAddress     = 2
	intesaColAccount     = 3
	intesaColPaymentCode = 4
	intesaColPurpose     = 5
	intesaColDebitModel  = 6
	intesaColDebitRef    = 7
	intesaColCreditModel = 8
	intesaColCreditRef   = 9
	intesaColDebit       = 10
	intesaColCredit      = 11
	intesaColYourRef     = 12
	intesaColComplaint   = 13
	intesaColPaymentRef  = 14
)

// Format returns the parser name.
func (p *IntesaParser) Format() string { return "intesa" }

// Parse reads a statement export and returns transaction candidates with
// freshly minted ids.
func (p *IntesaParser) Parse(r io.Reader) ([]model.BankTransaction, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.FieldsPerRecord = intesaNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading intesa CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var txns []model.BankTransaction
	for i, rec := range records[1:] {
		txn, err := parseIntesaRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

func parseIntesaRow(rec []string) (model.BankTransaction, error) {
	date, err := time.Parse(intesaDateFormat, rec[intesaColValueDate])
	if err != nil {
		return model.BankTransaction{}, fmt.Errorf("parsing value date %q: %w", rec[intesaColValueDate], err)
	}

	debit, err := parseAmount(rec[intesaColDebit])
	if err != nil {
		return model.BankTransaction{}, fmt.Errorf("parsing debit %q: %w", rec[intesaColDebit], err)
	}
	credit, err := parseAmount(rec[intesaColCredit])
	if err != nil {
		return model.BankTransaction{}, fmt.Errorf("parsing credit %q: %w", rec[intesaColCredit], err)
	}

	return model.BankTransaction{
		ID:                       id.New(),
		ValueDate:                date,
		BeneficiaryOrderingParty: rec[intesaColParty],
		BeneficiaryOrderingAddr:  rec[intesaColAddress],
		BeneficiaryAccountNumber: rec[intesaColAccount],
		PaymentCode:              rec[intesaColPaymentCode],
		PaymentPurpose:           rec[intesaColPurpose],
		DebitModel:               rec[intesaColDebitModel],
		DebitReferenceNumber:     rec[intesaColDebitRef],
		CreditModel:              rec[intesaColCreditModel],
		CreditReferenceNumber:    rec[intesaColCreditRef],
		DebitAmount:              debit,
		CreditAmount:             credit,
		YourReferenceNumber:      rec[intesaColYourRef],
		ComplaintNumber:          rec[intesaColComplaint],
		PaymentReferenceNumber:   rec[intesaColPaymentRef],
	}, nil
}

// parseAmount handles the export's "1.234,56" number format. An empty cell
// is zero.
func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	return decimal.NewFromString(s)
}
