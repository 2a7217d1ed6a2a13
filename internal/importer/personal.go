package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/miloscript/monify/internal/id"
	"github.com/miloscript/monify/internal/model"
)

// PersonalParser parses the simple personal-account export
// (date;amount;balance;description;direction).
type PersonalParser struct{}

const (
	personalNumFields = 5

	personalColDate    = 0
	personalColAmount  = 1
	personalColBalance = 2
	personalColDesc    = 3
	personalColType    = 4
)

// Parse reads a personal export and returns transaction candidates with
// freshly minted ids.
func (p *PersonalParser) Parse(r io.Reader) ([]model.PersonalTransaction, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.FieldsPerRecord = personalNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading personal CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var txns []model.PersonalTransaction
	for i, rec := range records[1:] {
		txn, err := parsePersonalRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

func parsePersonalRow(rec []string) (model.PersonalTransaction, error) {
	date, err := time.Parse(intesaDateFormat, rec[personalColDate])
	if err != nil {
		return model.PersonalTransaction{}, fmt.Errorf("parsing date %q: %w", rec[personalColDate], err)
	}

	amount, err := parseAmount(rec[personalColAmount])
	if err != nil {
		return model.PersonalTransaction{}, fmt.Errorf("parsing amount %q: %w", rec[personalColAmount], err)
	}
	balance, err := parseAmount(rec[personalColBalance])
	if err != nil {
		return model.PersonalTransaction{}, fmt.Errorf("parsing balance %q: %w", rec[personalColBalance], err)
	}

	dir := model.PersonalTransactionType(rec[personalColType])
	if dir != model.PersonalIn && dir != model.PersonalOut {
		return model.PersonalTransaction{}, fmt.Errorf("unknown direction %q", rec[personalColType])
	}

	return model.PersonalTransaction{
		ID:          id.New(),
		ValueDate:   date,
		Amount:      amount,
		Balance:     balance,
		Description: rec[personalColDesc],
		Type:        dir,
	}, nil
}
