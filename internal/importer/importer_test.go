package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/miloscript/monify/internal/model"
)

const intesaHeader = "valueDate;beneficiaryOrderingParty;beneficiaryOrderingAddress;beneficiaryAccountNumber;paymentCode;paymentPurpose;debitModel;debitReferenceNumber;creditModel;creditReferenceNumber;debitAmount;creditAmount;yourReferenceNumber;complaintNumber;paymentReferenceNumber"

const intesaSample = intesaHeader + "\n" +
	"01.03.2024;ACME GMBH;BERLIN;160-0000000000001-01;221;INVOICE 2024-001;;;97;123456789;;1.250,00;;;\n" +
	"15.03.2024;ELEKTRODISTRIBUCIJA;BEOGRAD;205-0000000000002-02;289;ELECTRICITY FEB;97;987654;;;4.380,50;;REF-1;;PR-42\n"

func TestIntesaParserParse(t *testing.T) {
	p := &IntesaParser{}
	txns, err := p.Parse(strings.NewReader(intesaSample))
	require.NoError(t, err)
	require.Len(t, txns, 2)

	first := txns[0]
	assert.Equal(t, 2024, first.ValueDate.Year())
	assert.Equal(t, 3, int(first.ValueDate.Month()))
	assert.Equal(t, 1, first.ValueDate.Day())
	assert.Equal(t, "ACME GMBH", first.BeneficiaryOrderingParty)
	assert.Equal(t, "INVOICE 2024-001", first.PaymentPurpose)
	assert.Equal(t, "1250.00", first.CreditAmount.StringFixed(2))
	assert.True(t, first.DebitAmount.IsZero())
	assert.NotEmpty(t, first.ID)

	second := txns[1]
	assert.Equal(t, "4380.50", second.DebitAmount.StringFixed(2))
	assert.Equal(t, "97", second.DebitModel)
	assert.Equal(t, "PR-42", second.PaymentReferenceNumber)
}

func TestIntesaParserMintsFreshIDs(t *testing.T) {
	p := &IntesaParser{}

	a, err := p.Parse(strings.NewReader(intesaSample))
	require.NoError(t, err)
	b, err := p.Parse(strings.NewReader(intesaSample))
	require.NoError(t, err)

	// Same rows, different ids: identity is never stable across parses.
	assert.NotEqual(t, a[0].ID, b[0].ID)
}

func TestIntesaParserHeaderOnly(t *testing.T) {
	p := &IntesaParser{}
	txns, err := p.Parse(strings.NewReader(intesaHeader + "\n"))
	require.NoError(t, err)
	assert.Empty(t, txns)
}

func TestIntesaParserBadDate(t *testing.T) {
	p := &IntesaParser{}
	_, err := p.Parse(strings.NewReader(intesaHeader + "\n2024-03-01;X;;;;;;;;;;;;;\n"))
	assert.Error(t, err)
}

func TestPersonalParserParse(t *testing.T) {
	sample := "date;amount;balance;description;direction\n" +
		"01.03.2024;4.500,00;104.500,00;salary;in\n" +
		"02.03.2024;1.200,00;103.300,00;rent;out\n"

	p := &PersonalParser{}
	txns, err := p.Parse(strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, txns, 2)

	assert.Equal(t, model.PersonalIn, txns[0].Type)
	assert.Equal(t, "4500.00", txns[0].Amount.StringFixed(2))
	assert.Equal(t, "103300.00", txns[1].Balance.StringFixed(2))
	assert.Equal(t, model.PersonalOut, txns[1].Type)
}

func TestPersonalParserRejectsUnknownDirection(t *testing.T) {
	sample := "date;amount;balance;description;direction\n" +
		"01.03.2024;1,00;1,00;x;sideways\n"

	p := &PersonalParser{}
	_, err := p.Parse(strings.NewReader(sample))
	assert.Error(t, err)
}

func TestRegistry(t *testing.T) {
	r := DefaultRegistry()

	assert.NotNil(t, r.Get("intesa"))
	assert.NotNil(t, r.Get("INTESA"))
	assert.Nil(t, r.Get("unknown"))

	assert.Panics(t, func() { r.Register(&IntesaParser{}) })
}

func TestScanAndMarkProcessed(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "march.csv"), []byte(intesaSample), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip me"), 0o644))

	files, err := Scan(dir)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "march.csv", files[0].Name)

	require.NoError(t, MarkProcessed(dir, "march.csv"))

	files, err = Scan(dir)
	require.NoError(t, err)
	assert.Empty(t, files)

	_, err = os.Stat(filepath.Join(dir, "processed", "march.csv"))
	assert.NoError(t, err)
}

func TestScanMissingDir(t *testing.T) {
	files, err := Scan(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Empty(t, files)
}
