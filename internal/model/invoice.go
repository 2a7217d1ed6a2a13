package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceProject is a billed line item: a frozen copy of the project plus
// the hours worked.
type InvoiceProject struct {
	Project Project         `json:"project"`
	Hours   decimal.Decimal `json:"hours"`
}

// Invoice freezes copies of the issuing company and the billed client at
// creation time, so historical invoices stay stable when client or company
// data changes later.
type Invoice struct {
	ID                string           `json:"id"`
	CreatedAt         time.Time        `json:"createdAt"`
	Date              time.Time        `json:"date"`
	Number            string           `json:"number"`
	PerformancePeriod string           `json:"performancePeriod"`
	From              Company          `json:"from"`
	To                Client           `json:"to"`
	Items             []InvoiceProject `json:"items"`
}

// Key returns the invoice id.
func (i Invoice) Key() string { return i.ID }
