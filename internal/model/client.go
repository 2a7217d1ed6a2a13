package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// HourlyRate is a billing rate active from a given date. Rates are kept in
// the order they were entered; the newest applicable one wins at invoicing.
type HourlyRate struct {
	Rate       decimal.Decimal `json:"rate"`
	DateActive time.Time       `json:"dateActive"`
}

// Client is a company the user bills, with its projects and rate history.
type Client struct {
	ID          string       `json:"id"`
	Company     Company      `json:"company"`
	HourlyRates []HourlyRate `json:"hourlyRates"`
	Projects    []Project    `json:"projects"`
}

// Key returns the client id.
func (c Client) Key() string { return c.ID }

// Project belongs to exactly one client. ClientID is a back-reference only;
// the client's Projects list is the owning side.
type Project struct {
	ID               string            `json:"id"`
	ClientID         string            `json:"clientId"`
	Name             string            `json:"name"`
	HourlyRates      []HourlyRate      `json:"hourlyRates"`
	AdditionalFields []AdditionalField `json:"additionalFields"`
}

// Key returns the project id.
func (p Project) Key() string { return p.ID }

// ProjectField describes one user-defined column shared by all projects.
// Index is the stable key entries are stored under; Value is the display
// label and may be renamed without touching existing entries.
type ProjectField struct {
	ID    string `json:"id"`
	Index string `json:"index"`
	Value string `json:"value"`
}

// Key returns the field id.
func (f ProjectField) Key() string { return f.ID }

// AdditionalField is one project's value for a ProjectField. FieldID and
// Index are captured at entry time, so later renames or removals of the
// descriptor never rewrite what was entered.
type AdditionalField struct {
	FieldID string `json:"fieldId"`
	Index   string `json:"index"`
	Value   string `json:"value"`
}
