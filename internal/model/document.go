package model

// ThemeConfig holds UI presentation preferences.
type ThemeConfig struct {
	DarkMode bool `json:"darkMode"`
}

// Document is the full persisted profile: everything the application knows,
// serialized as one JSON object. The last fully written document wins.
type Document struct {
	Company          Company            `json:"company"`
	ProjectFields    []ProjectField     `json:"projectFields"`
	Clients          []Client           `json:"clients"`
	Invoices         []Invoice          `json:"invoices"`
	BankAccounts     []BankAccount      `json:"bankAccounts"`
	Labels           []TransactionLabel `json:"labels"`
	PersonalAccounts []PersonalAccount  `json:"personalAccounts"`
	PersonalLabels   []TransactionLabel `json:"personalLabels"`
	Theme            ThemeConfig        `json:"theme"`
}

// NewDocument returns an empty document with all collections initialized.
func NewDocument() *Document {
	return &Document{
		ProjectFields:    []ProjectField{},
		Clients:          []Client{},
		Invoices:         []Invoice{},
		BankAccounts:     []BankAccount{},
		Labels:           []TransactionLabel{},
		PersonalAccounts: []PersonalAccount{},
		PersonalLabels:   []TransactionLabel{},
	}
}
