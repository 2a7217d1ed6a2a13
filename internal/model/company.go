package model

// Address is a postal address as entered on company and client forms.
type Address struct {
	Street  string `json:"street"`
	Number  string `json:"number"`
	City    string `json:"city"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

// Contact is an optional contact person attached to a company.
type Contact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Company holds the business identity used on outgoing invoices.
// The user owns exactly one; clients embed the same shape.
type Company struct {
	Name    string   `json:"name"`
	TaxID   string   `json:"taxId"`
	Address Address  `json:"address"`
	Contact *Contact `json:"contact,omitempty"`
}
