// Package store holds the read-only store entities the payment bridge looks up
// while assembling a checkout: currencies, addresses, countries, states,
// products and customers.
package store

import "github.com/shopspring/decimal"

type Currency struct {
	ID           int
	Name         string
	CurrencyCode string
	// Rate converts one unit of the primary store currency into this currency.
	Rate decimal.Decimal
}

type Address struct {
	ID              int
	FirstName       string
	LastName        string
	Email           string
	Address1        string
	Address2        string
	City            string
	ZipPostalCode   string
	CountryID       *int
	StateProvinceID *int
}

// FullName joins first and last name the way the gateway expects the buyer name.
func (a Address) FullName() string {
	return a.FirstName + " " + a.LastName
}

type Country struct {
	ID               int
	Name             string
	TwoLetterISOCode string
}

type StateProvince struct {
	ID           int
	CountryID    int
	Name         string
	Abbreviation string
}

type Product struct {
	ID   int
	Name string
}

type Customer struct {
	ID    int
	Email string
}

// ConvertFromPrimary converts an amount expressed in the primary store currency.
func ConvertFromPrimary(amount decimal.Decimal, target Currency) decimal.Decimal {
	return amount.Mul(target.Rate)
}
