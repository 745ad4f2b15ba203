package gateway

import "github.com/shopspring/decimal"

// Placeholders for fields the gateway requires but the order model cannot provide.
const (
	// NumberPlaceholder fills the house-number field; orders keep the number inside the street line.
	NumberPlaceholder = "."
	// UnresolvedPlaceholder stands in for a country or state that is unset or unknown.
	UnresolvedPlaceholder = "*"
)

type ShippingType int

const (
	ShippingTypePAC          ShippingType = 1
	ShippingTypeSEDEX        ShippingType = 2
	ShippingTypeNotSpecified ShippingType = 3
)

// PaymentRequest is the checkout payload submitted to the gateway.
type PaymentRequest struct {
	Currency  string
	Reference string
	Items     []Item
	Shipping  Shipping
	Sender    Sender
}

type Item struct {
	ID          string
	Description string
	Amount      decimal.Decimal
	Quantity    int
	// Weight in grams, nil when the line item has none.
	Weight *int64
}

type Shipping struct {
	Type    ShippingType
	Cost    decimal.Decimal
	Address *Address
}

type Address struct {
	Street     string
	Number     string
	Complement string
	District   string
	City       string
	State      string
	Country    string
	PostalCode string
}

type Sender struct {
	Name  string
	Email string
}
