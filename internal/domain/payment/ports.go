package payment

import (
	"context"

	"PagSeguroBridge/internal/domain/gateway"
	"PagSeguroBridge/internal/domain/order"
	"PagSeguroBridge/internal/domain/store"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source ports.go -destination mock_ports.go -package payment

// Lookups return (nil, nil) when the entity does not exist.

type CurrencyLookup interface {
	GetCurrencyByCode(ctx context.Context, code string) (*store.Currency, error)
	GetCurrencyByID(ctx context.Context, id int) (*store.Currency, error)
	ConvertFromPrimary(ctx context.Context, amount decimal.Decimal, target store.Currency) (decimal.Decimal, error)
}

type AddressLookup interface {
	GetAddressByID(ctx context.Context, id int) (*store.Address, error)
}

type CountryLookup interface {
	GetCountryByID(ctx context.Context, id int) (*store.Country, error)
}

type StateProvinceLookup interface {
	GetStateProvinceByID(ctx context.Context, id int) (*store.StateProvince, error)
}

type ProductLookup interface {
	GetProductByID(ctx context.Context, id int) (*store.Product, error)
}

type CustomerLookup interface {
	GetCustomerByID(ctx context.Context, id int) (*store.Customer, error)
}

type OrderStore interface {
	GetOrderItems(ctx context.Context, orderID int) ([]order.OrderItem, error)
	SearchOrders(ctx context.Context, filter order.SearchFilter) ([]order.Order, error)
}

// OrderProcessing owns the paid transition; MarkAsPaid must tolerate repeated calls.
type OrderProcessing interface {
	CanMarkAsPaid(ctx context.Context, o order.Order) (bool, error)
	MarkAsPaid(ctx context.Context, o order.Order) error
}

// PaidNotifier is told about every order the reconciler marked as paid.
type PaidNotifier interface {
	NotifyPaid(ctx context.Context, o order.Order, tx gateway.TransactionSummary) error
}
