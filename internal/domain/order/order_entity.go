package order

import (
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID                      int
	StoreID                 int
	CustomerID              int
	BillingAddressID        int
	ShippingAddressID       *int
	OrderShippingInclTax    decimal.Decimal
	OrderTotal              decimal.Decimal
	PaymentMethodSystemName string
	Status                  Status
	PaymentStatus           PaymentStatus
	PaidAt                  *time.Time
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// Reference is the string the gateway stores for this order, used both when
// registering the checkout and when searching transactions later on.
func (o Order) Reference() string {
	return strconv.Itoa(o.ID)
}

// CanBeMarkedAsPaid holds while the order is live and no money has settled or been returned.
func (o Order) CanBeMarkedAsPaid() bool {
	if o.Status == StatusCancelled {
		return false
	}
	return !slices.Contains([]PaymentStatus{PaymentStatusPaid, PaymentStatusRefunded, PaymentStatusVoided}, o.PaymentStatus)
}

type OrderItem struct {
	ID               int
	OrderID          int
	ProductID        int
	Quantity         int
	UnitPriceInclTax decimal.Decimal
	ItemWeight       *decimal.Decimal
}

// Status is the order processing status.
type Status int

const (
	StatusPending    Status = 10
	StatusProcessing Status = 20
	StatusComplete   Status = 30
	StatusCancelled  Status = 40
)

type PaymentStatus int

const (
	PaymentStatusPending           PaymentStatus = 10
	PaymentStatusAuthorized        PaymentStatus = 20
	PaymentStatusPaid              PaymentStatus = 30
	PaymentStatusPartiallyRefunded PaymentStatus = 35
	PaymentStatusRefunded          PaymentStatus = 40
	PaymentStatusVoided            PaymentStatus = 50
)

var AvailablePaymentStatuses = []PaymentStatus{
	PaymentStatusPending, PaymentStatusAuthorized, PaymentStatusPaid,
	PaymentStatusPartiallyRefunded, PaymentStatusRefunded, PaymentStatusVoided,
}

func NewPaymentStatus(raw int) (PaymentStatus, error) {
	if slices.Contains(AvailablePaymentStatuses, PaymentStatus(raw)) {
		return PaymentStatus(raw), nil
	}
	return 0, fmt.Errorf("%w: payment status %d", ErrInvalidStatus, raw)
}

func NewStatus(raw int) (Status, error) {
	switch s := Status(raw); s {
	case StatusPending, StatusProcessing, StatusComplete, StatusCancelled:
		return s, nil
	}
	return 0, fmt.Errorf("%w: order status %d", ErrInvalidStatus, raw)
}

// Note is an audit line attached to an order.
type Note struct {
	OrderID   int
	Text      string
	CreatedAt time.Time
}

type OrdersQuery struct {
	IDs             []int
	StoreID         *int
	PaymentMethods  []string
	PaymentStatuses []PaymentStatus
	ForUpdate       bool
}

func (q *OrdersQuery) Validate() error {
	for _, id := range q.IDs {
		if id <= 0 {
			return fmt.Errorf("order id must be positive, got %d", id)
		}
	}
	for _, s := range q.PaymentStatuses {
		if _, err := NewPaymentStatus(int(s)); err != nil {
			return err
		}
	}
	if q.ForUpdate && len(q.IDs) == 0 {
		return fmt.Errorf("row lock requires explicit ids")
	}
	return nil
}

type OrdersQueryBuilder struct {
	query *OrdersQuery
}

func NewOrdersQueryBuilder() *OrdersQueryBuilder {
	return &OrdersQueryBuilder{query: &OrdersQuery{}}
}

func (b *OrdersQueryBuilder) Build() (*OrdersQuery, error) {
	if err := b.query.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidQuery, err.Error())
	}
	return b.query, nil
}

func (b *OrdersQueryBuilder) WithIDs(ids ...int) *OrdersQueryBuilder {
	b.query.IDs = ids
	return b
}

func (b *OrdersQueryBuilder) WithStore(storeID int) *OrdersQueryBuilder {
	b.query.StoreID = &storeID
	return b
}

func (b *OrdersQueryBuilder) WithPaymentMethods(methods ...string) *OrdersQueryBuilder {
	b.query.PaymentMethods = methods
	return b
}

func (b *OrdersQueryBuilder) WithPaymentStatuses(statuses ...PaymentStatus) *OrdersQueryBuilder {
	b.query.PaymentStatuses = statuses
	return b
}

func (b *OrdersQueryBuilder) ForUpdate() *OrdersQueryBuilder {
	b.query.ForUpdate = true
	return b
}

// SearchFilter selects orders waiting for a gateway payment.
type SearchFilter struct {
	StoreID         int
	PaymentMethod   string
	PaymentStatuses []PaymentStatus
}
