package messaging

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"PagSeguroBridge/internal/domain/gateway"
	"PagSeguroBridge/internal/domain/order"

	"github.com/shopspring/decimal"
)

const PaymentPaidType = "payment.paid"

// PaymentPaid is published once an order has been marked as paid.
type PaymentPaid struct {
	OrderID           int             `json:"order_id"`
	StoreID           int             `json:"store_id"`
	Reference         string          `json:"reference"`
	TransactionCode   string          `json:"transaction_code"`
	TransactionStatus string          `json:"transaction_status"`
	GrossAmount       decimal.Decimal `json:"gross_amount"`
	OrderTotal        decimal.Decimal `json:"order_total"`
	TransactionDate   time.Time       `json:"transaction_date"`
}

// PaidPublisher announces paid orders, keyed by order id so events of one order stay ordered.
type PaidPublisher struct {
	publisher Publisher
}

func NewPaidPublisher(p Publisher) *PaidPublisher {
	return &PaidPublisher{publisher: p}
}

func (p *PaidPublisher) NotifyPaid(ctx context.Context, o order.Order, tx gateway.TransactionSummary) error {
	env, err := NewEnvelope(strconv.Itoa(o.ID), PaymentPaidType, PaymentPaid{
		OrderID:           o.ID,
		StoreID:           o.StoreID,
		Reference:         o.Reference(),
		TransactionCode:   tx.Code,
		TransactionStatus: tx.Status.String(),
		GrossAmount:       tx.GrossAmount,
		OrderTotal:        o.OrderTotal,
		TransactionDate:   tx.Date,
	})
	if err != nil {
		return fmt.Errorf("build %s envelope: %w", PaymentPaidType, err)
	}

	if err := p.publisher.Publish(ctx, env); err != nil {
		return fmt.Errorf("publish %s for order %d: %w", PaymentPaidType, o.ID, err)
	}
	return nil
}
