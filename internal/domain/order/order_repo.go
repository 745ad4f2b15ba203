package order

import (
	"context"
	"time"
)

//go:generate mockgen -source order_repo.go -destination mock_order_repo.go -package order

type OrderRepo interface {
	TxOrderRepo
	InTransaction(ctx context.Context, fn func(repo TxOrderRepo) error) error
}

type TxOrderRepo interface {
	GetOrders(ctx context.Context, query *OrdersQuery) ([]Order, error)
	GetItems(ctx context.Context, orderID int) ([]OrderItem, error)

	// MarkPaid sets the payment status to paid and moves a pending order to processing.
	MarkPaid(ctx context.Context, orderID int, paidAt time.Time) error
	CreateNote(ctx context.Context, note Note) error
}
