package order

import (
	"context"
	"fmt"
	"time"
)

const paidNote = "Order has been marked as paid by the payment gateway reconciliation"

type OrderService struct {
	orderRepo OrderRepo
	now       func() time.Time
}

func NewOrderService(orderRepo OrderRepo) *OrderService {
	return &OrderService{orderRepo: orderRepo, now: time.Now}
}

func (s *OrderService) GetOrderByID(ctx context.Context, id int) (Order, error) {
	return getOrderByID(ctx, s.orderRepo, id, false)
}

func getOrderByID(ctx context.Context, repo TxOrderRepo, id int, forUpdate bool) (Order, error) {
	b := NewOrdersQueryBuilder().WithIDs(id)
	if forUpdate {
		b.ForUpdate()
	}
	query, err := b.Build()
	if err != nil {
		return Order{}, err
	}

	orders, err := repo.GetOrders(ctx, query)
	if err != nil {
		return Order{}, fmt.Errorf("get order: %w", err)
	}
	if len(orders) == 0 {
		return Order{}, ErrNotFound
	}
	return orders[0], nil
}

func (s *OrderService) GetOrderItems(ctx context.Context, orderID int) ([]OrderItem, error) {
	items, err := s.orderRepo.GetItems(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get items of order %d: %w", orderID, err)
	}
	return items, nil
}

func (s *OrderService) SearchOrders(ctx context.Context, filter SearchFilter) ([]Order, error) {
	if len(filter.PaymentStatuses) == 0 {
		return nil, fmt.Errorf("%w: at least one payment status is required", ErrInvalidQuery)
	}

	query, err := NewOrdersQueryBuilder().
		WithStore(filter.StoreID).
		WithPaymentMethods(filter.PaymentMethod).
		WithPaymentStatuses(filter.PaymentStatuses...).
		Build()
	if err != nil {
		return nil, err
	}

	orders, err := s.orderRepo.GetOrders(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search orders: %w", err)
	}
	return orders, nil
}

func (s *OrderService) CanMarkAsPaid(_ context.Context, o Order) (bool, error) {
	return o.CanBeMarkedAsPaid(), nil
}

// MarkAsPaid re-reads the order under a row lock. An order that is already paid is left
// untouched, so repeated or concurrent calls for the same order are harmless.
func (s *OrderService) MarkAsPaid(ctx context.Context, o Order) error {
	return s.orderRepo.InTransaction(ctx, func(tx TxOrderRepo) error {
		current, err := getOrderByID(ctx, tx, o.ID, true)
		if err != nil {
			return fmt.Errorf("load order: %w", err)
		}

		if current.PaymentStatus == PaymentStatusPaid {
			return nil
		}
		if !current.CanBeMarkedAsPaid() {
			return fmt.Errorf("order %d: %w", current.ID, ErrCannotMarkPaid)
		}

		now := s.now().UTC()
		if err := tx.MarkPaid(ctx, current.ID, now); err != nil {
			return fmt.Errorf("mark order paid: %w", err)
		}

		if err := tx.CreateNote(ctx, Note{OrderID: current.ID, Text: paidNote, CreatedAt: now}); err != nil {
			return fmt.Errorf("store note: %w", err)
		}
		return nil
	})
}
