package order_repo

import (
	"context"
	"fmt"
	"time"

	"PagSeguroBridge/internal/domain/order"
	"PagSeguroBridge/pkg/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var orderColumns = []string{
	"id", "store_id", "customer_id", "billing_address_id", "shipping_address_id",
	"order_shipping_incl_tax", "order_total", "payment_method_system_name",
	"order_status", "payment_status", "paid_at", "created_at", "updated_at",
}

// PgOrderRepo is the main repository
type PgOrderRepo struct {
	pg *postgres.Postgres
	repo
}

func NewPgOrderRepo(pg *postgres.Postgres) order.OrderRepo {
	return &PgOrderRepo{
		pg:   pg,
		repo: repo{db: pg.Pool, builder: pg.Builder},
	}
}

func (r *PgOrderRepo) InTransaction(ctx context.Context, fn func(repo order.TxOrderRepo) error) error {
	return r.pg.InTransaction(ctx, func(tx postgres.Executor) error {
		txRepo := &repo{db: tx, builder: r.pg.Builder}
		return fn(txRepo)
	})
}

type repo struct {
	db      postgres.Executor
	builder squirrel.StatementBuilderType
}

func (r *repo) GetOrders(ctx context.Context, query *order.OrdersQuery) ([]order.Order, error) {
	sql, args, err := r.buildOrdersQuery(query)
	if err != nil {
		return nil, fmt.Errorf("build orders query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	return parseOrderRows(rows)
}

func (r *repo) GetItems(ctx context.Context, orderID int) ([]order.OrderItem, error) {
	sql, args, err := r.builder.
		Select("id", "order_id", "product_id", "quantity", "unit_price_incl_tax", "item_weight").
		From("order_items").
		Where(squirrel.Eq{"order_id": orderID}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build items query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query order items: %w", err)
	}
	defer rows.Close()

	var items []order.OrderItem
	for rows.Next() {
		var it order.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Quantity, &it.UnitPriceInclTax, &it.ItemWeight); err != nil {
			return nil, fmt.Errorf("scan order item row: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order item rows: %w", err)
	}

	return items, nil
}

func (r *repo) MarkPaid(ctx context.Context, orderID int, paidAt time.Time) error {
	query, args, err := r.builder.Update("orders").
		Set("payment_status", int(order.PaymentStatusPaid)).
		Set("paid_at", paidAt).
		Set("updated_at", paidAt).
		Set("order_status", squirrel.Expr("CASE WHEN order_status = ? THEN ? ELSE order_status END",
			int(order.StatusPending), int(order.StatusProcessing))).
		Where(squirrel.Eq{"id": orderID}).
		Where(squirrel.NotEq{"payment_status": int(order.PaymentStatusPaid)}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build mark paid query: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("mark order paid: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("order %d: %w", orderID, order.ErrNotFound)
	}
	return nil
}

func (r *repo) CreateNote(ctx context.Context, note order.Note) error {
	query, args, err := r.builder.Insert("order_notes").
		Columns("order_id", "note", "created_at").
		Values(note.OrderID, note.Text, note.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert note query: %w", err)
	}

	if _, err = r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("create order note: %w", err)
	}
	return nil
}

func (r *repo) buildOrdersQuery(q *order.OrdersQuery) (string, []interface{}, error) {
	query := r.builder.Select(orderColumns...).
		From("orders").
		OrderBy("id")

	if len(q.IDs) > 0 {
		query = query.Where(squirrel.Eq{"id": q.IDs})
	}

	if q.StoreID != nil {
		query = query.Where(squirrel.Eq{"store_id": *q.StoreID})
	}

	if len(q.PaymentMethods) > 0 {
		query = query.Where(squirrel.Eq{"payment_method_system_name": q.PaymentMethods})
	}

	if len(q.PaymentStatuses) > 0 {
		statuses := make([]int, len(q.PaymentStatuses))
		for i, s := range q.PaymentStatuses {
			statuses[i] = int(s)
		}
		query = query.Where(squirrel.Eq{"payment_status": statuses})
	}

	if q.ForUpdate {
		query = query.Suffix("FOR UPDATE")
	}

	return query.ToSql()
}

func parseOrderRows(rows pgx.Rows) ([]order.Order, error) {
	var orders []order.Order
	for rows.Next() {
		var o order.Order
		var rawStatus, rawPaymentStatus int
		err := rows.Scan(
			&o.ID, &o.StoreID, &o.CustomerID, &o.BillingAddressID, &o.ShippingAddressID,
			&o.OrderShippingInclTax, &o.OrderTotal, &o.PaymentMethodSystemName,
			&rawStatus, &rawPaymentStatus, &o.PaidAt, &o.CreatedAt, &o.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan order row: %w", err)
		}

		if o.Status, err = order.NewStatus(rawStatus); err != nil {
			return nil, fmt.Errorf("invalid status in database: %w", err)
		}
		if o.PaymentStatus, err = order.NewPaymentStatus(rawPaymentStatus); err != nil {
			return nil, fmt.Errorf("invalid payment status in database: %w", err)
		}

		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order rows: %w", err)
	}

	return orders, nil
}
