package payment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"PagSeguroBridge/internal/domain/gateway"
	"PagSeguroBridge/internal/domain/order"

	"golang.org/x/sync/errgroup"
)

const defaultGatewayTimeout = 20 * time.Second

type ReconcilerConfig struct {
	StoreID       int
	PaymentMethod string
	// AwaitingStatuses are the payment statuses of orders still waiting for the gateway.
	AwaitingStatuses []order.PaymentStatus
	Credentials      gateway.Credentials
	// GatewayTimeout bounds every transaction lookup.
	GatewayTimeout time.Duration
	// Concurrency is the number of orders checked in parallel; below 2 means sequential.
	Concurrency int
}

// Outcome is what happened to one pending order during a cycle.
type Outcome string

const (
	OutcomeIneligible    Outcome = "ineligible"
	OutcomeNoTransaction Outcome = "no_transaction"
	OutcomeNotPaid       Outcome = "not_paid"
	OutcomePaid          Outcome = "paid"
	OutcomeLookupFailed  Outcome = "lookup_failed"
	OutcomeMarkFailed    Outcome = "mark_failed"
)

// Report summarises one reconciliation cycle.
type Report struct {
	Pending  int
	Outcomes map[Outcome]int
}

func (r Report) Count(o Outcome) int {
	return r.Outcomes[o]
}

// Reconciler marks locally pending orders as paid once the gateway reports a settled
// transaction for them. It keeps no state between cycles.
type Reconciler struct {
	cfg        ReconcilerConfig
	orders     OrderStore
	processing OrderProcessing
	gateway    gateway.Client
	notifier   PaidNotifier
}

func NewReconciler(cfg ReconcilerConfig, orders OrderStore, processing OrderProcessing, client gateway.Client, notifier PaidNotifier) *Reconciler {
	if cfg.GatewayTimeout <= 0 {
		cfg.GatewayTimeout = defaultGatewayTimeout
	}
	return &Reconciler{
		cfg:        cfg,
		orders:     orders,
		processing: processing,
		gateway:    client,
		notifier:   notifier,
	}
}

// TransactionIsPaid is true only for a transaction that is paid or available.
func TransactionIsPaid(tx *gateway.TransactionSummary) bool {
	return tx != nil && tx.Status.Settled()
}

// ReconcilePendingPayments runs one cycle. Lookup failures are logged and counted per
// order; failures to mark an order paid are joined into the returned error. Orders
// already marked stay marked when another order fails.
func (r *Reconciler) ReconcilePendingPayments(ctx context.Context) (Report, error) {
	pending, err := r.orders.SearchOrders(ctx, order.SearchFilter{
		StoreID:         r.cfg.StoreID,
		PaymentMethod:   r.cfg.PaymentMethod,
		PaymentStatuses: r.cfg.AwaitingStatuses,
	})
	if err != nil {
		return Report{}, fmt.Errorf("search pending orders: %w", err)
	}

	outcomes := make([]Outcome, len(pending))
	markErrs := make([]error, len(pending))

	var g errgroup.Group
	g.SetLimit(max(r.cfg.Concurrency, 1))
	for i, o := range pending {
		g.Go(func() error {
			outcomes[i], markErrs[i] = r.reconcileOrder(ctx, o)
			return nil
		})
	}
	_ = g.Wait()

	report := Report{Pending: len(pending), Outcomes: make(map[Outcome]int)}
	for _, oc := range outcomes {
		report.Outcomes[oc]++
	}

	return report, errors.Join(markErrs...)
}

func (r *Reconciler) reconcileOrder(ctx context.Context, o order.Order) (Outcome, error) {
	log := slog.With("order_id", o.ID)

	eligible, err := r.processing.CanMarkAsPaid(ctx, o)
	if err != nil {
		log.ErrorContext(ctx, "Eligibility check failed", slog.Any("error", err))
		return OutcomeLookupFailed, nil
	}
	if !eligible {
		return OutcomeIneligible, nil
	}

	tx, err := r.latestTransaction(ctx, o.Reference())
	if err != nil {
		log.ErrorContext(ctx, "Transaction lookup failed", slog.Any("error", err))
		return OutcomeLookupFailed, nil
	}
	if tx == nil {
		log.DebugContext(ctx, "No gateway transaction yet")
		return OutcomeNoTransaction, nil
	}
	if !TransactionIsPaid(tx) {
		log.DebugContext(ctx, "Transaction not settled", "status", tx.Status.String())
		return OutcomeNotPaid, nil
	}

	if err := r.processing.MarkAsPaid(ctx, o); err != nil {
		log.ErrorContext(ctx, "Failed to mark order as paid",
			"transaction_code", tx.Code,
			slog.Any("error", err))
		return OutcomeMarkFailed, fmt.Errorf("mark order %d as paid: %w", o.ID, err)
	}

	log.InfoContext(ctx, "Order marked as paid",
		"transaction_code", tx.Code,
		"status", tx.Status.String())

	if r.notifier != nil {
		if err := r.notifier.NotifyPaid(ctx, o, *tx); err != nil {
			log.WarnContext(ctx, "Paid notification not published", slog.Any("error", err))
		}
	}
	return OutcomePaid, nil
}

// latestTransaction returns the newest transaction for reference, or nil when the
// gateway has none yet.
func (r *Reconciler) latestTransaction(ctx context.Context, reference string) (*gateway.TransactionSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.GatewayTimeout)
	defer cancel()

	txs, err := r.gateway.SearchByReference(ctx, r.cfg.Credentials, reference)
	if err != nil {
		return nil, err
	}
	if len(txs) == 0 {
		return nil, nil
	}
	return &txs[0], nil
}
