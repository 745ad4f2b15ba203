package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"

	"PagSeguroBridge/internal/domain/payment"
	"PagSeguroBridge/pkg/correlation"
	"PagSeguroBridge/pkg/metrics"
)

// ErrRunInProgress is returned by RunOnce when another cycle has not finished yet.
var ErrRunInProgress = errors.New("reconciliation already running")

type Reconciler interface {
	ReconcilePendingPayments(ctx context.Context) (payment.Report, error)
}

// Scheduler triggers reconciliation cycles on a fixed interval. At most one cycle
// runs at a time per process, whether started by the ticker or by RunOnce.
type Scheduler struct {
	reconciler Reconciler
	interval   time.Duration
	mu         sync.Mutex
}

func New(reconciler Reconciler, interval time.Duration) *Scheduler {
	return &Scheduler{reconciler: reconciler, interval: interval}
}

// Start runs a cycle immediately and then every interval until ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) {
	slog.InfoContext(ctx, "Reconciliation scheduler started", "interval", s.interval.String())

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		if _, err := s.RunOnce(ctx); errors.Is(err, ErrRunInProgress) {
			slog.WarnContext(ctx, "Skipping tick, previous reconciliation still running")
		}

		select {
		case <-ctx.Done():
			slog.Info("Reconciliation scheduler stopped")
			return
		case <-ticker.C:
		}
	}
}

// RunOnce executes one reconciliation cycle unless one is already in progress.
func (s *Scheduler) RunOnce(ctx context.Context) (report payment.Report, err error) {
	if !s.mu.TryLock() {
		return payment.Report{}, ErrRunInProgress
	}
	defer s.mu.Unlock()

	ctx = correlation.WithID(ctx, correlation.NewRunID())
	start := time.Now()

	defer func() {
		if rec := recover(); rec != nil {
			slog.ErrorContext(ctx, "Reconciliation panic recovered",
				"panic", rec,
				"stack", string(debug.Stack()))
			err = fmt.Errorf("reconciliation panic: %v", rec)
		}
		observe(report, err, start)
	}()

	report, err = s.reconciler.ReconcilePendingPayments(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "Reconciliation finished with errors",
			"pending", report.Pending,
			"paid", report.Count(payment.OutcomePaid),
			slog.Any("error", err))
		return report, err
	}

	slog.InfoContext(ctx, "Reconciliation finished",
		"pending", report.Pending,
		"paid", report.Count(payment.OutcomePaid),
		"lookup_failed", report.Count(payment.OutcomeLookupFailed),
		"duration_ms", time.Since(start).Milliseconds())
	return report, nil
}

func observe(report payment.Report, err error, start time.Time) {
	result := "ok"
	if err != nil {
		result = "error"
	} else {
		metrics.ReconcileLastSuccess.SetToCurrentTime()
	}
	metrics.ReconcileRunsTotal.WithLabelValues(result).Inc()
	metrics.ReconcileDuration.Observe(time.Since(start).Seconds())
	for outcome, n := range report.Outcomes {
		metrics.ReconcileOrdersTotal.WithLabelValues(string(outcome)).Add(float64(n))
	}
}
