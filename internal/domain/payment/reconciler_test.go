package payment

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"PagSeguroBridge/internal/domain/gateway"
	"PagSeguroBridge/internal/domain/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type reconcilerFixture struct {
	orders     *MockOrderStore
	processing *MockOrderProcessing
	client     *gateway.MockClient
	notifier   *MockPaidNotifier
}

func newReconcilerFixture(t *testing.T) reconcilerFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	return reconcilerFixture{
		orders:     NewMockOrderStore(ctrl),
		processing: NewMockOrderProcessing(ctrl),
		client:     gateway.NewMockClient(ctrl),
		notifier:   NewMockPaidNotifier(ctrl),
	}
}

func (f reconcilerFixture) reconciler(concurrency int) *Reconciler {
	return NewReconciler(ReconcilerConfig{
		StoreID:          1,
		PaymentMethod:    "Payments.PagSeguro",
		AwaitingStatuses: []order.PaymentStatus{order.PaymentStatusPending},
		Credentials:      testCredentials,
		GatewayTimeout:   time.Second,
		Concurrency:      concurrency,
	}, f.orders, f.processing, f.client, f.notifier)
}

var pendingFilter = order.SearchFilter{
	StoreID:         1,
	PaymentMethod:   "Payments.PagSeguro",
	PaymentStatuses: []order.PaymentStatus{order.PaymentStatusPending},
}

func pendingOrder(id int) order.Order {
	o := order1001()
	o.ID = id
	return o
}

func transaction(reference string, status gateway.TransactionStatus) gateway.TransactionSummary {
	return gateway.TransactionSummary{
		Code:        "TX-" + reference,
		Reference:   reference,
		Status:      status,
		Date:        time.Date(2024, 3, 10, 14, 0, 0, 0, time.UTC),
		GrossAmount: decimal.RequireFromString("28.75"),
	}
}

func TestTransactionIsPaid(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		status   gateway.TransactionStatus
		expected bool
	}{
		{gateway.TransactionStatusUnknown, false},
		{gateway.TransactionStatusWaitingPayment, false},
		{gateway.TransactionStatusInAnalysis, false},
		{gateway.TransactionStatusPaid, true},
		{gateway.TransactionStatusAvailable, true},
		{gateway.TransactionStatusInDispute, false},
		{gateway.TransactionStatusReturned, false},
		{gateway.TransactionStatusCancelled, false},
		{gateway.TransactionStatusDebited, false},
		{gateway.TransactionStatusTemporaryRetention, false},
		{gateway.TransactionStatus(42), false},
	}

	for _, tc := range testCases {
		t.Run(tc.status.String(), func(t *testing.T) {
			t.Parallel()

			tx := transaction("1", tc.status)
			assert.Equal(t, tc.expected, TransactionIsPaid(&tx))
		})
	}

	t.Run("nil", func(t *testing.T) {
		t.Parallel()
		assert.False(t, TransactionIsPaid(nil))
	})
}

func TestReconciler_MarksAvailableOrderOnce(t *testing.T) {
	t.Parallel()

	// Given
	f := newReconcilerFixture(t)
	o := pendingOrder(1001)
	tx := transaction("1001", gateway.TransactionStatusAvailable)

	f.orders.EXPECT().SearchOrders(gomock.Any(), pendingFilter).Return([]order.Order{o}, nil)
	f.processing.EXPECT().CanMarkAsPaid(gomock.Any(), o).Return(true, nil)
	f.client.EXPECT().SearchByReference(gomock.Any(), testCredentials, "1001").
		Return([]gateway.TransactionSummary{tx}, nil)
	f.processing.EXPECT().MarkAsPaid(gomock.Any(), o).Return(nil).Times(1)
	f.notifier.EXPECT().NotifyPaid(gomock.Any(), o, tx).Return(nil)

	// When
	report, err := f.reconciler(1).ReconcilePendingPayments(context.Background())

	// Then
	require.NoError(t, err)
	assert.Equal(t, 1, report.Pending)
	assert.Equal(t, 1, report.Count(OutcomePaid))
}

func TestReconciler_NoTransactionLeavesOrderUnchanged(t *testing.T) {
	t.Parallel()

	f := newReconcilerFixture(t)
	o := pendingOrder(1002)

	f.orders.EXPECT().SearchOrders(gomock.Any(), pendingFilter).Return([]order.Order{o}, nil)
	f.processing.EXPECT().CanMarkAsPaid(gomock.Any(), o).Return(true, nil)
	f.client.EXPECT().SearchByReference(gomock.Any(), testCredentials, "1002").Return(nil, nil)

	report, err := f.reconciler(1).ReconcilePendingPayments(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, report.Count(OutcomeNoTransaction))
	assert.Zero(t, report.Count(OutcomePaid))
}

func TestReconciler_NeverMarksUnsettledTransactions(t *testing.T) {
	t.Parallel()

	statuses := []gateway.TransactionStatus{
		gateway.TransactionStatusUnknown,
		gateway.TransactionStatusWaitingPayment,
		gateway.TransactionStatusInAnalysis,
		gateway.TransactionStatusInDispute,
		gateway.TransactionStatusReturned,
		gateway.TransactionStatusCancelled,
		gateway.TransactionStatusDebited,
		gateway.TransactionStatusTemporaryRetention,
	}

	for _, status := range statuses {
		t.Run(status.String(), func(t *testing.T) {
			t.Parallel()

			f := newReconcilerFixture(t)
			o := pendingOrder(1003)

			f.orders.EXPECT().SearchOrders(gomock.Any(), pendingFilter).Return([]order.Order{o}, nil)
			f.processing.EXPECT().CanMarkAsPaid(gomock.Any(), o).Return(true, nil)
			f.client.EXPECT().SearchByReference(gomock.Any(), testCredentials, "1003").
				Return([]gateway.TransactionSummary{transaction("1003", status)}, nil)

			report, err := f.reconciler(1).ReconcilePendingPayments(context.Background())

			require.NoError(t, err)
			assert.Equal(t, 1, report.Count(OutcomeNotPaid))
		})
	}
}

func TestReconciler_UsesLatestTransactionOnly(t *testing.T) {
	t.Parallel()

	f := newReconcilerFixture(t)
	o := pendingOrder(1004)

	// Newest first: a cancelled retry after an older paid attempt is not paid.
	f.orders.EXPECT().SearchOrders(gomock.Any(), pendingFilter).Return([]order.Order{o}, nil)
	f.processing.EXPECT().CanMarkAsPaid(gomock.Any(), o).Return(true, nil)
	f.client.EXPECT().SearchByReference(gomock.Any(), testCredentials, "1004").
		Return([]gateway.TransactionSummary{
			transaction("1004", gateway.TransactionStatusCancelled),
			transaction("1004", gateway.TransactionStatusPaid),
		}, nil)

	report, err := f.reconciler(1).ReconcilePendingPayments(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, report.Count(OutcomeNotPaid))
}

func TestReconciler_SkipsIneligibleOrders(t *testing.T) {
	t.Parallel()

	f := newReconcilerFixture(t)
	o := pendingOrder(1005)

	f.orders.EXPECT().SearchOrders(gomock.Any(), pendingFilter).Return([]order.Order{o}, nil)
	f.processing.EXPECT().CanMarkAsPaid(gomock.Any(), o).Return(false, nil)

	report, err := f.reconciler(1).ReconcilePendingPayments(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, report.Count(OutcomeIneligible))
}

func TestReconciler_LookupFailureDoesNotAbortCycle(t *testing.T) {
	t.Parallel()

	// Given the gateway fails for the first order only
	f := newReconcilerFixture(t)
	first, second := pendingOrder(2001), pendingOrder(2002)
	paidTx := transaction("2002", gateway.TransactionStatusPaid)

	f.orders.EXPECT().SearchOrders(gomock.Any(), pendingFilter).Return([]order.Order{first, second}, nil)
	f.processing.EXPECT().CanMarkAsPaid(gomock.Any(), gomock.Any()).Return(true, nil).Times(2)
	f.client.EXPECT().SearchByReference(gomock.Any(), testCredentials, "2001").
		Return(nil, gateway.ErrTransport)
	f.client.EXPECT().SearchByReference(gomock.Any(), testCredentials, "2002").
		Return([]gateway.TransactionSummary{paidTx}, nil)
	f.processing.EXPECT().MarkAsPaid(gomock.Any(), second).Return(nil)
	f.notifier.EXPECT().NotifyPaid(gomock.Any(), second, paidTx).Return(nil)

	// When
	report, err := f.reconciler(1).ReconcilePendingPayments(context.Background())

	// Then
	require.NoError(t, err)
	assert.Equal(t, 2, report.Pending)
	assert.Equal(t, 1, report.Count(OutcomeLookupFailed))
	assert.Equal(t, 1, report.Count(OutcomePaid))
}

func TestReconciler_EligibilityFailureIsCountedAsLookupFailure(t *testing.T) {
	t.Parallel()

	f := newReconcilerFixture(t)
	o := pendingOrder(2003)

	f.orders.EXPECT().SearchOrders(gomock.Any(), pendingFilter).Return([]order.Order{o}, nil)
	f.processing.EXPECT().CanMarkAsPaid(gomock.Any(), o).Return(false, errors.New("db down"))

	report, err := f.reconciler(1).ReconcilePendingPayments(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, report.Count(OutcomeLookupFailed))
}

func TestReconciler_MarkFailureIsReturnedAndOthersProceed(t *testing.T) {
	t.Parallel()

	f := newReconcilerFixture(t)
	first, second := pendingOrder(3001), pendingOrder(3002)
	markErr := errors.New("deadlock detected")

	f.orders.EXPECT().SearchOrders(gomock.Any(), pendingFilter).Return([]order.Order{first, second}, nil)
	f.processing.EXPECT().CanMarkAsPaid(gomock.Any(), gomock.Any()).Return(true, nil).Times(2)
	f.client.EXPECT().SearchByReference(gomock.Any(), testCredentials, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ gateway.Credentials, ref string) ([]gateway.TransactionSummary, error) {
			return []gateway.TransactionSummary{transaction(ref, gateway.TransactionStatusPaid)}, nil
		}).Times(2)
	f.processing.EXPECT().MarkAsPaid(gomock.Any(), first).Return(markErr)
	f.processing.EXPECT().MarkAsPaid(gomock.Any(), second).Return(nil)
	f.notifier.EXPECT().NotifyPaid(gomock.Any(), second, gomock.Any()).Return(nil)

	report, err := f.reconciler(1).ReconcilePendingPayments(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, markErr)
	assert.Contains(t, err.Error(), "order 3001")
	assert.Equal(t, 1, report.Count(OutcomeMarkFailed))
	assert.Equal(t, 1, report.Count(OutcomePaid))
}

func TestReconciler_NotifierFailureIsNotAnError(t *testing.T) {
	t.Parallel()

	f := newReconcilerFixture(t)
	o := pendingOrder(4001)

	f.orders.EXPECT().SearchOrders(gomock.Any(), pendingFilter).Return([]order.Order{o}, nil)
	f.processing.EXPECT().CanMarkAsPaid(gomock.Any(), o).Return(true, nil)
	f.client.EXPECT().SearchByReference(gomock.Any(), testCredentials, "4001").
		Return([]gateway.TransactionSummary{transaction("4001", gateway.TransactionStatusPaid)}, nil)
	f.processing.EXPECT().MarkAsPaid(gomock.Any(), o).Return(nil)
	f.notifier.EXPECT().NotifyPaid(gomock.Any(), o, gomock.Any()).Return(errors.New("broker unavailable"))

	report, err := f.reconciler(1).ReconcilePendingPayments(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, report.Count(OutcomePaid))
}

func TestReconciler_WithoutNotifier(t *testing.T) {
	t.Parallel()

	f := newReconcilerFixture(t)
	o := pendingOrder(4002)

	f.orders.EXPECT().SearchOrders(gomock.Any(), pendingFilter).Return([]order.Order{o}, nil)
	f.processing.EXPECT().CanMarkAsPaid(gomock.Any(), o).Return(true, nil)
	f.client.EXPECT().SearchByReference(gomock.Any(), testCredentials, "4002").
		Return([]gateway.TransactionSummary{transaction("4002", gateway.TransactionStatusAvailable)}, nil)
	f.processing.EXPECT().MarkAsPaid(gomock.Any(), o).Return(nil)

	r := NewReconciler(ReconcilerConfig{
		StoreID:          1,
		PaymentMethod:    "Payments.PagSeguro",
		AwaitingStatuses: []order.PaymentStatus{order.PaymentStatusPending},
		Credentials:      testCredentials,
	}, f.orders, f.processing, f.client, nil)

	report, err := r.ReconcilePendingPayments(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, report.Count(OutcomePaid))
}

func TestReconciler_SearchFailure(t *testing.T) {
	t.Parallel()

	f := newReconcilerFixture(t)
	f.orders.EXPECT().SearchOrders(gomock.Any(), pendingFilter).Return(nil, errors.New("timeout"))

	report, err := f.reconciler(1).ReconcilePendingPayments(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "search pending orders")
	assert.Zero(t, report.Pending)
}

func TestReconciler_GatewayCallIsBounded(t *testing.T) {
	t.Parallel()

	f := newReconcilerFixture(t)
	o := pendingOrder(5001)

	f.orders.EXPECT().SearchOrders(gomock.Any(), pendingFilter).Return([]order.Order{o}, nil)
	f.processing.EXPECT().CanMarkAsPaid(gomock.Any(), o).Return(true, nil)
	f.client.EXPECT().SearchByReference(gomock.Any(), testCredentials, "5001").
		DoAndReturn(func(ctx context.Context, _ gateway.Credentials, _ string) ([]gateway.TransactionSummary, error) {
			deadline, ok := ctx.Deadline()
			assert.True(t, ok)
			assert.WithinDuration(t, time.Now().Add(time.Second), deadline, time.Second)
			return nil, nil
		})

	_, err := f.reconciler(1).ReconcilePendingPayments(context.Background())

	require.NoError(t, err)
}

func TestReconciler_ParallelCycle(t *testing.T) {
	t.Parallel()

	f := newReconcilerFixture(t)
	var pending []order.Order
	for id := 6001; id <= 6010; id++ {
		pending = append(pending, pendingOrder(id))
	}

	var mu sync.Mutex
	marked := map[int]int{}

	f.orders.EXPECT().SearchOrders(gomock.Any(), pendingFilter).Return(pending, nil)
	f.processing.EXPECT().CanMarkAsPaid(gomock.Any(), gomock.Any()).Return(true, nil).Times(len(pending))
	f.client.EXPECT().SearchByReference(gomock.Any(), testCredentials, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ gateway.Credentials, ref string) ([]gateway.TransactionSummary, error) {
			return []gateway.TransactionSummary{transaction(ref, gateway.TransactionStatusPaid)}, nil
		}).Times(len(pending))
	f.processing.EXPECT().MarkAsPaid(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, o order.Order) error {
			mu.Lock()
			defer mu.Unlock()
			marked[o.ID]++
			return nil
		}).Times(len(pending))
	f.notifier.EXPECT().NotifyPaid(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(len(pending))

	report, err := f.reconciler(4).ReconcilePendingPayments(context.Background())

	require.NoError(t, err)
	assert.Equal(t, len(pending), report.Count(OutcomePaid))
	for _, o := range pending {
		assert.Equal(t, 1, marked[o.ID], "order %d", o.ID)
	}
}
