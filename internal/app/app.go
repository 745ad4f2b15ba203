package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"PagSeguroBridge/config"
	"PagSeguroBridge/internal/app/migrations"
	bridgehttp "PagSeguroBridge/internal/controller/http"
	"PagSeguroBridge/internal/controller/http/handlers"
	"PagSeguroBridge/internal/domain/gateway"
	"PagSeguroBridge/internal/domain/order"
	"PagSeguroBridge/internal/domain/payment"
	"PagSeguroBridge/internal/external/kafka"
	"PagSeguroBridge/internal/external/pagseguro"
	"PagSeguroBridge/internal/messaging"
	order_repo "PagSeguroBridge/internal/repo/order"
	store_repo "PagSeguroBridge/internal/repo/store"
	"PagSeguroBridge/internal/scheduler"
	"PagSeguroBridge/pkg/health"
	"PagSeguroBridge/pkg/logger"
	"PagSeguroBridge/pkg/postgres"
)

const shutdownTimeout = 10 * time.Second

func Run(cfg config.Config) error {
	logger.Setup(logger.Options{Level: cfg.LogLevel, Console: cfg.LogFormat == "console"})

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	pool, err := postgres.New(cfg.PgURL, postgres.MaxPoolSize(cfg.PgPoolMax))
	if err != nil {
		return fmt.Errorf("app - Run - postgres.New: %w", err)
	}
	defer pool.Close()

	if err := migrations.Apply(cfg.PgURL); err != nil {
		return fmt.Errorf("app - Run - migrations.Apply: %w", err)
	}

	awaiting, err := paymentStatuses(cfg.AwaitingPaymentStatuses)
	if err != nil {
		return fmt.Errorf("app - Run - AWAITING_PAYMENT_STATUSES: %w", err)
	}

	// Repositories and services
	orderService := order.NewOrderService(order_repo.NewPgOrderRepo(pool))
	storeRepo := store_repo.NewPgStoreRepo(pool)

	pagSeguroClient := pagseguro.New(
		cfg.PagSeguroAPIURL,
		cfg.PagSeguroCheckoutURL,
		&http.Client{Timeout: cfg.HTTPPagSeguroClientTimeout},
	)
	credentials := gateway.NewCredentials(cfg.PagSeguroEmail, cfg.PagSeguroToken)

	builder := payment.NewRequestBuilder(
		payment.BuilderConfig{
			SettlementCurrency: cfg.SettlementCurrency,
			PrimaryCurrencyID:  cfg.PrimaryCurrencyID,
			Credentials:        credentials,
		},
		orderService,
		payment.Lookups{
			Currencies: storeRepo,
			Addresses:  storeRepo,
			Countries:  storeRepo,
			States:     storeRepo,
			Products:   storeRepo,
			Customers:  storeRepo,
		},
		pagSeguroClient,
	)

	checkers := []health.Checker{health.NewPostgresChecker(pool.Pool)}

	var notifier payment.PaidNotifier
	if len(cfg.KafkaBrokers) > 0 {
		publisher := kafka.NewPublisher(cfg.KafkaBrokers, cfg.KafkaPaymentsTopic)
		defer func() { _ = publisher.Close() }()

		notifier = messaging.NewPaidPublisher(publisher)
		checkers = append(checkers, health.Optional(health.NewKafkaChecker(cfg.KafkaBrokers)))
		slog.Info("Paid notifications enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaPaymentsTopic)
	}

	reconciler := payment.NewReconciler(
		payment.ReconcilerConfig{
			StoreID:          cfg.StoreID,
			PaymentMethod:    cfg.PaymentMethodSystemName,
			AwaitingStatuses: awaiting,
			Credentials:      credentials,
			GatewayTimeout:   cfg.HTTPPagSeguroClientTimeout,
			Concurrency:      cfg.ReconcileConcurrency,
		},
		orderService,
		orderService,
		pagSeguroClient,
		notifier,
	)
	sched := scheduler.New(reconciler, cfg.ReconcileInterval)

	// HTTP
	engine := NewGinEngine()
	router := bridgehttp.NewRouter(
		handlers.NewCheckoutHandler(orderService, builder),
		handlers.NewReconcileHandler(sched),
		health.NewRegistry(checkers...),
	)
	router.SetUp(engine)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	schedulerDone := startInBackground(ctx, sched)

	go func() {
		slog.Info("Starting HTTP server", "port", cfg.Port, "store_id", cfg.StoreID)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("HTTP server error", slog.Any("error", err))
			cancel()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down payment bridge...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	shutdownErr := server.Shutdown(shutdownCtx)

	// A cycle still in flight must finish before the pool is closed.
	<-schedulerDone

	if shutdownErr != nil {
		return fmt.Errorf("app - Run - server.Shutdown: %w", shutdownErr)
	}

	slog.Info("Payment bridge stopped")
	return nil
}

type starter interface {
	Start(ctx context.Context)
}

// startInBackground runs s until ctx is cancelled; the returned channel is closed once Start returns.
func startInBackground(ctx context.Context, s starter) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		s.Start(ctx)
	}()
	return done
}

func paymentStatuses(raw []int) ([]order.PaymentStatus, error) {
	statuses := make([]order.PaymentStatus, 0, len(raw))
	for _, r := range raw {
		s, err := order.NewPaymentStatus(r)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, s)
	}
	return statuses, nil
}
