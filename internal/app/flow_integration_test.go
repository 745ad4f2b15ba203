//go:build integration
// +build integration

package app_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"PagSeguroBridge/internal/app"
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
	"PagSeguroBridge/internal/testinfra"
	"PagSeguroBridge/pkg/health"

	"github.com/gin-gonic/gin"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const checkoutPage = "https://pagseguro.example/v2/checkout/payment.html"

var suite *testinfra.TestSuite

func TestMain(m *testing.M) {
	ctx := context.Background()

	var err error
	suite, err = testinfra.NewTestSuite(ctx, testinfra.SuiteOptions{WithKafka: true})
	if err != nil {
		panic(fmt.Sprintf("Failed to start test suite: %v", err))
	}

	code := m.Run()

	suite.Cleanup(ctx)
	os.Exit(code)
}

// fakePagSeguro accepts every checkout and reports an available transaction for order 1001 only.
func fakePagSeguro(t *testing.T) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/xml;charset=ISO-8859-1")
		switch r.URL.Path {
		case "/v2/checkout":
			body, _ := io.ReadAll(r.Body)
			if !strings.Contains(string(body), "<reference>1001</reference>") {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = io.WriteString(w, `<errors><error><code>11000</code><message>unexpected order</message></error></errors>`)
				return
			}
			_, _ = io.WriteString(w, `<checkout><code>CODE1001</code></checkout>`)
		case "/v2/transactions":
			if r.URL.Query().Get("reference") != "1001" {
				_, _ = io.WriteString(w, `<transactionSearchResult><totalPages>0</totalPages><transactions/></transactionSearchResult>`)
				return
			}
			_, _ = io.WriteString(w, `<transactionSearchResult><totalPages>1</totalPages><transactions>`+
				`<transaction><date>2024-03-10T15:30:00.000-03:00</date><code>TX1001</code><reference>1001</reference>`+
				`<status>4</status><grossAmount>28.75</grossAmount></transaction>`+
				`</transactions></transactionSearchResult>`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newEngine(t *testing.T, gatewayURL string) *gin.Engine {
	t.Helper()

	pool := suite.Postgres.Pool
	orderService := order.NewOrderService(order_repo.NewPgOrderRepo(pool))
	storeRepo := store_repo.NewPgStoreRepo(pool)
	client := pagseguro.New(gatewayURL, checkoutPage, &http.Client{Timeout: 5 * time.Second})
	creds := gateway.NewCredentials("shop@example.com", "secret-token")

	builder := payment.NewRequestBuilder(
		payment.BuilderConfig{SettlementCurrency: "BRL", PrimaryCurrencyID: 1, Credentials: creds},
		orderService,
		payment.Lookups{
			Currencies: storeRepo, Addresses: storeRepo, Countries: storeRepo,
			States: storeRepo, Products: storeRepo, Customers: storeRepo,
		},
		client,
	)

	publisher := kafka.NewPublisher(suite.Kafka.Brokers, suite.Kafka.PaidTopic)
	t.Cleanup(func() { _ = publisher.Close() })

	reconciler := payment.NewReconciler(
		payment.ReconcilerConfig{
			StoreID:          1,
			PaymentMethod:    "Payments.PagSeguro",
			AwaitingStatuses: []order.PaymentStatus{order.PaymentStatusPending},
			Credentials:      creds,
			GatewayTimeout:   5 * time.Second,
			Concurrency:      2,
		},
		orderService,
		orderService,
		client,
		messaging.NewPaidPublisher(publisher),
	)

	engine := app.NewGinEngine()
	bridgehttp.NewRouter(
		handlers.NewCheckoutHandler(orderService, builder),
		handlers.NewReconcileHandler(scheduler.New(reconciler, time.Hour)),
		health.NewRegistry(health.NewPostgresChecker(pool.Pool)),
	).SetUp(engine)
	return engine
}

func resetStore(t *testing.T) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, suite.Postgres.Truncate(ctx))
	testinfra.ApplyStoreFixture(t, suite.Postgres.Pool.Pool)
}

func TestCheckoutFlow_Integration(t *testing.T) {
	resetStore(t)
	engine := newEngine(t, fakePagSeguro(t).URL)

	// when
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/checkout/1001", nil))

	// then
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp handlers.CheckoutResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1001, resp.OrderID)
	assert.Equal(t, checkoutPage+"?code=CODE1001", resp.RedirectURL)

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/checkout/1003", nil))
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestReconcileFlow_Integration(t *testing.T) {
	resetStore(t)
	ctx := context.Background()
	engine := newEngine(t, fakePagSeguro(t).URL)

	// when
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/reconcile", nil))

	// then
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp handlers.ReconcileResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Pending)
	assert.Equal(t, 1, resp.Outcomes[payment.OutcomePaid])
	assert.Equal(t, 1, resp.Outcomes[payment.OutcomeNoTransaction])
	assert.Equal(t, 1, resp.Outcomes[payment.OutcomeIneligible])

	var paymentStatus, orderStatus, notes int
	require.NoError(t, suite.Postgres.Pool.Pool.QueryRow(ctx,
		"SELECT payment_status, order_status FROM orders WHERE id = 1001").Scan(&paymentStatus, &orderStatus))
	assert.Equal(t, int(order.PaymentStatusPaid), paymentStatus)
	assert.Equal(t, int(order.StatusProcessing), orderStatus)
	require.NoError(t, suite.Postgres.Pool.Pool.QueryRow(ctx,
		"SELECT COUNT(*) FROM order_notes WHERE order_id = 1001").Scan(&notes))
	assert.Equal(t, 1, notes)

	require.NoError(t, suite.Postgres.Pool.Pool.QueryRow(ctx,
		"SELECT payment_status FROM orders WHERE id = 1002").Scan(&paymentStatus))
	assert.Equal(t, int(order.PaymentStatusPending), paymentStatus)

	readCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:     suite.Kafka.Brokers,
		Topic:       suite.Kafka.PaidTopic,
		GroupID:     suite.Kafka.PaidGroup,
		StartOffset: kafkago.FirstOffset,
	})
	defer reader.Close()

	msg, err := reader.ReadMessage(readCtx)
	require.NoError(t, err)
	var env messaging.Envelope
	require.NoError(t, json.Unmarshal(msg.Value, &env))
	assert.Equal(t, messaging.PaymentPaidType, env.Type)
	assert.Equal(t, "1001", env.Key)

	// a second cycle no longer sees the paid order
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/reconcile", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var second handlers.ReconcileResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &second))
	assert.Equal(t, 2, second.Pending)
	assert.Zero(t, second.Outcomes[payment.OutcomePaid])
}
