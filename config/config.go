package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port      int    `env:"PORT" envDefault:"3000"`
	PgURL     string `env:"PG_URL,required,notEmpty"`
	PgPoolMax int    `env:"PG_POOL_MAX" envDefault:"10"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	// LogFormat is "json" or "console".
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// PagSeguro account and endpoints
	PagSeguroEmail             string        `env:"PAGSEGURO_EMAIL,required,notEmpty"`
	PagSeguroToken             string        `env:"PAGSEGURO_TOKEN,required,notEmpty,unset"`
	PagSeguroAPIURL            string        `env:"PAGSEGURO_API_URL" envDefault:"https://ws.pagseguro.uol.com.br"`
	PagSeguroCheckoutURL       string        `env:"PAGSEGURO_CHECKOUT_URL" envDefault:"https://pagseguro.uol.com.br/v2/checkout/payment.html"`
	HTTPPagSeguroClientTimeout time.Duration `env:"HTTP_PAGSEGURO_CLIENT_TIMEOUT" envDefault:"20s"`

	// Store
	SettlementCurrency      string `env:"SETTLEMENT_CURRENCY" envDefault:"BRL"`
	PrimaryCurrencyID       int    `env:"PRIMARY_CURRENCY_ID,required"`
	StoreID                 int    `env:"STORE_ID,required"`
	PaymentMethodSystemName string `env:"PAYMENT_METHOD_SYSTEM_NAME" envDefault:"Payments.PagSeguro"`

	// Reconciliation
	AwaitingPaymentStatuses []int         `env:"AWAITING_PAYMENT_STATUSES" envSeparator:"," envDefault:"10"`
	ReconcileInterval       time.Duration `env:"RECONCILE_INTERVAL" envDefault:"5m"`
	ReconcileConcurrency    int           `env:"RECONCILE_CONCURRENCY" envDefault:"1"`

	// Kafka configuration; paid notifications are disabled without brokers
	KafkaBrokers       []string `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaPaymentsTopic string   `env:"KAFKA_PAYMENTS_TOPIC" envDefault:"payments.paid"`
}

func New() (Config, error) {
	c, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, err
	}

	if err := c.validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) validate() error {
	if c.LogFormat != "json" && c.LogFormat != "console" {
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.LogFormat)
	}
	if len(c.AwaitingPaymentStatuses) == 0 {
		return fmt.Errorf("AWAITING_PAYMENT_STATUSES must not be empty")
	}
	if c.ReconcileInterval <= 0 {
		return fmt.Errorf("RECONCILE_INTERVAL must be positive")
	}
	return nil
}
