package health

import (
	"context"
	"errors"

	"github.com/segmentio/kafka-go"
)

type pinger interface {
	Ping(ctx context.Context) error
}

// NewPostgresChecker pings the pool. *pgxpool.Pool satisfies pinger.
func NewPostgresChecker(pool pinger) Checker {
	return NewCheckFunc("postgres", pool.Ping)
}

var errBrokersUnreachable = errors.New("all brokers unreachable")

// NewKafkaChecker succeeds as soon as one broker accepts a connection.
func NewKafkaChecker(brokers []string) Checker {
	return NewCheckFunc("kafka", func(ctx context.Context) error {
		for _, broker := range brokers {
			conn, err := kafka.DialContext(ctx, "tcp", broker)
			if err == nil {
				_ = conn.Close()
				return nil
			}
		}
		return errBrokersUnreachable
	})
}
