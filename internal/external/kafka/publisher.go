package kafka

import (
	"context"
	"encoding/json"
	"log/slog"

	"PagSeguroBridge/internal/messaging"
	"PagSeguroBridge/pkg/correlation"

	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher implements messaging.Publisher using Kafka.
type Publisher struct {
	writer messageWriter
	topic  string
}

var _ messaging.Publisher = (*Publisher)(nil)

// NewPublisher creates a new Kafka publisher.
func NewPublisher(brokers []string, topic string) *Publisher {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}

	return &Publisher{
		writer: writer,
		topic:  topic,
	}
}

// Publish sends an envelope to Kafka, carrying the correlation id of ctx as a header.
func (p *Publisher) Publish(ctx context.Context, env messaging.Envelope) error {
	value, err := json.Marshal(env)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(env.Key),
		Value: value,
	}
	if id := correlation.FromContext(ctx); id != "" {
		msg.Headers = append(msg.Headers, kafka.Header{Key: correlation.KafkaHeaderName, Value: []byte(id)})
	}

	if err = p.writer.WriteMessages(ctx, msg); err != nil {
		slog.ErrorContext(ctx, "Failed to publish message",
			"topic", p.topic,
			"key", env.Key,
			slog.Any("error", err))
		return err
	}

	slog.DebugContext(ctx, "Message published",
		"topic", p.topic,
		"key", env.Key,
		"event_id", env.EventID,
		"type", env.Type)
	return nil
}

// Close closes the Kafka writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
