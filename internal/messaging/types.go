package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Source names this service in every envelope it emits.
const Source = "pagseguro-bridge"

// Envelope is the message format on the wire. Consumers dispatch on Type and
// deduplicate on EventID; Key selects the partition.
type Envelope struct {
	EventID    string          `json:"event_id"`
	Source     string          `json:"source"`
	Key        string          `json:"key"`
	Type       string          `json:"type"`
	Payload    json.RawMessage `json:"payload"`
	OccurredAt time.Time       `json:"occurred_at"`
}

func NewEnvelope(key, msgType string, payload any) (Envelope, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, fmt.Errorf("marshal %s payload: %w", msgType, err)
	}

	return Envelope{
		EventID:    uuid.NewString(),
		Source:     Source,
		Key:        key,
		Type:       msgType,
		Payload:    data,
		OccurredAt: time.Now().UTC(),
	}, nil
}

// Decode unmarshals the payload into v.
func (e Envelope) Decode(v any) error {
	if err := json.Unmarshal(e.Payload, v); err != nil {
		return fmt.Errorf("decode %s payload: %w", e.Type, err)
	}
	return nil
}

type Publisher interface {
	Publish(ctx context.Context, envelope Envelope) error
	Close() error
}
