// Package correlation carries the id that ties together the log lines, HTTP responses
// and Kafka messages produced by one request or one reconciliation run.
package correlation

import (
	"context"
	"strings"
	"unicode"

	"github.com/google/uuid"
)

const (
	HeaderName      = "X-Correlation-ID"
	KafkaHeaderName = HeaderName

	maxIDLength = 128
	runIDPrefix = "reconcile-"
)

type contextKey struct{}

// FromContext returns the correlation ID or an empty string.
func FromContext(ctx context.Context) string {
	if id, ok := ctx.Value(contextKey{}).(string); ok {
		return id
	}
	return ""
}

func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

func NewID() string {
	return uuid.NewString()
}

// NewRunID identifies one reconciliation run.
func NewRunID() string {
	return runIDPrefix + uuid.NewString()
}

// FromHeader keeps a caller supplied id unless it is empty, oversized or carries
// control characters, in which case a fresh id is returned.
func FromHeader(value string) string {
	if value == "" || len(value) > maxIDLength || strings.ContainsFunc(value, unicode.IsControl) {
		return NewID()
	}
	return value
}
