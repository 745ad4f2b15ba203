package gateway

import (
	"context"
	"errors"
	"net/url"
)

//go:generate mockgen -source port.go -destination mock_port.go -package gateway

var (
	// ErrTransport is returned when the gateway is unreachable or answers with
	// something that cannot be decoded.
	ErrTransport = errors.New("gateway transport failure")

	// ErrRejected is returned when the gateway refuses a request (HTTP 4xx validation errors).
	ErrRejected = errors.New("gateway rejected request")
)

// Client is the capability the bridge needs from the payment gateway.
type Client interface {
	// Register submits a checkout and returns the URI the buyer is redirected to.
	Register(ctx context.Context, creds Credentials, req PaymentRequest) (*url.URL, error)
	// SearchByReference lists transactions carrying reference, newest first.
	SearchByReference(ctx context.Context, creds Credentials, reference string) ([]TransactionSummary, error)
}

// Credentials identify the merchant account. The token is never printed.
type Credentials struct {
	Email string
	Token string
}

func NewCredentials(email, token string) Credentials {
	return Credentials{Email: email, Token: token}
}

func (c Credentials) String() string {
	return "Credentials{Email: " + c.Email + ", Token: [REDACTED]}"
}

func (c Credentials) GoString() string {
	return c.String()
}
