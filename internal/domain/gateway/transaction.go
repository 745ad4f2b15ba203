package gateway

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionStatus follows the gateway's numeric status codes.
type TransactionStatus int

const (
	TransactionStatusUnknown            TransactionStatus = 0
	TransactionStatusWaitingPayment     TransactionStatus = 1
	TransactionStatusInAnalysis         TransactionStatus = 2
	TransactionStatusPaid               TransactionStatus = 3
	TransactionStatusAvailable          TransactionStatus = 4
	TransactionStatusInDispute          TransactionStatus = 5
	TransactionStatusReturned           TransactionStatus = 6
	TransactionStatusCancelled          TransactionStatus = 7
	TransactionStatusDebited            TransactionStatus = 8
	TransactionStatusTemporaryRetention TransactionStatus = 9
)

var transactionStatusNames = map[TransactionStatus]string{
	TransactionStatusWaitingPayment:     "waiting_payment",
	TransactionStatusInAnalysis:         "in_analysis",
	TransactionStatusPaid:               "paid",
	TransactionStatusAvailable:          "available",
	TransactionStatusInDispute:          "in_dispute",
	TransactionStatusReturned:           "returned",
	TransactionStatusCancelled:          "cancelled",
	TransactionStatusDebited:            "debited",
	TransactionStatusTemporaryRetention: "temporary_retention",
}

func (s TransactionStatus) String() string {
	if name, ok := transactionStatusNames[s]; ok {
		return name
	}
	return "unknown"
}

// Settled reports whether the funds are final from the merchant's point of view:
// paid, or paid and already available for withdrawal.
func (s TransactionStatus) Settled() bool {
	return s == TransactionStatusPaid || s == TransactionStatusAvailable
}

// TransactionSummary is a read-only snapshot of one gateway transaction.
type TransactionSummary struct {
	Code        string
	Reference   string
	Status      TransactionStatus
	Date        time.Time
	GrossAmount decimal.Decimal
}
