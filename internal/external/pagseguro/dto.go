package pagseguro

import (
	"encoding/xml"
	"fmt"
	"time"

	"PagSeguroBridge/internal/domain/gateway"

	"github.com/shopspring/decimal"
)

type checkoutRequest struct {
	XMLName   xml.Name       `xml:"checkout"`
	Currency  string         `xml:"currency"`
	Reference string         `xml:"reference"`
	Items     []checkoutItem `xml:"items>item"`
	Sender    checkoutSender `xml:"sender"`
	Shipping  shipping       `xml:"shipping"`
}

type checkoutItem struct {
	ID          string `xml:"id"`
	Description string `xml:"description"`
	Amount      string `xml:"amount"`
	Quantity    int    `xml:"quantity"`
	Weight      *int64 `xml:"weight,omitempty"`
}

type checkoutSender struct {
	Name  string `xml:"name"`
	Email string `xml:"email"`
}

type shipping struct {
	Type    int              `xml:"type"`
	Cost    string           `xml:"cost"`
	Address *shippingAddress `xml:"address,omitempty"`
}

// Empty complement and district are still sent: the gateway expects the elements.
type shippingAddress struct {
	Street     string `xml:"street"`
	Number     string `xml:"number"`
	Complement string `xml:"complement"`
	District   string `xml:"district"`
	City       string `xml:"city"`
	State      string `xml:"state"`
	Country    string `xml:"country"`
	PostalCode string `xml:"postalCode"`
}

func newCheckoutRequest(req gateway.PaymentRequest) checkoutRequest {
	out := checkoutRequest{
		Currency:  req.Currency,
		Reference: req.Reference,
		Items:     make([]checkoutItem, 0, len(req.Items)),
		Sender:    checkoutSender{Name: req.Sender.Name, Email: req.Sender.Email},
		Shipping: shipping{
			Type: int(req.Shipping.Type),
			Cost: amount(req.Shipping.Cost),
		},
	}

	for _, it := range req.Items {
		out.Items = append(out.Items, checkoutItem{
			ID:          it.ID,
			Description: it.Description,
			Amount:      amount(it.Amount),
			Quantity:    it.Quantity,
			Weight:      it.Weight,
		})
	}

	if a := req.Shipping.Address; a != nil {
		out.Shipping.Address = &shippingAddress{
			Street:     a.Street,
			Number:     a.Number,
			Complement: a.Complement,
			District:   a.District,
			City:       a.City,
			State:      a.State,
			Country:    a.Country,
			PostalCode: a.PostalCode,
		}
	}
	return out
}

func amount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

type checkoutResponse struct {
	XMLName xml.Name `xml:"checkout"`
	Code    string   `xml:"code"`
	Date    string   `xml:"date"`
}

type searchResponse struct {
	XMLName           xml.Name      `xml:"transactionSearchResult"`
	Date              string        `xml:"date"`
	CurrentPage       int           `xml:"currentPage"`
	ResultsInThisPage int           `xml:"resultsInThisPage"`
	TotalPages        int           `xml:"totalPages"`
	Transactions      []transaction `xml:"transactions>transaction"`
}

type transaction struct {
	Date        string `xml:"date"`
	Code        string `xml:"code"`
	Reference   string `xml:"reference"`
	Type        int    `xml:"type"`
	Status      int    `xml:"status"`
	GrossAmount string `xml:"grossAmount"`
}

func (t transaction) summary() (gateway.TransactionSummary, error) {
	date, err := time.Parse(time.RFC3339, t.Date)
	if err != nil {
		return gateway.TransactionSummary{}, fmt.Errorf("transaction %s: date %q: %w", t.Code, t.Date, err)
	}

	gross := decimal.Zero
	if t.GrossAmount != "" {
		gross, err = decimal.NewFromString(t.GrossAmount)
		if err != nil {
			return gateway.TransactionSummary{}, fmt.Errorf("transaction %s: gross amount %q: %w", t.Code, t.GrossAmount, err)
		}
	}

	return gateway.TransactionSummary{
		Code:        t.Code,
		Reference:   t.Reference,
		Status:      gateway.TransactionStatus(t.Status),
		Date:        date,
		GrossAmount: gross,
	}, nil
}

type errorsResponse struct {
	XMLName xml.Name        `xml:"errors"`
	Errors  []responseError `xml:"error"`
}

type responseError struct {
	Code    string `xml:"code"`
	Message string `xml:"message"`
}

