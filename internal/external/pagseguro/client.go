package pagseguro

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"PagSeguroBridge/internal/domain/gateway"
	"PagSeguroBridge/pkg/metrics"

	"github.com/google/go-querystring/query"
	"golang.org/x/net/html/charset"
)

const (
	checkoutPath     = "/v2/checkout"
	transactionsPath = "/v2/transactions"

	maxPageResults = 100
	defaultMaxPages = 50
)

// Client talks to the PagSeguro v2 XML API.
type Client struct {
	BaseURL     string
	CheckoutURL string
	HTTP        *http.Client
	// MaxPages caps how many search result pages are fetched for one reference.
	MaxPages int
}

var _ gateway.Client = (*Client)(nil)

func New(baseURL, checkoutURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 20 * time.Second}
	}
	return &Client{
		BaseURL:     strings.TrimRight(baseURL, "/"),
		CheckoutURL: checkoutURL,
		HTTP:        httpClient,
		MaxPages:    defaultMaxPages,
	}
}

type credentialsParams struct {
	Email string `url:"email"`
	Token string `url:"token"`
}

type searchParams struct {
	credentialsParams
	Reference      string `url:"reference"`
	Page           int    `url:"page,omitempty"`
	MaxPageResults int    `url:"maxPageResults,omitempty"`
}

func (c *Client) Register(ctx context.Context, creds gateway.Credentials, req gateway.PaymentRequest) (redirect *url.URL, err error) {
	defer func(start time.Time) { metrics.ObserveGatewayCall("register", start, err) }(time.Now())

	body, err := xml.Marshal(newCheckoutRequest(req))
	if err != nil {
		return nil, fmt.Errorf("marshal checkout: %w", err)
	}

	params, err := encodeParams(credentialsParams{Email: creds.Email, Token: creds.Token})
	if err != nil {
		return nil, err
	}
	raw, err := c.do(ctx, http.MethodPost, checkoutPath, params, append([]byte(xml.Header), body...))
	if err != nil {
		return nil, err
	}

	var out checkoutResponse
	if err := decodeXML(raw, &out); err != nil {
		return nil, fmt.Errorf("%w: decode checkout response: %v", gateway.ErrTransport, err)
	}
	if out.Code == "" {
		return nil, fmt.Errorf("%w: checkout response without code", gateway.ErrTransport)
	}

	redirect, err = c.redirectURL(out.Code)
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "Checkout registered", "reference", req.Reference, "checkout_code", out.Code)
	return redirect, nil
}

func (c *Client) SearchByReference(ctx context.Context, creds gateway.Credentials, reference string) (txs []gateway.TransactionSummary, err error) {
	defer func(start time.Time) { metrics.ObserveGatewayCall("search", start, err) }(time.Now())

	for page := 1; ; page++ {
		params, err := encodeParams(searchParams{
			credentialsParams: credentialsParams{Email: creds.Email, Token: creds.Token},
			Reference:         reference,
			Page:              page,
			MaxPageResults:    maxPageResults,
		})
		if err != nil {
			return nil, err
		}

		raw, err := c.do(ctx, http.MethodGet, transactionsPath, params, nil)
		if err != nil {
			return nil, err
		}

		var out searchResponse
		if err := decodeXML(raw, &out); err != nil {
			return nil, fmt.Errorf("%w: decode transaction search: %v", gateway.ErrTransport, err)
		}

		for _, t := range out.Transactions {
			tx, err := t.summary()
			if err != nil {
				return nil, fmt.Errorf("%w: %v", gateway.ErrTransport, err)
			}
			txs = append(txs, tx)
		}

		if out.TotalPages <= page {
			break
		}
		// The newest transaction may sit on a page that is never fetched.
		if page >= c.MaxPages {
			return nil, fmt.Errorf("%w: search for reference %s spans %d pages, limit is %d",
				gateway.ErrTransport, reference, out.TotalPages, c.MaxPages)
		}
	}

	sort.SliceStable(txs, func(i, j int) bool { return txs[i].Date.After(txs[j].Date) })
	return txs, nil
}

func encodeParams(v any) (url.Values, error) {
	params, err := query.Values(v)
	if err != nil {
		return nil, fmt.Errorf("encode query parameters: %w", err)
	}
	return params, nil
}

func (c *Client) redirectURL(code string) (*url.URL, error) {
	u, err := url.Parse(c.CheckoutURL)
	if err != nil {
		return nil, fmt.Errorf("parse checkout url: %w", err)
	}
	q := u.Query()
	q.Set("code", code)
	u.RawQuery = q.Encode()
	return u, nil
}

func (c *Client) do(ctx context.Context, method, path string, params url.Values, body []byte) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path+"?"+params.Encode(), reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/xml; charset=UTF-8")
	}
	httpReq.Header.Set("Accept", "application/xml")

	resp, err := c.HTTP.Do(httpReq)
	if err != nil {
		// *url.Error carries the full URL, credentials included.
		var uerr *url.Error
		if errors.As(err, &uerr) {
			err = uerr.Err
		}
		return nil, fmt.Errorf("%w: %s %s: %w", gateway.ErrTransport, method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", gateway.ErrTransport, err)
	}

	if resp.StatusCode/100 != 2 {
		return nil, statusError(resp.StatusCode, raw)
	}
	return raw, nil
}

func statusError(status int, raw []byte) error {
	kind := gateway.ErrTransport
	if status/100 == 4 {
		kind = gateway.ErrRejected
	}

	var out errorsResponse
	if err := decodeXML(raw, &out); err == nil && len(out.Errors) > 0 {
		msgs := make([]string, 0, len(out.Errors))
		for _, e := range out.Errors {
			msgs = append(msgs, e.Code+": "+e.Message)
		}
		return fmt.Errorf("%w: status %d: %s", kind, status, strings.Join(msgs, "; "))
	}

	return fmt.Errorf("%w: status %d: %s", kind, status, http.StatusText(status))
}

// decodeXML accepts the ISO-8859-1 documents the gateway answers with.
func decodeXML(raw []byte, v any) error {
	dec := xml.NewDecoder(bytes.NewReader(raw))
	dec.CharsetReader = charset.NewReaderLabel
	return dec.Decode(v)
}
