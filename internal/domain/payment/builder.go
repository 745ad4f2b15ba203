package payment

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"

	"PagSeguroBridge/internal/domain/gateway"
	"PagSeguroBridge/internal/domain/order"
	"PagSeguroBridge/internal/domain/store"

	"github.com/shopspring/decimal"
)

const amountPlaces = 2

type BuilderConfig struct {
	// SettlementCurrency is the code every amount is sent in, e.g. "BRL".
	SettlementCurrency string
	PrimaryCurrencyID  int
	Credentials        gateway.Credentials
}

// Lookups groups the store collaborators used while building a request.
type Lookups struct {
	Currencies CurrencyLookup
	Addresses  AddressLookup
	Countries  CountryLookup
	States     StateProvinceLookup
	Products   ProductLookup
	Customers  CustomerLookup
}

// RequestBuilder turns an order into a gateway checkout.
type RequestBuilder struct {
	cfg     BuilderConfig
	orders  OrderStore
	lookups Lookups
	gateway gateway.Client
}

func NewRequestBuilder(cfg BuilderConfig, orders OrderStore, lookups Lookups, client gateway.Client) *RequestBuilder {
	return &RequestBuilder{
		cfg:     cfg,
		orders:  orders,
		lookups: lookups,
		gateway: client,
	}
}

// BuildPaymentRequest assembles the checkout for o, registers it with the gateway and
// returns the URI the buyer must be sent to. Nothing is submitted when assembly fails.
func (b *RequestBuilder) BuildPaymentRequest(ctx context.Context, o order.Order) (*url.URL, error) {
	req, err := b.Build(ctx, o)
	if err != nil {
		return nil, err
	}

	redirect, err := b.gateway.Register(ctx, b.cfg.Credentials, req)
	if err != nil {
		return nil, fmt.Errorf("register payment for order %d: %w", o.ID, err)
	}

	slog.InfoContext(ctx, "Payment registered",
		"order_id", o.ID,
		"items", len(req.Items),
		"currency", req.Currency)
	return redirect, nil
}

// Build maps o into a gateway request without submitting it.
func (b *RequestBuilder) Build(ctx context.Context, o order.Order) (gateway.PaymentRequest, error) {
	conv, err := b.converter(ctx)
	if err != nil {
		return gateway.PaymentRequest{}, err
	}

	items, err := b.loadItems(ctx, o, conv)
	if err != nil {
		return gateway.PaymentRequest{}, err
	}

	shipping, err := b.loadShipping(ctx, o, conv)
	if err != nil {
		return gateway.PaymentRequest{}, err
	}

	sender, err := b.loadSender(ctx, o)
	if err != nil {
		return gateway.PaymentRequest{}, err
	}

	return gateway.PaymentRequest{
		Currency:  conv.target.CurrencyCode,
		Reference: o.Reference(),
		Items:     items,
		Shipping:  shipping,
		Sender:    sender,
	}, nil
}

// amountConverter converts from the primary store currency into the settlement
// currency, or passes amounts through when both are the same currency.
type amountConverter struct {
	target      store.Currency
	passThrough bool
	currencies  CurrencyLookup
}

func (c amountConverter) convert(ctx context.Context, amount decimal.Decimal) (decimal.Decimal, error) {
	if !c.passThrough {
		converted, err := c.currencies.ConvertFromPrimary(ctx, amount, c.target)
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("convert %s to %s: %w", amount, c.target.CurrencyCode, err)
		}
		amount = converted
	}
	// Midpoints round half away from zero (2.345 -> 2.35), not half to even.
	return amount.Round(amountPlaces), nil
}

func (b *RequestBuilder) converter(ctx context.Context) (amountConverter, error) {
	code := b.cfg.SettlementCurrency

	settlement, err := b.lookups.Currencies.GetCurrencyByCode(ctx, code)
	if err != nil {
		return amountConverter{}, fmt.Errorf("load currency %q: %w", code, err)
	}
	if settlement == nil {
		return amountConverter{}, fmt.Errorf("%w: could not load %q currency", ErrConfiguration, code)
	}

	primary, err := b.lookups.Currencies.GetCurrencyByID(ctx, b.cfg.PrimaryCurrencyID)
	if err != nil {
		return amountConverter{}, fmt.Errorf("load primary currency: %w", err)
	}
	if primary == nil {
		return amountConverter{}, fmt.Errorf("%w: primary store currency %d does not exist", ErrConfiguration, b.cfg.PrimaryCurrencyID)
	}

	return amountConverter{
		target:      *settlement,
		passThrough: settlement.CurrencyCode == primary.CurrencyCode,
		currencies:  b.lookups.Currencies,
	}, nil
}

func (b *RequestBuilder) loadItems(ctx context.Context, o order.Order, conv amountConverter) ([]gateway.Item, error) {
	orderItems, err := b.orders.GetOrderItems(ctx, o.ID)
	if err != nil {
		return nil, fmt.Errorf("load items of order %d: %w", o.ID, err)
	}

	items := make([]gateway.Item, 0, len(orderItems))
	for _, oi := range orderItems {
		product, err := b.lookups.Products.GetProductByID(ctx, oi.ProductID)
		if err != nil {
			return nil, fmt.Errorf("load product %d: %w", oi.ProductID, err)
		}
		if product == nil {
			return nil, fmt.Errorf("%w: product %d", ErrNotFound, oi.ProductID)
		}

		amount, err := conv.convert(ctx, oi.UnitPriceInclTax)
		if err != nil {
			return nil, err
		}

		item := gateway.Item{
			ID:          strconv.Itoa(product.ID),
			Description: product.Name,
			Amount:      amount,
			Quantity:    oi.Quantity,
		}
		if oi.ItemWeight != nil {
			w := oi.ItemWeight.IntPart()
			item.Weight = &w
		}
		items = append(items, item)
	}
	return items, nil
}

func (b *RequestBuilder) loadShipping(ctx context.Context, o order.Order, conv amountConverter) (gateway.Shipping, error) {
	shipping := gateway.Shipping{Type: gateway.ShippingTypeNotSpecified}

	if o.ShippingAddressID != nil {
		addr, err := b.lookups.Addresses.GetAddressByID(ctx, *o.ShippingAddressID)
		if err != nil {
			return gateway.Shipping{}, fmt.Errorf("load shipping address %d: %w", *o.ShippingAddressID, err)
		}
		if addr != nil {
			shipping.Address, err = b.shippingAddress(ctx, *addr)
			if err != nil {
				return gateway.Shipping{}, err
			}
		}
	}

	cost, err := conv.convert(ctx, o.OrderShippingInclTax)
	if err != nil {
		return gateway.Shipping{}, err
	}
	shipping.Cost = cost

	return shipping, nil
}

func (b *RequestBuilder) shippingAddress(ctx context.Context, addr store.Address) (*gateway.Address, error) {
	country, err := b.countryName(ctx, addr.CountryID)
	if err != nil {
		return nil, err
	}
	state, err := b.stateAbbreviation(ctx, addr.StateProvinceID)
	if err != nil {
		return nil, err
	}

	return &gateway.Address{
		Street:     addr.Address1,
		Number:     gateway.NumberPlaceholder,
		Complement: "",
		District:   "",
		City:       addr.City,
		State:      state,
		Country:    country,
		PostalCode: addr.ZipPostalCode,
	}, nil
}

func (b *RequestBuilder) countryName(ctx context.Context, id *int) (string, error) {
	if id == nil || *id == 0 {
		return gateway.UnresolvedPlaceholder, nil
	}
	country, err := b.lookups.Countries.GetCountryByID(ctx, *id)
	if err != nil {
		return "", fmt.Errorf("load country %d: %w", *id, err)
	}
	if country == nil {
		return gateway.UnresolvedPlaceholder, nil
	}
	return country.Name, nil
}

func (b *RequestBuilder) stateAbbreviation(ctx context.Context, id *int) (string, error) {
	if id == nil || *id == 0 {
		return gateway.UnresolvedPlaceholder, nil
	}
	state, err := b.lookups.States.GetStateProvinceByID(ctx, *id)
	if err != nil {
		return "", fmt.Errorf("load state %d: %w", *id, err)
	}
	if state == nil {
		return gateway.UnresolvedPlaceholder, nil
	}
	return state.Abbreviation, nil
}

func (b *RequestBuilder) loadSender(ctx context.Context, o order.Order) (gateway.Sender, error) {
	billing, err := b.lookups.Addresses.GetAddressByID(ctx, o.BillingAddressID)
	if err != nil {
		return gateway.Sender{}, fmt.Errorf("load billing address %d: %w", o.BillingAddressID, err)
	}
	if billing == nil {
		return gateway.Sender{}, fmt.Errorf("%w: billing address %d", ErrNotFound, o.BillingAddressID)
	}

	customer, err := b.lookups.Customers.GetCustomerByID(ctx, o.CustomerID)
	if err != nil {
		return gateway.Sender{}, fmt.Errorf("load customer %d: %w", o.CustomerID, err)
	}
	if customer == nil {
		return gateway.Sender{}, fmt.Errorf("%w: customer %d", ErrNotFound, o.CustomerID)
	}

	return gateway.Sender{
		Name:  billing.FullName(),
		Email: customer.Email,
	}, nil
}
