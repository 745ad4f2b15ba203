package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"PagSeguroBridge/internal/domain/gateway"
	"PagSeguroBridge/internal/domain/order"
	"PagSeguroBridge/internal/domain/payment"

	"github.com/gin-gonic/gin"
)

type OrderGetter interface {
	GetOrderByID(ctx context.Context, id int) (order.Order, error)
}

type PaymentRequester interface {
	BuildPaymentRequest(ctx context.Context, o order.Order) (*url.URL, error)
}

type CheckoutResponse struct {
	OrderID     int    `json:"order_id"`
	RedirectURL string `json:"redirect_url"`
}

// CheckoutHandler is called by the storefront once the buyer confirms an order.
type CheckoutHandler struct {
	orders   OrderGetter
	payments PaymentRequester
}

func NewCheckoutHandler(orders OrderGetter, payments PaymentRequester) CheckoutHandler {
	return CheckoutHandler{orders: orders, payments: payments}
}

func (h *CheckoutHandler) Checkout(c *gin.Context) {
	ctx := c.Request.Context()

	orderID, err := strconv.Atoi(c.Param("order_id"))
	if err != nil || orderID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order_id"})
		return
	}

	o, err := h.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, order.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	if !o.CanBeMarkedAsPaid() {
		c.JSON(http.StatusConflict, gin.H{"message": "Order is not awaiting payment"})
		return
	}

	redirect, err := h.payments.BuildPaymentRequest(ctx, o)
	if err != nil {
		slog.ErrorContext(ctx, "Checkout failed", "order_id", orderID, slog.Any("error", err))

		switch {
		case errors.Is(err, payment.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
		case errors.Is(err, payment.ErrConfiguration):
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Payment gateway is misconfigured"})
		case errors.Is(err, gateway.ErrRejected), errors.Is(err, gateway.ErrTransport):
			c.JSON(http.StatusBadGateway, gin.H{"message": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, CheckoutResponse{OrderID: orderID, RedirectURL: redirect.String()})
}
