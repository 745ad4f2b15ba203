package handlers

import (
	"context"
	"errors"
	"net/http"

	"PagSeguroBridge/internal/domain/payment"
	"PagSeguroBridge/internal/scheduler"

	"github.com/gin-gonic/gin"
)

type ReconcileRunner interface {
	RunOnce(ctx context.Context) (payment.Report, error)
}

type ReconcileResponse struct {
	Pending  int                     `json:"pending"`
	Outcomes map[payment.Outcome]int `json:"outcomes"`
	Error    string                  `json:"error,omitempty"`
}

// ReconcileHandler lets operators trigger a reconciliation cycle out of schedule.
type ReconcileHandler struct {
	runner ReconcileRunner
}

func NewReconcileHandler(r ReconcileRunner) ReconcileHandler {
	return ReconcileHandler{runner: r}
}

func (h *ReconcileHandler) Reconcile(c *gin.Context) {
	report, err := h.runner.RunOnce(c.Request.Context())
	if errors.Is(err, scheduler.ErrRunInProgress) {
		c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
		return
	}

	resp := ReconcileResponse{Pending: report.Pending, Outcomes: report.Outcomes}
	if err != nil {
		resp.Error = err.Error()
		c.JSON(http.StatusInternalServerError, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}
