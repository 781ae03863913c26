package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/rookgm/streammart/internal/logger"
	"github.com/rookgm/streammart/internal/models"
	"go.uber.org/zap"
)

type OrderGetter interface {
	// GetOrder returns order by id
	GetOrder(ctx context.Context, id uuid.UUID) (*models.Order, error)
}

type TrackingReconciler interface {
	// ReconcileByTrackingID polls the provider and applies the current state
	ReconcileByTrackingID(ctx context.Context, trackingID string) (*models.Order, error)
}

// return page render states
const (
	returnStateSuccess = "success"
	returnStatePending = "pending"
	returnStateFailed  = "failed"
)

// PaymentHandler represents HTTP handler for the payment return page poll
type PaymentHandler struct {
	orders     OrderGetter
	reconciler TrackingReconciler
}

// NewPaymentHandler creates new PaymentHandler instance
func NewPaymentHandler(orders OrderGetter, reconciler TrackingReconciler) *PaymentHandler {
	return &PaymentHandler{
		orders:     orders,
		reconciler: reconciler,
	}
}

type returnResponse struct {
	State         string `json:"state"`
	OrderID       string `json:"order_id,omitempty"`
	PaymentStatus string `json:"payment_status,omitempty"`
}

// Return resolves the state shown to a customer landing back from the
// provider's hosted checkout
// 200 — состояние определено (success, pending или failed);
// 400 — ни order_id, ни uuid не переданы.
// The webhook is assumed to race with this read, so any ambiguity renders
// as pending rather than an error.
func (ph *PaymentHandler) Return() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		if orderIDParam := q.Get("order_id"); orderIDParam != "" {
			ph.respondForOrderID(w, r, orderIDParam)
			return
		}

		// legacy links carry only the provider tracking id, no webhook may
		// have arrived yet, so the provider is polled directly
		if trackingID := q.Get("uuid"); trackingID != "" {
			order, err := ph.reconciler.ReconcileByTrackingID(r.Context(), trackingID)
			if err != nil {
				logger.Log.Error("reconcile by tracking id", zap.String("uuid", trackingID), zap.Error(err))
				writeReturnState(w, returnResponse{State: returnStatePending})
				return
			}

			writeReturnState(w, returnResponse{
				State:         mapReturnState(order.PaymentStatus),
				OrderID:       order.ID.String(),
				PaymentStatus: order.PaymentStatus,
			})
			return
		}

		http.Error(w, "order_id or uuid is required", http.StatusBadRequest)
	}
}

func (ph *PaymentHandler) respondForOrderID(w http.ResponseWriter, r *http.Request, orderIDParam string) {
	orderID, err := uuid.Parse(orderIDParam)
	if err != nil {
		writeReturnState(w, returnResponse{State: returnStatePending})
		return
	}

	order, err := ph.orders.GetOrder(r.Context(), orderID)
	if err != nil {
		logger.Log.Error("get order for return page", zap.String("order_id", orderIDParam), zap.Error(err))
		writeReturnState(w, returnResponse{State: returnStatePending, OrderID: orderIDParam})
		return
	}

	writeReturnState(w, returnResponse{
		State:         mapReturnState(order.PaymentStatus),
		OrderID:       order.ID.String(),
		PaymentStatus: order.PaymentStatus,
	})
}

func mapReturnState(paymentStatus string) string {
	switch paymentStatus {
	case models.PaymentStatusPaid:
		return returnStateSuccess
	case models.PaymentStatusFailed:
		return returnStateFailed
	default:
		return returnStatePending
	}
}

func writeReturnState(w http.ResponseWriter, resp returnResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}
