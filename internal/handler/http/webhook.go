package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rookgm/streammart/internal/logger"
	"go.uber.org/zap"
)

type WebhookService interface {
	// ApplyCryptomus reconciles a Cryptomus webhook notification
	ApplyCryptomus(ctx context.Context, orderID, trackingID, paymentStatus, status string) error
	// ApplyPayGate reconciles a PayGate callback
	ApplyPayGate(ctx context.Context, orderID, valueCoin, coin, txid string) error
}

// WebhookHandler represents HTTP handler for provider payment notifications.
// Both endpoints always acknowledge: a provider that does not get its
// expected response keeps retrying indefinitely, which is worse than a
// logged and dropped reconciliation. The customer can still settle via the
// return page.
type WebhookHandler struct {
	svc WebhookService
}

// NewWebhookHandler creates new WebhookHandler instance
func NewWebhookHandler(svc WebhookService) *WebhookHandler {
	return &WebhookHandler{svc: svc}
}

type cryptomusWebhookRequest struct {
	UUID          string `json:"uuid"`
	OrderID       string `json:"order_id"`
	PaymentStatus string `json:"payment_status"`
	Status        string `json:"status"`
}

// Cryptomus handles the Cryptomus server-to-server webhook
// always responds 200 {"success":true}
func (wh *WebhookHandler) Cryptomus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		var req cryptomusWebhookRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Error("cryptomus webhook decode", zap.Error(err))
			ackCryptomus(w)
			return
		}

		if err := wh.svc.ApplyCryptomus(r.Context(), req.OrderID, req.UUID, req.PaymentStatus, req.Status); err != nil {
			logger.Log.Error("cryptomus webhook reconcile",
				zap.String("order_id", req.OrderID),
				zap.String("uuid", req.UUID),
				zap.Error(err))
		}

		ackCryptomus(w)
	}
}

// PayGate handles the PayGate callback
// always responds with the literal body "ok", the provider's retry logic
// keys off this exact body
func (wh *WebhookHandler) PayGate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		err := wh.svc.ApplyPayGate(r.Context(),
			q.Get("order_id"), q.Get("value_coin"), q.Get("coin"), q.Get("txid_in"))
		if err != nil {
			logger.Log.Error("paygate callback reconcile",
				zap.String("order_id", q.Get("order_id")),
				zap.Error(err))
		}

		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	}
}

func ackCryptomus(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]bool{"success": true})
}
