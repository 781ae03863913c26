package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/rookgm/streammart/internal/models"
	"github.com/rookgm/streammart/internal/service"
)

type CheckoutService interface {
	Checkout(ctx context.Context, in service.CheckoutInput) (*service.CheckoutResult, error)
}

// CheckoutHandler represents HTTP handler for checkout requests
type CheckoutHandler struct {
	svc CheckoutService
}

// NewCheckoutHandler creates new CheckoutHandler instance
func NewCheckoutHandler(svc CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{svc: svc}
}

type checkoutCustomer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Contact string `json:"contact"`
}

type checkoutRequest struct {
	PackageID      string           `json:"package_id"`
	Provider       string           `json:"provider"`
	Customer       checkoutCustomer `json:"customer"`
	IdempotencyKey string           `json:"idempotency_key,omitempty"`
}

type checkoutResponse struct {
	OrderID     string `json:"order_id"`
	CheckoutURL string `json:"checkout_url"`
}

// Checkout creates an order and opens a provider payment session
// 200 — заказ создан, возвращён URL страницы оплаты;
// 400 — неверный формат запроса или пакета;
// 502 — ошибка платёжного шлюза;
// 500 — внутренняя ошибка сервера.
func (ch *CheckoutHandler) Checkout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req checkoutRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		packageID, err := uuid.Parse(req.PackageID)
		if err != nil {
			http.Error(w, "invalid package id", http.StatusBadRequest)
			return
		}

		in := service.CheckoutInput{
			PackageID:       packageID,
			Provider:        req.Provider,
			CustomerName:    req.Customer.Name,
			CustomerEmail:   req.Customer.Email,
			CustomerContact: req.Customer.Contact,
		}

		if req.IdempotencyKey != "" {
			key, err := uuid.Parse(req.IdempotencyKey)
			if err != nil {
				http.Error(w, "invalid idempotency key", http.StatusBadRequest)
				return
			}
			in.IdempotencyKey = &key
		}

		result, err := ch.svc.Checkout(r.Context(), in)
		if err != nil {
			switch {
			case errors.Is(err, models.ErrMissingFields):
				http.Error(w, "missing required fields", http.StatusBadRequest)
			case errors.Is(err, models.ErrUnknownProvider):
				http.Error(w, "unknown payment provider", http.StatusBadRequest)
			case errors.Is(err, models.ErrPackageNotFound):
				http.Error(w, "package not found", http.StatusBadRequest)
			case errors.Is(err, models.ErrGateway), errors.Is(err, models.ErrEmptyCheckoutURL):
				http.Error(w, "payment creation failed, try again", http.StatusBadGateway)
			default:
				http.Error(w, "payment creation failed, try again", http.StatusInternalServerError)
			}
			return
		}

		resp := checkoutResponse{
			OrderID:     result.OrderID.String(),
			CheckoutURL: result.CheckoutURL,
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err := json.NewEncoder(w).Encode(resp); err != nil {
			return
		}
	}
}
