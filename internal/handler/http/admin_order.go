package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rookgm/streammart/internal/logger"
	"github.com/rookgm/streammart/internal/models"
	"github.com/rookgm/streammart/internal/notify"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

type AdminOrderService interface {
	// GetOrder returns order by id
	GetOrder(ctx context.Context, id uuid.UUID) (*models.Order, error)
	// ListOrders returns all orders, newest first
	ListOrders(ctx context.Context) ([]models.Order, error)
	// SetStatus applies a manual fulfillment status transition
	SetStatus(ctx context.Context, id uuid.UUID, status string) error
}

// AdminOrderHandler represents HTTP handler for the admin order console
type AdminOrderHandler struct {
	svc AdminOrderService
}

// NewAdminOrderHandler creates new AdminOrderHandler instance
func NewAdminOrderHandler(svc AdminOrderService) *AdminOrderHandler {
	return &AdminOrderHandler{svc: svc}
}

type orderResponse struct {
	ID              string   `json:"id"`
	CustomerName    string   `json:"customer_name"`
	CustomerEmail   string   `json:"customer_email"`
	CustomerContact string   `json:"customer_contact,omitempty"`
	PackageName     string   `json:"package_name"`
	PackageCategory string   `json:"package_category,omitempty"`
	DurationMonths  int      `json:"duration_months"`
	Amount          string   `json:"amount"`
	Currency        string   `json:"currency"`
	Status          string   `json:"status"`
	PaymentStatus   string   `json:"payment_status"`
	PaymentProvider string   `json:"payment_provider,omitempty"`
	PaymentRef      string   `json:"payment_ref,omitempty"`
	PaymentMeta     []string `json:"payment_meta,omitempty"`
	CreatedAt       string   `json:"created_at"`
}

func toOrderResponse(order models.Order) orderResponse {
	return orderResponse{
		ID:              order.ID.String(),
		CustomerName:    order.CustomerName,
		CustomerEmail:   order.CustomerEmail,
		CustomerContact: order.CustomerContact,
		PackageName:     order.PackageName,
		PackageCategory: order.PackageCategory,
		DurationMonths:  order.DurationMonths,
		Amount:          order.Amount.StringFixed(2),
		Currency:        order.Currency,
		Status:          order.Status,
		PaymentStatus:   order.PaymentStatus,
		PaymentProvider: order.PaymentProvider,
		PaymentRef:      order.PaymentRef,
		PaymentMeta:     order.PaymentMeta,
		CreatedAt:       order.CreatedAt.Format(time.RFC3339),
	}
}

// ListOrders returns all orders for the admin console
// 200 — успешная обработка запроса.
// 401 — пользователь не авторизован.
// 500 — внутренняя ошибка сервера.
func (ah *AdminOrderHandler) ListOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orders, err := ah.svc.ListOrders(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		resp := lo.Map(orders, func(order models.Order, _ int) orderResponse {
			return toOrderResponse(order)
		})

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err := json.NewEncoder(w).Encode(resp); err != nil {
			return
		}
	}
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateOrderStatus applies a manual status transition
// 200 — статус обновлён;
// 400 — неверный формат запроса;
// 404 — заказ не найден;
// 422 — неизвестный статус;
// 500 — внутренняя ошибка сервера.
func (ah *AdminOrderHandler) UpdateOrderStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			http.Error(w, "invalid order id", http.StatusBadRequest)
			return
		}

		var req updateStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		if err := ah.svc.SetStatus(r.Context(), orderID, req.Status); err != nil {
			switch {
			case errors.Is(err, models.ErrInvalidStatus):
				http.Error(w, "invalid status", http.StatusUnprocessableEntity)
			case errors.Is(err, models.ErrOrderNotFound):
				http.Error(w, "order not found", http.StatusNotFound)
			default:
				http.Error(w, "failed to update", http.StatusInternalServerError)
			}
			return
		}

		if payload, ok := getAuthPayload(r.Context(), authPayloadKey); ok {
			logger.Log.Info("manual order status transition",
				zap.String("order", orderID.String()),
				zap.String("status", req.Status),
				zap.String("admin", payload.Login))
		}

		w.WriteHeader(http.StatusOK)
	}
}

type notifyResponse struct {
	Link string `json:"link"`
}

// NotifyCustomer builds a WhatsApp message link for the order's customer
// 200 — ссылка сформирована;
// 404 — заказ не найден;
// 422 — у заказа нет телефонного контакта;
// 500 — внутренняя ошибка сервера.
func (ah *AdminOrderHandler) NotifyCustomer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			http.Error(w, "invalid order id", http.StatusBadRequest)
			return
		}

		order, err := ah.svc.GetOrder(r.Context(), orderID)
		if err != nil {
			switch {
			case errors.Is(err, models.ErrOrderNotFound):
				http.Error(w, "order not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		link := notify.WhatsAppLink(order)
		if link == "" {
			http.Error(w, "order has no phone contact", http.StatusUnprocessableEntity)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err := json.NewEncoder(w).Encode(notifyResponse{Link: link}); err != nil {
			return
		}
	}
}
