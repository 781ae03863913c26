package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rookgm/streammart/internal/models"
)

// OrderRepository is interface for interacting with order-related data
type OrderRepository interface {
	// GetOrderByID returns order by id
	GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	// GetOrders returns all orders, newest first
	GetOrders(ctx context.Context) ([]models.Order, error)
	// UpdateOrderStatus sets fulfillment status
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status string) error
}

// OrderService exposes orders to the return page and the admin console
type OrderService struct {
	repo OrderRepository
}

// NewOrderService creates new OrderService instance
func NewOrderService(repo OrderRepository) *OrderService {
	return &OrderService{repo: repo}
}

// GetOrder returns order by id
func (os *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	return os.repo.GetOrderByID(ctx, id)
}

// ListOrders returns all orders, newest first
func (os *OrderService) ListOrders(ctx context.Context) ([]models.Order, error) {
	return os.repo.GetOrders(ctx)
}

// SetStatus applies a manual fulfillment status transition. The payment
// pairing rule is deliberately not enforced here, manual override is the
// admin's escape hatch.
func (os *OrderService) SetStatus(ctx context.Context, id uuid.UUID, status string) error {
	if !models.IsValidOrderStatus(status) {
		return models.ErrInvalidStatus
	}
	return os.repo.UpdateOrderStatus(ctx, id, status)
}
