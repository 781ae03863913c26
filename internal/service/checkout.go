package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rookgm/streammart/internal/gateway"
	"github.com/rookgm/streammart/internal/logger"
	"github.com/rookgm/streammart/internal/models"
	"go.uber.org/zap"
)

// CheckoutRepository is interface for creating orders and attaching payment references
type CheckoutRepository interface {
	// CreateOrder inserts new order, idempotent on the idempotency key
	CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error)
	// AttachPaymentRef records the provider tracking id on the order
	AttachPaymentRef(ctx context.Context, id uuid.UUID, provider, ref string) error
}

// PackageReader is interface for reading packages offered at checkout
type PackageReader interface {
	// GetPackageByID returns package by id
	GetPackageByID(ctx context.Context, id uuid.UUID) (*models.Package, error)
}

// CheckoutInput is validated customer input plus the selected package
type CheckoutInput struct {
	PackageID       uuid.UUID
	Provider        string
	CustomerName    string
	CustomerEmail   string
	CustomerContact string
	IdempotencyKey  *uuid.UUID
}

// CheckoutResult carries everything the customer needs to continue on the
// provider's hosted checkout page.
type CheckoutResult struct {
	OrderID     uuid.UUID
	CheckoutURL string
}

// CheckoutService orchestrates order creation and invoice initiation.
// The order is always durably created before the provider is contacted,
// and the redirect URL is only released after the tracking id is persisted.
type CheckoutService struct {
	orders   CheckoutRepository
	packages PackageReader
	adapters map[string]gateway.Adapter
	baseURL  string
}

// NewCheckoutService creates new CheckoutService instance
func NewCheckoutService(orders CheckoutRepository, packages PackageReader, adapters map[string]gateway.Adapter, baseURL string) *CheckoutService {
	return &CheckoutService{
		orders:   orders,
		packages: packages,
		adapters: adapters,
		baseURL:  baseURL,
	}
}

// Checkout creates an order for the selected package and opens a provider
// payment session for it.
func (cs *CheckoutService) Checkout(ctx context.Context, in CheckoutInput) (*CheckoutResult, error) {
	if in.CustomerName == "" || in.CustomerEmail == "" {
		return nil, models.ErrMissingFields
	}

	adapter, ok := cs.adapters[in.Provider]
	if !ok {
		return nil, models.ErrUnknownProvider
	}

	pkg, err := cs.packages.GetPackageByID(ctx, in.PackageID)
	if err != nil {
		return nil, err
	}
	if !pkg.Active {
		return nil, models.ErrPackageNotFound
	}

	order := &models.Order{
		IdempotencyKey:  in.IdempotencyKey,
		CustomerName:    in.CustomerName,
		CustomerEmail:   in.CustomerEmail,
		CustomerContact: in.CustomerContact,
		PackageName:     pkg.Name,
		PackageCategory: pkg.Category,
		DurationMonths:  pkg.DurationMonths,
		Amount:          pkg.Price,
		Currency:        pkg.Currency,
		Status:          models.OrderStatusPending,
		PaymentStatus:   models.PaymentStatusPending,
	}

	// the order must exist before any payment is initiated with the provider
	order, err = cs.orders.CreateOrder(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	returnURL := fmt.Sprintf("%s/payment/return?order_id=%s", cs.baseURL, order.ID)
	callbackURL := fmt.Sprintf("%s/api/webhook/%s?order_id=%s", cs.baseURL, adapter.Name(), order.ID)

	invoice, err := adapter.CreateInvoice(ctx, gateway.InvoiceRequest{
		OrderID:       order.ID,
		Amount:        order.Amount,
		Currency:      order.Currency,
		CustomerEmail: order.CustomerEmail,
		ReturnURL:     returnURL,
		SuccessURL:    returnURL,
		CallbackURL:   callbackURL,
	})
	if err != nil {
		// order stays pending/pending, no payment was initiated
		logger.Log.Error("create invoice", zap.String("order", order.ID.String()), zap.Error(err))
		return nil, err
	}

	if invoice.CheckoutURL == "" {
		return nil, models.ErrEmptyCheckoutURL
	}

	// fail closed: without the tracking id persisted a later webhook could
	// not be resolved, so the customer is not redirected
	if err := cs.orders.AttachPaymentRef(ctx, order.ID, invoice.Provider, invoice.TrackingID); err != nil {
		logger.Log.Error("attach payment ref", zap.String("order", order.ID.String()), zap.Error(err))
		return nil, fmt.Errorf("attach payment ref: %w", err)
	}

	return &CheckoutResult{
		OrderID:     order.ID,
		CheckoutURL: invoice.CheckoutURL,
	}, nil
}
