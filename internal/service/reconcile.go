package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rookgm/streammart/internal/gateway"
	"github.com/rookgm/streammart/internal/logger"
	"github.com/rookgm/streammart/internal/models"
	"go.uber.org/zap"
)

// Outcome is the normalized result of a provider payment notification
type Outcome int

const (
	OutcomePending Outcome = iota
	OutcomePaid
	OutcomeFailed
)

// MapCryptomusStatus maps provider status strings to an outcome. Anything
// not explicitly terminal is treated as still pending.
func MapCryptomusStatus(paymentStatus, status string) Outcome {
	if paymentStatus == "paid" && status == "paid" {
		return OutcomePaid
	}
	switch paymentStatus {
	case "cancel", "fail", "failed":
		return OutcomeFailed
	}
	return OutcomePending
}

// ReconcileRepository is interface for interacting with order payment state
type ReconcileRepository interface {
	// GetOrderByID returns order by id
	GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	// GetOrderByPaymentRef returns order by provider tracking id
	GetOrderByPaymentRef(ctx context.Context, ref string) (*models.Order, error)
	// GetUnsettledOrders returns orders awaiting payment confirmation
	GetUnsettledOrders(ctx context.Context, provider string) ([]models.Order, error)
	// SetPaymentOutcome applies a payment outcome with its paired fulfillment status
	SetPaymentOutcome(ctx context.Context, id uuid.UUID, paymentStatus, status string) (bool, error)
	// AppendPaymentMeta appends an audit token unless already recorded
	AppendPaymentMeta(ctx context.Context, id uuid.UUID, token string) error
}

// ReconcileService converges order state with provider-reported payment
// outcomes. Every write path goes through Apply so the pairing rule
// (paid implies processing, failed implies cancelled) holds everywhere,
// and the underlying update is conditional so re-delivery is a no-op.
type ReconcileService struct {
	repo     ReconcileRepository
	adapters map[string]gateway.Adapter
}

// NewReconcileService creates new ReconcileService instance
func NewReconcileService(repo ReconcileRepository, adapters map[string]gateway.Adapter) *ReconcileService {
	return &ReconcileService{
		repo:     repo,
		adapters: adapters,
	}
}

// resolveOrder locates the order by id when present, otherwise by the
// provider tracking id.
func (rs *ReconcileService) resolveOrder(ctx context.Context, orderID, trackingID string) (*models.Order, error) {
	if orderID != "" {
		id, err := uuid.Parse(orderID)
		if err != nil {
			return nil, fmt.Errorf("parse order id: %w", models.ErrOrderNotFound)
		}
		return rs.repo.GetOrderByID(ctx, id)
	}

	if trackingID != "" {
		return rs.repo.GetOrderByPaymentRef(ctx, trackingID)
	}

	return nil, models.ErrOrderNotFound
}

// Apply writes the outcome onto the order. Returns true when the write
// changed anything, false when the outcome was already applied.
func (rs *ReconcileService) Apply(ctx context.Context, orderID uuid.UUID, outcome Outcome) (bool, error) {
	switch outcome {
	case OutcomePaid:
		return rs.repo.SetPaymentOutcome(ctx, orderID, models.PaymentStatusPaid, models.OrderStatusProcessing)
	case OutcomeFailed:
		return rs.repo.SetPaymentOutcome(ctx, orderID, models.PaymentStatusFailed, models.OrderStatusCancelled)
	}
	return false, nil
}

// ApplyCryptomus reconciles a Cryptomus webhook notification.
func (rs *ReconcileService) ApplyCryptomus(ctx context.Context, orderID, trackingID, paymentStatus, status string) error {
	order, err := rs.resolveOrder(ctx, orderID, trackingID)
	if err != nil {
		return err
	}

	outcome := MapCryptomusStatus(paymentStatus, status)

	applied, err := rs.Apply(ctx, order.ID, outcome)
	if err != nil {
		return err
	}

	if applied {
		logger.Log.Info("order payment reconciled",
			zap.String("order", order.ID.String()),
			zap.String("provider", gateway.ProviderCryptomus),
			zap.String("payment_status", paymentStatus))
	}

	return nil
}

// ApplyPayGate reconciles a PayGate callback. The callback firing at all is
// proof of payment, the transaction metadata is kept as an audit token.
func (rs *ReconcileService) ApplyPayGate(ctx context.Context, orderID, valueCoin, coin, txid string) error {
	order, err := rs.resolveOrder(ctx, orderID, "")
	if err != nil {
		return err
	}

	if _, err := rs.Apply(ctx, order.ID, OutcomePaid); err != nil {
		return err
	}

	token := fmt.Sprintf("paygate:%s:%s:%s", valueCoin, coin, txid)
	if err := rs.repo.AppendPaymentMeta(ctx, order.ID, token); err != nil {
		return err
	}

	logger.Log.Info("order payment reconciled",
		zap.String("order", order.ID.String()),
		zap.String("provider", gateway.ProviderPayGate),
		zap.String("txid", txid))

	return nil
}

// ReconcileByTrackingID actively polls the provider for the payment state
// and applies it. Used by the legacy return-page path where no order id is
// known and no webhook may have arrived yet.
func (rs *ReconcileService) ReconcileByTrackingID(ctx context.Context, trackingID string) (*models.Order, error) {
	order, err := rs.repo.GetOrderByPaymentRef(ctx, trackingID)
	if err != nil {
		return nil, err
	}

	adapter, ok := rs.adapters[order.PaymentProvider]
	if !ok {
		return nil, models.ErrUnknownProvider
	}

	info, err := adapter.PaymentInfo(ctx, trackingID)
	if err != nil {
		if errors.Is(err, models.ErrPollUnsupported) {
			return order, nil
		}
		return nil, err
	}

	outcome := MapCryptomusStatus(info.PaymentStatus, info.Status)
	if _, err := rs.Apply(ctx, order.ID, outcome); err != nil {
		return nil, err
	}

	return rs.repo.GetOrderByID(ctx, order.ID)
}

// ReconcileOrders reads unsettled orders from channel and polls the provider
// for their payment state.
func (rs *ReconcileService) ReconcileOrders(ctx context.Context, orderCh <-chan models.Order) {
	for {
		select {
		case <-ctx.Done():
			logger.Log.Debug("reconcile is done")
			return
		case order, ok := <-orderCh:
			if !ok {
				return
			}

			adapter, ok := rs.adapters[order.PaymentProvider]
			if !ok {
				continue
			}

			info, err := adapter.PaymentInfo(ctx, order.PaymentRef)
			if err != nil {
				if !errors.Is(err, models.ErrPollUnsupported) {
					logger.Log.Error("payment info request error", zap.Error(err))
				}
				continue
			}

			outcome := MapCryptomusStatus(info.PaymentStatus, info.Status)

			applied, err := rs.Apply(ctx, order.ID, outcome)
			if err != nil {
				logger.Log.Error("apply payment outcome", zap.String("order", order.ID.String()), zap.Error(err))
				continue
			}

			if applied {
				logger.Log.Debug("order settled by poll", zap.String("order", order.ID.String()))
			}
		}
	}
}

// GetUnsettledForReconcile writes unsettled orders to channel for polling.
func (rs *ReconcileService) GetUnsettledForReconcile(ctx context.Context, orderCh chan<- models.Order) error {
	for name := range rs.adapters {
		orders, err := rs.repo.GetUnsettledOrders(ctx, name)
		if err != nil {
			return err
		}

		for _, order := range orders {
			orderCh <- order
		}
	}

	return nil
}
