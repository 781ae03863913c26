package worker

import (
	"context"
	"time"

	"github.com/rookgm/streammart/internal/logger"
	"github.com/rookgm/streammart/internal/models"
)

type ReconcileService interface {
	ReconcileOrders(ctx context.Context, orderCh <-chan models.Order)
	GetUnsettledForReconcile(ctx context.Context, orderCh chan<- models.Order) error
}

// PaymentProcessor is worker polling the provider for orders stuck awaiting
// payment confirmation, a server-side fallback for missed webhooks.
type PaymentProcessor struct {
	svc      ReconcileService
	interval time.Duration
}

// NewPaymentProcessor creates new payment processor
func NewPaymentProcessor(svc ReconcileService, interval time.Duration) *PaymentProcessor {
	return &PaymentProcessor{
		svc:      svc,
		interval: interval,
	}
}

// ProcessOrders
func (pp *PaymentProcessor) ProcessOrders(ctx context.Context) {
	orders := make(chan models.Order, 10)

	go pp.svc.ReconcileOrders(ctx, orders)

	ticker := time.NewTicker(pp.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Log.Debug("payment processor is done")
			return
		case <-ticker.C:
			if err := pp.svc.GetUnsettledForReconcile(ctx, orders); err != nil {
				logger.Log.Error("error get orders for reconcile")
			}
		}
	}
}
