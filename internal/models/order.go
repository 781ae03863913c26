package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// fulfillment status
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// payment status
const (
	PaymentStatusPending    = "pending"
	PaymentStatusProcessing = "processing"
	PaymentStatusPaid       = "paid"
	PaymentStatusFailed     = "failed"
	PaymentStatusRefunded   = "refunded"
)

var validOrderStatuses = map[string]struct{}{
	OrderStatusPending:    {},
	OrderStatusProcessing: {},
	OrderStatusShipped:    {},
	OrderStatusDelivered:  {},
	OrderStatusCancelled:  {},
}

// IsValidOrderStatus reports whether s is a known fulfillment status.
func IsValidOrderStatus(s string) bool {
	_, ok := validOrderStatuses[s]
	return ok
}

// Order is order entity. Status and PaymentStatus are independent axes:
// Status tracks fulfillment, PaymentStatus tracks the provider-side payment.
type Order struct {
	ID              uuid.UUID
	IdempotencyKey  *uuid.UUID
	CustomerName    string
	CustomerEmail   string
	CustomerContact string
	PackageName     string
	PackageCategory string
	DurationMonths  int
	Amount          decimal.Decimal
	Currency        string
	Status          string
	PaymentStatus   string
	PaymentProvider string
	PaymentRef      string
	PaymentMeta     []string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// HasMetaToken reports whether the audit token is already recorded on the order.
func (o *Order) HasMetaToken(token string) bool {
	for _, t := range o.PaymentMeta {
		if t == token {
			return true
		}
	}
	return false
}
