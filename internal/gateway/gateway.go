package gateway

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceRequest carries everything a provider needs to open a hosted
// checkout session for an order.
type InvoiceRequest struct {
	OrderID       uuid.UUID
	Amount        decimal.Decimal
	Currency      string
	CustomerEmail string
	ReturnURL     string
	SuccessURL    string
	CallbackURL   string
}

// Invoice is the normalized result of opening a provider payment session.
// TrackingID is the provider-issued identifier (UUID or deposit address)
// linking the session back to the order.
type Invoice struct {
	Provider    string
	TrackingID  string
	CheckoutURL string
	Raw         json.RawMessage
}

// PaymentInfo is the provider-reported state of a payment session,
// returned by the polling endpoint where the provider has one.
type PaymentInfo struct {
	TrackingID    string
	OrderID       string
	PaymentStatus string
	Status        string
}

// Adapter hides provider signature schemes and multi-step handshakes behind
// a single create/poll contract.
type Adapter interface {
	Name() string
	CreateInvoice(ctx context.Context, req InvoiceRequest) (*Invoice, error)
	PaymentInfo(ctx context.Context, trackingID string) (*PaymentInfo, error)
}
