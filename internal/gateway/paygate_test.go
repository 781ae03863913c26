package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/google/uuid"
	"github.com/rookgm/streammart/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayGate_CreateInvoice(t *testing.T) {
	const callbackURL = "https://shop.example/api/webhook/paygate?order_id=ord_1"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/control/wallet.php", r.URL.Path)
		assert.Equal(t, "0xWALLET", r.URL.Query().Get("address"))
		assert.Equal(t, callbackURL, r.URL.Query().Get("callback"))

		json.NewEncoder(w).Encode(map[string]string{
			"address_in":         "0xENC",
			"polygon_address_in": "0xPOLY",
			"ipn_token":          "tok-1",
		})
	}))
	defer srv.Close()

	p := NewPayGate(PayGateConfig{BaseURL: srv.URL, Wallet: "0xWALLET"})

	inv, err := p.CreateInvoice(context.Background(), InvoiceRequest{
		OrderID:       uuid.New(),
		Amount:        decimal.RequireFromString("50"),
		Currency:      "EUR",
		CustomerEmail: "user@example.com",
		CallbackURL:   callbackURL,
	})
	require.NoError(t, err)

	assert.Equal(t, ProviderPayGate, inv.Provider)
	assert.Equal(t, "0xENC", inv.TrackingID)

	u, err := url.Parse(inv.CheckoutURL)
	require.NoError(t, err)
	assert.Equal(t, "checkout.paygate.to", u.Host)
	assert.Equal(t, "/pay.php", u.Path)
	assert.Equal(t, "0xENC", u.Query().Get("address"))
	assert.Equal(t, "50.00", u.Query().Get("amount"))
	assert.Equal(t, "user@example.com", u.Query().Get("email"))
	assert.Equal(t, "USD", u.Query().Get("currency"))
}

func TestPayGate_CreateInvoice_NoAddress(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"ipn_token": "tok-1"})
	}))
	defer srv.Close()

	p := NewPayGate(PayGateConfig{BaseURL: srv.URL, Wallet: "0xWALLET"})

	_, err := p.CreateInvoice(context.Background(), InvoiceRequest{
		OrderID: uuid.New(),
		Amount:  decimal.RequireFromString("10"),
	})
	assert.True(t, errors.Is(err, models.ErrGateway))
}

func TestPayGate_PaymentInfo_Unsupported(t *testing.T) {
	p := NewPayGate(PayGateConfig{BaseURL: "http://unused", Wallet: "0xWALLET"})

	_, err := p.PaymentInfo(context.Background(), "0xENC")
	assert.True(t, errors.Is(err, models.ErrPollUnsupported))
}
