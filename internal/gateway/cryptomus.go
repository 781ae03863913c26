package gateway

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rookgm/streammart/internal/models"
)

// ProviderCryptomus is the adapter name of the Cryptomus backend
const ProviderCryptomus = "cryptomus"

// CryptomusConfig holds merchant credentials and request parameters
type CryptomusConfig struct {
	BaseURL        string
	Merchant       string
	APIKey         string
	SettleCurrency string
	Lifetime       int
	Timeout        time.Duration
}

// Cryptomus implements Adapter over the Cryptomus crypto-payment API
type Cryptomus struct {
	client *http.Client
	cfg    CryptomusConfig
}

// NewCryptomus creates new Cryptomus adapter instance
func NewCryptomus(cfg CryptomusConfig) *Cryptomus {
	if cfg.Timeout == 0 {
		cfg.Timeout = 20 * time.Second
	}
	return &Cryptomus{
		client: &http.Client{Timeout: cfg.Timeout},
		cfg:    cfg,
	}
}

// Name returns the adapter name
func (c *Cryptomus) Name() string { return ProviderCryptomus }

type cryptomusPaymentRequest struct {
	Amount            string `json:"amount"`
	Currency          string `json:"currency"`
	OrderID           string `json:"order_id"`
	URLReturn         string `json:"url_return,omitempty"`
	URLSuccess        string `json:"url_success,omitempty"`
	URLCallback       string `json:"url_callback,omitempty"`
	IsPaymentMultiple bool   `json:"is_payment_multiple"`
	Lifetime          int    `json:"lifetime,omitempty"`
	ToCurrency        string `json:"to_currency,omitempty"`
}

type cryptomusInfoRequest struct {
	UUID string `json:"uuid"`
}

type cryptomusResponse struct {
	State  int             `json:"state"`
	Result cryptomusResult `json:"result"`
	Errors map[string]any  `json:"errors"`
}

type cryptomusResult struct {
	UUID          string `json:"uuid"`
	OrderID       string `json:"order_id"`
	URL           string `json:"url"`
	PaymentStatus string `json:"payment_status"`
	Status        string `json:"status"`
}

// CreateInvoice opens a Cryptomus payment session. The amount is settled
// into the configured target currency (e.g. EUR amount converted to USDT).
func (c *Cryptomus) CreateInvoice(ctx context.Context, req InvoiceRequest) (*Invoice, error) {
	body := cryptomusPaymentRequest{
		Amount:            req.Amount.StringFixed(2),
		Currency:          req.Currency,
		OrderID:           req.OrderID.String(),
		URLReturn:         req.ReturnURL,
		URLSuccess:        req.SuccessURL,
		URLCallback:       req.CallbackURL,
		IsPaymentMultiple: false,
		Lifetime:          c.cfg.Lifetime,
		ToCurrency:        c.cfg.SettleCurrency,
	}

	raw, resp, err := c.post(ctx, c.cfg.BaseURL+"/v1/payment", body)
	if err != nil {
		return nil, err
	}

	if resp.Result.UUID == "" || resp.Result.URL == "" {
		return nil, fmt.Errorf("cryptomus payment without uuid or url: %w", models.ErrGateway)
	}

	return &Invoice{
		Provider:    ProviderCryptomus,
		TrackingID:  resp.Result.UUID,
		CheckoutURL: resp.Result.URL,
		Raw:         raw,
	}, nil
}

// PaymentInfo polls the current state of a payment session by uuid.
func (c *Cryptomus) PaymentInfo(ctx context.Context, trackingID string) (*PaymentInfo, error) {
	_, resp, err := c.post(ctx, c.cfg.BaseURL+"/v1/payment/info", cryptomusInfoRequest{UUID: trackingID})
	if err != nil {
		return nil, err
	}

	return &PaymentInfo{
		TrackingID:    resp.Result.UUID,
		OrderID:       resp.Result.OrderID,
		PaymentStatus: resp.Result.PaymentStatus,
		Status:        resp.Result.Status,
	}, nil
}

func (c *Cryptomus) post(ctx context.Context, url string, body any) (json.RawMessage, *cryptomusResponse, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("merchant", c.cfg.Merchant)
	req.Header.Set("sign", c.sign(data))

	resp, err := c.client.Do(req)
	if resp != nil {
		defer resp.Body.Close()
	}
	if err != nil {
		return nil, nil, fmt.Errorf("cryptomus request: %w: %w", models.ErrGateway, err)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("cryptomus response read: %w: %w", models.ErrGateway, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, nil, fmt.Errorf("cryptomus status %d: %w", resp.StatusCode, models.ErrGateway)
	}

	cResp := cryptomusResponse{}
	if err := json.Unmarshal(raw, &cResp); err != nil {
		return nil, nil, fmt.Errorf("cryptomus response decode: %w: %w", models.ErrGateway, err)
	}

	if cResp.State != 0 || len(cResp.Errors) > 0 {
		return nil, nil, fmt.Errorf("cryptomus state %d errors %v: %w", cResp.State, cResp.Errors, models.ErrGateway)
	}

	return raw, &cResp, nil
}

// sign produces the request signature header: the JSON body is base64-encoded,
// the merchant API key is appended, and the result is base64-encoded again.
func (c *Cryptomus) sign(body []byte) string {
	encoded := base64.StdEncoding.EncodeToString(body)
	return base64.StdEncoding.EncodeToString([]byte(encoded + c.cfg.APIKey))
}
