package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rookgm/streammart/internal/models"
)

// ProviderPayGate is the adapter name of the PayGate backend
const ProviderPayGate = "paygate"

// checkout page is hosted by the provider, the encrypted deposit address in
// the query string is the capability token, no signing involved
const payGateCheckoutBaseURL = "https://checkout.paygate.to/pay.php"

// PayGateConfig holds the merchant destination wallet
type PayGateConfig struct {
	BaseURL string
	Wallet  string
	Timeout time.Duration
}

// PayGate implements Adapter over the PayGate wallet API. Opening a session
// is a two-step handshake: request a per-transaction deposit address for the
// merchant wallet, then build the hosted checkout URL around it.
type PayGate struct {
	client *http.Client
	cfg    PayGateConfig
}

// NewPayGate creates new PayGate adapter instance
func NewPayGate(cfg PayGateConfig) *PayGate {
	if cfg.Timeout == 0 {
		cfg.Timeout = 20 * time.Second
	}
	return &PayGate{
		client: &http.Client{Timeout: cfg.Timeout},
		cfg:    cfg,
	}
}

// Name returns the adapter name
func (p *PayGate) Name() string { return ProviderPayGate }

type payGateWalletResponse struct {
	AddressIn        string `json:"address_in"`
	PolygonAddressIn string `json:"polygon_address_in"`
	IPNToken         string `json:"ipn_token"`
}

// CreateInvoice requests an encrypted deposit address bound to the callback
// URL and builds the hosted checkout URL. The deposit address doubles as the
// tracking id.
func (p *PayGate) CreateInvoice(ctx context.Context, req InvoiceRequest) (*Invoice, error) {
	walletURL := fmt.Sprintf("%s/control/wallet.php?address=%s&callback=%s",
		p.cfg.BaseURL, url.QueryEscape(p.cfg.Wallet), url.QueryEscape(req.CallbackURL))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, walletURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := p.client.Do(httpReq)
	if resp != nil {
		defer resp.Body.Close()
	}
	if err != nil {
		return nil, fmt.Errorf("paygate wallet request: %w: %w", models.ErrGateway, err)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("paygate response read: %w: %w", models.ErrGateway, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("paygate status %d: %w", resp.StatusCode, models.ErrGateway)
	}

	wResp := payGateWalletResponse{}
	if err := json.Unmarshal(raw, &wResp); err != nil {
		return nil, fmt.Errorf("paygate response decode: %w: %w", models.ErrGateway, err)
	}

	if wResp.AddressIn == "" {
		return nil, fmt.Errorf("paygate wallet without address_in: %w", models.ErrGateway)
	}

	query := url.Values{}
	query.Set("address", wResp.AddressIn)
	query.Set("amount", req.Amount.StringFixed(2))
	query.Set("email", req.CustomerEmail)
	query.Set("currency", "USD")

	return &Invoice{
		Provider:    ProviderPayGate,
		TrackingID:  wResp.AddressIn,
		CheckoutURL: payGateCheckoutBaseURL + "?" + query.Encode(),
		Raw:         raw,
	}, nil
}

// PaymentInfo is unsupported: PayGate has no poll endpoint, its callback
// firing at all is the proof of payment.
func (p *PayGate) PaymentInfo(ctx context.Context, trackingID string) (*PaymentInfo, error) {
	return nil, models.ErrPollUnsupported
}
