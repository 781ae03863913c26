package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/rookgm/streammart/internal/gateway"
	"github.com/rookgm/streammart/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCheckoutRepo records order creation and payment ref attachment
type fakeCheckoutRepo struct {
	createErr error
	attachErr error

	created     *models.Order
	attachedRef string
	attachedTo  uuid.UUID
}

func (f *fakeCheckoutRepo) CreateOrder(_ context.Context, order *models.Order) (*models.Order, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	order.ID = uuid.New()
	f.created = order
	return order, nil
}

func (f *fakeCheckoutRepo) AttachPaymentRef(_ context.Context, id uuid.UUID, provider, ref string) error {
	if f.attachErr != nil {
		return f.attachErr
	}
	f.attachedTo = id
	f.attachedRef = ref
	return nil
}

// fakePackages serves a single active package
type fakePackages struct {
	pkg *models.Package
}

func (f *fakePackages) GetPackageByID(_ context.Context, id uuid.UUID) (*models.Package, error) {
	if f.pkg == nil || f.pkg.ID != id {
		return nil, models.ErrPackageNotFound
	}
	return f.pkg, nil
}

// recordingAdapter captures the invoice request it was called with
type recordingAdapter struct {
	invoice   *gateway.Invoice
	createErr error

	called bool
	got    gateway.InvoiceRequest
}

func (r *recordingAdapter) Name() string { return gateway.ProviderCryptomus }

func (r *recordingAdapter) CreateInvoice(_ context.Context, req gateway.InvoiceRequest) (*gateway.Invoice, error) {
	r.called = true
	r.got = req
	if r.createErr != nil {
		return nil, r.createErr
	}
	return r.invoice, nil
}

func (r *recordingAdapter) PaymentInfo(context.Context, string) (*gateway.PaymentInfo, error) {
	return nil, models.ErrPollUnsupported
}

func testPackage() *models.Package {
	return &models.Package{
		ID:             uuid.New(),
		Name:           "Premium 12M",
		Category:       "premium",
		DurationMonths: 12,
		Price:          decimal.RequireFromString("49.99"),
		Currency:       "EUR",
		Active:         true,
	}
}

func newCheckout(repo *fakeCheckoutRepo, pkg *models.Package, adapter gateway.Adapter) *CheckoutService {
	return NewCheckoutService(repo, &fakePackages{pkg: pkg},
		map[string]gateway.Adapter{gateway.ProviderCryptomus: adapter}, "https://shop.example")
}

func TestCheckout_Success(t *testing.T) {
	repo := &fakeCheckoutRepo{}
	pkg := testPackage()
	adapter := &recordingAdapter{
		invoice: &gateway.Invoice{
			Provider:    gateway.ProviderCryptomus,
			TrackingID:  "abc-123",
			CheckoutURL: "https://pay.example/abc-123",
		},
	}

	cs := newCheckout(repo, pkg, adapter)

	result, err := cs.Checkout(context.Background(), CheckoutInput{
		PackageID:     pkg.ID,
		Provider:      gateway.ProviderCryptomus,
		CustomerName:  "Alice",
		CustomerEmail: "alice@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, "https://pay.example/abc-123", result.CheckoutURL)
	assert.Equal(t, repo.created.ID, result.OrderID)

	// order fields copied from the selected package
	assert.Equal(t, "Premium 12M", repo.created.PackageName)
	assert.True(t, decimal.RequireFromString("49.99").Equal(repo.created.Amount))
	assert.Equal(t, models.OrderStatusPending, repo.created.Status)
	assert.Equal(t, models.PaymentStatusPending, repo.created.PaymentStatus)

	// the invoice request embeds the created order id
	assert.Equal(t, repo.created.ID, adapter.got.OrderID)
	assert.True(t, strings.Contains(adapter.got.CallbackURL, repo.created.ID.String()))

	// tracking id persisted before the redirect URL was released
	assert.Equal(t, "abc-123", repo.attachedRef)
	assert.Equal(t, repo.created.ID, repo.attachedTo)
}

func TestCheckout_MissingFields(t *testing.T) {
	repo := &fakeCheckoutRepo{}
	pkg := testPackage()
	adapter := &recordingAdapter{}

	cs := newCheckout(repo, pkg, adapter)

	_, err := cs.Checkout(context.Background(), CheckoutInput{
		PackageID: pkg.ID,
		Provider:  gateway.ProviderCryptomus,
		// name and email empty
	})
	assert.True(t, errors.Is(err, models.ErrMissingFields))
	assert.Nil(t, repo.created, "no order may be created for invalid input")
	assert.False(t, adapter.called)
}

func TestCheckout_OrderBeforeInvoice(t *testing.T) {
	repo := &fakeCheckoutRepo{createErr: errors.New("insert failed")}
	pkg := testPackage()
	adapter := &recordingAdapter{}

	cs := newCheckout(repo, pkg, adapter)

	_, err := cs.Checkout(context.Background(), CheckoutInput{
		PackageID:     pkg.ID,
		Provider:      gateway.ProviderCryptomus,
		CustomerName:  "Alice",
		CustomerEmail: "alice@example.com",
	})
	require.Error(t, err)
	assert.False(t, adapter.called, "no invoice may be requested without a durably created order")
}

func TestCheckout_GatewayFailureLeavesOrderPending(t *testing.T) {
	repo := &fakeCheckoutRepo{}
	pkg := testPackage()
	adapter := &recordingAdapter{createErr: models.ErrGateway}

	cs := newCheckout(repo, pkg, adapter)

	_, err := cs.Checkout(context.Background(), CheckoutInput{
		PackageID:     pkg.ID,
		Provider:      gateway.ProviderCryptomus,
		CustomerName:  "Alice",
		CustomerEmail: "alice@example.com",
	})
	assert.True(t, errors.Is(err, models.ErrGateway))

	// orphaned but harmless, no payment was initiated
	require.NotNil(t, repo.created)
	assert.Equal(t, models.OrderStatusPending, repo.created.Status)
	assert.Equal(t, models.PaymentStatusPending, repo.created.PaymentStatus)
	assert.Empty(t, repo.attachedRef)
}

func TestCheckout_EmptyCheckoutURL(t *testing.T) {
	repo := &fakeCheckoutRepo{}
	pkg := testPackage()
	adapter := &recordingAdapter{
		invoice: &gateway.Invoice{Provider: gateway.ProviderCryptomus, TrackingID: "abc-123"},
	}

	cs := newCheckout(repo, pkg, adapter)

	_, err := cs.Checkout(context.Background(), CheckoutInput{
		PackageID:     pkg.ID,
		Provider:      gateway.ProviderCryptomus,
		CustomerName:  "Alice",
		CustomerEmail: "alice@example.com",
	})
	assert.True(t, errors.Is(err, models.ErrEmptyCheckoutURL))
}

func TestCheckout_AttachFailureBlocksRedirect(t *testing.T) {
	repo := &fakeCheckoutRepo{attachErr: errors.New("update failed")}
	pkg := testPackage()
	adapter := &recordingAdapter{
		invoice: &gateway.Invoice{
			Provider:    gateway.ProviderCryptomus,
			TrackingID:  "abc-123",
			CheckoutURL: "https://pay.example/abc-123",
		},
	}

	cs := newCheckout(repo, pkg, adapter)

	result, err := cs.Checkout(context.Background(), CheckoutInput{
		PackageID:     pkg.ID,
		Provider:      gateway.ProviderCryptomus,
		CustomerName:  "Alice",
		CustomerEmail: "alice@example.com",
	})
	require.Error(t, err)
	assert.Nil(t, result, "redirect URL must not be released when the tracking id persist failed")
}

func TestCheckout_UnknownProvider(t *testing.T) {
	repo := &fakeCheckoutRepo{}
	pkg := testPackage()

	cs := newCheckout(repo, pkg, &recordingAdapter{})

	_, err := cs.Checkout(context.Background(), CheckoutInput{
		PackageID:     pkg.ID,
		Provider:      "stripe",
		CustomerName:  "Alice",
		CustomerEmail: "alice@example.com",
	})
	assert.True(t, errors.Is(err, models.ErrUnknownProvider))
	assert.Nil(t, repo.created)
}

func TestCheckout_InactivePackage(t *testing.T) {
	repo := &fakeCheckoutRepo{}
	pkg := testPackage()
	pkg.Active = false

	cs := newCheckout(repo, pkg, &recordingAdapter{})

	_, err := cs.Checkout(context.Background(), CheckoutInput{
		PackageID:     pkg.ID,
		Provider:      gateway.ProviderCryptomus,
		CustomerName:  "Alice",
		CustomerEmail: "alice@example.com",
	})
	assert.True(t, errors.Is(err, models.ErrPackageNotFound))
	assert.Nil(t, repo.created)
}
