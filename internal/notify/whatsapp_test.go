package notify

import (
	"net/url"
	"strings"
	"testing"

	"github.com/rookgm/streammart/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWhatsAppLink(t *testing.T) {
	order := &models.Order{
		CustomerName:    "Alice",
		CustomerEmail:   "alice@example.com",
		CustomerContact: "+49 151 1234-5678",
		PackageName:     "Premium 12M",
		Status:          models.OrderStatusProcessing,
	}

	link := WhatsAppLink(order)
	require.True(t, strings.HasPrefix(link, "https://wa.me/4915112345678?text="), link)

	u, err := url.Parse(link)
	require.NoError(t, err)
	text := u.Query().Get("text")
	assert.Contains(t, text, "Alice")
	assert.Contains(t, text, "Premium 12M")
}

func TestWhatsAppLink_NoPhoneContact(t *testing.T) {
	order := &models.Order{
		CustomerName:    "Bob",
		CustomerContact: "@bob_telegram",
		PackageName:     "Basic 1M",
	}

	assert.Empty(t, WhatsAppLink(order))
}
