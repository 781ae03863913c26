package notify

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/rookgm/streammart/internal/models"
)

const waBaseURL = "https://wa.me/"

// WhatsAppLink builds a wa.me deep link with a pre-filled status message for
// the order's customer. Returns an empty string when the order has no phone
// contact to address.
func WhatsAppLink(order *models.Order) string {
	phone := normalizePhone(order.CustomerContact)
	if phone == "" {
		return ""
	}

	return waBaseURL + phone + "?text=" + url.QueryEscape(statusMessage(order))
}

func statusMessage(order *models.Order) string {
	switch order.Status {
	case models.OrderStatusProcessing:
		return fmt.Sprintf("Hi %s! We received your payment for %s. Your subscription is being activated.",
			order.CustomerName, order.PackageName)
	case models.OrderStatusShipped:
		return fmt.Sprintf("Hi %s! Your %s subscription details have been sent to %s.",
			order.CustomerName, order.PackageName, order.CustomerEmail)
	case models.OrderStatusDelivered:
		return fmt.Sprintf("Hi %s! Your %s subscription is active. Enjoy!",
			order.CustomerName, order.PackageName)
	case models.OrderStatusCancelled:
		return fmt.Sprintf("Hi %s! Your order for %s was cancelled. Contact support if this is unexpected.",
			order.CustomerName, order.PackageName)
	default:
		return fmt.Sprintf("Hi %s! Update on your order for %s.", order.CustomerName, order.PackageName)
	}
}

// normalizePhone keeps digits only, wa.me links take international format
// without plus or separators.
func normalizePhone(contact string) string {
	var b strings.Builder
	for _, r := range contact {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() < 7 {
		return ""
	}
	return b.String()
}
