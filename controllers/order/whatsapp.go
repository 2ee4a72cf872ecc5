package orderControllers

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/perfumeaz/perfume-api/models"
)

// normalizePhone strips everything but digits, the format wa.me expects.
func normalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// whatsappLink builds the deep link the customer uses to confirm the
// order over WhatsApp. Dispatching the message is up to the client.
func whatsappLink(phone string, order models.Order) string {
	var msg strings.Builder
	msg.WriteString("New Order:\n")
	for _, item := range order.Items {
		fmt.Fprintf(&msg, "%s x%d - %.2f AZN\n", item.ProductName, item.Quantity, item.Subtotal)
	}
	fmt.Fprintf(&msg, "\nTotal: %.2f AZN\n", order.TotalAmount)
	fmt.Fprintf(&msg, "Delivery Address: %s\n", order.DeliveryAddress)
	if order.CustomerNotes != "" {
		fmt.Fprintf(&msg, "Notes: %s\n", order.CustomerNotes)
	}

	return "https://wa.me/" + normalizePhone(phone) + "?text=" + url.QueryEscape(msg.String())
}
