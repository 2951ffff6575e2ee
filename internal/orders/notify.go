package orders

import (
	"fmt"
	"strings"

	"github.com/example/arabica/internal/models"
)

// Descriptor is the presentation data for a status notification. Resolving it
// is pure so the mapping can be tested without an email collaborator.
type Descriptor struct {
	Color        string
	Emoji        string
	Title        string
	Message      string
	CallToAction string
}

// DescriptorFor maps a new order status to its notification descriptor. The
// two fulfillment tracks share the table except for label wording.
func DescriptorFor(status Status, fulfillment FulfillmentType) Descriptor {
	switch status {
	case StatusPending:
		return Descriptor{
			Color:        "#f59e0b",
			Emoji:        "⏳",
			Title:        "Order received",
			Message:      "We have received your order and will confirm it shortly.",
			CallToAction: "View your order",
		}
	case StatusConfirmed:
		return Descriptor{
			Color:        "#3b82f6",
			Emoji:        "✅",
			Title:        "Order confirmed",
			Message:      "Your order has been confirmed and is in the queue.",
			CallToAction: "Track your order",
		}
	case StatusPreparing:
		return Descriptor{
			Color:        "#8b5cf6",
			Emoji:        "👨‍🍳",
			Title:        "Your order is being prepared",
			Message:      "Our baristas are working on your order right now.",
			CallToAction: "Track your order",
		}
	case StatusReady:
		d := Descriptor{
			Color:        "#10b981",
			Emoji:        "📦",
			Title:        "Your order is ready",
			Message:      "Your order is packed and will be handed to a courier shortly.",
			CallToAction: "Track your order",
		}
		if fulfillment == FulfillmentPickup {
			d.Message = "Your order is ready and waiting for you at the branch."
			d.CallToAction = "See pickup details"
		}
		return d
	case StatusOutForDelivery:
		return Descriptor{
			Color:        "#06b6d4",
			Emoji:        "🛵",
			Title:        "Out for delivery",
			Message:      "A courier is on the way to your address.",
			CallToAction: "Track your order",
		}
	case StatusDelivered:
		return Descriptor{
			Color:        "#22c55e",
			Emoji:        "🎉",
			Title:        "Order delivered",
			Message:      "Your order has been delivered. Enjoy!",
			CallToAction: "Order again",
		}
	case StatusCollected:
		return Descriptor{
			Color:        "#22c55e",
			Emoji:        "🛍️",
			Title:        "Order collected",
			Message:      "Thanks for stopping by. See you next time!",
			CallToAction: "Order again",
		}
	case StatusCancelled:
		return Descriptor{
			Color:        "#ef4444",
			Emoji:        "❌",
			Title:        "Order cancelled",
			Message:      "Your order has been cancelled. If this is unexpected, please contact us.",
			CallToAction: "Contact support",
		}
	default:
		return Descriptor{
			Color:        "#6b7280",
			Emoji:        "ℹ️",
			Title:        "Order update",
			Message:      fmt.Sprintf("Your order status changed to %s.", status),
			CallToAction: "View your order",
		}
	}
}

// FormatPrice formats an amount in currency units with thousand separators.
func FormatPrice(amount int64) string {
	str := fmt.Sprintf("%d", amount)

	var result strings.Builder
	length := len(str)
	for i, digit := range str {
		if i > 0 && (length-i)%3 == 0 {
			result.WriteString(",")
		}
		result.WriteRune(digit)
	}

	return result.String() + " UZS"
}

func fulfillmentLines(ord *models.Order) (text, html string) {
	if FulfillmentType(ord.FulfillmentType) == FulfillmentPickup {
		text = fmt.Sprintf("Pickup at: %s, %s (tel. %s)", ord.BranchName, ord.BranchAddress, ord.BranchPhone)
		html = fmt.Sprintf("<p><b>Pickup at:</b> %s, %s (tel. %s)</p>", ord.BranchName, ord.BranchAddress, ord.BranchPhone)
		return text, html
	}
	text = fmt.Sprintf("Delivery to: %s", ord.DeliveryAddress)
	html = fmt.Sprintf("<p><b>Delivery to:</b> %s</p>", ord.DeliveryAddress)
	return text, html
}

func itemLines(ord *models.Order) (text, html string) {
	var textList, htmlList strings.Builder
	for i, item := range ord.Items {
		textList.WriteString(fmt.Sprintf("%d. %s  %d x %s = %s\n",
			i+1, item.Name, item.Quantity, FormatPrice(item.UnitPrice), FormatPrice(item.LineTotal)))
		htmlList.WriteString(fmt.Sprintf("<li><b>%s</b> — %d x %s = %s</li>",
			item.Name, item.Quantity, FormatPrice(item.UnitPrice), FormatPrice(item.LineTotal)))
	}
	return textList.String(), "<ul>" + htmlList.String() + "</ul>"
}

// RenderCustomerEmail builds the subject/text/html payloads for the customer
// email matching the order's current status.
func RenderCustomerEmail(ord *models.Order, d Descriptor) (subject, text, html string) {
	subject = fmt.Sprintf("%s %s — order %s", d.Emoji, d.Title, ord.OrderNumber)

	itemsText, itemsHTML := itemLines(ord)
	fulfillText, fulfillHTML := fulfillmentLines(ord)

	var textBody strings.Builder
	textBody.WriteString(d.Title + "\n\n")
	textBody.WriteString(d.Message + "\n\n")
	textBody.WriteString(fmt.Sprintf("Order %s\n", ord.OrderNumber))
	textBody.WriteString(itemsText)
	if ord.DeliveryFee > 0 {
		textBody.WriteString(fmt.Sprintf("Delivery fee: %s\n", FormatPrice(ord.DeliveryFee)))
	}
	textBody.WriteString(fmt.Sprintf("Total: %s\n", FormatPrice(ord.TotalAmount)))
	textBody.WriteString(fulfillText + "\n")
	text = strings.TrimSpace(textBody.String())

	feeHTML := ""
	if ord.DeliveryFee > 0 {
		feeHTML = fmt.Sprintf("<p>Delivery fee: %s</p>", FormatPrice(ord.DeliveryFee))
	}
	html = fmt.Sprintf(`<div style="border-top:4px solid %s;padding:16px">
<h2>%s %s</h2>
<p>%s</p>
<p><b>Order %s</b></p>
%s
%s
<p><b>Total: %s</b></p>
%s
<p><a href="#">%s</a></p>
</div>`,
		d.Color, d.Emoji, d.Title, d.Message, ord.OrderNumber,
		itemsHTML, feeHTML, FormatPrice(ord.TotalAmount), fulfillHTML, d.CallToAction)

	return subject, text, html
}

// RenderOpsAlert builds the new-order alert sent to the operations address.
func RenderOpsAlert(ord *models.Order, customer *models.User) (subject, text, html string) {
	subject = fmt.Sprintf("🛒 New order %s — %s", ord.OrderNumber, FormatPrice(ord.TotalAmount))

	customerName := "not provided"
	customerPhone := "not provided"
	if customer != nil {
		if customer.DisplayName != "" {
			customerName = customer.DisplayName
		}
		if customer.Phone != "" {
			customerPhone = customer.Phone
		}
	}

	itemsText, itemsHTML := itemLines(ord)
	fulfillText, fulfillHTML := fulfillmentLines(ord)

	text = fmt.Sprintf(`New order %s
Customer: %s
Phone: %s
%s%s
Total: %s
Payment: %s`,
		ord.OrderNumber, customerName, customerPhone, itemsText, fulfillText,
		FormatPrice(ord.TotalAmount), ord.PaymentMethod)

	html = fmt.Sprintf(`<h2>🛒 New order %s</h2>
<p><b>Customer:</b> %s<br><b>Phone:</b> %s</p>
%s
%s
<p><b>Total:</b> %s<br><b>Payment:</b> %s</p>`,
		ord.OrderNumber, customerName, customerPhone, itemsHTML, fulfillHTML,
		FormatPrice(ord.TotalAmount), ord.PaymentMethod)

	return subject, text, html
}
