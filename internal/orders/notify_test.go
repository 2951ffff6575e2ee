package orders

import (
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/example/arabica/internal/models"
)

func TestDescriptorFor_CoversEveryStatus(t *testing.T) {
	statuses := []Status{
		StatusPending, StatusConfirmed, StatusPreparing, StatusReady,
		StatusOutForDelivery, StatusDelivered, StatusCollected, StatusCancelled,
	}

	for _, status := range statuses {
		d := DescriptorFor(status, FulfillmentDelivery)
		if d.Color == "" || d.Emoji == "" || d.Title == "" || d.Message == "" || d.CallToAction == "" {
			t.Errorf("descriptor for %s has empty fields: %+v", status, d)
		}
	}
}

func TestDescriptorFor_ReadyWordingDiffersByTrack(t *testing.T) {
	delivery := DescriptorFor(StatusReady, FulfillmentDelivery)
	pickup := DescriptorFor(StatusReady, FulfillmentPickup)

	if delivery.Message == pickup.Message {
		t.Error("expected ready wording to differ between delivery and pickup")
	}
	if !strings.Contains(pickup.Message, "branch") {
		t.Errorf("expected pickup ready message to mention the branch, got %q", pickup.Message)
	}
	if delivery.Title != pickup.Title {
		t.Error("expected tracks to share the ready title")
	}
}

func TestFormatPrice(t *testing.T) {
	cases := []struct {
		amount int64
		want   string
	}{
		{0, "0 UZS"},
		{150, "150 UZS"},
		{1150, "1,150 UZS"},
		{2500000, "2,500,000 UZS"},
	}

	for _, tc := range cases {
		if got := FormatPrice(tc.amount); got != tc.want {
			t.Errorf("FormatPrice(%d) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}

func deliveryOrderFixture() *models.Order {
	return &models.Order{
		BaseModel:       models.BaseModel{ID: uuid.New()},
		OrderNumber:     "#A1B2C3",
		Status:          string(StatusConfirmed),
		FulfillmentType: string(FulfillmentDelivery),
		DeliveryAddress: "Amir Temur street 1",
		Subtotal:        1000,
		DeliveryFee:     150,
		TotalAmount:     1150,
		PaymentMethod:   string(PaymentCash),
		Items: []models.OrderItem{
			{Name: "Flat white", Quantity: 2, UnitPrice: 300, LineTotal: 600},
			{Name: "Croissant", Quantity: 1, UnitPrice: 400, LineTotal: 400},
		},
	}
}

func TestRenderCustomerEmail(t *testing.T) {
	ord := deliveryOrderFixture()
	d := DescriptorFor(StatusConfirmed, FulfillmentDelivery)

	subject, text, html := RenderCustomerEmail(ord, d)

	if !strings.Contains(subject, "#A1B2C3") {
		t.Errorf("expected subject to carry the order number, got %q", subject)
	}
	for _, payload := range []string{text, html} {
		if !strings.Contains(payload, "Flat white") {
			t.Error("expected payload to list items")
		}
		if !strings.Contains(payload, "1,150 UZS") {
			t.Error("expected payload to show the total")
		}
		if !strings.Contains(payload, "Amir Temur street 1") {
			t.Error("expected payload to show the delivery address")
		}
	}
	if !strings.Contains(html, d.Color) {
		t.Error("expected html to use the descriptor color")
	}
}

func TestRenderCustomerEmail_PickupShowsBranch(t *testing.T) {
	ord := deliveryOrderFixture()
	ord.FulfillmentType = string(FulfillmentPickup)
	ord.DeliveryAddress = ""
	ord.DeliveryFee = 0
	ord.TotalAmount = 1000
	ord.BranchName = "Chilonzor"
	ord.BranchAddress = "Bunyodkor avenue 12"
	ord.BranchPhone = "+998 71 200 00 00"

	_, text, html := RenderCustomerEmail(ord, DescriptorFor(StatusReady, FulfillmentPickup))

	for _, payload := range []string{text, html} {
		if !strings.Contains(payload, "Chilonzor") {
			t.Error("expected payload to show the pickup branch")
		}
		if strings.Contains(payload, "Delivery fee") {
			t.Error("expected no delivery fee line for pickup")
		}
	}
}

func TestRenderOpsAlert(t *testing.T) {
	ord := deliveryOrderFixture()
	customer := &models.User{DisplayName: "Aziz Karimov", Phone: "+998 90 123 45 67"}

	subject, text, html := RenderOpsAlert(ord, customer)

	if !strings.Contains(subject, "#A1B2C3") {
		t.Errorf("expected subject to carry the order number, got %q", subject)
	}
	for _, payload := range []string{text, html} {
		if !strings.Contains(payload, "Aziz Karimov") {
			t.Error("expected payload to name the customer")
		}
		if !strings.Contains(payload, "cash") {
			t.Error("expected payload to show the payment method")
		}
	}
}

func TestRenderOpsAlert_NilCustomer(t *testing.T) {
	ord := deliveryOrderFixture()

	_, text, _ := RenderOpsAlert(ord, nil)

	if !strings.Contains(text, "not provided") {
		t.Error("expected placeholder customer data for nil customer")
	}
}
