package orders

import "github.com/google/uuid"

// DeliveryFee is the flat surcharge, in currency units, added to every
// home-delivery order. Pickup orders carry no surcharge.
const DeliveryFee int64 = 150

// BranchInfo is the pickup branch snapshot an order carries.
type BranchInfo struct {
	ID      uuid.UUID
	Name    string
	Address string
	Phone   string
}

// QuoteInput is everything the fee policy needs to price an order.
type QuoteInput struct {
	Fulfillment     FulfillmentType
	PaymentMethod   PaymentMethod
	DeliveryAddress string
	Branch          *BranchInfo
	Subtotal        int64
}

// Quote is a validated, priced order before persistence.
type Quote struct {
	Subtotal    int64
	DeliveryFee int64
	Total       int64
}

// BuildQuote validates fulfillment-specific required fields and derives the
// order total. Pure function of its inputs; nothing is persisted here.
func BuildQuote(in QuoteInput) (Quote, error) {
	if !in.Fulfillment.IsValid() {
		return Quote{}, &ValidationError{Field: "fulfillment_type", Reason: "must be delivery or pickup"}
	}

	switch in.PaymentMethod {
	case PaymentCash:
	case PaymentOnline:
		return Quote{}, ErrUnsupportedPaymentMethod
	default:
		return Quote{}, &ValidationError{Field: "payment_method", Reason: "must be cash or online"}
	}

	var fee int64
	switch in.Fulfillment {
	case FulfillmentDelivery:
		if in.DeliveryAddress == "" {
			return Quote{}, &ValidationError{Field: "delivery_address", Reason: "required for delivery orders"}
		}
		fee = DeliveryFee
	case FulfillmentPickup:
		b := in.Branch
		if b == nil || b.ID == uuid.Nil || b.Name == "" || b.Address == "" || b.Phone == "" {
			return Quote{}, &ValidationError{Field: "branch_id", Reason: "a pickup branch with name, address and phone is required"}
		}
	}

	return Quote{
		Subtotal:    in.Subtotal,
		DeliveryFee: fee,
		Total:       in.Subtotal + fee,
	}, nil
}
