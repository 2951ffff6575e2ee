package orders

// FulfillmentType selects which status track and fee rule apply to an order.
type FulfillmentType string

const (
	FulfillmentDelivery FulfillmentType = "delivery"
	FulfillmentPickup   FulfillmentType = "pickup"
)

// IsValid checks the fulfillment type is one of the known variants.
func (f FulfillmentType) IsValid() bool {
	return f == FulfillmentDelivery || f == FulfillmentPickup
}

// PaymentMethod is how the customer intends to pay.
type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "cash"
	PaymentOnline PaymentMethod = "online"
)

// Status is the fulfillment state of an order. The pool is shared between the
// two tracks but not every status is reachable from every fulfillment type.
type Status string

const (
	StatusPending        Status = "pending"
	StatusConfirmed      Status = "confirmed"
	StatusPreparing      Status = "preparing"
	StatusReady          Status = "ready"
	StatusOutForDelivery Status = "out_for_delivery"
	StatusDelivered      Status = "delivered"
	StatusCollected      Status = "collected"
	StatusCancelled      Status = "cancelled"
)

var deliveryTrack = []Status{
	StatusPending,
	StatusConfirmed,
	StatusPreparing,
	StatusReady,
	StatusOutForDelivery,
	StatusDelivered,
}

var pickupTrack = []Status{
	StatusPending,
	StatusConfirmed,
	StatusPreparing,
	StatusReady,
	StatusCollected,
}

// Track returns the ordered status sequence for a fulfillment type.
func Track(fulfillment FulfillmentType) []Status {
	if fulfillment == FulfillmentPickup {
		return pickupTrack
	}
	return deliveryTrack
}

// IsTerminal reports whether no further transition is legal from s.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCollected || s == StatusCancelled
}

func trackIndex(track []Status, s Status) int {
	for i, candidate := range track {
		if candidate == s {
			return i
		}
	}
	return -1
}

// CanTransition validates a requested status change. Orders only move forward
// along their fulfillment track, except for the unconditional escape to
// cancelled from any non-terminal state. Statuses belonging to the other track
// are rejected even though the raw value exists.
func CanTransition(fulfillment FulfillmentType, from, to Status) error {
	if from.IsTerminal() {
		return &IllegalTransitionError{From: from, To: to}
	}

	if to == StatusCancelled {
		return nil
	}

	track := Track(fulfillment)
	fromIdx := trackIndex(track, from)
	toIdx := trackIndex(track, to)
	if fromIdx < 0 || toIdx < 0 || toIdx <= fromIdx {
		return &IllegalTransitionError{From: from, To: to}
	}

	return nil
}
