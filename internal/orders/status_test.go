package orders

import (
	"errors"
	"testing"
)

func TestCanTransition_DeliveryTrackForward(t *testing.T) {
	steps := []Status{StatusConfirmed, StatusPreparing, StatusReady, StatusOutForDelivery, StatusDelivered}

	current := StatusPending
	for _, next := range steps {
		if err := CanTransition(FulfillmentDelivery, current, next); err != nil {
			t.Fatalf("expected %s -> %s to be legal for delivery, got %v", current, next, err)
		}
		current = next
	}
}

func TestCanTransition_PickupTrackForward(t *testing.T) {
	steps := []Status{StatusConfirmed, StatusPreparing, StatusReady, StatusCollected}

	current := StatusPending
	for _, next := range steps {
		if err := CanTransition(FulfillmentPickup, current, next); err != nil {
			t.Fatalf("expected %s -> %s to be legal for pickup, got %v", current, next, err)
		}
		current = next
	}
}

func TestCanTransition_SkippingStatesIsLegal(t *testing.T) {
	if err := CanTransition(FulfillmentDelivery, StatusPending, StatusReady); err != nil {
		t.Errorf("expected pending -> ready to be legal, got %v", err)
	}
}

func TestCanTransition_NoRegression(t *testing.T) {
	if err := CanTransition(FulfillmentDelivery, StatusReady, StatusPreparing); err == nil {
		t.Error("expected ready -> preparing to be illegal")
	}
	if err := CanTransition(FulfillmentDelivery, StatusConfirmed, StatusConfirmed); err == nil {
		t.Error("expected confirmed -> confirmed to be illegal")
	}
	if err := CanTransition(FulfillmentPickup, StatusPreparing, StatusPending); err == nil {
		t.Error("expected preparing -> pending to be illegal")
	}
}

func TestCanTransition_TerminalStatesRejectEverything(t *testing.T) {
	all := []Status{
		StatusPending, StatusConfirmed, StatusPreparing, StatusReady,
		StatusOutForDelivery, StatusDelivered, StatusCollected, StatusCancelled,
	}

	for _, terminal := range []Status{StatusDelivered, StatusCollected, StatusCancelled} {
		for _, target := range all {
			err := CanTransition(FulfillmentDelivery, terminal, target)
			if err == nil {
				t.Errorf("expected %s -> %s to be illegal", terminal, target)
				continue
			}

			var illegal *IllegalTransitionError
			if !errors.As(err, &illegal) {
				t.Errorf("expected IllegalTransitionError for %s -> %s, got %v", terminal, target, err)
			}
		}
	}
}

func TestCanTransition_CrossTrackRejected(t *testing.T) {
	if err := CanTransition(FulfillmentPickup, StatusReady, StatusOutForDelivery); err == nil {
		t.Error("expected out_for_delivery to be illegal for pickup orders")
	}
	if err := CanTransition(FulfillmentPickup, StatusReady, StatusDelivered); err == nil {
		t.Error("expected delivered to be illegal for pickup orders")
	}
	if err := CanTransition(FulfillmentDelivery, StatusReady, StatusCollected); err == nil {
		t.Error("expected collected to be illegal for delivery orders")
	}
}

func TestCanTransition_CancelFromAnyNonTerminal(t *testing.T) {
	cases := []struct {
		fulfillment FulfillmentType
		from        Status
	}{
		{FulfillmentDelivery, StatusPending},
		{FulfillmentDelivery, StatusConfirmed},
		{FulfillmentDelivery, StatusPreparing},
		{FulfillmentDelivery, StatusReady},
		{FulfillmentDelivery, StatusOutForDelivery},
		{FulfillmentPickup, StatusPending},
		{FulfillmentPickup, StatusConfirmed},
		{FulfillmentPickup, StatusPreparing},
		{FulfillmentPickup, StatusReady},
	}

	for _, tc := range cases {
		if err := CanTransition(tc.fulfillment, tc.from, StatusCancelled); err != nil {
			t.Errorf("expected %s -> cancelled to be legal for %s, got %v", tc.from, tc.fulfillment, err)
		}
	}
}

func TestCanTransition_ErrorCarriesBothStatuses(t *testing.T) {
	err := CanTransition(FulfillmentDelivery, StatusDelivered, StatusPreparing)

	var illegal *IllegalTransitionError
	if !errors.As(err, &illegal) {
		t.Fatalf("expected IllegalTransitionError, got %v", err)
	}
	if illegal.From != StatusDelivered || illegal.To != StatusPreparing {
		t.Errorf("expected error to carry delivered/preparing, got %s/%s", illegal.From, illegal.To)
	}
}

func TestIsTerminal(t *testing.T) {
	for _, s := range []Status{StatusDelivered, StatusCollected, StatusCancelled} {
		if !s.IsTerminal() {
			t.Errorf("expected %s to be terminal", s)
		}
	}
	for _, s := range []Status{StatusPending, StatusConfirmed, StatusPreparing, StatusReady, StatusOutForDelivery} {
		if s.IsTerminal() {
			t.Errorf("expected %s to be non-terminal", s)
		}
	}
}
