package orders

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/example/arabica/internal/models"
)

// Store is the persistence gateway the order service talks to.
type Store interface {
	CreateOrder(ctx context.Context, order *models.Order) error
	GetOrder(ctx context.Context, id uuid.UUID) (*models.Order, error)
	GetOrderForUser(ctx context.Context, id, userID uuid.UUID) (*models.Order, error)
	ListOrdersForUser(ctx context.Context, userID uuid.UUID, filter ListFilter) ([]models.Order, int64, error)
	ListAllOrders(ctx context.Context, filter ListFilter) ([]models.Order, int64, error)
	// UpdateOrderStatus conditionally writes the new status. A non-zero
	// expectedVersion must match the stored version or the write fails with
	// *ConflictError; zero skips the check (last write wins).
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status Status, expectedVersion int) (*models.Order, error)
	RecordNotifyResult(ctx context.Context, id uuid.UUID, sentAt time.Time, notifyErr string) error

	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetMenuItem(ctx context.Context, id uuid.UUID) (*models.MenuItem, error)
	GetBranch(ctx context.Context, id uuid.UUID) (*models.Branch, error)
}

// Mailer is the outbound email collaborator. Delivery mechanics and retries
// are its concern, not the service's.
type Mailer interface {
	SendEmail(ctx context.Context, to, subject, text, html string) error
}

// ListFilter narrows and pages order listings.
type ListFilter struct {
	Status string
	Search string
	Limit  int
	Offset int
}

// Service owns order creation, status transitions and their notifications.
type Service struct {
	store    Store
	mailer   Mailer
	opsEmail string

	// dispatch detaches notification work from the request goroutine.
	// Overridable in tests to run inline.
	dispatch func(fn func())
}

// NewService constructs the order service.
func NewService(store Store, mailer Mailer, opsEmail string) *Service {
	return &Service{
		store:    store,
		mailer:   mailer,
		opsEmail: opsEmail,
		dispatch: func(fn func()) { go fn() },
	}
}

// notifyTimeout bounds a single email dispatch so a slow provider cannot pin
// goroutines; timing out counts as a non-fatal notification failure.
const notifyTimeout = 15 * time.Second

// OrderNumber derives the short display code from an order id: the last six
// hex characters of the uuid, uppercased. Deterministic and stable.
func OrderNumber(id uuid.UUID) string {
	hex := strings.ReplaceAll(id.String(), "-", "")
	return "#" + strings.ToUpper(hex[len(hex)-6:])
}

// LineInput is one requested order line; the unit price is resolved from the
// menu at creation time, never taken from the client.
type LineInput struct {
	MenuItemID uuid.UUID
	Quantity   int
}

// CreateInput is the checkout payload for a new order.
type CreateInput struct {
	UserID          uuid.UUID
	Items           []LineInput
	PaymentMethod   PaymentMethod
	Fulfillment     FulfillmentType
	DeliveryAddress string
	BranchID        uuid.UUID
	Notes           string
}

// Create validates and prices the checkout payload, persists the order with
// status pending, and sends the acknowledgement emails best-effort.
func (s *Service) Create(ctx context.Context, in CreateInput) (*models.Order, error) {
	if len(in.Items) == 0 {
		return nil, &ValidationError{Field: "items", Reason: "order must contain at least one item"}
	}

	var (
		subtotal int64
		items    []models.OrderItem
	)
	for i, line := range in.Items {
		if line.Quantity < 1 {
			return nil, &ValidationError{Field: fmt.Sprintf("items[%d].quantity", i), Reason: "must be at least 1"}
		}

		menuItem, err := s.store.GetMenuItem(ctx, line.MenuItemID)
		if err != nil {
			return nil, &ValidationError{Field: fmt.Sprintf("items[%d].menu_item_id", i), Reason: "unknown menu item"}
		}
		if !menuItem.IsAvailable {
			return nil, &ValidationError{Field: fmt.Sprintf("items[%d].menu_item_id", i), Reason: menuItem.Name + " is not available"}
		}

		id := menuItem.ID
		lineTotal := menuItem.Price * int64(line.Quantity)
		items = append(items, models.OrderItem{
			MenuItemID: &id,
			Name:       menuItem.Name,
			Image:      menuItem.Image,
			Quantity:   line.Quantity,
			UnitPrice:  menuItem.Price,
			LineTotal:  lineTotal,
		})
		subtotal += lineTotal
	}

	var branch *BranchInfo
	if in.Fulfillment == FulfillmentPickup && in.BranchID != uuid.Nil {
		stored, err := s.store.GetBranch(ctx, in.BranchID)
		if err != nil {
			return nil, &ValidationError{Field: "branch_id", Reason: "unknown pickup branch"}
		}
		branch = &BranchInfo{
			ID:      stored.ID,
			Name:    stored.Name,
			Address: stored.AddressLine,
			Phone:   stored.ContactPhone,
		}
	}

	quote, err := BuildQuote(QuoteInput{
		Fulfillment:     in.Fulfillment,
		PaymentMethod:   in.PaymentMethod,
		DeliveryAddress: in.DeliveryAddress,
		Branch:          branch,
		Subtotal:        subtotal,
	})
	if err != nil {
		return nil, err
	}

	id := uuid.New()
	order := &models.Order{
		BaseModel:       models.BaseModel{ID: id},
		UserID:          in.UserID,
		OrderNumber:     OrderNumber(id),
		Status:          string(StatusPending),
		PlacedAt:        time.Now(),
		Subtotal:        quote.Subtotal,
		DeliveryFee:     quote.DeliveryFee,
		TotalAmount:     quote.Total,
		FulfillmentType: string(in.Fulfillment),
		PaymentMethod:   string(in.PaymentMethod),
		Notes:           in.Notes,
		Version:         1,
		Items:           items,
	}
	if in.Fulfillment == FulfillmentDelivery {
		order.DeliveryAddress = in.DeliveryAddress
	} else if branch != nil {
		branchID := branch.ID
		order.BranchID = &branchID
		order.BranchName = branch.Name
		order.BranchAddress = branch.Address
		order.BranchPhone = branch.Phone
	}

	if err := s.store.CreateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	// Notification runs detached from the request: a client disconnect must
	// not cancel it, and its failure must not fail the order.
	created := *order
	s.dispatch(func() { s.dispatchCreated(created) })

	return order, nil
}

// SetStatus validates and executes a status transition. The new status is the
// durable fact; the matching customer email is best-effort.
func (s *Service) SetStatus(ctx context.Context, id uuid.UUID, newStatus Status, expectedVersion int) (*models.Order, error) {
	order, err := s.store.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	current := Status(order.Status)
	if newStatus == StatusPending && current == StatusPending {
		// No-op, and the creation path already acknowledged it.
		return order, nil
	}

	if err := CanTransition(FulfillmentType(order.FulfillmentType), current, newStatus); err != nil {
		return nil, err
	}

	updated, err := s.store.UpdateOrderStatus(ctx, id, newStatus, expectedVersion)
	if err != nil {
		return nil, err
	}

	changed := *updated
	s.dispatch(func() { s.dispatchStatusChanged(changed) })

	return updated, nil
}

// Cancel is the customer-facing escape hatch; it rides the same engine.
func (s *Service) Cancel(ctx context.Context, id, userID uuid.UUID) (*models.Order, error) {
	if _, err := s.store.GetOrderForUser(ctx, id, userID); err != nil {
		return nil, err
	}
	return s.SetStatus(ctx, id, StatusCancelled, 0)
}

// Get returns one order scoped to its owner.
func (s *Service) Get(ctx context.Context, id, userID uuid.UUID) (*models.Order, error) {
	return s.store.GetOrderForUser(ctx, id, userID)
}

// ListForUser returns the customer's own orders.
func (s *Service) ListForUser(ctx context.Context, userID uuid.UUID, filter ListFilter) ([]models.Order, int64, error) {
	return s.store.ListOrdersForUser(ctx, userID, filter)
}

// ListAll returns every order with customer info for the admin console.
func (s *Service) ListAll(ctx context.Context, filter ListFilter) ([]models.Order, int64, error) {
	return s.store.ListAllOrders(ctx, filter)
}

func (s *Service) dispatchCreated(order models.Order) {
	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()

	descriptor := DescriptorFor(Status(order.Status), FulfillmentType(order.FulfillmentType))

	customer, err := s.store.GetUser(ctx, order.UserID)
	if err != nil {
		log.Printf("[Orders] customer lookup failed for order %s: %v", order.OrderNumber, err)
	}

	var failures []string

	if customer != nil && customer.Email != "" {
		subject, text, html := RenderCustomerEmail(&order, descriptor)
		if err := s.mailer.SendEmail(ctx, customer.Email, subject, text, html); err != nil {
			log.Printf("[Orders] customer email failed for order %s: %v", order.OrderNumber, err)
			failures = append(failures, "customer: "+err.Error())
		}
	}

	if s.opsEmail != "" {
		subject, text, html := RenderOpsAlert(&order, customer)
		if err := s.mailer.SendEmail(ctx, s.opsEmail, subject, text, html); err != nil {
			log.Printf("[Orders] ops email failed for order %s: %v", order.OrderNumber, err)
			failures = append(failures, "ops: "+err.Error())
		}
	}

	s.recordNotifyResult(ctx, order, strings.Join(failures, "; "))
}

func (s *Service) dispatchStatusChanged(order models.Order) {
	status := Status(order.Status)
	if status == StatusPending {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()

	customer, err := s.store.GetUser(ctx, order.UserID)
	if err != nil {
		log.Printf("[Orders] customer lookup failed for order %s: %v", order.OrderNumber, err)
		return
	}
	if customer.Email == "" {
		return
	}

	descriptor := DescriptorFor(status, FulfillmentType(order.FulfillmentType))
	subject, text, html := RenderCustomerEmail(&order, descriptor)

	var notifyErr string
	if err := s.mailer.SendEmail(ctx, customer.Email, subject, text, html); err != nil {
		log.Printf("[Orders] status email failed for order %s: %v", order.OrderNumber, err)
		notifyErr = err.Error()
	}

	s.recordNotifyResult(ctx, order, notifyErr)
}

func (s *Service) recordNotifyResult(ctx context.Context, order models.Order, notifyErr string) {
	if len(notifyErr) > 1024 {
		notifyErr = notifyErr[:1024]
	}
	if err := s.store.RecordNotifyResult(ctx, order.ID, time.Now(), notifyErr); err != nil {
		log.Printf("[Orders] failed to record notification result for order %s: %v", order.OrderNumber, err)
	}
}
