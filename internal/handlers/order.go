package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/arabica/internal/middleware"
	"github.com/example/arabica/internal/orders"
	"github.com/example/arabica/internal/utils"
)

// OrderHandler manages customer-facing order endpoints.
type OrderHandler struct {
	service *orders.Service
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(service *orders.Service) *OrderHandler {
	return &OrderHandler{service: service}
}

type orderLineRequest struct {
	MenuItemID string `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
}

type createOrderRequest struct {
	Items           []orderLineRequest `json:"items"`
	PaymentMethod   string             `json:"payment_method"`
	FulfillmentType string             `json:"fulfillment_type"`
	DeliveryAddress string             `json:"delivery_address"`
	BranchID        string             `json:"branch_id"`
	Notes           string             `json:"notes"`
}

// CreateOrder allows authenticated users to place an order.
func (h *OrderHandler) CreateOrder(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var req createOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	input := orders.CreateInput{
		UserID:          userID,
		PaymentMethod:   orders.PaymentMethod(req.PaymentMethod),
		Fulfillment:     orders.FulfillmentType(req.FulfillmentType),
		DeliveryAddress: req.DeliveryAddress,
		Notes:           req.Notes,
	}

	for _, line := range req.Items {
		id, err := uuid.Parse(line.MenuItemID)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid menu_item_id")
		}
		input.Items = append(input.Items, orders.LineInput{MenuItemID: id, Quantity: line.Quantity})
	}

	if req.BranchID != "" {
		id, err := uuid.Parse(req.BranchID)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid branch_id")
		}
		input.BranchID = id
	}

	order, err := h.service.Create(c.Context(), input)
	if err != nil {
		return mapOrderError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    order,
	})
}

// ListOrders returns orders for the authenticated user.
func (h *OrderHandler) ListOrders(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	pg := utils.ParsePagination(c)
	result, total, err := h.service.ListForUser(c.Context(), userID, orders.ListFilter{
		Status: c.Query("status"),
		Limit:  pg.Limit,
		Offset: pg.Offset,
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    result,
		"pagination": fiber.Map{
			"current_page":   pg.Page,
			"items_per_page": pg.Limit,
			"total_items":    total,
		},
	})
}

// GetOrder returns a single order for the authenticated user.
func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	order, err := h.service.Get(c.Context(), id, userID)
	if err != nil {
		return mapOrderError(err)
	}

	return c.JSON(fiber.Map{"success": true, "data": order})
}

// CancelOrder lets a customer cancel their own order while it is still live.
func (h *OrderHandler) CancelOrder(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	order, err := h.service.Cancel(c.Context(), id, userID)
	if err != nil {
		return mapOrderError(err)
	}

	return c.JSON(fiber.Map{"success": true, "data": order})
}

// mapOrderError translates domain errors into HTTP responses.
func mapOrderError(err error) error {
	var validation *orders.ValidationError
	if errors.As(err, &validation) {
		return fiber.NewError(fiber.StatusBadRequest, validation.Error())
	}

	var illegal *orders.IllegalTransitionError
	if errors.As(err, &illegal) {
		return fiber.NewError(fiber.StatusUnprocessableEntity, illegal.Error())
	}

	var conflict *orders.ConflictError
	if errors.As(err, &conflict) {
		return fiber.NewError(fiber.StatusConflict, conflict.Error())
	}

	if errors.Is(err, orders.ErrUnsupportedPaymentMethod) {
		return fiber.NewError(fiber.StatusBadRequest, orders.ErrUnsupportedPaymentMethod.Error())
	}

	if errors.Is(err, orders.ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "order not found")
	}

	return err
}
