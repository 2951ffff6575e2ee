package models

import (
	"time"

	"github.com/google/uuid"
)

type Order struct {
	BaseModel
	UserID          uuid.UUID   `gorm:"type:uuid;index" json:"user_id"`
	User            *User       `json:"user,omitempty"`
	OrderNumber     string      `gorm:"uniqueIndex" json:"order_number"`
	Status          string      `gorm:"index" json:"status"`
	PlacedAt        time.Time   `json:"placed_at"`
	Subtotal        int64       `json:"subtotal"`
	DeliveryFee     int64       `json:"delivery_fee"`
	TotalAmount     int64       `json:"total_amount"`
	FulfillmentType string      `json:"fulfillment_type"`
	DeliveryAddress string      `json:"delivery_address,omitempty"`
	BranchID        *uuid.UUID  `gorm:"type:uuid" json:"branch_id,omitempty"`
	BranchName      string      `json:"branch_name,omitempty"`
	BranchAddress   string      `json:"branch_address,omitempty"`
	BranchPhone     string      `json:"branch_phone,omitempty"`
	PaymentMethod   string      `json:"payment_method"`
	Notes           string      `json:"notes"`
	Version         int         `gorm:"default:1" json:"version"`
	NotifiedAt      *time.Time  `json:"notified_at,omitempty"`
	NotifyError     string      `json:"notify_error,omitempty"`
	Items           []OrderItem `json:"items,omitempty"`
}

type OrderItem struct {
	BaseModel
	OrderID    uuid.UUID  `gorm:"type:uuid;index" json:"order_id"`
	MenuItemID *uuid.UUID `gorm:"type:uuid" json:"menu_item_id"`
	Name       string     `json:"name"`
	Image      string     `json:"image"`
	Quantity   int        `json:"quantity"`
	UnitPrice  int64      `json:"unit_price"`
	LineTotal  int64      `json:"line_total"`
}
