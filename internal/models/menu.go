package models

import "github.com/google/uuid"

type MenuCategory struct {
	BaseModel
	Name     string     `json:"name"`
	Position int        `json:"position"`
	IsActive bool       `json:"is_active"`
	Items    []MenuItem `json:"items,omitempty"`
}

type MenuItem struct {
	BaseModel
	CategoryID  *uuid.UUID `gorm:"type:uuid;index" json:"category_id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Price       int64      `json:"price"`
	Image       string     `json:"image"`
	IsAvailable bool       `gorm:"default:true" json:"is_available"`
}
