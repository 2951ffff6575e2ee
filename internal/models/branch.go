package models

// Branch is a cafe location customers can pick orders up from.
type Branch struct {
	BaseModel
	Name         string `json:"name"`
	AddressLine  string `json:"address_line"`
	ContactPhone string `json:"contact_phone"`
	WorkingHours string `json:"working_hours"`
	IsActive     bool   `gorm:"default:true" json:"is_active"`
}
