package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/arabica/internal/models"
)

// BranchHandler manages pickup branch endpoints.
type BranchHandler struct {
	db *gorm.DB
}

// NewBranchHandler constructs BranchHandler.
func NewBranchHandler(db *gorm.DB) *BranchHandler {
	return &BranchHandler{db: db}
}

// ListBranches returns active branches for the storefront.
func (h *BranchHandler) ListBranches(c *fiber.Ctx) error {
	var branches []models.Branch
	if err := h.db.Where("is_active = ?", true).
		Order("name asc").
		Find(&branches).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": branches})
}

type branchRequest struct {
	Name         string `json:"name"`
	AddressLine  string `json:"address_line"`
	ContactPhone string `json:"contact_phone"`
	WorkingHours string `json:"working_hours"`
	IsActive     *bool  `json:"is_active"`
}

// CreateBranch adds a pickup branch.
func (h *BranchHandler) CreateBranch(c *fiber.Ctx) error {
	var req branchRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.Name == "" || req.AddressLine == "" || req.ContactPhone == "" {
		return fiber.NewError(fiber.StatusBadRequest, "name, address_line and contact_phone are required")
	}

	branch := models.Branch{
		Name:         req.Name,
		AddressLine:  req.AddressLine,
		ContactPhone: req.ContactPhone,
		WorkingHours: req.WorkingHours,
		IsActive:     true,
	}
	if req.IsActive != nil {
		branch.IsActive = *req.IsActive
	}

	if err := h.db.Create(&branch).Error; err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": branch})
}

// UpdateBranch updates a pickup branch.
func (h *BranchHandler) UpdateBranch(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var branch models.Branch
	if err := h.db.First(&branch, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "branch not found")
		}
		return err
	}

	var req branchRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.Name != "" {
		branch.Name = req.Name
	}
	if req.AddressLine != "" {
		branch.AddressLine = req.AddressLine
	}
	if req.ContactPhone != "" {
		branch.ContactPhone = req.ContactPhone
	}
	if req.WorkingHours != "" {
		branch.WorkingHours = req.WorkingHours
	}
	if req.IsActive != nil {
		branch.IsActive = *req.IsActive
	}

	if err := h.db.Save(&branch).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": branch})
}

// DeleteBranch removes a pickup branch.
func (h *BranchHandler) DeleteBranch(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if err := h.db.Delete(&models.Branch{}, "id = ?", id).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true})
}
