package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"nicehomes_backend/internal/model"
	"nicehomes_backend/pkg/utils/validation"
)

type VisitorLeadController struct {
	DB *gorm.DB
}

func NewVisitorLeadController(db *gorm.DB) *VisitorLeadController {
	return &VisitorLeadController{DB: db}
}

type VisitorLeadInput struct {
	Name  string `json:"name" validate:"required,min=2"`
	Phone string `json:"phone" validate:"required,phone"`
}

type VisitorLeadUpdateInput struct {
	Status string `json:"status" validate:"omitempty,oneof=New Contacted Qualified 'Not Interested'"`
}

func (lc *VisitorLeadController) Create(c *fiber.Ctx) error {
	input := new(VisitorLeadInput)
	if err := c.BodyParser(input); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid input")
	}

	input.Name = strings.TrimSpace(input.Name)
	input.Phone = validation.NormalizePhone(input.Phone)

	if errs := validation.ValidateStruct(input); len(errs) > 0 {
		return validationResponse(c, errs)
	}

	lead := model.VisitorLead{
		Name:   input.Name,
		Phone:  input.Phone,
		Source: "Projects Page",
		Status: model.LeadStatusNew,
	}

	if err := lc.DB.Create(&lead).Error; err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Could not create lead")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Lead submitted successfully",
		"lead":    lead,
	})
}

func (lc *VisitorLeadController) GetAll(c *fiber.Ctx) error {
	p := parsePagination(c)

	query := lc.DB.Model(&model.VisitorLead{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if isRead := c.Query("isRead"); isRead != "" {
		query = query.Where("is_read = ?", isRead == "true")
	}

	var leads []model.VisitorLead
	total, totalPages, err := paginate(query, p, &leads)
	if err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Could not fetch leads")
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"total":       total,
		"totalPages":  totalPages,
		"currentPage": p.Page,
		"leads":       leads,
	})
}

func (lc *VisitorLeadController) UpdateStatus(c *fiber.Ctx) error {
	input := new(VisitorLeadUpdateInput)
	if err := c.BodyParser(input); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid input")
	}

	if errs := validation.ValidateStruct(input); len(errs) > 0 {
		return validationResponse(c, errs)
	}

	var lead model.VisitorLead
	if err := lc.DB.First(&lead, c.Params("id")).Error; err != nil {
		return errorResponse(c, fiber.StatusNotFound, "Lead not found")
	}

	if input.Status != "" {
		lead.Status = model.LeadStatus(input.Status)
	}
	lead.IsRead = true

	if err := lc.DB.Save(&lead).Error; err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Could not update lead")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Lead updated successfully",
		"lead":    lead,
	})
}

func (lc *VisitorLeadController) Delete(c *fiber.Ctx) error {
	var lead model.VisitorLead
	if err := lc.DB.First(&lead, c.Params("id")).Error; err != nil {
		return errorResponse(c, fiber.StatusNotFound, "Lead not found")
	}

	if err := lc.DB.Delete(&lead).Error; err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Could not delete lead")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Lead deleted successfully",
	})
}
