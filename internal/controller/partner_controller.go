package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"nicehomes_backend/internal/model"
	"nicehomes_backend/pkg/utils/validation"
)

type PartnerController struct {
	DB *gorm.DB
}

func NewPartnerController(db *gorm.DB) *PartnerController {
	return &PartnerController{DB: db}
}

type PartnerInput struct {
	Name      string `json:"name" validate:"required,min=2"`
	Company   string `json:"company" validate:"required,min=2"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required,phone"`
	Expertise string `json:"expertise" validate:"required,oneof=agent architect designer supplier contractor investor other"`
	Message   string `json:"message"`
}

type PartnerUpdateInput struct {
	Status string  `json:"status" validate:"omitempty,oneof=pending contacted approved rejected"`
	Notes  *string `json:"notes"`
}

type partnerView struct {
	model.Partner
	SubmittedBy *model.SubmitterProfile `json:"submittedBy,omitempty"`
}

func (pc *PartnerController) Create(c *fiber.Ctx) error {
	input := new(PartnerInput)
	if err := c.BodyParser(input); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid input")
	}

	input.Name = strings.TrimSpace(input.Name)
	input.Company = strings.TrimSpace(input.Company)
	input.Email = validation.NormalizeEmail(input.Email)
	input.Phone = validation.NormalizePhone(input.Phone)
	input.Message = strings.TrimSpace(input.Message)

	if errs := validation.ValidateStruct(input); len(errs) > 0 {
		return validationResponse(c, errs)
	}

	partner := model.Partner{
		Name:      input.Name,
		Company:   input.Company,
		Email:     input.Email,
		Phone:     input.Phone,
		Expertise: model.Expertise(input.Expertise),
		Message:   input.Message,
		Status:    model.PartnerStatusPending,
		UserID:    optionalUserID(c),
	}

	if err := pc.DB.Create(&partner).Error; err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Could not create partner submission")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Partner submission received successfully",
		"partner": partner,
	})
}

func (pc *PartnerController) GetAll(c *fiber.Ctx) error {
	p := parsePagination(c)

	query := pc.DB.Model(&model.Partner{}).Preload("User")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var partners []model.Partner
	total, totalPages, err := paginate(query, p, &partners)
	if err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Could not fetch partners")
	}

	views := make([]partnerView, 0, len(partners))
	for i := range partners {
		views = append(views, partnerView{
			Partner:     partners[i],
			SubmittedBy: partners[i].SubmittedBy(),
		})
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"total":       total,
		"totalPages":  totalPages,
		"currentPage": p.Page,
		"partners":    views,
	})
}

func (pc *PartnerController) GetByID(c *fiber.Ctx) error {
	var partner model.Partner
	if err := pc.DB.Preload("User").First(&partner, c.Params("id")).Error; err != nil {
		return errorResponse(c, fiber.StatusNotFound, "Partner submission not found")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"partner": partnerView{
			Partner:     partner,
			SubmittedBy: partner.SubmittedBy(),
		},
	})
}

func (pc *PartnerController) Update(c *fiber.Ctx) error {
	input := new(PartnerUpdateInput)
	if err := c.BodyParser(input); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid input")
	}

	if errs := validation.ValidateStruct(input); len(errs) > 0 {
		return validationResponse(c, errs)
	}

	var partner model.Partner
	if err := pc.DB.First(&partner, c.Params("id")).Error; err != nil {
		return errorResponse(c, fiber.StatusNotFound, "Partner submission not found")
	}

	if input.Status != "" {
		partner.Status = model.PartnerStatus(input.Status)
	}
	if input.Notes != nil {
		partner.Notes = *input.Notes
	}

	if err := pc.DB.Save(&partner).Error; err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Could not update partner submission")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Partner submission updated successfully",
		"partner": partner,
	})
}

func (pc *PartnerController) Delete(c *fiber.Ctx) error {
	var partner model.Partner
	if err := pc.DB.First(&partner, c.Params("id")).Error; err != nil {
		return errorResponse(c, fiber.StatusNotFound, "Partner submission not found")
	}

	if err := pc.DB.Delete(&partner).Error; err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Could not delete partner submission")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Partner submission deleted successfully",
	})
}

func (pc *PartnerController) GetMySubmissions(c *fiber.Ctx) error {
	claims := claimsFromCtx(c)

	var partners []model.Partner
	if err := pc.DB.Where("user_id = ?", claims.UserID).
		Order("created_at desc").
		Find(&partners).Error; err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Could not fetch partner submissions")
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"count":    len(partners),
		"partners": partners,
	})
}
