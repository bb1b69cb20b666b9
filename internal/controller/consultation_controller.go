package controller

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"nicehomes_backend/internal/model"
	"nicehomes_backend/pkg/email"
	"nicehomes_backend/pkg/utils/validation"
)

type ConsultationController struct {
	DB    *gorm.DB
	Email *email.Service
}

func NewConsultationController(db *gorm.DB, emailSvc *email.Service) *ConsultationController {
	return &ConsultationController{DB: db, Email: emailSvc}
}

type ConsultationInput struct {
	Name         string `json:"name" validate:"required,min=2"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"required,phone"`
	PropertyType string `json:"propertyType" validate:"required,oneof=villa apartment farmhouse plot"`
	Budget       string `json:"budget"`
	Location     string `json:"location"`
}

type ConsultationUpdateInput struct {
	Status string  `json:"status" validate:"omitempty,oneof=pending contacted completed cancelled"`
	Notes  *string `json:"notes"`
}

type consultationView struct {
	model.Consultation
	SubmittedBy *model.SubmitterProfile `json:"submittedBy,omitempty"`
}

func (cc *ConsultationController) Create(c *fiber.Ctx) error {
	input := new(ConsultationInput)
	if err := c.BodyParser(input); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid input")
	}

	input.Name = strings.TrimSpace(input.Name)
	input.Email = validation.NormalizeEmail(input.Email)
	input.Phone = validation.NormalizePhone(input.Phone)
	input.Budget = strings.TrimSpace(input.Budget)
	input.Location = strings.TrimSpace(input.Location)

	if errs := validation.ValidateStruct(input); len(errs) > 0 {
		return validationResponse(c, errs)
	}

	consultation := model.Consultation{
		Name:         input.Name,
		Email:        input.Email,
		Phone:        input.Phone,
		PropertyType: model.PropertyType(input.PropertyType),
		Budget:       input.Budget,
		Location:     input.Location,
		Status:       model.ConsultationStatusPending,
		UserID:       optionalUserID(c),
	}

	if err := cc.DB.Create(&consultation).Error; err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Could not create consultation")
	}

	if err := cc.Email.SendConsultationNotification(email.ConsultationNotification{
		Name:         consultation.Name,
		Email:        consultation.Email,
		Phone:        consultation.Phone,
		PropertyType: string(consultation.PropertyType),
		Budget:       consultation.Budget,
		Location:     consultation.Location,
	}); err != nil {
		log.Printf("Could not send consultation notification email: %v", err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":      true,
		"message":      "Consultation booking submitted successfully",
		"consultation": consultation,
	})
}

func (cc *ConsultationController) GetAll(c *fiber.Ctx) error {
	p := parsePagination(c)

	query := cc.DB.Model(&model.Consultation{}).Preload("User")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var consultations []model.Consultation
	total, totalPages, err := paginate(query, p, &consultations)
	if err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Could not fetch consultations")
	}

	views := make([]consultationView, 0, len(consultations))
	for i := range consultations {
		views = append(views, consultationView{
			Consultation: consultations[i],
			SubmittedBy:  consultations[i].SubmittedBy(),
		})
	}

	return c.JSON(fiber.Map{
		"success":       true,
		"count":         len(views),
		"total":         total,
		"totalPages":    totalPages,
		"currentPage":   p.Page,
		"consultations": views,
	})
}

func (cc *ConsultationController) GetByID(c *fiber.Ctx) error {
	var consultation model.Consultation
	if err := cc.DB.Preload("User").First(&consultation, c.Params("id")).Error; err != nil {
		return errorResponse(c, fiber.StatusNotFound, "Consultation not found")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"consultation": consultationView{
			Consultation: consultation,
			SubmittedBy:  consultation.SubmittedBy(),
		},
	})
}

func (cc *ConsultationController) Update(c *fiber.Ctx) error {
	input := new(ConsultationUpdateInput)
	if err := c.BodyParser(input); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid input")
	}

	if errs := validation.ValidateStruct(input); len(errs) > 0 {
		return validationResponse(c, errs)
	}

	var consultation model.Consultation
	if err := cc.DB.First(&consultation, c.Params("id")).Error; err != nil {
		return errorResponse(c, fiber.StatusNotFound, "Consultation not found")
	}

	if input.Status != "" {
		consultation.Status = model.ConsultationStatus(input.Status)
	}
	if input.Notes != nil {
		consultation.Notes = *input.Notes
	}

	if err := cc.DB.Save(&consultation).Error; err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Could not update consultation")
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"message":      "Consultation updated successfully",
		"consultation": consultation,
	})
}

func (cc *ConsultationController) Delete(c *fiber.Ctx) error {
	var consultation model.Consultation
	if err := cc.DB.First(&consultation, c.Params("id")).Error; err != nil {
		return errorResponse(c, fiber.StatusNotFound, "Consultation not found")
	}

	if err := cc.DB.Delete(&consultation).Error; err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Could not delete consultation")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Consultation deleted successfully",
	})
}

func (cc *ConsultationController) GetMyConsultations(c *fiber.Ctx) error {
	claims := claimsFromCtx(c)

	var consultations []model.Consultation
	if err := cc.DB.Where("user_id = ?", claims.UserID).
		Order("created_at desc").
		Find(&consultations).Error; err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Could not fetch consultations")
	}

	return c.JSON(fiber.Map{
		"success":       true,
		"count":         len(consultations),
		"consultations": consultations,
	})
}
