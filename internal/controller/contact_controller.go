package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"nicehomes_backend/internal/model"
	"nicehomes_backend/pkg/utils/validation"
)

type ContactController struct {
	DB *gorm.DB
}

func NewContactController(db *gorm.DB) *ContactController {
	return &ContactController{DB: db}
}

type ContactInput struct {
	Name    string `json:"name" validate:"required,min=2"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required,phone"`
	Subject string `json:"subject"`
	Message string `json:"message" validate:"required,min=10"`
}

type ContactUpdateInput struct {
	Status string  `json:"status" validate:"omitempty,oneof=new read responded resolved"`
	Notes  *string `json:"notes"`
}

type contactView struct {
	model.Contact
	SubmittedBy *model.SubmitterProfile `json:"submittedBy,omitempty"`
}

func (cc *ContactController) Create(c *fiber.Ctx) error {
	input := new(ContactInput)
	if err := c.BodyParser(input); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid input")
	}

	input.Name = strings.TrimSpace(input.Name)
	input.Email = validation.NormalizeEmail(input.Email)
	input.Phone = validation.NormalizePhone(input.Phone)
	input.Subject = strings.TrimSpace(input.Subject)
	input.Message = strings.TrimSpace(input.Message)

	if errs := validation.ValidateStruct(input); len(errs) > 0 {
		return validationResponse(c, errs)
	}

	contact := model.Contact{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Subject: input.Subject,
		Message: input.Message,
		Status:  model.ContactStatusNew,
		UserID:  optionalUserID(c),
	}

	if err := cc.DB.Create(&contact).Error; err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Could not create contact submission")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Contact submission received successfully",
		"contact": contact,
	})
}

func (cc *ContactController) GetAll(c *fiber.Ctx) error {
	p := parsePagination(c)

	query := cc.DB.Model(&model.Contact{}).Preload("User")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var contacts []model.Contact
	total, totalPages, err := paginate(query, p, &contacts)
	if err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Could not fetch contacts")
	}

	views := make([]contactView, 0, len(contacts))
	for i := range contacts {
		views = append(views, contactView{
			Contact:     contacts[i],
			SubmittedBy: contacts[i].SubmittedBy(),
		})
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"total":       total,
		"totalPages":  totalPages,
		"currentPage": p.Page,
		"contacts":    views,
	})
}

func (cc *ContactController) GetByID(c *fiber.Ctx) error {
	var contact model.Contact
	if err := cc.DB.Preload("User").First(&contact, c.Params("id")).Error; err != nil {
		return errorResponse(c, fiber.StatusNotFound, "Contact submission not found")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"contact": contactView{
			Contact:     contact,
			SubmittedBy: contact.SubmittedBy(),
		},
	})
}

func (cc *ContactController) Update(c *fiber.Ctx) error {
	input := new(ContactUpdateInput)
	if err := c.BodyParser(input); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid input")
	}

	if errs := validation.ValidateStruct(input); len(errs) > 0 {
		return validationResponse(c, errs)
	}

	var contact model.Contact
	if err := cc.DB.First(&contact, c.Params("id")).Error; err != nil {
		return errorResponse(c, fiber.StatusNotFound, "Contact submission not found")
	}

	if input.Status != "" {
		contact.Status = model.ContactStatus(input.Status)
	}
	if input.Notes != nil {
		contact.Notes = *input.Notes
	}

	if err := cc.DB.Save(&contact).Error; err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Could not update contact submission")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Contact submission updated successfully",
		"contact": contact,
	})
}

func (cc *ContactController) Delete(c *fiber.Ctx) error {
	var contact model.Contact
	if err := cc.DB.First(&contact, c.Params("id")).Error; err != nil {
		return errorResponse(c, fiber.StatusNotFound, "Contact submission not found")
	}

	if err := cc.DB.Delete(&contact).Error; err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Could not delete contact submission")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Contact submission deleted successfully",
	})
}

func (cc *ContactController) GetMySubmissions(c *fiber.Ctx) error {
	claims := claimsFromCtx(c)

	var contacts []model.Contact
	if err := cc.DB.Where("user_id = ?", claims.UserID).
		Order("created_at desc").
		Find(&contacts).Error; err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Could not fetch contact submissions")
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"count":    len(contacts),
		"contacts": contacts,
	})
}
