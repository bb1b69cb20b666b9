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

type ProjectEnquiryController struct {
	DB    *gorm.DB
	Email *email.Service
}

func NewProjectEnquiryController(db *gorm.DB, emailSvc *email.Service) *ProjectEnquiryController {
	return &ProjectEnquiryController{DB: db, Email: emailSvc}
}

type ProjectEnquiryInput struct {
	ProjectID uint   `json:"projectId" validate:"required"`
	Name      string `json:"name" validate:"required,min=2"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required,phone"`
	Message   string `json:"message" validate:"required,min=10"`
}

type ProjectEnquiryUpdateInput struct {
	Status string `json:"status" validate:"omitempty,oneof=New Contacted 'In Progress' Closed"`
}

type enquiryView struct {
	model.ProjectEnquiry
	Project *model.Project `json:"project,omitempty"`
}

func (ec *ProjectEnquiryController) Create(c *fiber.Ctx) error {
	input := new(ProjectEnquiryInput)
	if err := c.BodyParser(input); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid input")
	}

	input.Name = strings.TrimSpace(input.Name)
	input.Email = validation.NormalizeEmail(input.Email)
	input.Phone = validation.NormalizePhone(input.Phone)
	input.Message = strings.TrimSpace(input.Message)

	if errs := validation.ValidateStruct(input); len(errs) > 0 {
		return validationResponse(c, errs)
	}

	// No record is written unless the project exists.
	var project model.Project
	if err := ec.DB.First(&project, input.ProjectID).Error; err != nil {
		return errorResponse(c, fiber.StatusNotFound, "Project not found")
	}

	enquiry := model.ProjectEnquiry{
		ProjectID:   project.ID,
		ProjectName: project.Name,
		Name:        input.Name,
		Email:       input.Email,
		Phone:       input.Phone,
		Message:     input.Message,
		Status:      model.EnquiryStatusNew,
	}

	if err := ec.DB.Create(&enquiry).Error; err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Could not create enquiry")
	}

	if err := ec.Email.SendEnquiryNotification(email.EnquiryNotification{
		ProjectName: enquiry.ProjectName,
		Name:        enquiry.Name,
		Email:       enquiry.Email,
		Phone:       enquiry.Phone,
		Message:     enquiry.Message,
	}); err != nil {
		log.Printf("Could not send enquiry notification email: %v", err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Enquiry submitted successfully",
		"enquiry": enquiry,
	})
}

func (ec *ProjectEnquiryController) GetAll(c *fiber.Ctx) error {
	p := parsePagination(c)

	query := ec.DB.Model(&model.ProjectEnquiry{}).Preload("Project")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if isRead := c.Query("isRead"); isRead != "" {
		query = query.Where("is_read = ?", isRead == "true")
	}
	if projectID := c.Query("projectId"); projectID != "" {
		query = query.Where("project_id = ?", projectID)
	}

	var enquiries []model.ProjectEnquiry
	total, totalPages, err := paginate(query, p, &enquiries)
	if err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Could not fetch enquiries")
	}

	views := make([]enquiryView, 0, len(enquiries))
	for i := range enquiries {
		views = append(views, enquiryView{
			ProjectEnquiry: enquiries[i],
			Project:        projectRef(enquiries[i].Project),
		})
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"total":       total,
		"totalPages":  totalPages,
		"currentPage": p.Page,
		"enquiries":   views,
	})
}

// projectRef hides zero-valued preloads behind an omitempty pointer.
func projectRef(p model.Project) *model.Project {
	if p.ID == 0 {
		return nil
	}
	return &p
}

func (ec *ProjectEnquiryController) GetByID(c *fiber.Ctx) error {
	var enquiry model.ProjectEnquiry
	if err := ec.DB.Preload("Project").First(&enquiry, c.Params("id")).Error; err != nil {
		return errorResponse(c, fiber.StatusNotFound, "Enquiry not found")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"enquiry": enquiryView{
			ProjectEnquiry: enquiry,
			Project:        projectRef(enquiry.Project),
		},
	})
}

func (ec *ProjectEnquiryController) UpdateStatus(c *fiber.Ctx) error {
	input := new(ProjectEnquiryUpdateInput)
	if err := c.BodyParser(input); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid input")
	}

	if errs := validation.ValidateStruct(input); len(errs) > 0 {
		return validationResponse(c, errs)
	}

	var enquiry model.ProjectEnquiry
	if err := ec.DB.First(&enquiry, c.Params("id")).Error; err != nil {
		return errorResponse(c, fiber.StatusNotFound, "Enquiry not found")
	}

	if input.Status != "" {
		enquiry.Status = model.EnquiryStatus(input.Status)
	}
	enquiry.IsRead = true

	if err := ec.DB.Save(&enquiry).Error; err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Could not update enquiry")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Enquiry updated successfully",
		"enquiry": enquiry,
	})
}

func (ec *ProjectEnquiryController) ToggleRead(c *fiber.Ctx) error {
	var enquiry model.ProjectEnquiry
	if err := ec.DB.First(&enquiry, c.Params("id")).Error; err != nil {
		return errorResponse(c, fiber.StatusNotFound, "Enquiry not found")
	}

	enquiry.IsRead = !enquiry.IsRead
	if err := ec.DB.Model(&enquiry).Update("is_read", enquiry.IsRead).Error; err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Could not update enquiry")
	}

	message := "Enquiry marked as unread"
	if enquiry.IsRead {
		message = "Enquiry marked as read"
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": message,
		"enquiry": enquiry,
	})
}

func (ec *ProjectEnquiryController) Delete(c *fiber.Ctx) error {
	var enquiry model.ProjectEnquiry
	if err := ec.DB.First(&enquiry, c.Params("id")).Error; err != nil {
		return errorResponse(c, fiber.StatusNotFound, "Enquiry not found")
	}

	if err := ec.DB.Delete(&enquiry).Error; err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Could not delete enquiry")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Enquiry deleted successfully",
	})
}
