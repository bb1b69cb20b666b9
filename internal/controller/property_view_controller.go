package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"nicehomes_backend/internal/model"
	"nicehomes_backend/pkg/utils/validation"
)

type PropertyViewController struct {
	DB *gorm.DB
}

func NewPropertyViewController(db *gorm.DB) *PropertyViewController {
	return &PropertyViewController{DB: db}
}

type TrackViewInput struct {
	ProjectID    uint   `json:"projectId" validate:"required"`
	ProjectName  string `json:"projectName" validate:"required"`
	VisitorName  string `json:"visitorName"`
	VisitorPhone string `json:"visitorPhone"`
	VisitorEmail string `json:"visitorEmail" validate:"omitempty,email"`
	DeviceInfo   string `json:"deviceInfo"`
	ViewDuration int    `json:"viewDuration"`
}

type PropertyViewUpdateInput struct {
	Status string  `json:"status" validate:"omitempty,oneof=New Contacted Interested 'Not Interested'"`
	Notes  *string `json:"notes"`
}

type propertyViewView struct {
	model.PropertyView
	Project *model.Project `json:"project,omitempty"`
}

// TrackView records a visitor hitting a project page. It is fire-and-forget
// from the frontend, so only the project reference is mandatory.
func (vc *PropertyViewController) TrackView(c *fiber.Ctx) error {
	input := new(TrackViewInput)
	if err := c.BodyParser(input); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid input")
	}

	input.ProjectName = strings.TrimSpace(input.ProjectName)
	input.VisitorName = strings.TrimSpace(input.VisitorName)
	input.VisitorPhone = validation.NormalizePhone(input.VisitorPhone)
	input.VisitorEmail = validation.NormalizeEmail(input.VisitorEmail)

	if errs := validation.ValidateStruct(input); len(errs) > 0 {
		return validationResponse(c, errs)
	}

	view := model.PropertyView{
		ProjectID:    input.ProjectID,
		ProjectName:  input.ProjectName,
		VisitorName:  input.VisitorName,
		VisitorPhone: input.VisitorPhone,
		VisitorEmail: input.VisitorEmail,
		DeviceInfo:   input.DeviceInfo,
		IPAddress:    c.IP(),
		ViewDuration: input.ViewDuration,
		Status:       model.ViewStatusNew,
	}

	if err := vc.DB.Create(&view).Error; err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Could not record view")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "View recorded successfully",
		"view":    view,
	})
}

func (vc *PropertyViewController) GetAll(c *fiber.Ctx) error {
	p := parsePagination(c)

	query := vc.DB.Model(&model.PropertyView{}).Preload("Project")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if isRead := c.Query("isRead"); isRead != "" {
		query = query.Where("is_read = ?", isRead == "true")
	}
	if projectID := c.Query("projectId"); projectID != "" {
		query = query.Where("project_id = ?", projectID)
	}

	var views []model.PropertyView
	total, totalPages, err := paginate(query, p, &views)
	if err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Could not fetch views")
	}

	out := make([]propertyViewView, 0, len(views))
	for i := range views {
		out = append(out, propertyViewView{
			PropertyView: views[i],
			Project:      projectRef(views[i].Project),
		})
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"total":       total,
		"totalPages":  totalPages,
		"currentPage": p.Page,
		"views":       out,
	})
}

type topProject struct {
	ProjectID   uint   `json:"projectId"`
	ProjectName string `json:"projectName"`
	ViewCount   int64  `json:"viewCount"`
}

// GetViewStats aggregates the dashboard numbers in the database rather than
// paging records into memory.
func (vc *PropertyViewController) GetViewStats(c *fiber.Ctx) error {
	var totalViews int64
	if err := vc.DB.Model(&model.PropertyView{}).Count(&totalViews).Error; err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Could not fetch view stats")
	}

	var viewsWithContact int64
	if err := vc.DB.Model(&model.PropertyView{}).
		Where("visitor_phone <> '' OR visitor_email <> ''").
		Count(&viewsWithContact).Error; err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Could not fetch view stats")
	}

	var newViews int64
	if err := vc.DB.Model(&model.PropertyView{}).
		Where("status = ?", model.ViewStatusNew).
		Count(&newViews).Error; err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Could not fetch view stats")
	}

	var topProjects []topProject
	if err := vc.DB.Model(&model.PropertyView{}).
		Select("project_id, project_name, count(*) as view_count").
		Group("project_id, project_name").
		Order("view_count desc").
		Limit(5).
		Scan(&topProjects).Error; err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Could not fetch view stats")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"stats": fiber.Map{
			"totalViews":       totalViews,
			"viewsWithContact": viewsWithContact,
			"newViews":         newViews,
			"topProjects":      topProjects,
		},
	})
}

func (vc *PropertyViewController) GetViewsByProject(c *fiber.Ctx) error {
	var views []model.PropertyView
	if err := vc.DB.Where("project_id = ?", c.Params("projectId")).
		Order("created_at desc").
		Find(&views).Error; err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Could not fetch views")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"count":   len(views),
		"views":   views,
	})
}

func (vc *PropertyViewController) UpdateStatus(c *fiber.Ctx) error {
	input := new(PropertyViewUpdateInput)
	if err := c.BodyParser(input); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid input")
	}

	if errs := validation.ValidateStruct(input); len(errs) > 0 {
		return validationResponse(c, errs)
	}

	var view model.PropertyView
	if err := vc.DB.First(&view, c.Params("id")).Error; err != nil {
		return errorResponse(c, fiber.StatusNotFound, "View not found")
	}

	if input.Status != "" {
		view.Status = model.ViewStatus(input.Status)
	}
	if input.Notes != nil {
		view.Notes = *input.Notes
	}
	view.IsRead = true

	if err := vc.DB.Save(&view).Error; err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Could not update view")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "View updated successfully",
		"view":    view,
	})
}

func (vc *PropertyViewController) Delete(c *fiber.Ctx) error {
	var view model.PropertyView
	if err := vc.DB.First(&view, c.Params("id")).Error; err != nil {
		return errorResponse(c, fiber.StatusNotFound, "View not found")
	}

	if err := vc.DB.Delete(&view).Error; err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Could not delete view")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "View deleted successfully",
	})
}
