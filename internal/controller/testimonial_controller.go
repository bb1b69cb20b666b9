package controller

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"nicehomes_backend/internal/model"
	"nicehomes_backend/pkg/utils/storage"
	"nicehomes_backend/pkg/utils/validation"
)

type TestimonialController struct {
	DB      *gorm.DB
	Storage storage.Storage
}

func NewTestimonialController(db *gorm.DB, store storage.Storage) *TestimonialController {
	return &TestimonialController{DB: db, Storage: store}
}

type TestimonialInput struct {
	Name     string `json:"name" form:"name" validate:"required,min=2"`
	Role     string `json:"role" form:"role" validate:"required"`
	Company  string `json:"company" form:"company"`
	Content  string `json:"content" form:"content" validate:"required,min=10"`
	Rating   *int   `json:"rating" form:"rating" validate:"omitempty,min=1,max=5"`
	Featured *bool  `json:"featured" form:"featured"`
	IsActive *bool  `json:"isActive" form:"isActive"`
}

type TestimonialUpdateInput struct {
	Name     string `json:"name" form:"name" validate:"omitempty,min=2"`
	Role     string `json:"role" form:"role"`
	Company  string `json:"company" form:"company"`
	Content  string `json:"content" form:"content" validate:"omitempty,min=10"`
	Rating   *int   `json:"rating" form:"rating" validate:"omitempty,min=1,max=5"`
	Featured *bool  `json:"featured" form:"featured"`
	IsActive *bool  `json:"isActive" form:"isActive"`
}

func (tc *TestimonialController) removeFile(ref string) {
	if err := tc.Storage.Remove(ref); err != nil {
		log.Printf("Could not delete file %s: %v", ref, err)
	}
}

// GetTestimonials lists active testimonials for the public site.
func (tc *TestimonialController) GetTestimonials(c *fiber.Ctx) error {
	query := tc.DB.Where("is_active = ?", true)
	if c.Query("featured") == "true" {
		query = query.Where("featured = ?", true)
	}

	var testimonials []model.Testimonial
	if err := query.Order("created_at desc").Find(&testimonials).Error; err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Could not fetch testimonials")
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"count":        len(testimonials),
		"testimonials": testimonials,
	})
}

func (tc *TestimonialController) GetAllAdmin(c *fiber.Ctx) error {
	p := parsePagination(c)

	query := tc.DB.Model(&model.Testimonial{})
	if isActive := c.Query("isActive"); isActive != "" {
		query = query.Where("is_active = ?", isActive == "true")
	}

	var testimonials []model.Testimonial
	total, totalPages, err := paginate(query, p, &testimonials)
	if err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Could not fetch testimonials")
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"total":        total,
		"totalPages":   totalPages,
		"currentPage":  p.Page,
		"testimonials": testimonials,
	})
}

func (tc *TestimonialController) GetByID(c *fiber.Ctx) error {
	var testimonial model.Testimonial
	if err := tc.DB.First(&testimonial, c.Params("id")).Error; err != nil {
		return errorResponse(c, fiber.StatusNotFound, "Testimonial not found")
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"testimonial": testimonial,
	})
}

func (tc *TestimonialController) Create(c *fiber.Ctx) error {
	input := new(TestimonialInput)
	if err := c.BodyParser(input); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid input")
	}

	input.Name = strings.TrimSpace(input.Name)
	input.Role = strings.TrimSpace(input.Role)
	input.Company = strings.TrimSpace(input.Company)
	input.Content = strings.TrimSpace(input.Content)

	if errs := validation.ValidateStruct(input); len(errs) > 0 {
		return validationResponse(c, errs)
	}

	imageRef := ""
	if file, err := c.FormFile("image"); err == nil && file != nil {
		imageRef, err = tc.Storage.Save(file)
		if err != nil {
			return errorResponse(c, fiber.StatusBadRequest, err.Error())
		}
	}

	testimonial := model.Testimonial{
		Name:     input.Name,
		Role:     input.Role,
		Company:  input.Company,
		Content:  input.Content,
		Rating:   5,
		Image:    imageRef,
		IsActive: true,
	}
	if input.Rating != nil {
		testimonial.Rating = *input.Rating
	}
	if input.Featured != nil {
		testimonial.Featured = *input.Featured
	}
	if input.IsActive != nil {
		testimonial.IsActive = *input.IsActive
	}

	if err := tc.DB.Create(&testimonial).Error; err != nil {
		if imageRef != "" {
			tc.removeFile(imageRef)
		}
		return errorResponse(c, fiber.StatusInternalServerError, "Could not create testimonial")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":     true,
		"message":     "Testimonial created successfully",
		"testimonial": testimonial,
	})
}

func (tc *TestimonialController) Update(c *fiber.Ctx) error {
	var testimonial model.Testimonial
	if err := tc.DB.First(&testimonial, c.Params("id")).Error; err != nil {
		return errorResponse(c, fiber.StatusNotFound, "Testimonial not found")
	}

	input := new(TestimonialUpdateInput)
	if err := c.BodyParser(input); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid input")
	}

	if errs := validation.ValidateStruct(input); len(errs) > 0 {
		return validationResponse(c, errs)
	}

	oldImage := testimonial.Image
	newImage := ""
	if file, err := c.FormFile("image"); err == nil && file != nil {
		newImage, err = tc.Storage.Save(file)
		if err != nil {
			return errorResponse(c, fiber.StatusBadRequest, err.Error())
		}
		testimonial.Image = newImage
	}

	if input.Name != "" {
		testimonial.Name = strings.TrimSpace(input.Name)
	}
	if input.Role != "" {
		testimonial.Role = strings.TrimSpace(input.Role)
	}
	if input.Company != "" {
		testimonial.Company = strings.TrimSpace(input.Company)
	}
	if input.Content != "" {
		testimonial.Content = strings.TrimSpace(input.Content)
	}
	if input.Rating != nil {
		testimonial.Rating = *input.Rating
	}
	if input.Featured != nil {
		testimonial.Featured = *input.Featured
	}
	if input.IsActive != nil {
		testimonial.IsActive = *input.IsActive
	}

	if err := tc.DB.Save(&testimonial).Error; err != nil {
		if newImage != "" {
			tc.removeFile(newImage)
		}
		return errorResponse(c, fiber.StatusInternalServerError, "Could not update testimonial")
	}

	if newImage != "" && oldImage != "" {
		tc.removeFile(oldImage)
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"message":     "Testimonial updated successfully",
		"testimonial": testimonial,
	})
}

func (tc *TestimonialController) Delete(c *fiber.Ctx) error {
	var testimonial model.Testimonial
	if err := tc.DB.First(&testimonial, c.Params("id")).Error; err != nil {
		return errorResponse(c, fiber.StatusNotFound, "Testimonial not found")
	}

	if testimonial.Image != "" {
		tc.removeFile(testimonial.Image)
	}

	if err := tc.DB.Delete(&testimonial).Error; err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Could not delete testimonial")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Testimonial deleted successfully",
	})
}

func (tc *TestimonialController) ToggleActive(c *fiber.Ctx) error {
	var testimonial model.Testimonial
	if err := tc.DB.First(&testimonial, c.Params("id")).Error; err != nil {
		return errorResponse(c, fiber.StatusNotFound, "Testimonial not found")
	}

	testimonial.IsActive = !testimonial.IsActive
	if err := tc.DB.Model(&testimonial).Update("is_active", testimonial.IsActive).Error; err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Could not update testimonial")
	}

	message := "Testimonial deactivated successfully"
	if testimonial.IsActive {
		message = "Testimonial activated successfully"
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"message":     message,
		"testimonial": testimonial,
	})
}

func (tc *TestimonialController) ToggleFeatured(c *fiber.Ctx) error {
	var testimonial model.Testimonial
	if err := tc.DB.First(&testimonial, c.Params("id")).Error; err != nil {
		return errorResponse(c, fiber.StatusNotFound, "Testimonial not found")
	}

	testimonial.Featured = !testimonial.Featured
	if err := tc.DB.Model(&testimonial).Update("featured", testimonial.Featured).Error; err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Could not update testimonial")
	}

	message := "Testimonial unmarked as featured successfully"
	if testimonial.Featured {
		message = "Testimonial marked as featured successfully"
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"message":     message,
		"testimonial": testimonial,
	})
}
