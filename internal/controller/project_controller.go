package controller

import (
	"encoding/json"
	"log"
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"nicehomes_backend/internal/model"
	"nicehomes_backend/pkg/utils/storage"
	"nicehomes_backend/pkg/utils/validation"
)

type ProjectController struct {
	DB      *gorm.DB
	Storage storage.Storage
}

func NewProjectController(db *gorm.DB, store storage.Storage) *ProjectController {
	return &ProjectController{DB: db, Storage: store}
}

// ProjectInput covers both JSON and multipart submissions. Amenities,
// specifications and gallery may arrive as structured JSON or as a
// JSON-encoded string field; they are decoded once here and flow through
// the rest of the code in canonical form.
type ProjectInput struct {
	Name        string `json:"name" form:"name"`
	Location    string `json:"location" form:"location"`
	Type        string `json:"type" form:"type"`
	Description string `json:"description" form:"description"`
	Price       string `json:"price" form:"price"`
	Status      string `json:"status" form:"status"`
	Featured    *bool  `json:"featured" form:"featured"`
	IsActive    *bool  `json:"isActive" form:"isActive"`

	Amenities      json.RawMessage `json:"amenities" form:"-"`
	Specifications json.RawMessage `json:"specifications" form:"-"`
	Gallery        json.RawMessage `json:"gallery" form:"-"`
}

type projectCreateRules struct {
	Name        string `validate:"required,min=2"`
	Location    string `validate:"required"`
	Type        string `validate:"required"`
	Description string `validate:"required,min=10"`
	Price       string `validate:"required"`
}

func parseProjectInput(c *fiber.Ctx) (*ProjectInput, error) {
	input := new(ProjectInput)
	if err := c.BodyParser(input); err != nil && err != fiber.ErrUnprocessableEntity {
		return nil, err
	}

	// Multipart form fields land as plain strings; lift the JSON-encoded
	// ones into the raw fields so decoding below is uniform.
	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		if v := c.FormValue("amenities"); v != "" {
			input.Amenities = json.RawMessage(v)
		}
		if v := c.FormValue("specifications"); v != "" {
			input.Specifications = json.RawMessage(v)
		}
		if v := c.FormValue("gallery"); v != "" {
			input.Gallery = json.RawMessage(v)
		}
	}

	return input, nil
}

// decodeStringList accepts either a JSON array or a JSON string containing
// an encoded array.
func decodeStringList(raw json.RawMessage) ([]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, nil
	}

	var encoded string
	if err := json.Unmarshal(raw, &encoded); err != nil {
		return nil, err
	}
	if encoded == "" {
		return nil, nil
	}
	if err := json.Unmarshal([]byte(encoded), &list); err != nil {
		return nil, err
	}
	return list, nil
}

func decodeSpecifications(raw json.RawMessage) (*model.Specifications, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var specs model.Specifications
	if err := json.Unmarshal(raw, &specs); err == nil {
		return &specs, nil
	}

	var encoded string
	if err := json.Unmarshal(raw, &encoded); err != nil {
		return nil, err
	}
	if encoded == "" {
		return nil, nil
	}
	if err := json.Unmarshal([]byte(encoded), &specs); err != nil {
		return nil, err
	}
	return &specs, nil
}

func (pc *ProjectController) formImage(c *fiber.Ctx) *multipart.FileHeader {
	file, err := c.FormFile("image")
	if err != nil {
		return nil
	}
	return file
}

func (pc *ProjectController) removeFile(ref string) {
	if err := pc.Storage.Remove(ref); err != nil {
		log.Printf("Could not delete file %s: %v", ref, err)
	}
}

func validateProjectCreate(input *ProjectInput) []validation.FieldError {
	errs := validation.ValidateStruct(projectCreateRules{
		Name:        input.Name,
		Location:    input.Location,
		Type:        input.Type,
		Description: input.Description,
		Price:       input.Price,
	})

	if input.Type != "" && !validProjectType(input.Type) {
		errs = append(errs, validation.FieldError{Field: "type", Message: "Invalid project type"})
	}
	if input.Status != "" && !validProjectStatus(input.Status) {
		errs = append(errs, validation.FieldError{Field: "status", Message: "Invalid status"})
	}
	return errs
}

func validProjectType(t string) bool {
	switch model.ProjectType(t) {
	case model.ProjectTypeLuxuryVillas, model.ProjectTypePremiumApartments,
		model.ProjectTypeLuxuryFarmhouse, model.ProjectTypePenthouse,
		model.ProjectTypeRowHouse, model.ProjectTypeOther:
		return true
	}
	return false
}

func validProjectStatus(s string) bool {
	switch model.ProjectStatus(s) {
	case model.ProjectStatusUpcoming, model.ProjectStatusOngoing,
		model.ProjectStatusCompleted, model.ProjectStatusReadyToMove:
		return true
	}
	return false
}

// GetProjects lists active projects for the public site.
func (pc *ProjectController) GetProjects(c *fiber.Ctx) error {
	query := pc.DB.Where("is_active = ?", true)
	if c.Query("featured") == "true" {
		query = query.Where("featured = ?", true)
	}
	if t := c.Query("type"); t != "" {
		query = query.Where("type = ?", t)
	}

	var projects []model.Project
	if err := query.Order("created_at desc").Find(&projects).Error; err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Could not fetch projects")
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"count":    len(projects),
		"projects": projects,
	})
}

func (pc *ProjectController) GetAllAdmin(c *fiber.Ctx) error {
	p := parsePagination(c)

	query := pc.DB.Model(&model.Project{})
	if isActive := c.Query("isActive"); isActive != "" {
		query = query.Where("is_active = ?", isActive == "true")
	}
	if t := c.Query("type"); t != "" {
		query = query.Where("type = ?", t)
	}

	var projects []model.Project
	total, totalPages, err := paginate(query, p, &projects)
	if err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Could not fetch projects")
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"total":       total,
		"totalPages":  totalPages,
		"currentPage": p.Page,
		"projects":    projects,
	})
}

func (pc *ProjectController) GetByID(c *fiber.Ctx) error {
	var project model.Project
	if err := pc.DB.First(&project, c.Params("id")).Error; err != nil {
		return errorResponse(c, fiber.StatusNotFound, "Project not found")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"project": project,
	})
}

func (pc *ProjectController) Create(c *fiber.Ctx) error {
	input, err := parseProjectInput(c)
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid input")
	}

	if errs := validateProjectCreate(input); len(errs) > 0 {
		return validationResponse(c, errs)
	}

	amenities, err := decodeStringList(input.Amenities)
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid amenities format")
	}
	gallery, err := decodeStringList(input.Gallery)
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid gallery format")
	}
	specs, err := decodeSpecifications(input.Specifications)
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid specifications format")
	}

	imageRef := ""
	if file := pc.formImage(c); file != nil {
		imageRef, err = pc.Storage.Save(file)
		if err != nil {
			return errorResponse(c, fiber.StatusBadRequest, err.Error())
		}
	}

	project := model.Project{
		Name:        strings.TrimSpace(input.Name),
		Location:    strings.TrimSpace(input.Location),
		Type:        model.ProjectType(input.Type),
		Description: strings.TrimSpace(input.Description),
		Price:       strings.TrimSpace(input.Price),
		Status:      model.ProjectStatusUpcoming,
		Image:       imageRef,
		Gallery:     datatypes.NewJSONSlice(gallery),
		Amenities:   datatypes.NewJSONSlice(amenities),
		IsActive:    true,
	}
	if input.Status != "" {
		project.Status = model.ProjectStatus(input.Status)
	}
	if input.Featured != nil {
		project.Featured = *input.Featured
	}
	if input.IsActive != nil {
		project.IsActive = *input.IsActive
	}
	if specs != nil {
		project.Specifications = datatypes.NewJSONType(*specs)
	}

	if err := pc.DB.Create(&project).Error; err != nil {
		// Stored file must not outlive the failed record.
		if imageRef != "" {
			pc.removeFile(imageRef)
		}
		return errorResponse(c, fiber.StatusInternalServerError, "Could not create project")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Project created successfully",
		"project": project,
	})
}

func (pc *ProjectController) Update(c *fiber.Ctx) error {
	var project model.Project
	if err := pc.DB.First(&project, c.Params("id")).Error; err != nil {
		return errorResponse(c, fiber.StatusNotFound, "Project not found")
	}

	input, err := parseProjectInput(c)
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid input")
	}

	if input.Type != "" && !validProjectType(input.Type) {
		return validationResponse(c, []validation.FieldError{{Field: "type", Message: "Invalid project type"}})
	}
	if input.Status != "" && !validProjectStatus(input.Status) {
		return validationResponse(c, []validation.FieldError{{Field: "status", Message: "Invalid status"}})
	}

	amenities, err := decodeStringList(input.Amenities)
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid amenities format")
	}
	gallery, err := decodeStringList(input.Gallery)
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid gallery format")
	}
	specs, err := decodeSpecifications(input.Specifications)
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid specifications format")
	}

	oldImage := project.Image
	newImage := ""
	if file := pc.formImage(c); file != nil {
		newImage, err = pc.Storage.Save(file)
		if err != nil {
			return errorResponse(c, fiber.StatusBadRequest, err.Error())
		}
		project.Image = newImage
	}

	// Partial update: only fields present in the payload are touched.
	if input.Name != "" {
		project.Name = strings.TrimSpace(input.Name)
	}
	if input.Location != "" {
		project.Location = strings.TrimSpace(input.Location)
	}
	if input.Type != "" {
		project.Type = model.ProjectType(input.Type)
	}
	if input.Description != "" {
		project.Description = strings.TrimSpace(input.Description)
	}
	if input.Price != "" {
		project.Price = strings.TrimSpace(input.Price)
	}
	if input.Status != "" {
		project.Status = model.ProjectStatus(input.Status)
	}
	if input.Featured != nil {
		project.Featured = *input.Featured
	}
	if input.IsActive != nil {
		project.IsActive = *input.IsActive
	}
	if input.Amenities != nil {
		project.Amenities = datatypes.NewJSONSlice(amenities)
	}
	if input.Gallery != nil {
		project.Gallery = datatypes.NewJSONSlice(gallery)
	}
	if specs != nil {
		project.Specifications = datatypes.NewJSONType(*specs)
	}

	if err := pc.DB.Save(&project).Error; err != nil {
		if newImage != "" {
			pc.removeFile(newImage)
		}
		return errorResponse(c, fiber.StatusInternalServerError, "Could not update project")
	}

	// New image persisted; the replaced file can go now.
	if newImage != "" && oldImage != "" {
		pc.removeFile(oldImage)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Project updated successfully",
		"project": project,
	})
}

func (pc *ProjectController) Delete(c *fiber.Ctx) error {
	var project model.Project
	if err := pc.DB.First(&project, c.Params("id")).Error; err != nil {
		return errorResponse(c, fiber.StatusNotFound, "Project not found")
	}

	for _, ref := range project.FileRefs() {
		pc.removeFile(ref)
	}

	if err := pc.DB.Delete(&project).Error; err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Could not delete project")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Project deleted successfully",
	})
}

func (pc *ProjectController) ToggleActive(c *fiber.Ctx) error {
	var project model.Project
	if err := pc.DB.First(&project, c.Params("id")).Error; err != nil {
		return errorResponse(c, fiber.StatusNotFound, "Project not found")
	}

	project.IsActive = !project.IsActive
	if err := pc.DB.Model(&project).Update("is_active", project.IsActive).Error; err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Could not update project")
	}

	message := "Project deactivated successfully"
	if project.IsActive {
		message = "Project activated successfully"
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": message,
		"project": project,
	})
}

func (pc *ProjectController) ToggleFeatured(c *fiber.Ctx) error {
	var project model.Project
	if err := pc.DB.First(&project, c.Params("id")).Error; err != nil {
		return errorResponse(c, fiber.StatusNotFound, "Project not found")
	}

	project.Featured = !project.Featured
	if err := pc.DB.Model(&project).Update("featured", project.Featured).Error; err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Could not update project")
	}

	message := "Project unmarked as featured successfully"
	if project.Featured {
		message = "Project marked as featured successfully"
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": message,
		"project": project,
	})
}
