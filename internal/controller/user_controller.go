package controller

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"nicehomes_backend/internal/model"
	"nicehomes_backend/pkg/utils/validation"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

type UpdateProfileInput struct {
	FullName string `json:"fullName" validate:"omitempty,min=2"`
	Email    string `json:"email" validate:"omitempty,email"`
}

type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
}

type AdminUpdateUserInput struct {
	FullName string `json:"fullName"`
	Email    string `json:"email" validate:"omitempty,email"`
	Role     string `json:"role" validate:"omitempty,oneof=user admin"`
	IsActive *bool  `json:"isActive"`
}

func (uc *UserController) GetProfile(c *fiber.Ctx) error {
	claims := claimsFromCtx(c)

	var user model.User
	if err := uc.DB.First(&user, claims.UserID).Error; err != nil {
		return errorResponse(c, fiber.StatusNotFound, "User not found")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"user":    user.PublicProfile(),
	})
}

func (uc *UserController) UpdateProfile(c *fiber.Ctx) error {
	claims := claimsFromCtx(c)

	input := new(UpdateProfileInput)
	if err := c.BodyParser(input); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid input")
	}

	if input.Email != "" {
		input.Email = validation.NormalizeEmail(input.Email)
	}
	if errs := validation.ValidateStruct(input); len(errs) > 0 {
		return validationResponse(c, errs)
	}

	var user model.User
	if err := uc.DB.First(&user, claims.UserID).Error; err != nil {
		return errorResponse(c, fiber.StatusNotFound, "User not found")
	}

	// Changing email requires re-checking uniqueness against everyone else.
	if input.Email != "" && input.Email != user.Email {
		var count int64
		uc.DB.Model(&model.User{}).
			Where("email = ? AND id <> ?", input.Email, user.ID).
			Count(&count)
		if count > 0 {
			return errorResponse(c, fiber.StatusBadRequest, "Email already in use")
		}
		user.Email = input.Email
	}

	if input.FullName != "" {
		user.FullName = input.FullName
	}

	if err := uc.DB.Save(&user).Error; err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Could not update profile")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"user":    user.PublicProfile(),
	})
}

func (uc *UserController) ChangePassword(c *fiber.Ctx) error {
	claims := claimsFromCtx(c)

	input := new(ChangePasswordInput)
	if err := c.BodyParser(input); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid input")
	}

	errs := validation.ValidateStruct(input)
	if input.NewPassword != "" && !passwordHasDigit(input.NewPassword) {
		errs = append(errs, validation.FieldError{
			Field:   "newPassword",
			Message: "Password must contain at least one number",
		})
	}
	if len(errs) > 0 {
		return validationResponse(c, errs)
	}

	var user model.User
	if err := uc.DB.First(&user, claims.UserID).Error; err != nil {
		return errorResponse(c, fiber.StatusNotFound, "User not found")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.CurrentPassword)); err != nil {
		return errorResponse(c, fiber.StatusUnauthorized, "Current password is incorrect")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Could not hash password")
	}

	if err := uc.DB.Model(&user).Update("password", string(hashed)).Error; err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Could not change password")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Password changed successfully",
	})
}

func (uc *UserController) GetAllUsers(c *fiber.Ctx) error {
	var users []model.User
	if err := uc.DB.Order("created_at desc").Find(&users).Error; err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Could not fetch users")
	}

	profiles := make([]map[string]interface{}, 0, len(users))
	for i := range users {
		profiles = append(profiles, users[i].PublicProfile())
	}

	return c.JSON(fiber.Map{
		"success": true,
		"count":   len(profiles),
		"users":   profiles,
	})
}

func (uc *UserController) GetUserByID(c *fiber.Ctx) error {
	var user model.User
	if err := uc.DB.First(&user, c.Params("id")).Error; err != nil {
		return errorResponse(c, fiber.StatusNotFound, "User not found")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"user":    user.PublicProfile(),
	})
}

func (uc *UserController) UpdateUser(c *fiber.Ctx) error {
	input := new(AdminUpdateUserInput)
	if err := c.BodyParser(input); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid input")
	}

	if input.Email != "" {
		input.Email = validation.NormalizeEmail(input.Email)
	}
	if errs := validation.ValidateStruct(input); len(errs) > 0 {
		return validationResponse(c, errs)
	}

	var user model.User
	if err := uc.DB.First(&user, c.Params("id")).Error; err != nil {
		return errorResponse(c, fiber.StatusNotFound, "User not found")
	}

	if input.Email != "" && input.Email != user.Email {
		var count int64
		uc.DB.Model(&model.User{}).
			Where("email = ? AND id <> ?", input.Email, user.ID).
			Count(&count)
		if count > 0 {
			return errorResponse(c, fiber.StatusBadRequest, "Email already in use")
		}
	}

	if input.FullName != "" {
		user.FullName = input.FullName
	}
	if input.Email != "" {
		user.Email = input.Email
	}
	if input.Role != "" {
		user.Role = model.Role(input.Role)
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}

	if err := uc.DB.Save(&user).Error; err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Could not update user")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"user":    user.PublicProfile(),
	})
}

func (uc *UserController) DeleteUser(c *fiber.Ctx) error {
	claims := claimsFromCtx(c)

	var user model.User
	if err := uc.DB.First(&user, c.Params("id")).Error; err != nil {
		return errorResponse(c, fiber.StatusNotFound, "User not found")
	}

	if user.ID == claims.UserID {
		return errorResponse(c, fiber.StatusBadRequest, "You cannot delete your own account")
	}

	if err := uc.DB.Delete(&user).Error; err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Could not delete user")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "User deleted successfully",
	})
}
