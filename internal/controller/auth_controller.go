package controller

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"nicehomes_backend/internal/model"
	"nicehomes_backend/pkg/utils/jwt"
	"nicehomes_backend/pkg/utils/validation"
)

type AuthController struct {
	DB  *gorm.DB
	JWT *jwt.Service
}

func NewAuthController(db *gorm.DB, jwtSvc *jwt.Service) *AuthController {
	return &AuthController{DB: db, JWT: jwtSvc}
}

type RegisterInput struct {
	FullName string `json:"fullName" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func passwordHasDigit(password string) bool {
	return strings.ContainsAny(password, "0123456789")
}

func (ac *AuthController) setTokenCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    token,
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
}

func (ac *AuthController) Register(c *fiber.Ctx) error {
	input := new(RegisterInput)
	if err := c.BodyParser(input); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid input")
	}

	input.FullName = strings.TrimSpace(input.FullName)
	input.Email = validation.NormalizeEmail(input.Email)

	errs := validation.ValidateStruct(input)
	if input.Password != "" && !passwordHasDigit(input.Password) {
		errs = append(errs, validation.FieldError{
			Field:   "password",
			Message: "Password must contain at least one number",
		})
	}
	if len(errs) > 0 {
		return validationResponse(c, errs)
	}

	var existing model.User
	if err := ac.DB.Where("email = ?", input.Email).First(&existing).Error; err == nil {
		return errorResponse(c, fiber.StatusBadRequest, "Email already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Could not hash password")
	}

	user := model.User{
		FullName: input.FullName,
		Email:    input.Email,
		Password: string(hashedPassword),
		Role:     model.RoleUser,
		IsActive: true,
	}

	if err := ac.DB.Create(&user).Error; err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Could not create user")
	}

	token, err := ac.JWT.GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Could not generate token")
	}
	ac.setTokenCookie(c, token)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Registration successful",
		"token":   token,
		"user":    user.PublicProfile(),
	})
}

func (ac *AuthController) Login(c *fiber.Ctx) error {
	input := new(LoginInput)
	if err := c.BodyParser(input); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid input")
	}

	input.Email = validation.NormalizeEmail(input.Email)
	if errs := validation.ValidateStruct(input); len(errs) > 0 {
		return validationResponse(c, errs)
	}

	var user model.User
	if err := ac.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		return errorResponse(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return errorResponse(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	if !user.IsActive {
		return errorResponse(c, fiber.StatusUnauthorized, "Account is deactivated")
	}

	now := time.Now()
	ac.DB.Model(&user).Update("last_login", now)
	user.LastLogin = &now

	token, err := ac.JWT.GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Could not generate token")
	}
	ac.setTokenCookie(c, token)

	return c.JSON(fiber.Map{
		"success": true,
		"token":   token,
		"user":    user.PublicProfile(),
	})
}

func (ac *AuthController) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Logged out successfully",
	})
}

func (ac *AuthController) Me(c *fiber.Ctx) error {
	claims := claimsFromCtx(c)

	var user model.User
	if err := ac.DB.First(&user, claims.UserID).Error; err != nil {
		return errorResponse(c, fiber.StatusNotFound, "User not found")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"user":    user.PublicProfile(),
	})
}

// Verify lets the frontend probe whether its stored token is still valid;
// reaching the handler means the auth guard already accepted it.
func (ac *AuthController) Verify(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Token is valid",
	})
}
