package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"nicehomes_backend/internal/model"
	"nicehomes_backend/pkg/utils/jwt"
)

// LocalsUserKey is where Protect stores the verified claims for handlers
// downstream.
const LocalsUserKey = "user"

func tokenFromRequest(c *fiber.Ctx) string {
	header := c.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return c.Cookies("token")
}

// Protect rejects requests without a valid bearer credential. On success the
// resolved claims are attached to the request context.
func Protect(jwtSvc *jwt.Service, db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := tokenFromRequest(c)
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Not authorized, no token",
			})
		}

		claims, err := jwtSvc.ValidateToken(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Not authorized, token failed",
			})
		}

		var user model.User
		if err := db.First(&user, claims.UserID).Error; err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Not authorized, user not found",
			})
		}

		if !user.IsActive {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Account is deactivated",
			})
		}

		c.Locals(LocalsUserKey, claims)
		return c.Next()
	}
}

// AdminOnly requires the admin role. It must be mounted after Protect.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := c.Locals(LocalsUserKey).(*jwt.Claims)
		if !ok || claims.Role != string(model.RoleAdmin) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"success": false,
				"message": "Not authorized as admin",
			})
		}
		return c.Next()
	}
}

// OptionalAuth attaches claims when a valid credential is present but never
// short-circuits; public create endpoints use it to tag submissions from
// logged-in users.
func OptionalAuth(jwtSvc *jwt.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if tokenString := tokenFromRequest(c); tokenString != "" {
			if claims, err := jwtSvc.ValidateToken(tokenString); err == nil {
				c.Locals(LocalsUserKey, claims)
			}
		}
		return c.Next()
	}
}
