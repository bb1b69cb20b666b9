package controller

import (
	"math"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"nicehomes_backend/internal/middleware"
	"nicehomes_backend/pkg/utils/jwt"
	"nicehomes_backend/pkg/utils/validation"
)

type pageParams struct {
	Page  int
	Limit int
}

func parsePagination(c *fiber.Ctx) pageParams {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit := c.QueryInt("limit", 10)
	if limit < 1 {
		limit = 10
	}
	return pageParams{Page: page, Limit: limit}
}

// paginate runs the prepared query newest-first and returns the page plus
// total and totalPages for the response envelope.
func paginate[T any](query *gorm.DB, p pageParams, out *[]T) (total int64, totalPages int, err error) {
	if err = query.Count(&total).Error; err != nil {
		return 0, 0, err
	}

	err = query.
		Order("created_at desc").
		Limit(p.Limit).
		Offset((p.Page - 1) * p.Limit).
		Find(out).Error
	if err != nil {
		return 0, 0, err
	}

	return total, int(math.Ceil(float64(total) / float64(p.Limit))), nil
}

func errorResponse(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

func validationResponse(c *fiber.Ctx, errors []validation.FieldError) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"message": "Validation failed",
		"errors":  errors,
	})
}

func claimsFromCtx(c *fiber.Ctx) *jwt.Claims {
	claims, _ := c.Locals(middleware.LocalsUserKey).(*jwt.Claims)
	return claims
}

// optionalUserID tags anonymous-capable submissions with the caller's id
// when the request carried a valid credential.
func optionalUserID(c *fiber.Ctx) *uint {
	if claims := claimsFromCtx(c); claims != nil {
		id := claims.UserID
		return &id
	}
	return nil
}
