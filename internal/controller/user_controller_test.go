package controller

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"nicehomes_backend/internal/middleware"
	"nicehomes_backend/internal/model"
)

func userApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	uc := NewUserController(db)
	protect := middleware.Protect(testJWT, db)
	adminOnly := middleware.AdminOnly()

	app.Get("/api/users/profile", protect, uc.GetProfile)
	app.Put("/api/users/profile", protect, uc.UpdateProfile)
	app.Put("/api/users/change-password", protect, uc.ChangePassword)
	app.Get("/api/users", protect, adminOnly, uc.GetAllUsers)
	app.Get("/api/users/:id", protect, adminOnly, uc.GetUserByID)
	app.Put("/api/users/:id", protect, adminOnly, uc.UpdateUser)
	app.Delete("/api/users/:id", protect, adminOnly, uc.DeleteUser)

	return app
}

func TestUserProfileRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	app := userApp(db)
	_, token := createTestUser(t, db, "user@example.com", model.RoleUser)

	resp := perform(t, app, authorize(jsonRequest(t, http.MethodGet, "/api/users/profile", nil), token))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "user@example.com", user["email"])
	assert.NotContains(t, user, "password")
}

func TestUserUpdateProfileRejectsTakenEmail(t *testing.T) {
	db := setupTestDB(t)
	app := userApp(db)
	_, token := createTestUser(t, db, "user@example.com", model.RoleUser)
	createTestUser(t, db, "taken@example.com", model.RoleUser)

	resp := perform(t, app, authorize(jsonRequest(t, http.MethodPut, "/api/users/profile", fiber.Map{
		"email": "Taken@Example.com",
	}), token))
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Email already in use", decodeBody(t, resp)["message"])
}

func TestChangePasswordWrongCurrentIsUnauthorized(t *testing.T) {
	db := setupTestDB(t)
	app := userApp(db)
	_, token := createTestUser(t, db, "user@example.com", model.RoleUser)

	resp := perform(t, app, authorize(jsonRequest(t, http.MethodPut, "/api/users/change-password", fiber.Map{
		"currentPassword": "wrong-password",
		"newPassword":     "brandnew99",
	}), token))
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestChangePasswordRequiresDigit(t *testing.T) {
	db := setupTestDB(t)
	app := userApp(db)
	_, token := createTestUser(t, db, "user@example.com", model.RoleUser)

	resp := perform(t, app, authorize(jsonRequest(t, http.MethodPut, "/api/users/change-password", fiber.Map{
		"currentPassword": "password1",
		"newPassword":     "onlyletters",
	}), token))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestChangePasswordUpdatesHash(t *testing.T) {
	db := setupTestDB(t)
	app := userApp(db)
	user, token := createTestUser(t, db, "user@example.com", model.RoleUser)

	resp := perform(t, app, authorize(jsonRequest(t, http.MethodPut, "/api/users/change-password", fiber.Map{
		"currentPassword": "password1",
		"newPassword":     "brandnew99",
	}), token))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var saved model.User
	require.NoError(t, db.First(&saved, user.ID).Error)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.Password), []byte("brandnew99")))
}

func TestAdminCannotDeleteOwnAccount(t *testing.T) {
	db := setupTestDB(t)
	app := userApp(db)
	admin, token := createTestUser(t, db, "admin@example.com", model.RoleAdmin)

	resp := perform(t, app, authorize(jsonRequest(t, http.MethodDelete, "/api/users/1", nil), token))
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "You cannot delete your own account", decodeBody(t, resp)["message"])

	var count int64
	db.Model(&model.User{}).Where("id = ?", admin.ID).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestAdminUpdateUserRejectsTakenEmail(t *testing.T) {
	db := setupTestDB(t)
	app := userApp(db)
	_, token := createTestUser(t, db, "admin@example.com", model.RoleAdmin)
	target, _ := createTestUser(t, db, "user@example.com", model.RoleUser)

	resp := perform(t, app, authorize(jsonRequest(t, http.MethodPut, "/api/users/2", fiber.Map{
		"email": "admin@example.com",
	}), token))
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Email already in use", decodeBody(t, resp)["message"])

	var saved model.User
	require.NoError(t, db.First(&saved, target.ID).Error)
	assert.Equal(t, "user@example.com", saved.Email)
}

func TestAdminDeactivatesUser(t *testing.T) {
	db := setupTestDB(t)
	app := userApp(db)
	_, token := createTestUser(t, db, "admin@example.com", model.RoleAdmin)
	target, _ := createTestUser(t, db, "user@example.com", model.RoleUser)

	resp := perform(t, app, authorize(jsonRequest(t, http.MethodPut, "/api/users/2", fiber.Map{
		"isActive": false,
	}), token))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var saved model.User
	require.NoError(t, db.First(&saved, target.ID).Error)
	assert.False(t, saved.IsActive)
}
