package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"nicehomes_backend/internal/model"
	"nicehomes_backend/pkg/utils/jwt"
)

var testJWT = jwt.NewService("test-secret")

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.User{}))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, role model.Role, active bool) (model.User, string) {
	t.Helper()

	user := model.User{
		FullName: "Test User",
		Email:    string(role) + "@example.com",
		Password: "x",
		Role:     role,
		IsActive: active,
	}
	require.NoError(t, db.Create(&user).Error)

	token, err := testJWT.GenerateToken(user.ID, user.Email, string(user.Role))
	require.NoError(t, err)
	return user, token
}

func guardedApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	ok := func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"success": true})
	}
	app.Get("/protected", Protect(testJWT, db), ok)
	app.Get("/admin", Protect(testJWT, db), AdminOnly(), ok)
	app.Get("/optional", OptionalAuth(testJWT), func(c *fiber.Ctx) error {
		_, authed := c.Locals(LocalsUserKey).(*jwt.Claims)
		return c.JSON(fiber.Map{"authed": authed})
	})
	return app
}

func get(t *testing.T, app *fiber.App, path, token string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestProtectWithoutTokenIsUnauthorized(t *testing.T) {
	app := guardedApp(setupTestDB(t))

	resp := get(t, app, "/protected", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProtectWithGarbageTokenIsUnauthorized(t *testing.T) {
	app := guardedApp(setupTestDB(t))

	resp := get(t, app, "/protected", "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProtectWithDeletedUserIsUnauthorized(t *testing.T) {
	db := setupTestDB(t)
	app := guardedApp(db)
	user, token := seedUser(t, db, model.RoleUser, true)
	require.NoError(t, db.Unscoped().Delete(&user).Error)

	resp := get(t, app, "/protected", token)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProtectWithDeactivatedUserIsUnauthorized(t *testing.T) {
	db := setupTestDB(t)
	app := guardedApp(db)
	_, token := seedUser(t, db, model.RoleUser, false)

	resp := get(t, app, "/protected", token)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProtectAcceptsCookieToken(t *testing.T) {
	db := setupTestDB(t)
	app := guardedApp(db)
	_, token := seedUser(t, db, model.RoleUser, true)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAdminOnlyRejectsRegularUser(t *testing.T) {
	db := setupTestDB(t)
	app := guardedApp(db)
	_, userToken := seedUser(t, db, model.RoleUser, true)
	_, adminToken := seedUser(t, db, model.RoleAdmin, true)

	resp := get(t, app, "/admin", userToken)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = get(t, app, "/admin", adminToken)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestOptionalAuthNeverBlocks(t *testing.T) {
	db := setupTestDB(t)
	app := guardedApp(db)
	_, token := seedUser(t, db, model.RoleUser, true)

	resp := get(t, app, "/optional", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = get(t, app, "/optional", "garbage")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = get(t, app, "/optional", token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
