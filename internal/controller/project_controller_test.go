package controller

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"nicehomes_backend/internal/model"
	"nicehomes_backend/pkg/utils/storage"
)

func projectApp(t *testing.T, db *gorm.DB) (*fiber.App, *storage.Local) {
	t.Helper()

	store, err := storage.NewLocal(t.TempDir())
	require.NoError(t, err)

	app := fiber.New()
	pc := NewProjectController(db, store)

	app.Get("/api/projects", pc.GetProjects)
	app.Get("/api/projects/admin/all", pc.GetAllAdmin)
	app.Get("/api/projects/:id", pc.GetByID)
	app.Post("/api/projects", pc.Create)
	app.Put("/api/projects/:id", pc.Update)
	app.Delete("/api/projects/:id", pc.Delete)
	app.Patch("/api/projects/:id/toggle-active", pc.ToggleActive)
	app.Patch("/api/projects/:id/toggle-featured", pc.ToggleFeatured)

	return app, store
}

func storedFile(store *storage.Local, ref string) string {
	return filepath.Join(store.Dir(), filepath.Base(ref))
}

func TestProjectCreateMultipartDecodesEncodedFields(t *testing.T) {
	db := setupTestDB(t)
	app, store := projectApp(t, db)

	body, contentType := pngUpload(t, map[string]string{
		"name":           "Green Meadows",
		"location":       "Pune",
		"type":           "Luxury Villas",
		"description":    "Spacious villas with private gardens",
		"price":          "2.5 Cr onwards",
		"amenities":      `["Pool","Gym"]`,
		"specifications": `{"bedrooms":"3 & 4 BHK","area":"2400 sq.ft."}`,
	})

	req := httptest.NewRequest(http.MethodPost, "/api/projects", body)
	req.Header.Set("Content-Type", contentType)
	resp := perform(t, app, req)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var saved model.Project
	require.NoError(t, db.First(&saved).Error)
	assert.Equal(t, "green-meadows", saved.Slug)
	assert.Equal(t, []string{"Pool", "Gym"}, []string(saved.Amenities))
	assert.Equal(t, "3 & 4 BHK", saved.Specifications.Data().Bedrooms)
	assert.True(t, strings.HasPrefix(saved.Image, "/uploads/"))
	assert.FileExists(t, storedFile(store, saved.Image))
}

func TestProjectCreateRollsBackFileOnPersistFailure(t *testing.T) {
	db := setupTestDB(t)
	app, store := projectApp(t, db)
	require.NoError(t, db.Migrator().DropTable(&model.Project{}))

	body, contentType := pngUpload(t, map[string]string{
		"name":        "Green Meadows",
		"location":    "Pune",
		"type":        "Luxury Villas",
		"description": "Spacious villas with private gardens",
		"price":       "2.5 Cr onwards",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/projects", body)
	req.Header.Set("Content-Type", contentType)
	resp := perform(t, app, req)
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	entries, err := os.ReadDir(store.Dir())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestProjectCreateRejectsInvalidType(t *testing.T) {
	db := setupTestDB(t)
	app, _ := projectApp(t, db)

	resp := perform(t, app, jsonRequest(t, http.MethodPost, "/api/projects", fiber.Map{
		"name":        "Green Meadows",
		"location":    "Pune",
		"type":        "Castle",
		"description": "Spacious villas with private gardens",
		"price":       "2.5 Cr onwards",
	}))
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var count int64
	db.Model(&model.Project{}).Count(&count)
	assert.Zero(t, count)
}

func TestProjectSlugCollisionGetsSuffix(t *testing.T) {
	db := setupTestDB(t)
	app, _ := projectApp(t, db)

	for i := 0; i < 2; i++ {
		resp := perform(t, app, jsonRequest(t, http.MethodPost, "/api/projects", fiber.Map{
			"name":        "Green Meadows",
			"location":    "Pune",
			"type":        "Luxury Villas",
			"description": "Spacious villas with private gardens",
			"price":       "2.5 Cr onwards",
		}))
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	var projects []model.Project
	require.NoError(t, db.Order("id").Find(&projects).Error)
	require.Len(t, projects, 2)
	assert.Equal(t, "green-meadows", projects[0].Slug)
	assert.Equal(t, "green-meadows-2", projects[1].Slug)
}

func TestProjectPublicListHidesInactive(t *testing.T) {
	db := setupTestDB(t)
	app, _ := projectApp(t, db)

	seed := []model.Project{
		{Name: "Active Featured", Location: "Pune", Type: model.ProjectTypePenthouse, Description: "d", Price: "1", IsActive: true, Featured: true},
		{Name: "Active Plain", Location: "Pune", Type: model.ProjectTypeRowHouse, Description: "d", Price: "1", IsActive: true},
		{Name: "Hidden", Location: "Pune", Type: model.ProjectTypePenthouse, Description: "d", Price: "1", IsActive: false},
	}
	for i := range seed {
		require.NoError(t, db.Create(&seed[i]).Error)
	}

	resp := perform(t, app, jsonRequest(t, http.MethodGet, "/api/projects", nil))
	body := decodeBody(t, resp)
	assert.EqualValues(t, 2, body["count"])

	resp = perform(t, app, jsonRequest(t, http.MethodGet, "/api/projects?featured=true", nil))
	body = decodeBody(t, resp)
	assert.EqualValues(t, 1, body["count"])

	resp = perform(t, app, jsonRequest(t, http.MethodGet, "/api/projects?type=Row+House", nil))
	body = decodeBody(t, resp)
	assert.EqualValues(t, 1, body["count"])
}

func TestProjectUpdateReplacesImageAndRemovesOld(t *testing.T) {
	db := setupTestDB(t)
	app, store := projectApp(t, db)

	body, contentType := pngUpload(t, map[string]string{
		"name":        "Green Meadows",
		"location":    "Pune",
		"type":        "Luxury Villas",
		"description": "Spacious villas with private gardens",
		"price":       "2.5 Cr onwards",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/projects", body)
	req.Header.Set("Content-Type", contentType)
	require.Equal(t, http.StatusCreated, perform(t, app, req).StatusCode)

	var created model.Project
	require.NoError(t, db.First(&created).Error)
	oldPath := storedFile(store, created.Image)

	body, contentType = pngUpload(t, map[string]string{"price": "3 Cr onwards"})
	req = httptest.NewRequest(http.MethodPut, "/api/projects/1", body)
	req.Header.Set("Content-Type", contentType)
	require.Equal(t, http.StatusOK, perform(t, app, req).StatusCode)

	var updated model.Project
	require.NoError(t, db.First(&updated, created.ID).Error)
	assert.Equal(t, "3 Cr onwards", updated.Price)
	assert.Equal(t, "Green Meadows", updated.Name)
	assert.NotEqual(t, created.Image, updated.Image)
	assert.NoFileExists(t, oldPath)
	assert.FileExists(t, storedFile(store, updated.Image))
}

func TestProjectDeleteRemovesImageAndGallery(t *testing.T) {
	db := setupTestDB(t)
	app, store := projectApp(t, db)

	var refs []string
	for _, name := range []string{"a.png", "b.png", "c.png"} {
		path := filepath.Join(store.Dir(), name)
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
		refs = append(refs, "/uploads/"+name)
	}

	project := model.Project{
		Name:        "Green Meadows",
		Location:    "Pune",
		Type:        model.ProjectTypeLuxuryVillas,
		Description: "d",
		Price:       "1",
		Image:       refs[0],
		Gallery:     datatypes.NewJSONSlice(refs[1:]),
		IsActive:    true,
	}
	require.NoError(t, db.Create(&project).Error)

	resp := perform(t, app, jsonRequest(t, http.MethodDelete, "/api/projects/1", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	for _, ref := range refs {
		assert.NoFileExists(t, storedFile(store, ref))
	}
	var count int64
	db.Model(&model.Project{}).Count(&count)
	assert.Zero(t, count)
}

func TestProjectTogglesFlip(t *testing.T) {
	db := setupTestDB(t)
	app, _ := projectApp(t, db)

	require.NoError(t, db.Create(&model.Project{
		Name: "Green Meadows", Location: "Pune", Type: model.ProjectTypeLuxuryVillas,
		Description: "d", Price: "1", IsActive: true,
	}).Error)

	perform(t, app, jsonRequest(t, http.MethodPatch, "/api/projects/1/toggle-active", nil))
	var p model.Project
	require.NoError(t, db.First(&p, 1).Error)
	assert.False(t, p.IsActive)

	perform(t, app, jsonRequest(t, http.MethodPatch, "/api/projects/1/toggle-active", nil))
	require.NoError(t, db.First(&p, 1).Error)
	assert.True(t, p.IsActive)

	perform(t, app, jsonRequest(t, http.MethodPatch, "/api/projects/1/toggle-featured", nil))
	require.NoError(t, db.First(&p, 1).Error)
	assert.True(t, p.Featured)
}
