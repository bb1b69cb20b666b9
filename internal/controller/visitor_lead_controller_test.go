package controller

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"nicehomes_backend/internal/model"
)

func leadApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	lc := NewVisitorLeadController(db)

	app.Post("/api/visitor-leads", lc.Create)
	app.Get("/api/visitor-leads/admin/all", lc.GetAll)
	app.Put("/api/visitor-leads/:id/status", lc.UpdateStatus)
	app.Delete("/api/visitor-leads/:id", lc.Delete)

	return app
}

func TestLeadCreateDefaultsSource(t *testing.T) {
	db := setupTestDB(t)
	app := leadApp(db)

	resp := perform(t, app, jsonRequest(t, http.MethodPost, "/api/visitor-leads", fiber.Map{
		"name":  "Priya Sharma",
		"phone": "(987) 654-3210",
	}))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var lead model.VisitorLead
	require.NoError(t, db.First(&lead).Error)
	assert.Equal(t, "9876543210", lead.Phone)
	assert.Equal(t, "Projects Page", lead.Source)
	assert.Equal(t, model.LeadStatusNew, lead.Status)
}

func TestLeadCreateRequiresNameAndPhone(t *testing.T) {
	db := setupTestDB(t)
	app := leadApp(db)

	resp := perform(t, app, jsonRequest(t, http.MethodPost, "/api/visitor-leads", fiber.Map{
		"source": "Homepage",
	}))
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Len(t, body["errors"], 2)
}

func TestLeadStatusUpdateMarksRead(t *testing.T) {
	db := setupTestDB(t)
	app := leadApp(db)

	require.NoError(t, db.Create(&model.VisitorLead{
		Name:  "Priya",
		Phone: "9876543210",
	}).Error)

	resp := perform(t, app, jsonRequest(t, http.MethodPut, "/api/visitor-leads/1/status", fiber.Map{
		"status": "Qualified",
	}))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var lead model.VisitorLead
	require.NoError(t, db.First(&lead, 1).Error)
	assert.Equal(t, model.LeadStatusQualified, lead.Status)
	assert.True(t, lead.IsRead)
}

func TestLeadListFilters(t *testing.T) {
	db := setupTestDB(t)
	app := leadApp(db)

	leads := []model.VisitorLead{
		{Name: "A", Phone: "9876543210", Status: model.LeadStatusNew},
		{Name: "B", Phone: "9876543211", Status: model.LeadStatusContacted, IsRead: true},
		{Name: "C", Phone: "9876543212", Status: model.LeadStatusNew},
	}
	for i := range leads {
		require.NoError(t, db.Create(&leads[i]).Error)
	}

	resp := perform(t, app, jsonRequest(t, http.MethodGet, "/api/visitor-leads/admin/all?status=New", nil))
	assert.EqualValues(t, 2, decodeBody(t, resp)["total"])

	resp = perform(t, app, jsonRequest(t, http.MethodGet, "/api/visitor-leads/admin/all?isRead=true", nil))
	assert.EqualValues(t, 1, decodeBody(t, resp)["total"])
}
