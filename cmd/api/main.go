package main

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"nicehomes_backend/internal/controller"
	"nicehomes_backend/internal/middleware"
	"nicehomes_backend/internal/model"
	"nicehomes_backend/pkg/config"
	"nicehomes_backend/pkg/database"
	"nicehomes_backend/pkg/email"
	"nicehomes_backend/pkg/utils/jwt"
	"nicehomes_backend/pkg/utils/storage"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg.DB.URL)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}

	if err := database.Migrate(db,
		&model.User{},
		&model.Consultation{},
		&model.Contact{},
		&model.Partner{},
		&model.Project{},
		&model.ProjectEnquiry{},
		&model.PropertyView{},
		&model.Testimonial{},
		&model.VisitorLead{},
	); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	var store storage.Storage
	var localStore *storage.Local
	switch cfg.Upload.Driver {
	case "s3":
		store, err = storage.NewS3(cfg.Upload.Bucket, cfg.Upload.Region)
		if err != nil {
			log.Fatalf("S3 storage init failed: %v", err)
		}
	default:
		localStore, err = storage.NewLocal(cfg.Upload.Dir)
		if err != nil {
			log.Fatalf("Local storage init failed: %v", err)
		}
		store = localStore
	}

	var emailSvc *email.Service
	if cfg.Resend.APIKey != "" && cfg.Resend.AdminEmail != "" {
		emailSvc, err = email.NewService(cfg.Resend.APIKey, cfg.Resend.AdminEmail)
		if err != nil {
			log.Fatalf("Email service init failed: %v", err)
		}
	} else {
		log.Println("Email notifications disabled: RESEND_API_KEY or ADMIN_NOTIFY_EMAIL not set")
	}

	jwtSvc := jwt.NewService(cfg.JWT.Secret)

	appConfig := fiber.Config{
		BodyLimit:    12 * 1024 * 1024,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			message := "Internal server error"
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
				message = e.Message
			}
			return c.Status(code).JSON(fiber.Map{
				"success": false,
				"message": message,
			})
		},
	}
	if cfg.Server.TrustProxy {
		appConfig.ProxyHeader = fiber.HeaderXForwardedFor
	}

	app := fiber.New(appConfig)

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(cfg.CORS.AllowedOrigins, ","),
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))

	if localStore != nil {
		app.Static("/uploads", localStore.Dir())
	}

	protect := middleware.Protect(jwtSvc, db)
	adminOnly := middleware.AdminOnly()
	optionalAuth := middleware.OptionalAuth(jwtSvc)

	authCtrl := controller.NewAuthController(db, jwtSvc)
	userCtrl := controller.NewUserController(db)
	consultationCtrl := controller.NewConsultationController(db, emailSvc)
	contactCtrl := controller.NewContactController(db)
	partnerCtrl := controller.NewPartnerController(db)
	projectCtrl := controller.NewProjectController(db, store)
	enquiryCtrl := controller.NewProjectEnquiryController(db, emailSvc)
	viewCtrl := controller.NewPropertyViewController(db)
	testimonialCtrl := controller.NewTestimonialController(db, store)
	leadCtrl := controller.NewVisitorLeadController(db)

	api := app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"success": true,
			"message": "Server is running",
		})
	})

	auth := api.Group("/auth")
	auth.Post("/register", authCtrl.Register)
	auth.Post("/login", authCtrl.Login)
	auth.Post("/logout", authCtrl.Logout)
	auth.Get("/me", protect, authCtrl.Me)
	auth.Get("/verify", protect, authCtrl.Verify)

	users := api.Group("/users", protect)
	users.Get("/profile", userCtrl.GetProfile)
	users.Put("/profile", userCtrl.UpdateProfile)
	users.Put("/change-password", userCtrl.ChangePassword)
	users.Get("/", adminOnly, userCtrl.GetAllUsers)
	users.Get("/:id", adminOnly, userCtrl.GetUserByID)
	users.Put("/:id", adminOnly, userCtrl.UpdateUser)
	users.Delete("/:id", adminOnly, userCtrl.DeleteUser)

	consultations := api.Group("/consultations")
	consultations.Post("/", optionalAuth, consultationCtrl.Create)
	consultations.Get("/my-consultations", protect, consultationCtrl.GetMyConsultations)
	consultations.Get("/", protect, adminOnly, consultationCtrl.GetAll)
	consultations.Get("/:id", protect, adminOnly, consultationCtrl.GetByID)
	consultations.Put("/:id", protect, adminOnly, consultationCtrl.Update)
	consultations.Delete("/:id", protect, adminOnly, consultationCtrl.Delete)

	contacts := api.Group("/contacts")
	contacts.Post("/", optionalAuth, contactCtrl.Create)
	contacts.Get("/my-submissions", protect, contactCtrl.GetMySubmissions)
	contacts.Get("/", protect, adminOnly, contactCtrl.GetAll)
	contacts.Get("/:id", protect, adminOnly, contactCtrl.GetByID)
	contacts.Put("/:id", protect, adminOnly, contactCtrl.Update)
	contacts.Delete("/:id", protect, adminOnly, contactCtrl.Delete)

	partners := api.Group("/partners")
	partners.Post("/", optionalAuth, partnerCtrl.Create)
	partners.Get("/my-submissions", protect, partnerCtrl.GetMySubmissions)
	partners.Get("/", protect, adminOnly, partnerCtrl.GetAll)
	partners.Get("/:id", protect, adminOnly, partnerCtrl.GetByID)
	partners.Put("/:id", protect, adminOnly, partnerCtrl.Update)
	partners.Delete("/:id", protect, adminOnly, partnerCtrl.Delete)

	projects := api.Group("/projects")
	projects.Get("/", projectCtrl.GetProjects)
	projects.Get("/admin/all", protect, adminOnly, projectCtrl.GetAllAdmin)
	projects.Get("/:id", projectCtrl.GetByID)
	projects.Post("/", protect, adminOnly, projectCtrl.Create)
	projects.Put("/:id", protect, adminOnly, projectCtrl.Update)
	projects.Delete("/:id", protect, adminOnly, projectCtrl.Delete)
	projects.Patch("/:id/toggle-active", protect, adminOnly, projectCtrl.ToggleActive)
	projects.Patch("/:id/toggle-featured", protect, adminOnly, projectCtrl.ToggleFeatured)

	testimonials := api.Group("/testimonials")
	testimonials.Get("/", testimonialCtrl.GetTestimonials)
	testimonials.Get("/admin/all", protect, adminOnly, testimonialCtrl.GetAllAdmin)
	testimonials.Get("/:id", testimonialCtrl.GetByID)
	testimonials.Post("/", protect, adminOnly, testimonialCtrl.Create)
	testimonials.Put("/:id", protect, adminOnly, testimonialCtrl.Update)
	testimonials.Delete("/:id", protect, adminOnly, testimonialCtrl.Delete)
	testimonials.Patch("/:id/toggle-active", protect, adminOnly, testimonialCtrl.ToggleActive)
	testimonials.Patch("/:id/toggle-featured", protect, adminOnly, testimonialCtrl.ToggleFeatured)

	enquiries := api.Group("/project-enquiries")
	enquiries.Post("/", enquiryCtrl.Create)
	enquiries.Get("/admin/all", protect, adminOnly, enquiryCtrl.GetAll)
	enquiries.Get("/:id", protect, adminOnly, enquiryCtrl.GetByID)
	enquiries.Patch("/:id/status", protect, adminOnly, enquiryCtrl.UpdateStatus)
	enquiries.Patch("/:id/toggle-read", protect, adminOnly, enquiryCtrl.ToggleRead)
	enquiries.Delete("/:id", protect, adminOnly, enquiryCtrl.Delete)

	views := api.Group("/property-views")
	views.Post("/", viewCtrl.TrackView)
	views.Get("/admin/all", protect, adminOnly, viewCtrl.GetAll)
	views.Get("/admin/stats", protect, adminOnly, viewCtrl.GetViewStats)
	views.Get("/project/:projectId", protect, adminOnly, viewCtrl.GetViewsByProject)
	views.Put("/:id/status", protect, adminOnly, viewCtrl.UpdateStatus)
	views.Delete("/:id", protect, adminOnly, viewCtrl.Delete)

	leads := api.Group("/visitor-leads")
	leads.Post("/", leadCtrl.Create)
	leads.Get("/admin/all", protect, adminOnly, leadCtrl.GetAll)
	leads.Put("/:id/status", protect, adminOnly, leadCtrl.UpdateStatus)
	leads.Delete("/:id", protect, adminOnly, leadCtrl.Delete)

	log.Printf("Server starting on port %s", cfg.Server.Port)
	if err := app.Listen(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
