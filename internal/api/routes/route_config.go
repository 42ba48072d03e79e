package routes

import (
	"charity-admin-backend/domain"
	"charity-admin-backend/internal/api/handlers"
	"charity-admin-backend/internal/middleware"
	"charity-admin-backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App              *fiber.App
	CharityHandler   handlers.CharityHandler
	PaymentHandler   handlers.PaymentHandler
	VolunteerHandler handlers.VolunteerHandler
	HomepageHandler  handlers.HomepageHandler
	UserHandler      handlers.UserHandler
	UploadHandler    handlers.UploadHandler
	ReportHandler    handlers.ReportHandler
	SettingsHandler  handlers.SettingsHandler
	Middleware       middleware.Middleware
	JWTService       jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Auth()
	c.Charities()
	c.Payments()
	c.Volunteers()
	c.Homepage()
	c.Users()
	c.Uploads()
	c.Reports()
	c.Settings()
	c.GuestRoute()
}

func (c *Config) Auth() {
	auth := c.App.Group("/api/auth")
	auth.Post("/admin-login", c.UserHandler.AdminLogin)
}

func (c *Config) Charities() {
	charities := c.App.Group("/api/charities", c.Middleware.AuthMiddleware(c.JWTService))
	charities.Get("/admin/list", c.CharityHandler.AdminList)
	charities.Post("", c.CharityHandler.CreateCharity)
	charities.Put("/:id", c.CharityHandler.UpdateCharity)
	charities.Delete("/:id", c.CharityHandler.DeleteCharity)
	charities.Get("/:id/qr", c.CharityHandler.DonationLinkQR)
}

func (c *Config) Payments() {
	payments := c.App.Group("/api/payments", c.Middleware.AuthMiddleware(c.JWTService))
	payments.Get("/admin", c.PaymentHandler.AdminList)
	payments.Get("/stats", c.PaymentHandler.Stats)
}

func (c *Config) Volunteers() {
	volunteers := c.App.Group("/api/volunteers")
	// the application form is public
	volunteers.Post("", c.VolunteerHandler.Apply)

	admin := volunteers.Group("", c.Middleware.AuthMiddleware(c.JWTService))
	admin.Get("", c.VolunteerHandler.List)
	admin.Delete("/:id", c.VolunteerHandler.Delete)
	admin.Patch("/:id/status", c.VolunteerHandler.UpdateStatus)
	admin.Post("/send-email", c.VolunteerHandler.SendEmail)
}

func (c *Config) Homepage() {
	slides := c.App.Group("/api/slides", c.Middleware.AuthMiddleware(c.JWTService))
	slides.Get("", c.HomepageHandler.ListSlides)
	slides.Post("", c.HomepageHandler.CreateSlide)
	slides.Patch("/:id/move", c.HomepageHandler.MoveSlide)
	slides.Put("/:id", c.HomepageHandler.UpdateSlide)
	slides.Delete("/:id", c.HomepageHandler.DeleteSlide)

	events := c.App.Group("/api/events", c.Middleware.AuthMiddleware(c.JWTService))
	events.Get("", c.HomepageHandler.ListEvents)
	events.Post("", c.HomepageHandler.CreateEvent)
	events.Put("/:id", c.HomepageHandler.UpdateEvent)
	events.Delete("/:id", c.HomepageHandler.DeleteEvent)
}

func (c *Config) Users() {
	users := c.App.Group("/api/users",
		c.Middleware.AuthMiddleware(c.JWTService),
		c.Middleware.OnlyRoles(domain.RoleAdmin),
	)
	users.Get("", c.UserHandler.List)
	users.Post("", c.UserHandler.CreateUser)
	users.Put("/:id", c.UserHandler.UpdateUser)
	users.Delete("/:id", c.UserHandler.DeleteUser)
}

func (c *Config) Uploads() {
	upload := c.App.Group("/api/upload")
	upload.Get("/variant/:filename", c.UploadHandler.Variant)

	authed := upload.Group("", c.Middleware.AuthMiddleware(c.JWTService))
	authed.Post("", c.UploadHandler.UploadFile)
	authed.Post("/image", c.UploadHandler.UploadImage)
}

func (c *Config) Reports() {
	reports := c.App.Group("/api/reports", c.Middleware.AuthMiddleware(c.JWTService))
	reports.Post("/generate", c.ReportHandler.Generate)
	reports.Get("/dashboard", c.ReportHandler.Dashboard)
}

func (c *Config) Settings() {
	settings := c.App.Group("/api/settings",
		c.Middleware.AuthMiddleware(c.JWTService),
		c.Middleware.OnlyRoles(domain.RoleAdmin),
	)
	settings.Get("/account", c.SettingsHandler.GetAccount)
	settings.Put("/account", c.SettingsHandler.UpdateAccount)
	settings.Get("/notifications", c.SettingsHandler.GetNotifications)
	settings.Put("/notifications", c.SettingsHandler.UpdateNotifications)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
