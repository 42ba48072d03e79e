package config

import (
	"os"
	"time"

	"charity-admin-backend/internal/api/handlers"
	"charity-admin-backend/internal/api/presenters"
	"charity-admin-backend/internal/api/routes"
	"charity-admin-backend/internal/middleware"
	"charity-admin-backend/internal/utils"
	"charity-admin-backend/internal/utils/mailing"
	"charity-admin-backend/internal/utils/storage"
	"charity-admin-backend/pkg/charity"
	"charity-admin-backend/pkg/homepage"
	"charity-admin-backend/pkg/jwt"
	"charity-admin-backend/pkg/payment"
	"charity-admin-backend/pkg/report"
	"charity-admin-backend/pkg/settings"
	"charity-admin-backend/pkg/upload"
	"charity-admin-backend/pkg/user"
	"charity-admin-backend/pkg/volunteer"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
		BodyLimit:         utils.UploadMaxBytes(),
		ErrorHandler:      presenters.AppErrorHandler,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Africa/Mogadishu",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        20,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	mailer := mailing.NewMailer()

	// Repository
	charityRepository := charity.NewCharityRepository(db)
	paymentRepository := payment.NewPaymentRepository(db)
	volunteerRepository := volunteer.NewVolunteerRepository(db)
	homepageRepository := homepage.NewHomepageRepository(db)
	userRepository := user.NewUserRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	charityService := charity.NewCharityService(charityRepository)
	paymentService := payment.NewPaymentService(paymentRepository)
	volunteerService := volunteer.NewVolunteerService(volunteerRepository, mailer, s3)
	homepageService := homepage.NewHomepageService(homepageRepository)
	userService := user.NewUserService(userRepository, jwtService)
	uploadService := upload.NewUploadService(s3)
	settingsService := settings.NewSettingsService(userRepository)
	reportService := report.NewReportService(
		charityRepository,
		paymentRepository,
		volunteerRepository,
		homepageRepository,
		paymentService,
		volunteerService,
	)

	// Handler
	charityHandler := handlers.NewCharityHandler(charityService, validator)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	volunteerHandler := handlers.NewVolunteerHandler(volunteerService, validator)
	homepageHandler := handlers.NewHomepageHandler(homepageService, validator)
	userHandler := handlers.NewUserHandler(userService, validator)
	uploadHandler := handlers.NewUploadHandler(uploadService)
	reportHandler := handlers.NewReportHandler(reportService, validator)
	settingsHandler := handlers.NewSettingsHandler(settingsService, validator)

	// routes
	routesConfig := routes.Config{
		App:              app,
		CharityHandler:   charityHandler,
		PaymentHandler:   paymentHandler,
		VolunteerHandler: volunteerHandler,
		HomepageHandler:  homepageHandler,
		UserHandler:      userHandler,
		UploadHandler:    uploadHandler,
		ReportHandler:    reportHandler,
		SettingsHandler:  settingsHandler,
		Middleware:       middlewares,
		JWTService:       jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
