package config

import (
	"CampusFind-Backend/internal/api/handlers"
	"CampusFind-Backend/internal/api/routes"
	"CampusFind-Backend/internal/middleware"
	"CampusFind-Backend/internal/utils"
	"CampusFind-Backend/internal/utils/storage"
	"CampusFind-Backend/pkg/admin"
	"CampusFind-Backend/pkg/claim"
	"CampusFind-Backend/pkg/jwt"
	"CampusFind-Backend/pkg/matching"
	"CampusFind-Backend/pkg/notification"
	"CampusFind-Backend/pkg/report"
	"CampusFind-Backend/pkg/telegram"
	"CampusFind-Backend/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

const matchQueueBuffer = 64

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
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
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	reportRepository := report.NewReportRepository(db)
	claimRepository := claim.NewClaimRepository(db)
	matchingRepository := matching.NewMatchingRepository(db)
	notificationRepository := notification.NewNotificationRepository(db)
	adminRepository := admin.NewAdminRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	telegramService := telegram.NewTelegramService()
	notificationService := notification.NewNotificationService(notificationRepository)
	userService := user.NewUserService(userRepository, jwtService, telegramService)
	matchingService := matching.NewMatchingService(matchingRepository, notificationService, telegramService)
	matchDispatcher := matching.NewMatchDispatcher(matchingService, matchQueueBuffer)
	reportService := report.NewReportService(reportRepository, matchDispatcher, notificationService, telegramService, s3)
	claimService := claim.NewClaimService(claimRepository, reportRepository, notificationService, telegramService)
	adminService := admin.NewAdminService(adminRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	reportHandler := handlers.NewReportHandler(reportService, userService, validator)
	claimHandler := handlers.NewClaimHandler(claimService, userService, validator)
	matchingHandler := handlers.NewMatchingHandler(matchingService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	adminHandler := handlers.NewAdminHandler(adminService, validator)

	// routes
	routesConfig := routes.Config{
		App:                 app,
		UserHandler:         userHandler,
		ReportHandler:       reportHandler,
		ClaimHandler:        claimHandler,
		MatchingHandler:     matchingHandler,
		NotificationHandler: notificationHandler,
		AdminHandler:        adminHandler,
		Middleware:          middlewares,
		JWTService:          jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
