package routes

import (
	"CampusFind-Backend/internal/api/handlers"
	"CampusFind-Backend/internal/middleware"
	"CampusFind-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                 *fiber.App
	UserHandler         handlers.UserHandler
	ReportHandler       handlers.ReportHandler
	ClaimHandler        handlers.ClaimHandler
	MatchingHandler     handlers.MatchingHandler
	NotificationHandler handlers.NotificationHandler
	AdminHandler        handlers.AdminHandler
	Middleware          middleware.Middleware
	JWTService          jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Reports()
	c.Claims()
	c.Matching()
	c.Notifications()
	c.Admin()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/update", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateUser)
		user.Post("/forget", c.UserHandler.ForgotPassword)
		user.Post("/reset", c.UserHandler.ResetPassword)
		user.Post("/telegram", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateTelegram)
		user.Post("/telegram/test", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.TestTelegram)
	}
}

func (c *Config) Reports() {
	reports := c.App.Group("/api/v1/reports", c.Middleware.AuthMiddleware(c.JWTService))
	reports.Post("", c.ReportHandler.SubmitReport)
	reports.Get("", c.ReportHandler.GetUserReports)

	items := c.App.Group("/api/v1/items")
	items.Get("/search", c.ReportHandler.SearchItems)
	items.Get("/:id", c.ReportHandler.GetItemDetails)
	items.Post("/upload", c.Middleware.AuthMiddleware(c.JWTService), c.ReportHandler.UploadImage)
	items.Post("/notify-owner", c.Middleware.AuthMiddleware(c.JWTService), c.ReportHandler.NotifyOwner)
}

func (c *Config) Claims() {
	claims := c.App.Group("/api/v1/claims", c.Middleware.AuthMiddleware(c.JWTService))
	claims.Post("", c.ClaimHandler.SubmitClaim)
	claims.Post("/decide", c.ClaimHandler.DecideClaim)
	claims.Get("", c.ClaimHandler.GetUserClaims)
	claims.Get("/incoming", c.ClaimHandler.GetIncomingClaims)
}

func (c *Config) Matching() {
	matches := c.App.Group("/api/v1/matches")
	matches.Get("", c.MatchingHandler.BrowseMatches)
	matches.Get("/report/:id", c.Middleware.AuthMiddleware(c.JWTService), c.MatchingHandler.GetReportMatches)
}

func (c *Config) Notifications() {
	notifications := c.App.Group("/api/v1/notifications", c.Middleware.AuthMiddleware(c.JWTService))
	notifications.Get("", c.NotificationHandler.GetUserNotifications)
	notifications.Patch("/:id/read", c.NotificationHandler.MarkRead)
}

func (c *Config) Admin() {
	admin := c.App.Group(
		"/api/v1/admin",
		c.Middleware.AuthMiddleware(c.JWTService),
		c.Middleware.AdminMiddleware(),
	)
	admin.Get("/stats", c.AdminHandler.GetAdminStats)
	admin.Delete("/items/:id", c.AdminHandler.DeleteReport)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
