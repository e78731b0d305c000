package routes

import (
	"time"

	"github.com/Monynha-Softwares/Monynha-com-sub000/internal/config"
	"github.com/Monynha-Softwares/Monynha-com-sub000/internal/handlers"
	"github.com/Monynha-Softwares/Monynha-com-sub000/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	publicHandler *handlers.PublicHandler,
	documentHandler *handlers.DocumentHandler,
	adminHandler *handlers.AdminHandler,
	adminSyncHandler *handlers.AdminSyncHandler,
	payloadSyncHandler *handlers.PayloadSyncHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Public site surface
	api.Get("/solutions", publicHandler.ListSolutions)
	api.Get("/solutions/:slug", publicHandler.GetSolution)
	api.Get("/posts", publicHandler.ListPosts)
	api.Get("/posts/:slug", publicHandler.GetPost)
	api.Get("/team", publicHandler.ListTeam)

	// Form writes get a stricter limit: 10 req/min per IP
	forms := api.Group("/", limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	forms.Post("/leads", publicHandler.CreateLead)
	forms.Post("/newsletter", publicHandler.Subscribe)

	// Editor auth
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)
	auth.Post("/logout", middleware.JWTProtected(cfg), authHandler.Logout)
	auth.Post("/change-password", middleware.JWTProtected(cfg), authHandler.ChangePassword)

	// Webhooks and trigger functions authenticate with shared secrets,
	// not sessions.
	api.Post("/hooks/admin-sync", adminSyncHandler.Handle)
	api.Post("/functions/payload-sync", payloadSyncHandler.Handle)

	// Admin panel (JWT + admin role)
	admin := api.Group("/admin", middleware.JWTProtected(cfg), middleware.AdminRequired(db, cfg))
	admin.Get("/leads", adminHandler.ListLeads)
	admin.Get("/subscribers", adminHandler.ListSubscribers)
	admin.Get("/sync-events", adminHandler.ListSyncEvents)

	docs := admin.Group("/collections/:collection/documents")
	docs.Post("/", documentHandler.Create)
	docs.Get("/", documentHandler.List)
	docs.Get("/:id", documentHandler.Get)
	docs.Put("/:id", documentHandler.Update)
	docs.Delete("/:id", documentHandler.Delete)
}
