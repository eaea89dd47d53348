package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/spec-kit/clothes-service/internal/api/http/handlers"
	"github.com/spec-kit/clothes-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	APIPrefix      string
	Health         *handlers.HealthHandler
	Users          *handlers.UsersHandler
	Clothes        *handlers.ClothesHandler
	AuthMiddleware *auth.AuthMiddleware
	Rejections     auth.RejectionRecorder
	Gatherer       prometheus.Gatherer
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	if cfg.Gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{})))
	}

	authenticated := cfg.AuthMiddleware.Handle
	admin := auth.RequireAdmin(cfg.Rejections)

	api := app.Group(cfg.APIPrefix)
	api.Post("/register", cfg.Users.Register)
	api.Post("/login", cfg.Users.Login)
	api.Get("/users/me", authenticated, cfg.Users.Me)

	api.Get("/clothes", authenticated, cfg.Clothes.List)
	api.Get("/clothes/:id", authenticated, cfg.Clothes.Get)
	api.Post("/clothes", authenticated, admin, cfg.Clothes.Create)
	api.Put("/clothes/:id", authenticated, admin, cfg.Clothes.Update)
	api.Delete("/clothes/:id", authenticated, admin, cfg.Clothes.Delete)
}
