package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/VictorHerdz10/ACRP-API/internal/admission"
	"github.com/VictorHerdz10/ACRP-API/internal/api/http/handlers"
	"github.com/VictorHerdz10/ACRP-API/internal/ratelimit"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health   *handlers.HealthHandler
	Users    *handlers.UsersHandler
	Sections *handlers.SectionsHandler
	Pages    *handlers.PagesHandler
	Governor *admission.Governor

	GlobalRule ratelimit.Rule
	LoginRule  ratelimit.Rule
}

// RegisterRoutes wires HTTP routes. Credential endpoints are public but
// rate limited; everything else behind /api requires an admitted admin.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")

	user := api.Group("/user")
	user.Post("/register", cfg.Governor.Limit(cfg.GlobalRule), cfg.Users.Register)
	user.Post("/login", cfg.Governor.Limit(cfg.LoginRule), cfg.Users.Login)

	adminGuard := cfg.Governor.Guard(cfg.GlobalRule, true)
	user.Get("/all", adminGuard, cfg.Users.List)
	user.Get("/profile", adminGuard, cfg.Users.Profile)
	user.Put("/role/:id", adminGuard, cfg.Users.UpdateRole)
	user.Delete("/:id", adminGuard, cfg.Users.Delete)

	section := api.Group("/section", adminGuard)
	section.Get("/", cfg.Sections.List)
	section.Get("/:id", cfg.Sections.Get)
	section.Post("/", cfg.Sections.Create)
	section.Put("/:id", cfg.Sections.Update)
	section.Delete("/:id", cfg.Sections.Delete)

	page := api.Group("/page", adminGuard)
	page.Get("/", cfg.Pages.List)
	page.Get("/:id", cfg.Pages.Get)
	page.Post("/", cfg.Pages.Create)
	page.Put("/:id", cfg.Pages.Update)
	page.Delete("/:id", cfg.Pages.Delete)
}
