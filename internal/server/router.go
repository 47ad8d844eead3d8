package server

import (
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"shopease/internal/config"
	"shopease/internal/handlers"
	"shopease/internal/middleware"
	"shopease/internal/services"
)

// Handlers bundles the HTTP handlers the router mounts
type Handlers struct {
	Auth   *handlers.AuthHandler
	Items  *handlers.ItemHandler
	Cart   *handlers.CartHandler
	Health *handlers.HealthHandler
}

// NewRouter assembles the API routes with the shared middleware chain.
// All routes answer JSON, including 404 and 405.
func NewRouter(cfg *config.Config, authService services.AuthServiceInterface, h Handlers, logger zerolog.Logger) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.Recoverer(logger))
	r.Use(middleware.CORS(middleware.CORSConfig{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           86400,
	}))
	r.Use(middleware.Authenticate(authService))

	r.NotFound(middleware.NotFoundHandler())
	r.MethodNotAllowed(middleware.MethodNotAllowedHandler())

	loginLimiter := middleware.NewLoginRateLimiter(cfg.RateLimit.LoginPerMinute, cfg.RateLimit.LoginBurst)

	r.Get("/", h.Health.Root)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.Health.Health)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.With(loginLimiter.Middleware).Post("/login", h.Auth.Login)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAuth)
				r.Get("/profile", h.Auth.Profile)
				r.Put("/profile", h.Auth.UpdateProfile)
			})
		})

		r.Route("/items", func(r chi.Router) {
			r.Get("/", h.Items.List)
			// Static segments must be declared before the {id} wildcard
			r.Get("/featured", h.Items.Featured)
			r.Get("/search", h.Items.Search)
			r.Get("/{id}", h.Items.Get)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAuth)
				r.Use(middleware.RequireAdmin)
				r.Post("/", h.Items.Create)
				r.Put("/{id}", h.Items.Update)
				r.Delete("/{id}", h.Items.Delete)
			})
		})

		r.Route("/cart", func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Get("/", h.Cart.Get)
			r.Get("/summary", h.Cart.Summary)
			r.Post("/add", h.Cart.Add)
			r.Put("/update", h.Cart.Update)
			r.Delete("/remove/{itemId}", h.Cart.Remove)
			r.Delete("/clear", h.Cart.Clear)
		})
	})

	return r
}
