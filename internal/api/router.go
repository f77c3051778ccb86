package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/canozdemir/inventory-backend/internal/api/handlers"
	"github.com/canozdemir/inventory-backend/internal/config"
	"github.com/canozdemir/inventory-backend/internal/metrics"
	"github.com/canozdemir/inventory-backend/internal/middleware"
	"github.com/canozdemir/inventory-backend/internal/services"
)

func NewRouter(cfg config.Config, authMW *middleware.AuthMiddleware, us *services.UserService, is *services.ItemService) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover, middleware.RateLimit(cfg.RateRPS), middleware.HTTPMetrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	// health & metrics
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", metrics.Handler())

	ah := handlers.NewAuthHandler(us)
	ih := handlers.NewItemsHandler(is)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", ah.Register)
			r.Post("/login", ah.Login)
			r.Post("/logout", ah.Logout)
			r.With(authMW.Auth).Get("/me", ah.Me)
		})

		r.Route("/items", func(r chi.Router) {
			r.Use(authMW.Auth)
			r.Get("/", ih.List)
			r.Post("/", ih.Create)
			r.Get("/{id}", ih.Get)
			r.Put("/{id}", ih.Update)
			r.Delete("/{id}", ih.Delete)
		})
	})

	return r
}
