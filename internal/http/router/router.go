package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rogerio-castellano/product-catalog/internal/auth"
	"github.com/rogerio-castellano/product-catalog/internal/http/handlers"
	mw "github.com/rogerio-castellano/product-catalog/internal/http/middleware"
	rl "github.com/rogerio-castellano/product-catalog/internal/http/rate_limiter"
	"github.com/sirupsen/logrus"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/rogerio-castellano/product-catalog/docs"
)

type Options struct {
	Logger      logrus.FieldLogger
	Limiter     *rl.Limiter
	Tokens      *auth.Tokens
	SlowRequest time.Duration
}

// NewRouter builds the API router. Login and the admin routes are only
// mounted when opts.Tokens is set; rate limiting only when opts.Limiter is.
func NewRouter(opts Options) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(mw.RequestLogger(logger, opts.SlowRequest))
	r.Use(mw.Recover(logger))
	if opts.Limiter != nil {
		r.Use(mw.RateLimit(opts.Limiter))
	}

	r.Get("/health", handlers.HealthHandler)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Route("/api", func(r chi.Router) {
		r.Post("/products", handlers.GetProductsHandler)
		r.Get("/products/search", handlers.SearchProductsHandler)
		r.Get("/products/{id}", handlers.GetProductByIDHandler)
		r.Get("/categories", handlers.GetCategoriesHandler)
		r.Get("/categories/{id}", handlers.GetCategoryByIDHandler)

		if opts.Tokens == nil {
			return
		}
		r.Post("/login", handlers.LoginHandler)
		r.Route("/admin", func(r chi.Router) {
			r.Use(mw.RequireRole(opts.Tokens, auth.RoleAdmin, logger))

			r.Post("/categories", handlers.CreateCategoryHandler)
			r.Put("/categories/{id}", handlers.UpdateCategoryHandler)
			r.Delete("/categories/{id}", handlers.DeleteCategoryHandler)

			r.Post("/products", handlers.CreateProductHandler)
			r.Put("/products/{id}", handlers.UpdateProductHandler)
			r.Delete("/products/{id}", handlers.DeleteProductHandler)

			r.Get("/metrics", handlers.GetCatalogMetricsHandler)
		})
	})

	return r
}
