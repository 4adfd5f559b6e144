package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"gpa-calculator/internal/calculator"
	"gpa-calculator/internal/config"
	"gpa-calculator/internal/handlers"
	"gpa-calculator/internal/observability"
)

// NewRouter assembles the middleware stack and mounts every endpoint.
// limiter may be nil, which disables rate limiting.
func NewRouter(cfg config.Config, limiter *RateLimiter) http.Handler {

	r := chi.NewRouter()

	r.Use(observability.RequestIDMiddleware)
	r.Use(observability.TracingMiddleware)
	r.Use(observability.LoggingMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(securityHeaders)
	r.Use(cors.Handler(corsOptions(cfg.CORSAllowedOrigins)))
	r.Use(compress)

	r.Get("/health", handlers.Health)
	r.Handle("/metrics", observability.PrometheusHandler())

	r.Group(func(r chi.Router) {
		if limiter != nil {
			r.Use(limiter.Middleware)
		}
		r.Use(middleware.RequestSize(cfg.MaxBodyBytes))

		r.Get("/", handlers.Index("GPA Calculator API", calculator.Endpoints...))
		calculator.RegisterRoutes(r)
	})

	return r
}

func corsOptions(origins []string) cors.Options {
	return cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", observability.RequestIDHeader},
		ExposedHeaders:   []string{observability.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}
}
