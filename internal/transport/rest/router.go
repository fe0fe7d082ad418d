package rest

import (
	"log/slog"
	"net/http"

	"github.com/frahmantamala/personnel-management/internal/auth"
	"github.com/frahmantamala/personnel-management/internal/employee"
	"github.com/frahmantamala/personnel-management/internal/holiday"
	"github.com/frahmantamala/personnel-management/internal/malady"
	"github.com/frahmantamala/personnel-management/internal/transport/middleware"
	"github.com/frahmantamala/personnel-management/internal/transport/swagger"
	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
)

type Handlers struct {
	Auth     *auth.Handler
	Employee *employee.Handler
	Holiday  *holiday.Handler
	Malady   *malady.Handler
	Health   *HealthHandler
	// OpenAPI serves the API document; nil disables it and the Swagger UI.
	OpenAPI http.Handler
}

type Options struct {
	// AllowedOrigins may contain "*". Empty allows any origin.
	AllowedOrigins []string
	// RequireAuth guards everything except login, register and health
	// behind a bearer token.
	RequireAuth bool
}

func NewRouter(h Handlers, opts Options, logger *slog.Logger) *chi.Mux {
	router := chi.NewRouter()

	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type", middleware.TraceHeader},
		ExposedHeaders: []string{"Location", middleware.TraceHeader},
		MaxAge:         300,
	}))
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	if h.OpenAPI != nil {
		router.Method(http.MethodGet, swagger.DocumentRoute, h.OpenAPI)
		router.Handle("/swagger/*", swagger.Handler())
	}

	protected := func(r chi.Router) chi.Router {
		if opts.RequireAuth {
			return r.With(h.Auth.AuthMiddleware, middleware.UserContext)
		}
		return r
	}

	router.Route("/api", func(r chi.Router) {
		r.Get("/health", h.Health.Health)
		r.Get("/ping", h.Health.Ping)

		r.Route("/employees", func(er chi.Router) {
			er.Post("/login", h.Auth.Login)
			h.Employee.PublicRoutes(er)
			h.Employee.Routes(protected(er))
		})

		r.Route("/holidays", func(hr chi.Router) {
			h.Holiday.Routes(protected(hr))
		})

		r.Route("/maladies", func(mr chi.Router) {
			h.Malady.Routes(protected(mr))
		})
	})

	return router
}
