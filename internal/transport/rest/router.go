package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	errors "github.com/frahmantamala/hr-dashboard/internal"
	"github.com/frahmantamala/hr-dashboard/internal/analytics"
	"github.com/frahmantamala/hr-dashboard/internal/employee"
	"github.com/frahmantamala/hr-dashboard/internal/preference"
	"github.com/frahmantamala/hr-dashboard/internal/transport"
	"github.com/frahmantamala/hr-dashboard/internal/transport/middleware"
	"github.com/frahmantamala/hr-dashboard/internal/transport/swagger"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
)

type RouterConfig struct {
	DB             *sql.DB
	DBComponent    string
	AllowedOrigins []string
	OpenAPISpec    []byte
	OpenAPIDoc     *openapi3.T
	Logger         *slog.Logger
}

type Handlers struct {
	Employee   *employee.Handler
	Analytics  *analytics.Handler
	Preference *preference.Handler
}

func RegisterAllRoutes(router *chi.Mux, cfg RouterConfig, h Handlers) error {
	healthHandler := NewHealthHandler(cfg.DB, cfg.DBComponent)

	// Apply global middleware
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(middleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(middleware.LoggingMiddleware(cfg.Logger))
	router.Use(middleware.RecoveryMiddleware(cfg.Logger))

	base := transport.NewBaseHandler(cfg.Logger)
	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		base.WriteAppError(w, errors.ErrRouteNotFound)
	})

	// Serve the OpenAPI document at root (outside API prefix)
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(cfg.OpenAPISpec)
	})
	// Swagger UI route at root
	router.Handle("/swagger/*", swagger.Handler())

	var validator func(http.Handler) http.Handler
	if cfg.OpenAPIDoc != nil {
		v, err := middleware.OpenAPIValidator(cfg.OpenAPIDoc, cfg.Logger)
		if err != nil {
			return err
		}
		validator = v
	}

	// Mount API under /api/v1 to match the OpenAPI paths
	router.Route("/api/v1", func(r chi.Router) {
		if validator != nil {
			r.Use(validator)
		}

		// Health check route
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		if h.Employee != nil {
			r.Route("/employees", func(er chi.Router) {
				er.Get("/", h.Employee.ListEmployees)             // GET /employees
				er.Post("/", h.Employee.CreateEmployee)           // POST /employees
				er.Get("/filtered", h.Employee.FilteredEmployees) // GET /employees/filtered
				er.Get("/bookmarked", h.Employee.BookmarkedEmployees)
				er.Get("/status", h.Employee.Status)
				er.Post("/refetch", h.Employee.Refetch)
				er.Get("/{id}", h.Employee.GetEmployee)              // GET /employees/:id
				er.Post("/{id}/promote", h.Employee.PromoteEmployee) // POST /employees/:id/promote
				er.Post("/{id}/bookmark", h.Employee.ToggleBookmark) // POST /employees/:id/bookmark
			})

			r.Get("/departments", h.Employee.Departments)

			r.Route("/filters", func(fr chi.Router) {
				fr.Get("/", h.Employee.GetFilters)
				fr.Put("/search", h.Employee.SetSearchQuery)
				fr.Put("/departments", h.Employee.SetSelectedDepartments)
				fr.Put("/ratings", h.Employee.SetSelectedRatings)
			})
		}

		if h.Analytics != nil {
			r.Route("/analytics", func(ar chi.Router) {
				ar.Get("/overview", h.Analytics.Overview)
				ar.Get("/departments", h.Analytics.Departments)
				ar.Get("/ratings", h.Analytics.Ratings)
			})
		}

		if h.Preference != nil {
			r.Get("/preferences", h.Preference.GetPreferences)
			r.Post("/preferences/dark-mode/toggle", h.Preference.ToggleDarkMode)
		}
	})

	return nil
}
