package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/shiftgrid/scheduler-backend-go/internal/handler/http/middleware"
	"github.com/shiftgrid/scheduler-backend-go/internal/pkg/jwt"
)

func NewRouter(
	JWTService jwt.Service,
	authHandler AuthHandler,
	organizationHandler OrganizationHandler,
	employeeHandler EmployeeHandler,
	scheduleHandler ScheduleHandler,
	eventsHandler EventsHandler,
	frontendURL string,
	env string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "shiftgrid-scheduler"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/token", authHandler.Token)
		})

		// EventSource cannot send an Authorization header; the stream
		// handler validates the token from the query string itself.
		r.Get("/events", eventsHandler.Stream)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/organizations", func(r chi.Router) {
				r.Post("/", organizationHandler.Create)
				r.Get("/", organizationHandler.List)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", organizationHandler.Get)
					r.Put("/", organizationHandler.Update)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.Post("/", employeeHandler.Create)
				r.Get("/", employeeHandler.List)
				r.Route("/{id}", func(r chi.Router) {
					r.Put("/", employeeHandler.Update)
					r.Delete("/", employeeHandler.Delete)
				})
			})

			r.Route("/schedules", func(r chi.Router) {
				r.Post("/", scheduleHandler.Create)
				r.Get("/", scheduleHandler.List)
				r.Get("/week", scheduleHandler.ListForWeek)
				r.Get("/grid", scheduleHandler.Grid)
				r.Route("/{id}", func(r chi.Router) {
					r.Put("/", scheduleHandler.Update)
					r.Delete("/", scheduleHandler.Delete)
				})
			})
		})
	})
	return r
}
