package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/medishift/clinic-backend-go/internal/config"
	"github.com/medishift/clinic-backend-go/internal/handler/http/middleware"
	"github.com/medishift/clinic-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	payrollHandler PayrollHandler,
	scheduleHandler ScheduleHandler,
	notificationHandler NotificationHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "clinic-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
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
		// SSE stream authenticates itself with a query-parameter token
		r.Get("/notifications/stream", notificationHandler.Stream)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/payroll", func(r chi.Router) {
				r.Post("/calculate", payrollHandler.Calculate)
				r.Post("/recalculate", payrollHandler.Recalculate)
				r.Get("/", payrollHandler.List)
				r.Get("/stats", payrollHandler.GetStats)
				r.Get("/employee/{employeeId}", payrollHandler.ListForEmployee)

				r.Route("/{id}", func(r chi.Router) {
					r.Patch("/status", payrollHandler.SetStatus)
					r.Get("/payslip", payrollHandler.GetPayslip)
					r.Get("/payslip/pdf", payrollHandler.DownloadPayslipPDF)
				})
			})

			r.Route("/schedules", func(r chi.Router) {
				r.Post("/generate", scheduleHandler.Generate)
				r.Get("/pending/{clinicId}", scheduleHandler.ListPending)
				r.Post("/{id}/approve", scheduleHandler.Approve)
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", notificationHandler.List)
				r.Get("/stream-token", notificationHandler.GetStreamToken)
			})
		})
	})
	return r
}
