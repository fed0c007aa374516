package http

import (
	"log/slog"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/dayflow-hr/hrms-backend-go/internal/config"
	"github.com/dayflow-hr/hrms-backend-go/internal/handler/http/middleware"
	"github.com/dayflow-hr/hrms-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	leaveHandler LeaveHandler,
	payrollHandler PayrollHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "dayflow-hrms"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(middleware.RequestID)
	r.Use(chiMiddleware.RealIP)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.App.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"X-Request-Id"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  logLevel(cfg.App.LogLevel),
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))
	r.Use(chiMiddleware.Heartbeat("/health"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", authHandler.Login)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired)

			r.Route("/auth", func(r chi.Router) {
				r.Get("/profile", authHandler.GetProfile)

				// HR only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHR)
					r.Post("/reset-password", authHandler.ResetPassword)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/{employeeId}", employeeHandler.Get)
				r.Put("/{employeeId}", employeeHandler.Update)
				r.Put("/{employeeId}/password", employeeHandler.ChangePassword)

				// HR only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHR)
					r.Get("/", employeeHandler.List)
					r.Post("/", employeeHandler.Create)
					r.Delete("/{employeeId}", employeeHandler.Delete)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/", attendanceHandler.List)
				r.Get("/today", attendanceHandler.GetToday)
				r.Post("/check-in", attendanceHandler.CheckIn)
				r.Post("/check-out", attendanceHandler.CheckOut)
				r.Get("/summary", attendanceHandler.GetSummary)
				r.Get("/employee/{employeeId}", attendanceHandler.GetEmployeeHistory)
			})

			r.Route("/leave", func(r chi.Router) {
				r.Get("/", leaveHandler.ListRequests)
				r.Post("/", leaveHandler.CreateRequest)
				r.Get("/balance/{employeeId}", leaveHandler.GetBalance)

				// HR only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHR)
					r.Put("/{id}", leaveHandler.DecideRequest)
				})
			})

			r.Route("/leave-types", func(r chi.Router) {
				r.Get("/", leaveHandler.ListTypes)
				r.Get("/{id}", leaveHandler.GetType)

				// HR only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHR)
					r.Post("/", leaveHandler.CreateType)
					r.Post("/seed", leaveHandler.SeedTypes)
					r.Put("/{id}", leaveHandler.UpdateType)
					r.Delete("/{id}", leaveHandler.DeleteType)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/", payrollHandler.List)
				r.Get("/employee/{employeeId}", payrollHandler.GetEmployeeHistory)
				r.Get("/slip/{id}", payrollHandler.GetPayslip)

				// HR only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHR)
					r.Post("/generate", payrollHandler.Generate)
					r.Get("/summary", payrollHandler.GetSummary)
					r.Put("/{id}", payrollHandler.Update)
					r.Delete("/{id}", payrollHandler.Delete)
				})
			})
		})
	})

	return r
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
