package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/staffport/attendance-report-go/internal/handler/http/middleware"
	"github.com/staffport/attendance-report-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	attendanceHandler AttendanceHandler,
	projectHandler ProjectHandler,
	frontendURL string,
	env string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-report"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
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
		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/monthly/{year}/{month}", attendanceHandler.GetMonthly)
				r.Get("/work-settings", attendanceHandler.GetWorkSettings)
				r.Post("/work-report", attendanceHandler.SubmitWorkReport)
				r.Patch("/approve-leave/{id}", attendanceHandler.ApproveLeave)
				r.Patch("/reject-leave/{id}", attendanceHandler.RejectLeave)

				r.Route("/misc", func(r chi.Router) {
					r.Post("/update", attendanceHandler.Update)
					r.Post("/bulk-transportation", attendanceHandler.SaveBulkTransportation)
				})
			})

			r.Route("/projects", func(r chi.Router) {
				r.Route("/allocations", func(r chi.Router) {
					r.Get("/{userID}", projectHandler.GetAllocationStatus)
					r.Post("/check", projectHandler.CheckMembership)
				})
			})
		})
	})
	return r
}
