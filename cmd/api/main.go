package main

import (
	"fmt"
	"net/http"

	"github.com/staffport/attendance-report-go/internal/config"
	appHTTP "github.com/staffport/attendance-report-go/internal/handler/http"
	"github.com/staffport/attendance-report-go/internal/pkg/jwt"
	"github.com/staffport/attendance-report-go/internal/repository/upstream"
	attendanceService "github.com/staffport/attendance-report-go/internal/service/attendance"
	projectService "github.com/staffport/attendance-report-go/internal/service/project"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	upstreamClient := upstream.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.Timeout)
	attendanceRepo := upstream.NewAttendanceRepository(upstreamClient)
	projectRepo := upstream.NewProjectRepository(upstreamClient)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo)
	allocationSvc := projectService.NewAllocationService(projectRepo)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	projectHandler := appHTTP.NewProjectHandler(allocationSvc)

	router := appHTTP.NewRouter(
		JWTService,
		attendanceHandler,
		projectHandler,
		cfg.App.FrontendURL,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
