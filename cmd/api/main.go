package main

import (
	"fmt"
	"net/http"

	"github.com/shiftgrid/scheduler-backend-go/internal/config"
	appHTTP "github.com/shiftgrid/scheduler-backend-go/internal/handler/http"
	"github.com/shiftgrid/scheduler-backend-go/internal/pkg/bus"
	"github.com/shiftgrid/scheduler-backend-go/internal/pkg/database"
	"github.com/shiftgrid/scheduler-backend-go/internal/pkg/jwt"
	"github.com/shiftgrid/scheduler-backend-go/internal/repository/postgresql"
	employeeService "github.com/shiftgrid/scheduler-backend-go/internal/service/employee"
	organizationService "github.com/shiftgrid/scheduler-backend-go/internal/service/organization"
	scheduleService "github.com/shiftgrid/scheduler-backend-go/internal/service/schedule"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	organizationRepo := postgresql.NewOrganizationRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	scheduleRepo := postgresql.NewScheduleRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	eventBus := bus.NewBus()

	organizationSvc := organizationService.NewOrganizationService(db, organizationRepo, eventBus)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, organizationRepo, eventBus)
	scheduleSvc := scheduleService.NewScheduleService(db, scheduleRepo, employeeRepo, organizationRepo, eventBus)

	authHandler := appHTTP.NewAuthHandler(JWTService)
	organizationHandler := appHTTP.NewOrganizationHandler(organizationSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	scheduleHandler := appHTTP.NewScheduleHandler(scheduleSvc)
	eventsHandler := appHTTP.NewEventsHandler(eventBus, JWTService)

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		organizationHandler,
		employeeHandler,
		scheduleHandler,
		eventsHandler,
		cfg.App.FrontendURL,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
