package main

import (
	"fmt"
	"net/http"

	"github.com/medishift/clinic-backend-go/internal/config"
	"github.com/medishift/clinic-backend-go/internal/domain/payroll"
	"github.com/medishift/clinic-backend-go/internal/domain/shift"
	appHTTP "github.com/medishift/clinic-backend-go/internal/handler/http"
	"github.com/medishift/clinic-backend-go/internal/pkg/cron"
	"github.com/medishift/clinic-backend-go/internal/pkg/database"
	"github.com/medishift/clinic-backend-go/internal/pkg/jwt"
	"github.com/medishift/clinic-backend-go/internal/pkg/sse"
	"github.com/medishift/clinic-backend-go/internal/repository/postgresql"
	notificationService "github.com/medishift/clinic-backend-go/internal/service/notification"
	payrollService "github.com/medishift/clinic-backend-go/internal/service/payroll"
	schedulerService "github.com/medishift/clinic-backend-go/internal/service/scheduler"
	"github.com/shopspring/decimal"
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

	employeeRepo := postgresql.NewEmployeeRepository(db)
	clinicRepo := postgresql.NewClinicRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	shiftRepo := postgresql.NewShiftAssignmentRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret)
	hub := sse.NewHub()

	payrollPolicy := payroll.DefaultPolicy()
	payrollPolicy.EmployeeRate = decimal.NewFromFloat(cfg.Payroll.EmployeeRate)
	payrollPolicy.EmployerRate = decimal.NewFromFloat(cfg.Payroll.EmployerRate)
	payrollPolicy.MinimumMonthlyHours = cfg.Payroll.MinimumMonthlyHours

	notificationSvc := notificationService.NewNotificationService(notificationRepo, hub)
	payrollSvc := payrollService.NewPayrollService(
		payrollPolicy,
		payrollRepo,
		employeeRepo,
		attendanceRepo,
		leaveRepo,
		notificationSvc,
	)
	schedulerSvc := schedulerService.NewSchedulerService(
		shift.DefaultRotationPolicy(),
		shiftRepo,
		employeeRepo,
		clinicRepo,
		departmentRepo,
		notificationSvc,
	)

	cronScheduler := cron.NewScheduler()
	shiftJobs := cron.NewShiftJobs(schedulerSvc, cfg.Scheduler.RunDay)
	shiftJobs.RegisterJobs(cronScheduler)
	cronScheduler.Start()
	defer cronScheduler.Stop()

	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	scheduleHandler := appHTTP.NewScheduleHandler(schedulerSvc)
	notificationHandler := appHTTP.NewNotificationHandler(notificationSvc, JWTService, hub)

	router := appHTTP.NewRouter(
		cfg,
		JWTService,
		payrollHandler,
		scheduleHandler,
		notificationHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
