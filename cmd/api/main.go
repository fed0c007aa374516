package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/dayflow-hr/hrms-backend-go/internal/config"
	"github.com/dayflow-hr/hrms-backend-go/internal/domain/employee"
	"github.com/dayflow-hr/hrms-backend-go/internal/domain/user"
	"github.com/dayflow-hr/hrms-backend-go/internal/fixtures"
	appHTTP "github.com/dayflow-hr/hrms-backend-go/internal/handler/http"
	"github.com/dayflow-hr/hrms-backend-go/internal/pkg/cron"
	"github.com/dayflow-hr/hrms-backend-go/internal/pkg/database"
	"github.com/dayflow-hr/hrms-backend-go/internal/pkg/jwt"
	"github.com/dayflow-hr/hrms-backend-go/internal/repository/mongodb"
	attendanceService "github.com/dayflow-hr/hrms-backend-go/internal/service/attendance"
	authService "github.com/dayflow-hr/hrms-backend-go/internal/service/auth"
	employeeService "github.com/dayflow-hr/hrms-backend-go/internal/service/employee"
	leaveService "github.com/dayflow-hr/hrms-backend-go/internal/service/leave"
	payrollService "github.com/dayflow-hr/hrms-backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading config:", err)
		os.Exit(1)
	}

	connectCtx, cancelConnect := context.WithTimeout(context.Background(), cfg.Database.ConnectTimeout)
	db, err := database.NewMongoDB(connectCtx, cfg.Database.URI, cfg.Database.Name)
	cancelConnect()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error connecting to database:", err)
		os.Exit(1)
	}

	if err := db.EnsureIndexes(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error creating indexes:", err)
		os.Exit(1)
	}

	userRepo := mongodb.NewUserRepository(db)
	employeeRepo := mongodb.NewEmployeeRepository(db)
	attendanceRepo := mongodb.NewAttendanceRepository(db)
	leaveTypeRepo := mongodb.NewLeaveTypeRepository(db)
	leaveRequestRepo := mongodb.NewLeaveRequestRepository(db)
	payrollRepo := mongodb.NewPayrollRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	authSvc := authService.NewAuthService(userRepo, employeeRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(userRepo, employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)
	leaveSvc := leaveService.NewLeaveService(leaveTypeRepo, leaveRequestRepo, employeeRepo)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, employeeRepo, attendanceRepo)

	if err := seedAdmin(context.Background(), cfg.Seed, userRepo, employeeRepo); err != nil {
		fmt.Fprintln(os.Stderr, "Error seeding admin user:", err)
		os.Exit(1)
	}

	authHandler := appHTTP.NewAuthHandler(authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		authHandler,
		employeeHandler,
		attendanceHandler,
		leaveHandler,
		payrollHandler,
	)

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(attendanceRepo, employeeRepo).RegisterJobs(scheduler)
	scheduler.Start()

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("Server listening", "addr", server.Addr, "env", cfg.App.Env)
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		slog.Info("Received signal, shutting down...", "signal", sig.String())
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed", "error", err)
		}
	}

	scheduler.Stop()

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown error", "error", err)
	}
	if err := db.Close(shutdownCtx); err != nil {
		slog.Error("Database close error", "error", err)
	}

	slog.Info("Server stopped")
}

// seedAdmin creates the bootstrap HR login and its employee record the
// first time the server starts against an empty database. A database
// that already holds an hr user is left untouched.
func seedAdmin(ctx context.Context, seed config.SeedConfig, userRepo user.UserRepository, employeeRepo employee.EmployeeRepository) error {
	exists, err := userRepo.ExistsByRole(ctx, user.RoleHR)
	if err != nil {
		return fmt.Errorf("failed to check for existing hr user: %w", err)
	}
	if exists {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(seed.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	now := time.Now().UTC()
	if _, err := userRepo.Create(ctx, user.User{
		EmployeeID:   fixtures.DefaultAdminEmployeeID,
		Email:        seed.AdminEmail,
		PasswordHash: string(hash),
		Role:         user.RoleHR,
		IsActive:     true,
		CreatedAt:    now,
	}); err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	if _, err := employeeRepo.Create(ctx, fixtures.GetDefaultAdminEmployee(seed.AdminEmail, now)); err != nil {
		return fmt.Errorf("failed to create admin employee record: %w", err)
	}

	slog.Info("Seeded default HR admin", "employee_id", fixtures.DefaultAdminEmployeeID, "email", seed.AdminEmail)
	return nil
}
