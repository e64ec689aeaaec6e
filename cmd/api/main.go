package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/opsuite/payroll-backend-go/internal/config"
	appHTTP "github.com/opsuite/payroll-backend-go/internal/handler/http"
	"github.com/opsuite/payroll-backend-go/internal/pkg/database"
	"github.com/opsuite/payroll-backend-go/internal/pkg/jwt"
	"github.com/opsuite/payroll-backend-go/internal/repository/postgresql"
	calculationService "github.com/opsuite/payroll-backend-go/internal/service/calculation"
	settlementService "github.com/opsuite/payroll-backend-go/internal/service/settlement"
	timesheetService "github.com/opsuite/payroll-backend-go/internal/service/timesheet"
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

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", "payroll-backend"),
	)

	transactor := postgresql.NewTransactor(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	catalogRepo := postgresql.NewCatalogRepository(db)
	timesheetRepo := postgresql.NewTimesheetRepository(db)
	paymentRepo := postgresql.NewPaymentRepository(db)
	settlementRepo := postgresql.NewSettlementRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret)

	timesheetSvc := timesheetService.NewTimesheetService(transactor, timesheetRepo, employeeRepo, catalogRepo)
	calculationSvc := calculationService.NewCalculationService(
		transactor,
		logger,
		employeeRepo,
		catalogRepo,
		timesheetRepo,
		paymentRepo,
		settlementRepo,
	)
	settlementSvc := settlementService.NewSettlementService(
		transactor,
		logger,
		employeeRepo,
		paymentRepo,
		settlementRepo,
	)

	timesheetHandler := appHTTP.NewTimesheetHandler(timesheetSvc)
	calculationHandler := appHTTP.NewCalculationHandler(calculationSvc)
	settlementHandler := appHTTP.NewSettlementHandler(settlementSvc)

	router := appHTTP.NewRouter(
		JWTService,
		timesheetHandler,
		calculationHandler,
		settlementHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
