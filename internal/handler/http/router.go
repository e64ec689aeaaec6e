package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/opsuite/payroll-backend-go/internal/handler/http/middleware"
	"github.com/opsuite/payroll-backend-go/internal/pkg/jwt"
)

func NewRouter(
	JWTService jwt.Service,
	timesheetHandler TimesheetHandler,
	calculationHandler CalculationHandler,
	settlementHandler SettlementHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "payroll-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
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
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/timesheets/{employeeId}", func(r chi.Router) {
				r.With(middleware.AnyOperator).Get("/", timesheetHandler.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHR)
					r.Post("/entries", timesheetHandler.RecordEntry)
					r.Post("/confirm", timesheetHandler.Confirm)
				})
			})

			r.Route("/calculations", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAccountant)
					r.Post("/base-salary", calculationHandler.BaseSalary)
					r.Post("/role-bonus", calculationHandler.RoleBonus)
					r.Post("/seniority-bonus", calculationHandler.SeniorityBonus)
					r.Post("/sick-leave", calculationHandler.SickLeave)
					r.Post("/vacation-pay", calculationHandler.VacationPay)
					r.Post("/taxes", calculationHandler.Taxes)
					r.Delete("/taxes", calculationHandler.DeleteTaxes)
					r.Post("/batch/{stage}", calculationHandler.Batch)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.AnyOperator)
					r.Get("/{employeeId}/payments", calculationHandler.ListPayments)
					r.Get("/{employeeId}/status", calculationHandler.StageStatus)
					r.Get("/totals", calculationHandler.PeriodTotals)
				})
			})

			r.Route("/settlements", func(r chi.Router) {
				r.Use(middleware.RequireAccountant)
				r.Post("/", settlementHandler.Calculate)
				r.Post("/batch", settlementHandler.Batch)
				r.Post("/{id}/pay", settlementHandler.MarkPaid)
				r.Get("/", settlementHandler.ListByPeriod)
			})
		})
	})
	return r
}
