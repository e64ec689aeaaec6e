package calculation

import (
	"context"
	"errors"
	"log/slog"

	"github.com/opsuite/payroll-backend-go/internal/domain/catalog"
	"github.com/opsuite/payroll-backend-go/internal/domain/employee"
	"github.com/opsuite/payroll-backend-go/internal/domain/payment"
	"github.com/opsuite/payroll-backend-go/internal/domain/settlement"
	"github.com/opsuite/payroll-backend-go/internal/domain/stage"
	"github.com/opsuite/payroll-backend-go/internal/domain/timesheet"
	"github.com/opsuite/payroll-backend-go/internal/pkg/database"
)

type CalculationServiceImpl struct {
	tx             database.Transactor
	logger         *slog.Logger
	employeeRepo   employee.EmployeeRepository
	catalogRepo    catalog.CatalogRepository
	timesheetRepo  timesheet.TimesheetRepository
	paymentRepo    payment.PaymentRepository
	settlementRepo settlement.SettlementRepository
}

func NewCalculationService(
	tx database.Transactor,
	logger *slog.Logger,
	employeeRepo employee.EmployeeRepository,
	catalogRepo catalog.CatalogRepository,
	timesheetRepo timesheet.TimesheetRepository,
	paymentRepo payment.PaymentRepository,
	settlementRepo settlement.SettlementRepository,
) payment.CalculationService {
	return &CalculationServiceImpl{
		tx:             tx,
		logger:         logger,
		employeeRepo:   employeeRepo,
		catalogRepo:    catalogRepo,
		timesheetRepo:  timesheetRepo,
		paymentRepo:    paymentRepo,
		settlementRepo: settlementRepo,
	}
}

// snapshot derives the stage state for one (employee, period) from the
// persisted ledger. Callers run it inside the calculation transaction so
// the checked state and the write commit together.
func (s *CalculationServiceImpl) snapshot(ctx context.Context, employeeID string, month, year int) (stage.Snapshot, error) {
	var snap stage.Snapshot

	ts, err := s.timesheetRepo.GetByEmployeePeriod(ctx, employeeID, month, year)
	if err != nil && !errors.Is(err, timesheet.ErrTimesheetNotFound) {
		return snap, err
	}
	snap.TimeConfirmed = err == nil && ts.Status == timesheet.StatusConfirmed

	snap.BasePaid, err = s.paymentRepo.ExistsByType(ctx, employeeID, month, year, catalog.PaymentBaseSalary)
	if err != nil {
		return snap, err
	}

	snap.DiscretionaryAccrued, err = s.paymentRepo.ExistsByCategory(ctx, employeeID, month, year, catalog.CategoryAccrual, catalog.PaymentBaseSalary)
	if err != nil {
		return snap, err
	}

	snap.TaxesApplied, err = s.paymentRepo.ExistsByCategory(ctx, employeeID, month, year, catalog.CategoryDeduction, "")
	if err != nil {
		return snap, err
	}

	snap.Settled, err = s.settlementRepo.Exists(ctx, employeeID, month, year)
	if err != nil {
		return snap, err
	}

	return snap, nil
}

// confirmedTimesheet loads the timesheet and requires confirmed status.
func (s *CalculationServiceImpl) confirmedTimesheet(ctx context.Context, employeeID string, month, year int) (timesheet.Timesheet, error) {
	ts, err := s.timesheetRepo.GetByEmployeePeriod(ctx, employeeID, month, year)
	if errors.Is(err, timesheet.ErrTimesheetNotFound) {
		return timesheet.Timesheet{}, stage.ErrTimeNotConfirmed
	}
	if err != nil {
		return timesheet.Timesheet{}, err
	}
	if ts.Status != timesheet.StatusConfirmed {
		return timesheet.Timesheet{}, stage.ErrTimeNotConfirmed
	}
	return ts, nil
}

func mapToPaymentResponse(p payment.Payment) payment.PaymentResponse {
	return payment.PaymentResponse{
		ID:              p.ID,
		EmployeeID:      p.EmployeeID,
		PeriodMonth:     p.PeriodMonth,
		PeriodYear:      p.PeriodYear,
		PaymentTypeCode: p.PaymentTypeCode,
		PaymentTypeName: p.PaymentTypeName,
		Category:        string(p.Category),
		Amount:          p.Amount.StringFixed(2),
		Description:     p.Description,
	}
}
