package calculation

import (
	"context"
	"fmt"

	"github.com/opsuite/payroll-backend-go/internal/domain/catalog"
	"github.com/opsuite/payroll-backend-go/internal/domain/payment"
	"github.com/opsuite/payroll-backend-go/internal/domain/stage"
	"github.com/opsuite/payroll-backend-go/internal/pkg/workcal"
	"github.com/shopspring/decimal"
)

// BaseSalary derives the base pay amount from the confirmed timesheet:
// hourly rate at 4 fractional digits, final amount rounded half-up to 2.
func (s *CalculationServiceImpl) BaseSalary(ctx context.Context, employeeID string, month, year int) (decimal.Decimal, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return decimal.Zero, err
	}

	ts, err := s.confirmedTimesheet(ctx, employeeID, month, year)
	if err != nil {
		return decimal.Zero, err
	}

	standardHours := workcal.StandardHours(month, year, workcal.HoursPerWorkday)
	if standardHours.IsZero() {
		return decimal.Zero, payment.ErrZeroStandardHours
	}

	hourlyRate := emp.BaseRate.DivRound(standardHours, 4)
	return hourlyRate.Mul(ts.TotalHours).Round(2), nil
}

func (s *CalculationServiceImpl) SaveBaseSalary(ctx context.Context, req payment.CalculationRequest) (payment.PaymentResponse, error) {
	if err := req.Validate(); err != nil {
		return payment.PaymentResponse{}, err
	}

	var created payment.Payment
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		snap, err := s.snapshot(ctx, req.EmployeeID, req.PeriodMonth, req.PeriodYear)
		if err != nil {
			return err
		}
		if err := stage.Check(stage.OpBaseSalary, snap); err != nil {
			return err
		}

		amount, err := s.BaseSalary(ctx, req.EmployeeID, req.PeriodMonth, req.PeriodYear)
		if err != nil {
			return err
		}

		created, err = s.paymentRepo.Create(ctx, payment.Payment{
			EmployeeID:      req.EmployeeID,
			PeriodMonth:     req.PeriodMonth,
			PeriodYear:      req.PeriodYear,
			PaymentTypeCode: catalog.PaymentBaseSalary,
			Amount:          amount,
			Description:     fmt.Sprintf("Base salary for %02d/%d", req.PeriodMonth, req.PeriodYear),
		})
		return err
	})
	if err != nil {
		return payment.PaymentResponse{}, err
	}

	return mapToPaymentResponse(created), nil
}
