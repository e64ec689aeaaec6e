package calculation

import (
	"context"

	"github.com/opsuite/payroll-backend-go/internal/domain/payment"
)

func (s *CalculationServiceImpl) ListPayments(ctx context.Context, employeeID string, month, year int) ([]payment.PaymentResponse, error) {
	payments, err := s.paymentRepo.ListByEmployeePeriod(ctx, employeeID, month, year)
	if err != nil {
		return nil, err
	}

	responses := make([]payment.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		responses = append(responses, mapToPaymentResponse(p))
	}
	return responses, nil
}

// StageStatus reports which pipeline stages have run for the employee
// and period, derived from the persisted ledger.
func (s *CalculationServiceImpl) StageStatus(ctx context.Context, employeeID string, month, year int) (payment.StageStatusResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return payment.StageStatusResponse{}, err
	}

	snap, err := s.snapshot(ctx, employeeID, month, year)
	if err != nil {
		return payment.StageStatusResponse{}, err
	}

	return payment.StageStatusResponse{
		EmployeeID:    employeeID,
		PeriodMonth:   month,
		PeriodYear:    year,
		TimeConfirmed: snap.TimeConfirmed,
		BasePaid:      snap.BasePaid,
		Discretionary: snap.DiscretionaryAccrued,
		TaxesApplied:  snap.TaxesApplied,
		Settled:       snap.Settled,
	}, nil
}

func (s *CalculationServiceImpl) PeriodTotals(ctx context.Context, month, year int) (payment.PeriodTotalsResponse, error) {
	totals, err := s.paymentRepo.PeriodTotals(ctx, month, year)
	if err != nil {
		return payment.PeriodTotalsResponse{}, err
	}

	return payment.PeriodTotalsResponse{
		PeriodMonth:   month,
		PeriodYear:    year,
		TotalAccrued:  totals.Accrued.StringFixed(2),
		TotalDeducted: totals.Deducted.StringFixed(2),
		Net:           totals.Net().StringFixed(2),
	}, nil
}
