package calculation

import (
	"context"

	"github.com/opsuite/payroll-backend-go/internal/domain/payment"
)

// BatchBaseSalary runs the base salary stage for every employee active in
// the period. One employee's failure never stops the rest; it is logged
// and counted as skipped.
func (s *CalculationServiceImpl) BatchBaseSalary(ctx context.Context, req payment.BatchRequest) (payment.BatchResult, error) {
	return s.runBatch(ctx, req, "base_salary", func(ctx context.Context, calc payment.CalculationRequest) error {
		_, err := s.SaveBaseSalary(ctx, calc)
		return err
	})
}

// BatchLeavePay runs sick leave and vacation pay for every active
// employee. Both leave kinds must succeed for the employee to count as
// processed.
func (s *CalculationServiceImpl) BatchLeavePay(ctx context.Context, req payment.BatchRequest) (payment.BatchResult, error) {
	return s.runBatch(ctx, req, "leave_pay", func(ctx context.Context, calc payment.CalculationRequest) error {
		if _, err := s.SaveSickLeave(ctx, calc); err != nil {
			return err
		}
		_, err := s.SaveVacationPay(ctx, calc)
		return err
	})
}

// BatchTaxes runs the statutory deduction stage for every active employee.
func (s *CalculationServiceImpl) BatchTaxes(ctx context.Context, req payment.BatchRequest) (payment.BatchResult, error) {
	return s.runBatch(ctx, req, "taxes", func(ctx context.Context, calc payment.CalculationRequest) error {
		_, err := s.SaveTaxes(ctx, calc)
		return err
	})
}

// runBatch iterates active employees sequentially and applies the stage
// function to each. Each call opens its own transaction, so a failed
// employee rolls back alone.
func (s *CalculationServiceImpl) runBatch(ctx context.Context, req payment.BatchRequest, stageName string, fn func(ctx context.Context, calc payment.CalculationRequest) error) (payment.BatchResult, error) {
	var result payment.BatchResult

	if err := req.Validate(); err != nil {
		return result, err
	}

	employees, err := s.employeeRepo.GetActive(ctx, req.PeriodMonth, req.PeriodYear)
	if err != nil {
		return result, err
	}

	for _, emp := range employees {
		calc := payment.CalculationRequest{
			EmployeeID:  emp.ID,
			PeriodMonth: req.PeriodMonth,
			PeriodYear:  req.PeriodYear,
		}
		if err := fn(ctx, calc); err != nil {
			s.logger.Warn("batch calculation skipped employee",
				"stage", stageName,
				"employee_id", emp.ID,
				"period_month", req.PeriodMonth,
				"period_year", req.PeriodYear,
				"error", err,
			)
			result.Skipped++
			continue
		}
		result.Processed++
	}

	return result, nil
}
