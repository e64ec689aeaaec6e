package calculation

import (
	"context"
	"fmt"
	"time"

	"github.com/opsuite/payroll-backend-go/internal/domain/catalog"
	"github.com/opsuite/payroll-backend-go/internal/domain/payment"
	"github.com/opsuite/payroll-backend-go/internal/domain/stage"
)

// SaveRoleBonus grants the flat percentage of the period's base salary
// accrual attached to the employee's role.
func (s *CalculationServiceImpl) SaveRoleBonus(ctx context.Context, req payment.CalculationRequest) (payment.PaymentResponse, error) {
	if err := req.Validate(); err != nil {
		return payment.PaymentResponse{}, err
	}

	var created payment.Payment
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		snap, err := s.snapshot(ctx, req.EmployeeID, req.PeriodMonth, req.PeriodYear)
		if err != nil {
			return err
		}
		if err := stage.Check(stage.OpDiscretionary, snap); err != nil {
			return err
		}

		exists, err := s.paymentRepo.ExistsByType(ctx, req.EmployeeID, req.PeriodMonth, req.PeriodYear, catalog.PaymentRoleBonus)
		if err != nil {
			return err
		}
		if exists {
			return payment.ErrPaymentExists
		}

		base, err := s.paymentRepo.GetByEmployeePeriodType(ctx, req.EmployeeID, req.PeriodMonth, req.PeriodYear, catalog.PaymentBaseSalary)
		if err != nil {
			return err
		}

		created, err = s.paymentRepo.Create(ctx, payment.Payment{
			EmployeeID:      req.EmployeeID,
			PeriodMonth:     req.PeriodMonth,
			PeriodYear:      req.PeriodYear,
			PaymentTypeCode: catalog.PaymentRoleBonus,
			Amount:          base.Amount.Mul(roleBonusRate).Round(2),
			Description:     "Monthly role bonus (25% of base salary)",
		})
		return err
	})
	if err != nil {
		return payment.PaymentResponse{}, err
	}

	return mapToPaymentResponse(created), nil
}

// SaveSeniorityBonus grants a tiered percentage of the base salary
// accrual keyed by completed years of service. Less than one full year
// grants nothing and is not an error.
func (s *CalculationServiceImpl) SaveSeniorityBonus(ctx context.Context, req payment.CalculationRequest) (*payment.PaymentResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var created *payment.Payment
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		snap, err := s.snapshot(ctx, req.EmployeeID, req.PeriodMonth, req.PeriodYear)
		if err != nil {
			return err
		}
		if err := stage.Check(stage.OpDiscretionary, snap); err != nil {
			return err
		}

		exists, err := s.paymentRepo.ExistsByType(ctx, req.EmployeeID, req.PeriodMonth, req.PeriodYear, catalog.PaymentSeniorityBonus)
		if err != nil {
			return err
		}
		if exists {
			return payment.ErrPaymentExists
		}

		emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
		if err != nil {
			return err
		}

		// Active employees are measured against the current date; the
		// termination date fixes the figure for former employees.
		years := emp.YearsOfService(time.Now())
		tierRate, found := seniorityRate(years)
		if !found {
			return nil
		}

		base, err := s.paymentRepo.GetByEmployeePeriodType(ctx, req.EmployeeID, req.PeriodMonth, req.PeriodYear, catalog.PaymentBaseSalary)
		if err != nil {
			return err
		}

		p, err := s.paymentRepo.Create(ctx, payment.Payment{
			EmployeeID:      req.EmployeeID,
			PeriodMonth:     req.PeriodMonth,
			PeriodYear:      req.PeriodYear,
			PaymentTypeCode: catalog.PaymentSeniorityBonus,
			Amount:          base.Amount.Mul(tierRate).Round(2),
			Description:     fmt.Sprintf("Seniority bonus (%s%% for %d years of service)", tierRate.Mul(hundred).String(), years),
		})
		if err != nil {
			return err
		}
		created = &p
		return nil
	})
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, nil
	}

	resp := mapToPaymentResponse(*created)
	return &resp, nil
}
