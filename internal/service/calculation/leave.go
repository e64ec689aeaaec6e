package calculation

import (
	"context"
	"fmt"

	"github.com/opsuite/payroll-backend-go/internal/domain/catalog"
	"github.com/opsuite/payroll-backend-go/internal/domain/payment"
	"github.com/opsuite/payroll-backend-go/internal/domain/stage"
	"github.com/shopspring/decimal"
)

// SaveSickLeave pays half the daily rate per sick-marked day of the
// confirmed timesheet.
func (s *CalculationServiceImpl) SaveSickLeave(ctx context.Context, req payment.CalculationRequest) (*payment.PaymentResponse, error) {
	return s.saveLeavePay(ctx, req, leaveSpec{
		markCode:    catalog.MarkSick,
		typeCode:    catalog.PaymentSickLeave,
		factor:      sickLeaveFactor,
		description: "Sick leave pay (%d days)",
	})
}

// SaveVacationPay pays one and a half daily rates per vacation-marked
// day of the confirmed timesheet.
func (s *CalculationServiceImpl) SaveVacationPay(ctx context.Context, req payment.CalculationRequest) (*payment.PaymentResponse, error) {
	return s.saveLeavePay(ctx, req, leaveSpec{
		markCode:    catalog.MarkVacation,
		typeCode:    catalog.PaymentVacationPay,
		factor:      vacationFactor,
		description: "Vacation pay (%d days)",
	})
}

type leaveSpec struct {
	markCode    string
	typeCode    string
	factor      decimal.Decimal
	description string
}

func (s *CalculationServiceImpl) saveLeavePay(ctx context.Context, req payment.CalculationRequest, spec leaveSpec) (*payment.PaymentResponse, error) {
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

		exists, err := s.paymentRepo.ExistsByType(ctx, req.EmployeeID, req.PeriodMonth, req.PeriodYear, spec.typeCode)
		if err != nil {
			return err
		}
		if exists {
			return payment.ErrPaymentExists
		}

		ts, err := s.confirmedTimesheet(ctx, req.EmployeeID, req.PeriodMonth, req.PeriodYear)
		if err != nil {
			return err
		}

		days := ts.CountDays(spec.markCode)
		if days == 0 {
			return nil
		}

		emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
		if err != nil {
			return err
		}

		dailyRate := emp.BaseRate.DivRound(standardDaysPerMonth, 2)
		amount := dailyRate.Mul(spec.factor).Mul(decimal.NewFromInt(int64(days))).Round(2)

		p, err := s.paymentRepo.Create(ctx, payment.Payment{
			EmployeeID:      req.EmployeeID,
			PeriodMonth:     req.PeriodMonth,
			PeriodYear:      req.PeriodYear,
			PaymentTypeCode: spec.typeCode,
			Amount:          amount,
			Description:     fmt.Sprintf(spec.description, days),
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
