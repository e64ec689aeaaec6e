package calculation

import (
	"context"
	"errors"
	"fmt"

	"github.com/opsuite/payroll-backend-go/internal/domain/catalog"
	"github.com/opsuite/payroll-backend-go/internal/domain/payment"
	"github.com/opsuite/payroll-backend-go/internal/domain/stage"
	"github.com/shopspring/decimal"
)

// SaveTaxes computes the statutory deductions from the period's accrual
// sum. Income tax and social tax are checked and created independently:
// one may already exist without blocking the other. A zero accrual sum
// creates nothing.
func (s *CalculationServiceImpl) SaveTaxes(ctx context.Context, req payment.CalculationRequest) ([]payment.PaymentResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var created []payment.Payment
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		snap, err := s.snapshot(ctx, req.EmployeeID, req.PeriodMonth, req.PeriodYear)
		if err != nil {
			return err
		}
		if err := stage.Check(stage.OpTaxes, snap); err != nil {
			return err
		}

		totals, err := s.paymentRepo.EmployeeTotals(ctx, req.EmployeeID, req.PeriodMonth, req.PeriodYear)
		if err != nil {
			return err
		}
		if !totals.Accrued.IsPositive() {
			return nil
		}

		taxes := []struct {
			typeCode    string
			rate        decimal.Decimal
			description string
		}{
			{catalog.PaymentIncomeTax, incomeTaxRate, "Income tax (13%)"},
			{catalog.PaymentSocialTax, socialTaxRate, "Social tax (1%)"},
		}

		for _, tax := range taxes {
			exists, err := s.paymentRepo.ExistsByType(ctx, req.EmployeeID, req.PeriodMonth, req.PeriodYear, tax.typeCode)
			if err != nil {
				return err
			}
			if exists {
				continue
			}

			p, err := s.paymentRepo.Create(ctx, payment.Payment{
				EmployeeID:      req.EmployeeID,
				PeriodMonth:     req.PeriodMonth,
				PeriodYear:      req.PeriodYear,
				PaymentTypeCode: tax.typeCode,
				Amount:          totals.Accrued.Mul(tax.rate).Round(2).Neg(),
				Description:     tax.description,
			})
			if err != nil {
				return err
			}
			created = append(created, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	responses := make([]payment.PaymentResponse, 0, len(created))
	for _, p := range created {
		responses = append(responses, mapToPaymentResponse(p))
	}
	return responses, nil
}

// DeleteTaxes removes both statutory deductions for the period. Rejected
// once a settlement exists: the persisted net figure would desynchronize.
func (s *CalculationServiceImpl) DeleteTaxes(ctx context.Context, req payment.CalculationRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	return s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		settled, err := s.settlementRepo.Exists(ctx, req.EmployeeID, req.PeriodMonth, req.PeriodYear)
		if err != nil {
			return err
		}
		if settled {
			return stage.ErrSettled
		}

		for _, typeCode := range []string{catalog.PaymentIncomeTax, catalog.PaymentSocialTax} {
			err := s.paymentRepo.DeleteByType(ctx, req.EmployeeID, req.PeriodMonth, req.PeriodYear, typeCode)
			if err != nil && !errors.Is(err, payment.ErrPaymentNotFound) {
				return fmt.Errorf("failed to delete %s: %w", typeCode, err)
			}
		}
		return nil
	})
}
