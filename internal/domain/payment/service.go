package payment

import (
	"context"

	"github.com/shopspring/decimal"
)

// CalculationService runs the accrual and deduction stages of the
// payroll pipeline for one employee, plus the period-wide batch forms.
type CalculationService interface {
	// BaseSalary computes the base pay amount without persisting it.
	// Deterministic for unchanged inputs.
	BaseSalary(ctx context.Context, employeeID string, month, year int) (decimal.Decimal, error)
	SaveBaseSalary(ctx context.Context, req CalculationRequest) (PaymentResponse, error)

	SaveRoleBonus(ctx context.Context, req CalculationRequest) (PaymentResponse, error)
	// SaveSeniorityBonus returns nil without error when the employee has
	// not completed a full year of service.
	SaveSeniorityBonus(ctx context.Context, req CalculationRequest) (*PaymentResponse, error)
	// SaveSickLeave and SaveVacationPay return nil without error when the
	// confirmed timesheet has no matching days.
	SaveSickLeave(ctx context.Context, req CalculationRequest) (*PaymentResponse, error)
	SaveVacationPay(ctx context.Context, req CalculationRequest) (*PaymentResponse, error)

	// SaveTaxes creates the missing income-tax and social-tax deductions
	// from the current accrual sum; each is checked independently.
	SaveTaxes(ctx context.Context, req CalculationRequest) ([]PaymentResponse, error)
	DeleteTaxes(ctx context.Context, req CalculationRequest) error

	BatchBaseSalary(ctx context.Context, req BatchRequest) (BatchResult, error)
	BatchLeavePay(ctx context.Context, req BatchRequest) (BatchResult, error)
	BatchTaxes(ctx context.Context, req BatchRequest) (BatchResult, error)

	ListPayments(ctx context.Context, employeeID string, month, year int) ([]PaymentResponse, error)
	StageStatus(ctx context.Context, employeeID string, month, year int) (StageStatusResponse, error)
	PeriodTotals(ctx context.Context, month, year int) (PeriodTotalsResponse, error)
}
