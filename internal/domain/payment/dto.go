package payment

import (
	"github.com/opsuite/payroll-backend-go/internal/pkg/validator"
)

// CalculationRequest identifies the employee and period a single
// calculation stage should run for.
type CalculationRequest struct {
	EmployeeID  string `json:"employee_id"`
	PeriodMonth int    `json:"period_month"`
	PeriodYear  int    `json:"period_year"`
}

func (r *CalculationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if r.PeriodMonth < 1 || r.PeriodMonth > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "period_month",
			Message: "period_month must be between 1 and 12",
		})
	}
	if r.PeriodYear < 2000 {
		errs = append(errs, validator.ValidationError{
			Field:   "period_year",
			Message: "period_year is invalid",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type BatchRequest struct {
	PeriodMonth int `json:"period_month"`
	PeriodYear  int `json:"period_year"`
}

func (r *BatchRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.PeriodMonth < 1 || r.PeriodMonth > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "period_month",
			Message: "period_month must be between 1 and 12",
		})
	}
	if r.PeriodYear < 2000 {
		errs = append(errs, validator.ValidationError{
			Field:   "period_year",
			Message: "period_year is invalid",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PaymentResponse struct {
	ID              string `json:"id"`
	EmployeeID      string `json:"employee_id"`
	PeriodMonth     int    `json:"period_month"`
	PeriodYear      int    `json:"period_year"`
	PaymentTypeCode string `json:"payment_type_code"`
	PaymentTypeName string `json:"payment_type_name,omitempty"`
	Category        string `json:"category,omitempty"`
	Amount          string `json:"amount"`
	Description     string `json:"description"`
}

// BatchResult - outcome of one batch run; failures are logged and
// counted, never escalated.
type BatchResult struct {
	Processed int `json:"processed"`
	Skipped   int `json:"skipped"`
}

type PeriodTotalsResponse struct {
	PeriodMonth   int    `json:"period_month"`
	PeriodYear    int    `json:"period_year"`
	TotalAccrued  string `json:"total_accrued"`
	TotalDeducted string `json:"total_deducted"`
	Net           string `json:"net"`
}

// StageStatusResponse tells the UI which stages have run for the
// employee and period.
type StageStatusResponse struct {
	EmployeeID    string `json:"employee_id"`
	PeriodMonth   int    `json:"period_month"`
	PeriodYear    int    `json:"period_year"`
	TimeConfirmed bool   `json:"time_confirmed"`
	BasePaid      bool   `json:"base_paid"`
	Discretionary bool   `json:"discretionary_accrued"`
	TaxesApplied  bool   `json:"taxes_applied"`
	Settled       bool   `json:"settled"`
}
