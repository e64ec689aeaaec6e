package settlement

import (
	"github.com/opsuite/payroll-backend-go/internal/pkg/validator"
)

type CalculateRequest struct {
	EmployeeID  string `json:"employee_id"`
	PeriodMonth int    `json:"period_month"`
	PeriodYear  int    `json:"period_year"`
}

func (r *CalculateRequest) Validate() error {
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

type SettlementResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	EmployeeName  string  `json:"employee_name,omitempty"`
	PeriodMonth   int     `json:"period_month"`
	PeriodYear    int     `json:"period_year"`
	TotalAccrued  string  `json:"total_accrued"`
	TotalDeducted string  `json:"total_deducted"`
	Net           string  `json:"net"`
	Status        string  `json:"status"`
	CalculatedAt  string  `json:"calculated_at"`
	PaidAt        *string `json:"paid_at,omitempty"`
}
