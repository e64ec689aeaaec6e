package timesheet

import (
	"github.com/opsuite/payroll-backend-go/internal/pkg/validator"
)

type RecordEntryRequest struct {
	EmployeeID   string `json:"-"` // From URL
	PeriodMonth  int    `json:"period_month"`
	PeriodYear   int    `json:"period_year"`
	Date         string `json:"date"`
	MarkTypeCode string `json:"mark_type_code"`
	Hours        string `json:"hours"`
}

func (r *RecordEntryRequest) Validate() error {
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
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}
	if validator.IsEmpty(r.MarkTypeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "mark_type_code",
			Message: "mark_type_code is required",
		})
	}
	if validator.IsEmpty(r.Hours) {
		errs = append(errs, validator.ValidationError{
			Field:   "hours",
			Message: "hours is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ConfirmRequest struct {
	EmployeeID  string `json:"-"` // From URL
	PeriodMonth int    `json:"period_month"`
	PeriodYear  int    `json:"period_year"`
	ConfirmedBy string `json:"-"` // From JWT
}

func (r *ConfirmRequest) Validate() error {
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

type TimesheetResponse struct {
	ID          string          `json:"id"`
	EmployeeID  string          `json:"employee_id"`
	PeriodMonth int             `json:"period_month"`
	PeriodYear  int             `json:"period_year"`
	Status      string          `json:"status"`
	TotalHours  string          `json:"total_hours"`
	ConfirmedBy *string         `json:"confirmed_by,omitempty"`
	ConfirmedAt *string         `json:"confirmed_at,omitempty"`
	Entries     []EntryResponse `json:"entries"`
}

type EntryResponse struct {
	Date         string `json:"date"`
	MarkTypeCode string `json:"mark_type_code"`
	Hours        string `json:"hours"`
}
