package response

import (
	"errors"
	"net/http"

	"github.com/opsuite/payroll-backend-go/internal/domain/catalog"
	"github.com/opsuite/payroll-backend-go/internal/domain/employee"
	"github.com/opsuite/payroll-backend-go/internal/domain/payment"
	"github.com/opsuite/payroll-backend-go/internal/domain/settlement"
	"github.com/opsuite/payroll-backend-go/internal/domain/stage"
	"github.com/opsuite/payroll-backend-go/internal/domain/timesheet"
	"github.com/opsuite/payroll-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Missing referenced entities
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrPositionNotFound):
		NotFound(w, "Position not found")
	case errors.Is(err, catalog.ErrPaymentTypeNotFound):
		NotFound(w, "Payment type not found")
	case errors.Is(err, catalog.ErrMarkTypeNotFound):
		NotFound(w, "Mark type not found")
	case errors.Is(err, timesheet.ErrTimesheetNotFound):
		NotFound(w, "Timesheet not found")
	case errors.Is(err, payment.ErrPaymentNotFound):
		NotFound(w, "Payment not found")
	case errors.Is(err, settlement.ErrSettlementNotFound):
		NotFound(w, "Settlement not found")

	// Timesheet domain errors
	case errors.Is(err, timesheet.ErrTimesheetConfirmed):
		Conflict(w, "Timesheet already confirmed, entries are immutable")
	case errors.Is(err, timesheet.ErrTimesheetAlreadyConfirmed):
		Conflict(w, "Timesheet already confirmed")
	case errors.Is(err, timesheet.ErrTimesheetExists):
		Conflict(w, "Timesheet already exists for this period")
	case errors.Is(err, timesheet.ErrInvalidHours):
		BadRequest(w, "Entry hours must not be negative", nil)
	case errors.Is(err, timesheet.ErrDateOutsidePeriod):
		BadRequest(w, "Entry date outside timesheet period", nil)

	// Calculation ordering errors
	case errors.Is(err, stage.ErrTimeNotConfirmed):
		Conflict(w, "No confirmed timesheet for this period")
	case errors.Is(err, stage.ErrBaseSalaryExists):
		Conflict(w, "Base salary already calculated for this period")
	case errors.Is(err, stage.ErrBaseSalaryMissing):
		Conflict(w, "Base salary must be calculated first")
	case errors.Is(err, stage.ErrDiscretionaryExists):
		Conflict(w, "Discretionary accruals already exist for this period")
	case errors.Is(err, stage.ErrTaxesExist):
		Conflict(w, "Taxes already calculated for this period")
	case errors.Is(err, stage.ErrSettled):
		Conflict(w, "Period already settled")

	// Payment domain errors
	case errors.Is(err, payment.ErrPaymentExists):
		Conflict(w, "Payment already exists for this period")
	case errors.Is(err, payment.ErrZeroStandardHours):
		BadRequest(w, "Standard hours for period is zero", nil)

	// Settlement domain errors
	case errors.Is(err, settlement.ErrSettlementExists):
		Conflict(w, "Settlement already exists for this period")
	case errors.Is(err, settlement.ErrNothingToSettle):
		BadRequest(w, "No accruals to settle for this period", nil)
	case errors.Is(err, settlement.ErrAlreadyPaid):
		Conflict(w, "Settlement already paid")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
