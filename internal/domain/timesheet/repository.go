package timesheet

import (
	"context"

	"github.com/shopspring/decimal"
)

type TimesheetRepository interface {
	// GetByEmployeePeriod loads the timesheet with its entries.
	GetByEmployeePeriod(ctx context.Context, employeeID string, month, year int) (Timesheet, error)
	Create(ctx context.Context, ts Timesheet) (Timesheet, error)
	// UpsertEntry inserts or replaces the entry for the given date and
	// stores the recomputed total in the same operation.
	UpsertEntry(ctx context.Context, timesheetID string, entry TimesheetEntry, newTotal decimal.Decimal) error
	// Confirm flips draft to confirmed, stamping confirmer and time.
	Confirm(ctx context.Context, timesheetID, confirmedBy string) (Timesheet, error)
}
