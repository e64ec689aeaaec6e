package timesheet

import "context"

type TimesheetService interface {
	// RecordEntry inserts or replaces the mark for one date and
	// recomputes the timesheet total in the same transaction.
	RecordEntry(ctx context.Context, req RecordEntryRequest) (TimesheetResponse, error)
	// Confirm transitions draft to confirmed; entries become immutable.
	Confirm(ctx context.Context, req ConfirmRequest) (TimesheetResponse, error)
	Get(ctx context.Context, employeeID string, month, year int) (TimesheetResponse, error)
}
