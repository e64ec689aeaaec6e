package timesheet

import (
	"time"

	"github.com/shopspring/decimal"
)

// TimesheetStatus enum
type TimesheetStatus string

const (
	StatusDraft     TimesheetStatus = "draft"
	StatusConfirmed TimesheetStatus = "confirmed"
)

// Timesheet - one per (employee, period). TotalHours is derived: it always
// equals the sum of entry hours and is recomputed in the same transaction
// as any entry mutation.
type Timesheet struct {
	ID          string
	EmployeeID  string
	PeriodMonth int
	PeriodYear  int
	Status      TimesheetStatus
	TotalHours  decimal.Decimal
	ConfirmedBy *string
	ConfirmedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Entries []TimesheetEntry
}

// TimesheetEntry - one mark per calendar day
type TimesheetEntry struct {
	ID           string
	TimesheetID  string
	Date         time.Time
	MarkTypeCode string
	Hours        decimal.Decimal
}

// SumEntryHours adds up the hours of all entries. Stored TotalHours must
// equal this at every observation point.
func (t Timesheet) SumEntryHours() decimal.Decimal {
	total := decimal.Zero
	for _, e := range t.Entries {
		total = total.Add(e.Hours)
	}
	return total
}

// CountDays returns the number of entries carrying the given mark code.
func (t Timesheet) CountDays(markTypeCode string) int {
	n := 0
	for _, e := range t.Entries {
		if e.MarkTypeCode == markTypeCode {
			n++
		}
	}
	return n
}
