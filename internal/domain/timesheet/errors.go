package timesheet

import "errors"

var (
	ErrTimesheetNotFound = errors.New("timesheet not found")
	// ErrTimesheetExists maps the (employee, period) unique key on a
	// concurrent first-entry race.
	ErrTimesheetExists = errors.New("timesheet already exists for this period")
	// ErrTimesheetConfirmed rejects entry mutation after confirmation:
	// downstream money calculations must stay reproducible.
	ErrTimesheetConfirmed = errors.New("timesheet already confirmed, entries are immutable")
	// ErrTimesheetAlreadyConfirmed surfaces a repeated confirmation
	// attempt; confirmation is never silently idempotent.
	ErrTimesheetAlreadyConfirmed = errors.New("timesheet already confirmed")
	ErrInvalidHours              = errors.New("entry hours must not be negative")
	ErrDateOutsidePeriod         = errors.New("entry date outside timesheet period")
)
