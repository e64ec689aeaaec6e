package payment

import "errors"

var (
	ErrPaymentNotFound = errors.New("payment not found")
	// ErrPaymentExists maps the (employee, period, payment type) unique
	// key: this stage already ran for this employee and period.
	ErrPaymentExists = errors.New("payment already exists for this period")
	// ErrZeroStandardHours guards the hourly-rate division; a calendar
	// month always has weekdays, so this only fires on corrupt input.
	ErrZeroStandardHours = errors.New("standard hours for period is zero")
)
