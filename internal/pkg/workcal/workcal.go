// Package workcal provides working-calendar math for payroll periods.
// Every Monday-Friday day counts as a working day; no holiday calendar
// is modeled.
package workcal

import (
	"time"

	"github.com/shopspring/decimal"
)

// HoursPerWorkday is the standard length of one working day.
const HoursPerWorkday = 8

// Weekdays counts the Monday-Friday days in the given month.
func Weekdays(month, year int) int {
	count := 0
	day := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	for day.Month() == time.Month(month) {
		switch day.Weekday() {
		case time.Saturday, time.Sunday:
		default:
			count++
		}
		day = day.AddDate(0, 0, 1)
	}
	return count
}

// StandardHours returns the expected working hours for the period:
// weekday count multiplied by hoursPerDay.
func StandardHours(month, year, hoursPerDay int) decimal.Decimal {
	return decimal.NewFromInt(int64(Weekdays(month, year) * hoursPerDay))
}

// PeriodEnd returns the last calendar day of the period.
func PeriodEnd(month, year int) time.Time {
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).
		AddDate(0, 1, -1)
}
