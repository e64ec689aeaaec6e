package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is the payroll view of the employee directory: identity, the
// employment window, and the position carrying the base salary rate.
// Creation and maintenance belong to the HR application; the calculation
// core only reads.
type Employee struct {
	ID              string
	FullName        string
	HireDate        time.Time
	TerminationDate *time.Time
	PositionID      string
	DepartmentID    string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Joined fields
	PositionName   string
	DepartmentName string
	BaseRate       decimal.Decimal
}

// Active reports whether the employee has no termination date yet.
func (e Employee) Active() bool {
	return e.TerminationDate == nil
}

// YearsOfService is the whole-year difference between the hire date and
// the termination date, or ref for employees still active. Boundary
// anniversaries count as completed years.
func (e Employee) YearsOfService(ref time.Time) int {
	end := ref
	if e.TerminationDate != nil {
		end = *e.TerminationDate
	}
	years := end.Year() - e.HireDate.Year()
	anniversary := e.HireDate.AddDate(years, 0, 0)
	if anniversary.After(end) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}
