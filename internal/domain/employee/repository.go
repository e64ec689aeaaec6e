package employee

import "context"

// EmployeeRepository is the read-only boundary to the employee directory
// maintained by the HR application.
type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	// GetActive returns employees employed during the given period:
	// hired on or before its last day and not terminated before its
	// first day.
	GetActive(ctx context.Context, periodMonth, periodYear int) ([]Employee, error)
}
