package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/opsuite/payroll-backend-go/internal/domain/employee"
	"github.com/opsuite/payroll-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.full_name, e.hire_date, e.termination_date,
			   e.position_id, e.department_id, e.created_at, e.updated_at,
			   p.name as position_name, d.name as department_name, p.base_rate
		FROM employees e
		JOIN positions p ON e.position_id = p.id
		JOIN departments d ON e.department_id = d.id
		WHERE e.id = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&emp.ID, &emp.FullName, &emp.HireDate, &emp.TerminationDate,
		&emp.PositionID, &emp.DepartmentID, &emp.CreatedAt, &emp.UpdatedAt,
		&emp.PositionName, &emp.DepartmentName, &emp.BaseRate,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}

func (r *employeeRepository) GetActive(ctx context.Context, periodMonth, periodYear int) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	// Employed during the period: hired on or before its last day and not
	// terminated before its first day.
	query := `
		SELECT e.id, e.full_name, e.hire_date, e.termination_date,
			   e.position_id, e.department_id, e.created_at, e.updated_at,
			   p.name as position_name, d.name as department_name, p.base_rate
		FROM employees e
		JOIN positions p ON e.position_id = p.id
		JOIN departments d ON e.department_id = d.id
		WHERE e.hire_date <= (make_date($2, $1, 1) + INTERVAL '1 month - 1 day')
		  AND (e.termination_date IS NULL OR e.termination_date >= make_date($2, $1, 1))
		ORDER BY e.full_name
	`

	rows, err := q.Query(ctx, query, periodMonth, periodYear)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		if err := rows.Scan(
			&emp.ID, &emp.FullName, &emp.HireDate, &emp.TerminationDate,
			&emp.PositionID, &emp.DepartmentID, &emp.CreatedAt, &emp.UpdatedAt,
			&emp.PositionName, &emp.DepartmentName, &emp.BaseRate,
		); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	return employees, nil
}
