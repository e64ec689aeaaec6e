package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/opsuite/payroll-backend-go/internal/domain/timesheet"
	"github.com/opsuite/payroll-backend-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type timesheetRepository struct {
	db *database.DB
}

func NewTimesheetRepository(db *database.DB) timesheet.TimesheetRepository {
	return &timesheetRepository{db: db}
}

func (r *timesheetRepository) GetByEmployeePeriod(ctx context.Context, employeeID string, month, year int) (timesheet.Timesheet, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, period_month, period_year, status, total_hours,
			   confirmed_by, confirmed_at, created_at, updated_at
		FROM timesheets
		WHERE employee_id = $1 AND period_month = $2 AND period_year = $3
	`

	var ts timesheet.Timesheet
	err := q.QueryRow(ctx, query, employeeID, month, year).Scan(
		&ts.ID, &ts.EmployeeID, &ts.PeriodMonth, &ts.PeriodYear, &ts.Status, &ts.TotalHours,
		&ts.ConfirmedBy, &ts.ConfirmedAt, &ts.CreatedAt, &ts.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return timesheet.Timesheet{}, timesheet.ErrTimesheetNotFound
		}
		return timesheet.Timesheet{}, fmt.Errorf("failed to get timesheet: %w", err)
	}

	entriesQuery := `
		SELECT id, timesheet_id, date, mark_type_code, hours
		FROM timesheet_entries
		WHERE timesheet_id = $1
		ORDER BY date
	`

	rows, err := q.Query(ctx, entriesQuery, ts.ID)
	if err != nil {
		return timesheet.Timesheet{}, fmt.Errorf("failed to list timesheet entries: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var e timesheet.TimesheetEntry
		if err := rows.Scan(&e.ID, &e.TimesheetID, &e.Date, &e.MarkTypeCode, &e.Hours); err != nil {
			return timesheet.Timesheet{}, fmt.Errorf("failed to scan timesheet entry: %w", err)
		}
		ts.Entries = append(ts.Entries, e)
	}

	return ts, nil
}

func (r *timesheetRepository) Create(ctx context.Context, ts timesheet.Timesheet) (timesheet.Timesheet, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO timesheets (id, employee_id, period_month, period_year, status, total_hours)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, employee_id, period_month, period_year, status, total_hours,
			confirmed_by, confirmed_at, created_at, updated_at
	`

	var created timesheet.Timesheet
	err := q.QueryRow(ctx, query,
		uuid.NewString(), ts.EmployeeID, ts.PeriodMonth, ts.PeriodYear, ts.Status, ts.TotalHours,
	).Scan(
		&created.ID, &created.EmployeeID, &created.PeriodMonth, &created.PeriodYear, &created.Status, &created.TotalHours,
		&created.ConfirmedBy, &created.ConfirmedAt, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uk_timesheets_employee_period") {
			return timesheet.Timesheet{}, timesheet.ErrTimesheetExists
		}
		return timesheet.Timesheet{}, fmt.Errorf("failed to create timesheet: %w", err)
	}

	return created, nil
}

func (r *timesheetRepository) UpsertEntry(ctx context.Context, timesheetID string, entry timesheet.TimesheetEntry, newTotal decimal.Decimal) error {
	q := GetQuerier(ctx, r.db)

	entryQuery := `
		INSERT INTO timesheet_entries (id, timesheet_id, date, mark_type_code, hours)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (timesheet_id, date) DO UPDATE SET
			mark_type_code = EXCLUDED.mark_type_code,
			hours = EXCLUDED.hours
	`

	_, err := q.Exec(ctx, entryQuery, uuid.NewString(), timesheetID, entry.Date, entry.MarkTypeCode, entry.Hours)
	if err != nil {
		return fmt.Errorf("failed to upsert timesheet entry: %w", err)
	}

	totalQuery := `
		UPDATE timesheets
		SET total_hours = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var updatedID string
	err = q.QueryRow(ctx, totalQuery, timesheetID, newTotal).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return timesheet.ErrTimesheetNotFound
		}
		return fmt.Errorf("failed to update timesheet total: %w", err)
	}

	return nil
}

func (r *timesheetRepository) Confirm(ctx context.Context, timesheetID, confirmedBy string) (timesheet.Timesheet, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE timesheets
		SET status = 'confirmed', confirmed_by = $2, confirmed_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND status = 'draft'
		RETURNING id, employee_id, period_month, period_year, status, total_hours,
			confirmed_by, confirmed_at, created_at, updated_at
	`

	var ts timesheet.Timesheet
	err := q.QueryRow(ctx, query, timesheetID, confirmedBy).Scan(
		&ts.ID, &ts.EmployeeID, &ts.PeriodMonth, &ts.PeriodYear, &ts.Status, &ts.TotalHours,
		&ts.ConfirmedBy, &ts.ConfirmedAt, &ts.CreatedAt, &ts.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return timesheet.Timesheet{}, timesheet.ErrTimesheetAlreadyConfirmed
		}
		return timesheet.Timesheet{}, fmt.Errorf("failed to confirm timesheet: %w", err)
	}

	return ts, nil
}
