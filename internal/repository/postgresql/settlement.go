package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/opsuite/payroll-backend-go/internal/domain/settlement"
	"github.com/opsuite/payroll-backend-go/internal/pkg/database"
)

type settlementRepository struct {
	db *database.DB
}

func NewSettlementRepository(db *database.DB) settlement.SettlementRepository {
	return &settlementRepository{db: db}
}

func (r *settlementRepository) Create(ctx context.Context, s settlement.Settlement) (settlement.Settlement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO settlements (id, employee_id, period_month, period_year,
			total_accrued, total_deducted, net, status, calculated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING id, employee_id, period_month, period_year,
			total_accrued, total_deducted, net, status, calculated_at,
			paid_at, paid_by, created_at, updated_at
	`

	var created settlement.Settlement
	err := q.QueryRow(ctx, query,
		uuid.NewString(), s.EmployeeID, s.PeriodMonth, s.PeriodYear,
		s.TotalAccrued, s.TotalDeducted, s.Net, s.Status,
	).Scan(
		&created.ID, &created.EmployeeID, &created.PeriodMonth, &created.PeriodYear,
		&created.TotalAccrued, &created.TotalDeducted, &created.Net, &created.Status, &created.CalculatedAt,
		&created.PaidAt, &created.PaidBy, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uk_settlements_employee_period") {
			return settlement.Settlement{}, settlement.ErrSettlementExists
		}
		return settlement.Settlement{}, fmt.Errorf("failed to create settlement: %w", err)
	}

	return created, nil
}

func (r *settlementRepository) GetByEmployeePeriod(ctx context.Context, employeeID string, month, year int) (settlement.Settlement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.employee_id, s.period_month, s.period_year,
			   s.total_accrued, s.total_deducted, s.net, s.status, s.calculated_at,
			   s.paid_at, s.paid_by, s.created_at, s.updated_at,
			   e.full_name as employee_name
		FROM settlements s
		JOIN employees e ON s.employee_id = e.id
		WHERE s.employee_id = $1 AND s.period_month = $2 AND s.period_year = $3
	`

	var st settlement.Settlement
	err := q.QueryRow(ctx, query, employeeID, month, year).Scan(
		&st.ID, &st.EmployeeID, &st.PeriodMonth, &st.PeriodYear,
		&st.TotalAccrued, &st.TotalDeducted, &st.Net, &st.Status, &st.CalculatedAt,
		&st.PaidAt, &st.PaidBy, &st.CreatedAt, &st.UpdatedAt,
		&st.EmployeeName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return settlement.Settlement{}, settlement.ErrSettlementNotFound
		}
		return settlement.Settlement{}, fmt.Errorf("failed to get settlement: %w", err)
	}

	return st, nil
}

func (r *settlementRepository) Exists(ctx context.Context, employeeID string, month, year int) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS(
			SELECT 1 FROM settlements
			WHERE employee_id = $1 AND period_month = $2 AND period_year = $3
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, month, year).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check settlement existence: %w", err)
	}

	return exists, nil
}

func (r *settlementRepository) ListByPeriod(ctx context.Context, month, year int) ([]settlement.Settlement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.employee_id, s.period_month, s.period_year,
			   s.total_accrued, s.total_deducted, s.net, s.status, s.calculated_at,
			   s.paid_at, s.paid_by, s.created_at, s.updated_at,
			   e.full_name as employee_name
		FROM settlements s
		JOIN employees e ON s.employee_id = e.id
		WHERE s.period_month = $1 AND s.period_year = $2
		ORDER BY e.full_name
	`

	rows, err := q.Query(ctx, query, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list settlements: %w", err)
	}
	defer rows.Close()

	var settlements []settlement.Settlement
	for rows.Next() {
		var st settlement.Settlement
		if err := rows.Scan(
			&st.ID, &st.EmployeeID, &st.PeriodMonth, &st.PeriodYear,
			&st.TotalAccrued, &st.TotalDeducted, &st.Net, &st.Status, &st.CalculatedAt,
			&st.PaidAt, &st.PaidBy, &st.CreatedAt, &st.UpdatedAt,
			&st.EmployeeName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan settlement: %w", err)
		}
		settlements = append(settlements, st)
	}

	return settlements, nil
}

func (r *settlementRepository) MarkPaid(ctx context.Context, id, paidBy string) (settlement.Settlement, error) {
	q := GetQuerier(ctx, r.db)

	// Check current status so a repeated payment surfaces distinctly from
	// an unknown id.
	var status string
	err := q.QueryRow(ctx, `SELECT status FROM settlements WHERE id = $1`, id).Scan(&status)
	if err != nil {
		if err == pgx.ErrNoRows {
			return settlement.Settlement{}, settlement.ErrSettlementNotFound
		}
		return settlement.Settlement{}, fmt.Errorf("failed to check settlement status: %w", err)
	}
	if status == string(settlement.StatusPaid) {
		return settlement.Settlement{}, settlement.ErrAlreadyPaid
	}

	query := `
		UPDATE settlements
		SET status = 'paid', paid_at = NOW(), paid_by = $2, updated_at = NOW()
		WHERE id = $1 AND status = 'calculated'
		RETURNING id, employee_id, period_month, period_year,
			total_accrued, total_deducted, net, status, calculated_at,
			paid_at, paid_by, created_at, updated_at
	`

	var st settlement.Settlement
	err = q.QueryRow(ctx, query, id, paidBy).Scan(
		&st.ID, &st.EmployeeID, &st.PeriodMonth, &st.PeriodYear,
		&st.TotalAccrued, &st.TotalDeducted, &st.Net, &st.Status, &st.CalculatedAt,
		&st.PaidAt, &st.PaidBy, &st.CreatedAt, &st.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return settlement.Settlement{}, settlement.ErrAlreadyPaid
		}
		return settlement.Settlement{}, fmt.Errorf("failed to mark settlement paid: %w", err)
	}

	return st, nil
}
