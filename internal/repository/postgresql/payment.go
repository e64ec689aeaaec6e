package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/opsuite/payroll-backend-go/internal/domain/catalog"
	"github.com/opsuite/payroll-backend-go/internal/domain/payment"
	"github.com/opsuite/payroll-backend-go/internal/pkg/database"
)

type paymentRepository struct {
	db *database.DB
}

func NewPaymentRepository(db *database.DB) payment.PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, p payment.Payment) (payment.Payment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payments (id, employee_id, period_month, period_year, payment_type_code, amount, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, employee_id, period_month, period_year, payment_type_code, amount, description, created_at
	`

	var created payment.Payment
	err := q.QueryRow(ctx, query,
		uuid.NewString(), p.EmployeeID, p.PeriodMonth, p.PeriodYear, p.PaymentTypeCode, p.Amount, p.Description,
	).Scan(
		&created.ID, &created.EmployeeID, &created.PeriodMonth, &created.PeriodYear,
		&created.PaymentTypeCode, &created.Amount, &created.Description, &created.CreatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uk_payments_employee_period_type") {
			return payment.Payment{}, payment.ErrPaymentExists
		}
		return payment.Payment{}, fmt.Errorf("failed to create payment: %w", err)
	}

	return created, nil
}

func (r *paymentRepository) GetByEmployeePeriodType(ctx context.Context, employeeID string, month, year int, typeCode string) (payment.Payment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.employee_id, p.period_month, p.period_year, p.payment_type_code,
			   p.amount, p.description, p.created_at,
			   pt.name as payment_type_name, pt.category
		FROM payments p
		JOIN payment_types pt ON p.payment_type_code = pt.code
		WHERE p.employee_id = $1 AND p.period_month = $2 AND p.period_year = $3 AND p.payment_type_code = $4
	`

	var pay payment.Payment
	err := q.QueryRow(ctx, query, employeeID, month, year, typeCode).Scan(
		&pay.ID, &pay.EmployeeID, &pay.PeriodMonth, &pay.PeriodYear, &pay.PaymentTypeCode,
		&pay.Amount, &pay.Description, &pay.CreatedAt,
		&pay.PaymentTypeName, &pay.Category,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payment.Payment{}, payment.ErrPaymentNotFound
		}
		return payment.Payment{}, fmt.Errorf("failed to get payment: %w", err)
	}

	return pay, nil
}

func (r *paymentRepository) ExistsByType(ctx context.Context, employeeID string, month, year int, typeCode string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS(
			SELECT 1 FROM payments
			WHERE employee_id = $1 AND period_month = $2 AND period_year = $3 AND payment_type_code = $4
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, month, year, typeCode).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check payment existence: %w", err)
	}

	return exists, nil
}

func (r *paymentRepository) ExistsByCategory(ctx context.Context, employeeID string, month, year int, category catalog.PaymentCategory, excludeTypeCode string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS(
			SELECT 1
			FROM payments p
			JOIN payment_types pt ON p.payment_type_code = pt.code
			WHERE p.employee_id = $1 AND p.period_month = $2 AND p.period_year = $3
			  AND pt.category = $4
			  AND ($5 = '' OR p.payment_type_code <> $5)
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, month, year, category, excludeTypeCode).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check payment category existence: %w", err)
	}

	return exists, nil
}

func (r *paymentRepository) ListByEmployeePeriod(ctx context.Context, employeeID string, month, year int) ([]payment.Payment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.employee_id, p.period_month, p.period_year, p.payment_type_code,
			   p.amount, p.description, p.created_at,
			   pt.name as payment_type_name, pt.category
		FROM payments p
		JOIN payment_types pt ON p.payment_type_code = pt.code
		WHERE p.employee_id = $1 AND p.period_month = $2 AND p.period_year = $3
		ORDER BY pt.category, p.created_at
	`

	rows, err := q.Query(ctx, query, employeeID, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	var payments []payment.Payment
	for rows.Next() {
		var pay payment.Payment
		if err := rows.Scan(
			&pay.ID, &pay.EmployeeID, &pay.PeriodMonth, &pay.PeriodYear, &pay.PaymentTypeCode,
			&pay.Amount, &pay.Description, &pay.CreatedAt,
			&pay.PaymentTypeName, &pay.Category,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, pay)
	}

	return payments, nil
}

func (r *paymentRepository) EmployeeTotals(ctx context.Context, employeeID string, month, year int) (payment.Totals, error) {
	q := GetQuerier(ctx, r.db)

	// Deductions are stored negative; the magnitude is reported.
	query := `
		SELECT COALESCE(SUM(p.amount) FILTER (WHERE pt.category = 'accrual'), 0) as accrued,
			   COALESCE(-SUM(p.amount) FILTER (WHERE pt.category = 'deduction'), 0) as deducted
		FROM payments p
		JOIN payment_types pt ON p.payment_type_code = pt.code
		WHERE p.employee_id = $1 AND p.period_month = $2 AND p.period_year = $3
	`

	var totals payment.Totals
	if err := q.QueryRow(ctx, query, employeeID, month, year).Scan(&totals.Accrued, &totals.Deducted); err != nil {
		return payment.Totals{}, fmt.Errorf("failed to sum employee payments: %w", err)
	}

	return totals, nil
}

func (r *paymentRepository) DeleteByType(ctx context.Context, employeeID string, month, year int, typeCode string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM payments
		WHERE employee_id = $1 AND period_month = $2 AND period_year = $3 AND payment_type_code = $4
		RETURNING id
	`

	var deletedID string
	err := q.QueryRow(ctx, query, employeeID, month, year, typeCode).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payment.ErrPaymentNotFound
		}
		return fmt.Errorf("failed to delete payment: %w", err)
	}

	return nil
}

func (r *paymentRepository) PeriodTotals(ctx context.Context, month, year int) (payment.Totals, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(p.amount) FILTER (WHERE pt.category = 'accrual'), 0) as accrued,
			   COALESCE(-SUM(p.amount) FILTER (WHERE pt.category = 'deduction'), 0) as deducted
		FROM payments p
		JOIN payment_types pt ON p.payment_type_code = pt.code
		WHERE p.period_month = $1 AND p.period_year = $2
	`

	var totals payment.Totals
	if err := q.QueryRow(ctx, query, month, year).Scan(&totals.Accrued, &totals.Deducted); err != nil {
		return payment.Totals{}, fmt.Errorf("failed to sum period payments: %w", err)
	}

	return totals, nil
}
