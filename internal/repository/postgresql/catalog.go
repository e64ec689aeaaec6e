package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/opsuite/payroll-backend-go/internal/domain/catalog"
	"github.com/opsuite/payroll-backend-go/internal/pkg/database"
)

type catalogRepository struct {
	db *database.DB
}

func NewCatalogRepository(db *database.DB) catalog.CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) GetPaymentType(ctx context.Context, code string) (catalog.PaymentType, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT code, name, category FROM payment_types WHERE code = $1`

	var pt catalog.PaymentType
	err := q.QueryRow(ctx, query, code).Scan(&pt.Code, &pt.Name, &pt.Category)
	if err != nil {
		if err == pgx.ErrNoRows {
			return catalog.PaymentType{}, catalog.ErrPaymentTypeNotFound
		}
		return catalog.PaymentType{}, fmt.Errorf("failed to get payment type: %w", err)
	}

	return pt, nil
}

func (r *catalogRepository) GetMarkType(ctx context.Context, code string) (catalog.MarkType, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT code, name FROM mark_types WHERE code = $1`

	var mt catalog.MarkType
	err := q.QueryRow(ctx, query, code).Scan(&mt.Code, &mt.Name)
	if err != nil {
		if err == pgx.ErrNoRows {
			return catalog.MarkType{}, catalog.ErrMarkTypeNotFound
		}
		return catalog.MarkType{}, fmt.Errorf("failed to get mark type: %w", err)
	}

	return mt, nil
}

func (r *catalogRepository) ListPaymentTypes(ctx context.Context) ([]catalog.PaymentType, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT code, name, category FROM payment_types ORDER BY category, code`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list payment types: %w", err)
	}
	defer rows.Close()

	var types []catalog.PaymentType
	for rows.Next() {
		var pt catalog.PaymentType
		if err := rows.Scan(&pt.Code, &pt.Name, &pt.Category); err != nil {
			return nil, fmt.Errorf("failed to scan payment type: %w", err)
		}
		types = append(types, pt)
	}

	return types, nil
}
