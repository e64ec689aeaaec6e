package settlement

import (
	"context"

	"github.com/opsuite/payroll-backend-go/internal/domain/payment"
)

type SettlementService interface {
	// Calculate closes the period's payment ledger into one settlement
	// row. A period settles exactly once.
	Calculate(ctx context.Context, req CalculateRequest) (SettlementResponse, error)
	Batch(ctx context.Context, req payment.BatchRequest) (payment.BatchResult, error)
	ListByPeriod(ctx context.Context, month, year int) ([]SettlementResponse, error)
	MarkPaid(ctx context.Context, id, paidBy string) (SettlementResponse, error)
}
