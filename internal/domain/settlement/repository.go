package settlement

import "context"

type SettlementRepository interface {
	Create(ctx context.Context, s Settlement) (Settlement, error)
	GetByEmployeePeriod(ctx context.Context, employeeID string, month, year int) (Settlement, error)
	Exists(ctx context.Context, employeeID string, month, year int) (bool, error)
	ListByPeriod(ctx context.Context, month, year int) ([]Settlement, error)
	// MarkPaid flips calculated to paid, stamping payer and time.
	MarkPaid(ctx context.Context, id, paidBy string) (Settlement, error)
}
