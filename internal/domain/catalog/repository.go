package catalog

import "context"

// CatalogRepository is the read-only boundary to the payment-type and
// mark-type catalogs, seeded by the administration application.
type CatalogRepository interface {
	GetPaymentType(ctx context.Context, code string) (PaymentType, error)
	GetMarkType(ctx context.Context, code string) (MarkType, error)
	ListPaymentTypes(ctx context.Context) ([]PaymentType, error)
}
