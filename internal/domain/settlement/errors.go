package settlement

import "errors"

var (
	ErrSettlementNotFound = errors.New("settlement not found")
	// ErrSettlementExists maps the (employee, period) unique key; a
	// settled period is closed and can only be recalculated through an
	// explicit administrative deletion.
	ErrSettlementExists = errors.New("settlement already exists for this period")
	ErrNothingToSettle  = errors.New("no accruals to settle for this period")
	ErrAlreadyPaid      = errors.New("settlement already paid")
)
