// Package stage owns the calculation order for one (employee, period):
// time confirmation, then base salary, then discretionary accruals, then
// taxes, then settlement. Calculators build a Snapshot from persisted
// state and ask Check whether their operation is legal, so the ordering
// rules live in one place instead of pairwise existence checks scattered
// across calculators.
package stage

import "errors"

var (
	ErrTimeNotConfirmed = errors.New("no confirmed timesheet for this period")
	// ErrBaseSalaryExists rejects recomputing base pay once it exists;
	// recalculation would require deleting downstream figures first.
	ErrBaseSalaryExists = errors.New("base salary already calculated for this period")
	ErrBaseSalaryMissing = errors.New("base salary must be calculated first")
	// ErrDiscretionaryExists rejects base pay once bonuses or leave pay
	// exist: they were derived from a base amount that would change.
	ErrDiscretionaryExists = errors.New("discretionary accruals already exist for this period")
	// ErrTaxesExist rejects accrual-stage operations after deductions
	// were computed from the accrual sum.
	ErrTaxesExist = errors.New("taxes already calculated for this period")
	// ErrSettled rejects any ledger mutation once the period is closed
	// into a settlement.
	ErrSettled = errors.New("period already settled")
)

// Stage is one step of the per-employee calculation pipeline.
type Stage int

const (
	StageNone Stage = iota
	StageTimeConfirmed
	StageBasePaid
	StageDiscretionaryAccrued
	StageTaxesApplied
	StageSettled
)

func (s Stage) String() string {
	switch s {
	case StageTimeConfirmed:
		return "time_confirmed"
	case StageBasePaid:
		return "base_paid"
	case StageDiscretionaryAccrued:
		return "discretionary_accrued"
	case StageTaxesApplied:
		return "taxes_applied"
	case StageSettled:
		return "settled"
	default:
		return "none"
	}
}

// Operation is a pipeline action whose legality depends on the snapshot.
type Operation int

const (
	OpBaseSalary Operation = iota
	OpDiscretionary
	OpTaxes
	OpDeleteTaxes
	OpSettle
)

// Snapshot is the observed stage state for one (employee, period),
// derived from the persisted ledger inside the calculation transaction.
type Snapshot struct {
	TimeConfirmed        bool
	BasePaid             bool
	DiscretionaryAccrued bool
	TaxesApplied         bool
	Settled              bool
}

// Current returns the furthest stage the snapshot has reached.
func (s Snapshot) Current() Stage {
	switch {
	case s.Settled:
		return StageSettled
	case s.TaxesApplied:
		return StageTaxesApplied
	case s.DiscretionaryAccrued:
		return StageDiscretionaryAccrued
	case s.BasePaid:
		return StageBasePaid
	case s.TimeConfirmed:
		return StageTimeConfirmed
	default:
		return StageNone
	}
}

// Check validates op against the snapshot. An out-of-order attempt fails
// with the matching sentinel; it is never silently reordered.
func Check(op Operation, s Snapshot) error {
	if s.Settled && op != OpSettle {
		return ErrSettled
	}

	switch op {
	case OpBaseSalary:
		if !s.TimeConfirmed {
			return ErrTimeNotConfirmed
		}
		if s.BasePaid {
			return ErrBaseSalaryExists
		}
		if s.DiscretionaryAccrued {
			return ErrDiscretionaryExists
		}
		if s.TaxesApplied {
			return ErrTaxesExist
		}
	case OpDiscretionary:
		if !s.BasePaid {
			return ErrBaseSalaryMissing
		}
		if s.TaxesApplied {
			return ErrTaxesExist
		}
	case OpTaxes, OpDeleteTaxes:
		// Taxes need no base-salary guard: with no accruals the taxable
		// sum is zero and nothing is created. Deletion is legal until
		// settlement.
	case OpSettle:
		if s.Settled {
			return ErrSettled
		}
	}

	return nil
}
