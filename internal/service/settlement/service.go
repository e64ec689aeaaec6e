package settlement

import (
	"context"
	"log/slog"

	"github.com/opsuite/payroll-backend-go/internal/domain/employee"
	"github.com/opsuite/payroll-backend-go/internal/domain/payment"
	"github.com/opsuite/payroll-backend-go/internal/domain/settlement"
	"github.com/opsuite/payroll-backend-go/internal/pkg/database"
)

type SettlementServiceImpl struct {
	tx             database.Transactor
	logger         *slog.Logger
	employeeRepo   employee.EmployeeRepository
	paymentRepo    payment.PaymentRepository
	settlementRepo settlement.SettlementRepository
}

func NewSettlementService(
	tx database.Transactor,
	logger *slog.Logger,
	employeeRepo employee.EmployeeRepository,
	paymentRepo payment.PaymentRepository,
	settlementRepo settlement.SettlementRepository,
) settlement.SettlementService {
	return &SettlementServiceImpl{
		tx:             tx,
		logger:         logger,
		employeeRepo:   employeeRepo,
		paymentRepo:    paymentRepo,
		settlementRepo: settlementRepo,
	}
}

// Calculate closes the employee's period ledger into one settlement row.
// The read of the payment totals and the settlement insert commit
// together, so the stored figures always match the lines they summarize.
func (s *SettlementServiceImpl) Calculate(ctx context.Context, req settlement.CalculateRequest) (settlement.SettlementResponse, error) {
	if err := req.Validate(); err != nil {
		return settlement.SettlementResponse{}, err
	}

	var created settlement.Settlement
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
			return err
		}

		exists, err := s.settlementRepo.Exists(ctx, req.EmployeeID, req.PeriodMonth, req.PeriodYear)
		if err != nil {
			return err
		}
		if exists {
			return settlement.ErrSettlementExists
		}

		totals, err := s.paymentRepo.EmployeeTotals(ctx, req.EmployeeID, req.PeriodMonth, req.PeriodYear)
		if err != nil {
			return err
		}
		if !totals.Accrued.IsPositive() {
			return settlement.ErrNothingToSettle
		}

		created, err = s.settlementRepo.Create(ctx, settlement.Settlement{
			EmployeeID:    req.EmployeeID,
			PeriodMonth:   req.PeriodMonth,
			PeriodYear:    req.PeriodYear,
			TotalAccrued:  totals.Accrued,
			TotalDeducted: totals.Deducted,
			Net:           totals.Net(),
			Status:        settlement.StatusCalculated,
		})
		return err
	})
	if err != nil {
		return settlement.SettlementResponse{}, err
	}

	return mapToResponse(created), nil
}

// Batch settles every employee active in the period. Failures are logged
// and counted, not escalated; an already-settled or empty period counts
// as skipped.
func (s *SettlementServiceImpl) Batch(ctx context.Context, req payment.BatchRequest) (payment.BatchResult, error) {
	var result payment.BatchResult

	if err := req.Validate(); err != nil {
		return result, err
	}

	employees, err := s.employeeRepo.GetActive(ctx, req.PeriodMonth, req.PeriodYear)
	if err != nil {
		return result, err
	}

	for _, emp := range employees {
		_, err := s.Calculate(ctx, settlement.CalculateRequest{
			EmployeeID:  emp.ID,
			PeriodMonth: req.PeriodMonth,
			PeriodYear:  req.PeriodYear,
		})
		if err != nil {
			s.logger.Warn("batch settlement skipped employee",
				"employee_id", emp.ID,
				"period_month", req.PeriodMonth,
				"period_year", req.PeriodYear,
				"error", err,
			)
			result.Skipped++
			continue
		}
		result.Processed++
	}

	return result, nil
}

func (s *SettlementServiceImpl) ListByPeriod(ctx context.Context, month, year int) ([]settlement.SettlementResponse, error) {
	settlements, err := s.settlementRepo.ListByPeriod(ctx, month, year)
	if err != nil {
		return nil, err
	}

	responses := make([]settlement.SettlementResponse, 0, len(settlements))
	for _, st := range settlements {
		responses = append(responses, mapToResponse(st))
	}
	return responses, nil
}

func (s *SettlementServiceImpl) MarkPaid(ctx context.Context, id, paidBy string) (settlement.SettlementResponse, error) {
	var updated settlement.Settlement
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		updated, err = s.settlementRepo.MarkPaid(ctx, id, paidBy)
		return err
	})
	if err != nil {
		return settlement.SettlementResponse{}, err
	}

	return mapToResponse(updated), nil
}

func mapToResponse(st settlement.Settlement) settlement.SettlementResponse {
	resp := settlement.SettlementResponse{
		ID:            st.ID,
		EmployeeID:    st.EmployeeID,
		PeriodMonth:   st.PeriodMonth,
		PeriodYear:    st.PeriodYear,
		TotalAccrued:  st.TotalAccrued.StringFixed(2),
		TotalDeducted: st.TotalDeducted.StringFixed(2),
		Net:           st.Net.StringFixed(2),
		Status:        string(st.Status),
		CalculatedAt:  st.CalculatedAt.Format("2006-01-02 15:04:05"),
	}
	if st.EmployeeName != nil {
		resp.EmployeeName = *st.EmployeeName
	}
	if st.PaidAt != nil {
		paidAt := st.PaidAt.Format("2006-01-02 15:04:05")
		resp.PaidAt = &paidAt
	}
	return resp
}
