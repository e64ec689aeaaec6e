package calculation

import (
	"context"
	"fmt"
	"time"

	"github.com/opsuite/payroll-backend-go/internal/domain/catalog"
	"github.com/opsuite/payroll-backend-go/internal/domain/employee"
	"github.com/opsuite/payroll-backend-go/internal/domain/payment"
	"github.com/opsuite/payroll-backend-go/internal/domain/settlement"
	"github.com/opsuite/payroll-backend-go/internal/domain/timesheet"
	"github.com/shopspring/decimal"
)

// In-memory collaborators so the calculation rules are exercised without
// a database. The fake transactor runs the function directly; duplicate
// detection mirrors the unique keys the real schema enforces.

type fakeTransactor struct{}

func (fakeTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (r *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	emp, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (r *fakeEmployeeRepo) GetActive(_ context.Context, _, _ int) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range r.employees {
		out = append(out, emp)
	}
	return out, nil
}

type fakeCatalogRepo struct{}

var testPaymentTypes = map[string]catalog.PaymentType{
	catalog.PaymentBaseSalary:     {Code: catalog.PaymentBaseSalary, Name: "Base salary", Category: catalog.CategoryAccrual},
	catalog.PaymentRoleBonus:      {Code: catalog.PaymentRoleBonus, Name: "Role bonus", Category: catalog.CategoryAccrual},
	catalog.PaymentSeniorityBonus: {Code: catalog.PaymentSeniorityBonus, Name: "Seniority bonus", Category: catalog.CategoryAccrual},
	catalog.PaymentSickLeave:      {Code: catalog.PaymentSickLeave, Name: "Sick leave pay", Category: catalog.CategoryAccrual},
	catalog.PaymentVacationPay:    {Code: catalog.PaymentVacationPay, Name: "Vacation pay", Category: catalog.CategoryAccrual},
	catalog.PaymentIncomeTax:      {Code: catalog.PaymentIncomeTax, Name: "Income tax", Category: catalog.CategoryDeduction},
	catalog.PaymentSocialTax:      {Code: catalog.PaymentSocialTax, Name: "Social tax", Category: catalog.CategoryDeduction},
}

func (fakeCatalogRepo) GetPaymentType(_ context.Context, code string) (catalog.PaymentType, error) {
	pt, ok := testPaymentTypes[code]
	if !ok {
		return catalog.PaymentType{}, catalog.ErrPaymentTypeNotFound
	}
	return pt, nil
}

func (fakeCatalogRepo) GetMarkType(_ context.Context, code string) (catalog.MarkType, error) {
	switch code {
	case catalog.MarkWork, catalog.MarkSick, catalog.MarkVacation:
		return catalog.MarkType{Code: code, Name: code}, nil
	}
	return catalog.MarkType{}, catalog.ErrMarkTypeNotFound
}

func (fakeCatalogRepo) ListPaymentTypes(_ context.Context) ([]catalog.PaymentType, error) {
	var out []catalog.PaymentType
	for _, pt := range testPaymentTypes {
		out = append(out, pt)
	}
	return out, nil
}

type fakeTimesheetRepo struct {
	sheets map[string]timesheet.Timesheet
}

func periodKey(employeeID string, month, year int) string {
	return fmt.Sprintf("%s|%d|%d", employeeID, month, year)
}

func (r *fakeTimesheetRepo) GetByEmployeePeriod(_ context.Context, employeeID string, month, year int) (timesheet.Timesheet, error) {
	ts, ok := r.sheets[periodKey(employeeID, month, year)]
	if !ok {
		return timesheet.Timesheet{}, timesheet.ErrTimesheetNotFound
	}
	return ts, nil
}

func (r *fakeTimesheetRepo) Create(_ context.Context, ts timesheet.Timesheet) (timesheet.Timesheet, error) {
	key := periodKey(ts.EmployeeID, ts.PeriodMonth, ts.PeriodYear)
	if _, ok := r.sheets[key]; ok {
		return timesheet.Timesheet{}, timesheet.ErrTimesheetExists
	}
	ts.ID = key
	r.sheets[key] = ts
	return ts, nil
}

func (r *fakeTimesheetRepo) UpsertEntry(_ context.Context, timesheetID string, entry timesheet.TimesheetEntry, newTotal decimal.Decimal) error {
	ts, ok := r.sheets[timesheetID]
	if !ok {
		return timesheet.ErrTimesheetNotFound
	}
	replaced := false
	for i, e := range ts.Entries {
		if e.Date.Equal(entry.Date) {
			ts.Entries[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		ts.Entries = append(ts.Entries, entry)
	}
	ts.TotalHours = newTotal
	r.sheets[timesheetID] = ts
	return nil
}

func (r *fakeTimesheetRepo) Confirm(_ context.Context, timesheetID, confirmedBy string) (timesheet.Timesheet, error) {
	ts, ok := r.sheets[timesheetID]
	if !ok || ts.Status != timesheet.StatusDraft {
		return timesheet.Timesheet{}, timesheet.ErrTimesheetAlreadyConfirmed
	}
	now := time.Now()
	ts.Status = timesheet.StatusConfirmed
	ts.ConfirmedBy = &confirmedBy
	ts.ConfirmedAt = &now
	r.sheets[timesheetID] = ts
	return ts, nil
}

type fakePaymentRepo struct {
	payments []payment.Payment
}

func (r *fakePaymentRepo) Create(_ context.Context, p payment.Payment) (payment.Payment, error) {
	for _, existing := range r.payments {
		if existing.EmployeeID == p.EmployeeID && existing.PeriodMonth == p.PeriodMonth &&
			existing.PeriodYear == p.PeriodYear && existing.PaymentTypeCode == p.PaymentTypeCode {
			return payment.Payment{}, payment.ErrPaymentExists
		}
	}
	pt := testPaymentTypes[p.PaymentTypeCode]
	p.ID = fmt.Sprintf("pay-%d", len(r.payments)+1)
	p.PaymentTypeName = pt.Name
	p.Category = pt.Category
	p.CreatedAt = time.Now()
	r.payments = append(r.payments, p)
	return p, nil
}

func (r *fakePaymentRepo) GetByEmployeePeriodType(_ context.Context, employeeID string, month, year int, typeCode string) (payment.Payment, error) {
	for _, p := range r.payments {
		if p.EmployeeID == employeeID && p.PeriodMonth == month && p.PeriodYear == year && p.PaymentTypeCode == typeCode {
			return p, nil
		}
	}
	return payment.Payment{}, payment.ErrPaymentNotFound
}

func (r *fakePaymentRepo) ExistsByType(_ context.Context, employeeID string, month, year int, typeCode string) (bool, error) {
	for _, p := range r.payments {
		if p.EmployeeID == employeeID && p.PeriodMonth == month && p.PeriodYear == year && p.PaymentTypeCode == typeCode {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakePaymentRepo) ExistsByCategory(_ context.Context, employeeID string, month, year int, category catalog.PaymentCategory, excludeTypeCode string) (bool, error) {
	for _, p := range r.payments {
		if p.EmployeeID == employeeID && p.PeriodMonth == month && p.PeriodYear == year &&
			p.Category == category && p.PaymentTypeCode != excludeTypeCode {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakePaymentRepo) ListByEmployeePeriod(_ context.Context, employeeID string, month, year int) ([]payment.Payment, error) {
	var out []payment.Payment
	for _, p := range r.payments {
		if p.EmployeeID == employeeID && p.PeriodMonth == month && p.PeriodYear == year {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePaymentRepo) EmployeeTotals(_ context.Context, employeeID string, month, year int) (payment.Totals, error) {
	totals := payment.Totals{Accrued: decimal.Zero, Deducted: decimal.Zero}
	for _, p := range r.payments {
		if p.EmployeeID != employeeID || p.PeriodMonth != month || p.PeriodYear != year {
			continue
		}
		if p.Category == catalog.CategoryAccrual {
			totals.Accrued = totals.Accrued.Add(p.Amount)
		} else {
			totals.Deducted = totals.Deducted.Sub(p.Amount)
		}
	}
	return totals, nil
}

func (r *fakePaymentRepo) DeleteByType(_ context.Context, employeeID string, month, year int, typeCode string) error {
	for i, p := range r.payments {
		if p.EmployeeID == employeeID && p.PeriodMonth == month && p.PeriodYear == year && p.PaymentTypeCode == typeCode {
			r.payments = append(r.payments[:i], r.payments[i+1:]...)
			return nil
		}
	}
	return payment.ErrPaymentNotFound
}

func (r *fakePaymentRepo) PeriodTotals(_ context.Context, month, year int) (payment.Totals, error) {
	totals := payment.Totals{Accrued: decimal.Zero, Deducted: decimal.Zero}
	for _, p := range r.payments {
		if p.PeriodMonth != month || p.PeriodYear != year {
			continue
		}
		if p.Category == catalog.CategoryAccrual {
			totals.Accrued = totals.Accrued.Add(p.Amount)
		} else {
			totals.Deducted = totals.Deducted.Sub(p.Amount)
		}
	}
	return totals, nil
}

type fakeSettlementRepo struct {
	settlements []settlement.Settlement
}

func (r *fakeSettlementRepo) Create(_ context.Context, s settlement.Settlement) (settlement.Settlement, error) {
	for _, existing := range r.settlements {
		if existing.EmployeeID == s.EmployeeID && existing.PeriodMonth == s.PeriodMonth && existing.PeriodYear == s.PeriodYear {
			return settlement.Settlement{}, settlement.ErrSettlementExists
		}
	}
	s.ID = fmt.Sprintf("stl-%d", len(r.settlements)+1)
	s.CalculatedAt = time.Now()
	r.settlements = append(r.settlements, s)
	return s, nil
}

func (r *fakeSettlementRepo) GetByEmployeePeriod(_ context.Context, employeeID string, month, year int) (settlement.Settlement, error) {
	for _, s := range r.settlements {
		if s.EmployeeID == employeeID && s.PeriodMonth == month && s.PeriodYear == year {
			return s, nil
		}
	}
	return settlement.Settlement{}, settlement.ErrSettlementNotFound
}

func (r *fakeSettlementRepo) Exists(_ context.Context, employeeID string, month, year int) (bool, error) {
	for _, s := range r.settlements {
		if s.EmployeeID == employeeID && s.PeriodMonth == month && s.PeriodYear == year {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeSettlementRepo) ListByPeriod(_ context.Context, month, year int) ([]settlement.Settlement, error) {
	var out []settlement.Settlement
	for _, s := range r.settlements {
		if s.PeriodMonth == month && s.PeriodYear == year {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSettlementRepo) MarkPaid(_ context.Context, id, paidBy string) (settlement.Settlement, error) {
	for i, s := range r.settlements {
		if s.ID == id {
			if s.Status == settlement.StatusPaid {
				return settlement.Settlement{}, settlement.ErrAlreadyPaid
			}
			now := time.Now()
			s.Status = settlement.StatusPaid
			s.PaidAt = &now
			s.PaidBy = &paidBy
			r.settlements[i] = s
			return s, nil
		}
	}
	return settlement.Settlement{}, settlement.ErrSettlementNotFound
}
