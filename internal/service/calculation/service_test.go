package calculation

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/opsuite/payroll-backend-go/internal/domain/catalog"
	"github.com/opsuite/payroll-backend-go/internal/domain/employee"
	"github.com/opsuite/payroll-backend-go/internal/domain/payment"
	"github.com/opsuite/payroll-backend-go/internal/domain/settlement"
	"github.com/opsuite/payroll-backend-go/internal/domain/stage"
	"github.com/opsuite/payroll-backend-go/internal/domain/timesheet"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// June 2025 has 21 weekdays, so the standard month is 168 hours.
const (
	testMonth = 6
	testYear  = 2025
)

type testEnv struct {
	svc         payment.CalculationService
	employees   *fakeEmployeeRepo
	sheets      *fakeTimesheetRepo
	payments    *fakePaymentRepo
	settlements *fakeSettlementRepo
}

func newTestEnv() *testEnv {
	env := &testEnv{
		employees:   &fakeEmployeeRepo{employees: map[string]employee.Employee{}},
		sheets:      &fakeTimesheetRepo{sheets: map[string]timesheet.Timesheet{}},
		payments:    &fakePaymentRepo{},
		settlements: &fakeSettlementRepo{},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	env.svc = NewCalculationService(
		fakeTransactor{},
		logger,
		env.employees,
		fakeCatalogRepo{},
		env.sheets,
		env.payments,
		env.settlements,
	)
	return env
}

func (e *testEnv) addEmployee(id, baseRate string, yearsOfService int) {
	e.employees.employees[id] = employee.Employee{
		ID:       id,
		FullName: "Employee " + id,
		HireDate: time.Now().AddDate(-yearsOfService, 0, -1),
		BaseRate: decimal.RequireFromString(baseRate),
	}
}

func (e *testEnv) addConfirmedTimesheet(employeeID string, entries []timesheet.TimesheetEntry) {
	ts := timesheet.Timesheet{
		ID:          periodKey(employeeID, testMonth, testYear),
		EmployeeID:  employeeID,
		PeriodMonth: testMonth,
		PeriodYear:  testYear,
		Status:      timesheet.StatusConfirmed,
		Entries:     entries,
	}
	ts.TotalHours = ts.SumEntryHours()
	e.sheets.sheets[ts.ID] = ts
}

// workedEntries builds n work-marked eight-hour days.
func workedEntries(n int) []timesheet.TimesheetEntry {
	return markedEntries(catalog.MarkWork, n, 1)
}

func markedEntries(markCode string, n, startDay int) []timesheet.TimesheetEntry {
	hours := decimal.NewFromInt(8)
	if markCode != catalog.MarkWork {
		hours = decimal.Zero
	}
	var entries []timesheet.TimesheetEntry
	for i := 0; i < n; i++ {
		entries = append(entries, timesheet.TimesheetEntry{
			Date:         time.Date(testYear, testMonth, startDay+i, 0, 0, 0, 0, time.UTC),
			MarkTypeCode: markCode,
			Hours:        hours,
		})
	}
	return entries
}

func calcReq(employeeID string) payment.CalculationRequest {
	return payment.CalculationRequest{
		EmployeeID:  employeeID,
		PeriodMonth: testMonth,
		PeriodYear:  testYear,
	}
}

func TestSaveBaseSalary_FullMonth(t *testing.T) {
	env := newTestEnv()
	env.addEmployee("emp-1", "1000.00", 0)
	env.addConfirmedTimesheet("emp-1", workedEntries(21))

	resp, err := env.svc.SaveBaseSalary(context.Background(), calcReq("emp-1"))

	require.NoError(t, err)
	assert.Equal(t, "1000.00", resp.Amount)
	assert.Equal(t, catalog.PaymentBaseSalary, resp.PaymentTypeCode)
}

func TestSaveBaseSalary_PartialHours(t *testing.T) {
	env := newTestEnv()
	env.addEmployee("emp-1", "1000.00", 0)
	// 10 worked days of 8 hours: hourly rate 1000/168 = 5.9524.
	env.addConfirmedTimesheet("emp-1", workedEntries(10))

	resp, err := env.svc.SaveBaseSalary(context.Background(), calcReq("emp-1"))

	require.NoError(t, err)
	assert.Equal(t, "476.19", resp.Amount)
}

func TestSaveBaseSalary_Deterministic(t *testing.T) {
	env := newTestEnv()
	env.addEmployee("emp-1", "3456.78", 0)
	env.addConfirmedTimesheet("emp-1", workedEntries(13))

	first, err := env.svc.BaseSalary(context.Background(), "emp-1", testMonth, testYear)
	require.NoError(t, err)
	second, err := env.svc.BaseSalary(context.Background(), "emp-1", testMonth, testYear)
	require.NoError(t, err)

	assert.True(t, first.Equal(second))
	assert.True(t, first.Equal(first.Round(2)), "amount must already be at 2 decimal places")
}

func TestSaveBaseSalary_RequiresConfirmedTimesheet(t *testing.T) {
	env := newTestEnv()
	env.addEmployee("emp-1", "1000.00", 0)
	env.sheets.sheets[periodKey("emp-1", testMonth, testYear)] = timesheet.Timesheet{
		ID:          periodKey("emp-1", testMonth, testYear),
		EmployeeID:  "emp-1",
		PeriodMonth: testMonth,
		PeriodYear:  testYear,
		Status:      timesheet.StatusDraft,
	}

	_, err := env.svc.SaveBaseSalary(context.Background(), calcReq("emp-1"))
	assert.ErrorIs(t, err, stage.ErrTimeNotConfirmed)
}

func TestSaveBaseSalary_MissingTimesheet(t *testing.T) {
	env := newTestEnv()
	env.addEmployee("emp-1", "1000.00", 0)

	_, err := env.svc.SaveBaseSalary(context.Background(), calcReq("emp-1"))
	assert.ErrorIs(t, err, stage.ErrTimeNotConfirmed)
}

func TestSaveBaseSalary_UnknownEmployee(t *testing.T) {
	env := newTestEnv()

	_, err := env.svc.SaveBaseSalary(context.Background(), calcReq("ghost"))
	assert.ErrorIs(t, err, stage.ErrTimeNotConfirmed)

	_, err = env.svc.BaseSalary(context.Background(), "ghost", testMonth, testYear)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestSaveBaseSalary_Duplicate(t *testing.T) {
	env := newTestEnv()
	env.addEmployee("emp-1", "1000.00", 0)
	env.addConfirmedTimesheet("emp-1", workedEntries(21))

	_, err := env.svc.SaveBaseSalary(context.Background(), calcReq("emp-1"))
	require.NoError(t, err)

	_, err = env.svc.SaveBaseSalary(context.Background(), calcReq("emp-1"))
	assert.ErrorIs(t, err, stage.ErrBaseSalaryExists)
}

func TestSaveBaseSalary_RejectedAfterSettlement(t *testing.T) {
	env := newTestEnv()
	env.addEmployee("emp-1", "1000.00", 0)
	env.addConfirmedTimesheet("emp-1", workedEntries(21))
	_, err := env.settlements.Create(context.Background(), settlement.Settlement{
		EmployeeID: "emp-1", PeriodMonth: testMonth, PeriodYear: testYear,
		Status: settlement.StatusCalculated,
	})
	require.NoError(t, err)

	_, err = env.svc.SaveBaseSalary(context.Background(), calcReq("emp-1"))
	assert.ErrorIs(t, err, stage.ErrSettled)
}

func TestSaveRoleBonus(t *testing.T) {
	env := newTestEnv()
	env.addEmployee("emp-1", "1000.00", 0)
	env.addConfirmedTimesheet("emp-1", workedEntries(21))
	_, err := env.svc.SaveBaseSalary(context.Background(), calcReq("emp-1"))
	require.NoError(t, err)

	resp, err := env.svc.SaveRoleBonus(context.Background(), calcReq("emp-1"))

	require.NoError(t, err)
	assert.Equal(t, "250.00", resp.Amount)
}

func TestSaveRoleBonus_RequiresBaseSalary(t *testing.T) {
	env := newTestEnv()
	env.addEmployee("emp-1", "1000.00", 0)
	env.addConfirmedTimesheet("emp-1", workedEntries(21))

	_, err := env.svc.SaveRoleBonus(context.Background(), calcReq("emp-1"))
	assert.ErrorIs(t, err, stage.ErrBaseSalaryMissing)
}

func TestSaveRoleBonus_Duplicate(t *testing.T) {
	env := newTestEnv()
	env.addEmployee("emp-1", "1000.00", 0)
	env.addConfirmedTimesheet("emp-1", workedEntries(21))
	_, err := env.svc.SaveBaseSalary(context.Background(), calcReq("emp-1"))
	require.NoError(t, err)
	_, err = env.svc.SaveRoleBonus(context.Background(), calcReq("emp-1"))
	require.NoError(t, err)

	_, err = env.svc.SaveRoleBonus(context.Background(), calcReq("emp-1"))
	assert.ErrorIs(t, err, payment.ErrPaymentExists)
}

func TestSaveRoleBonus_RejectedAfterTaxes(t *testing.T) {
	env := newTestEnv()
	env.addEmployee("emp-1", "1000.00", 0)
	env.addConfirmedTimesheet("emp-1", workedEntries(21))
	_, err := env.svc.SaveBaseSalary(context.Background(), calcReq("emp-1"))
	require.NoError(t, err)
	_, err = env.svc.SaveTaxes(context.Background(), calcReq("emp-1"))
	require.NoError(t, err)

	_, err = env.svc.SaveRoleBonus(context.Background(), calcReq("emp-1"))
	assert.ErrorIs(t, err, stage.ErrTaxesExist)
}

func TestSaveSeniorityBonus_Tiers(t *testing.T) {
	tests := []struct {
		name  string
		years int
		want  string
	}{
		{"one year", 1, "50.00"},
		{"two years", 2, "50.00"},
		{"three years", 3, "150.00"},
		{"five years", 5, "150.00"},
		{"ten years", 10, "250.00"},
		{"twelve years", 12, "250.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv()
			env.addEmployee("emp-1", "1000.00", tt.years)
			env.addConfirmedTimesheet("emp-1", workedEntries(21))
			_, err := env.svc.SaveBaseSalary(context.Background(), calcReq("emp-1"))
			require.NoError(t, err)

			resp, err := env.svc.SaveSeniorityBonus(context.Background(), calcReq("emp-1"))

			require.NoError(t, err)
			require.NotNil(t, resp)
			assert.Equal(t, tt.want, resp.Amount)
		})
	}
}

func TestSaveSeniorityBonus_UnderOneYear(t *testing.T) {
	env := newTestEnv()
	env.addEmployee("emp-1", "1000.00", 0)
	env.addConfirmedTimesheet("emp-1", workedEntries(21))
	_, err := env.svc.SaveBaseSalary(context.Background(), calcReq("emp-1"))
	require.NoError(t, err)

	resp, err := env.svc.SaveSeniorityBonus(context.Background(), calcReq("emp-1"))

	require.NoError(t, err)
	assert.Nil(t, resp)
}

func TestSaveSickLeave(t *testing.T) {
	env := newTestEnv()
	env.addEmployee("emp-1", "1000.00", 0)
	entries := append(workedEntries(18), markedEntries(catalog.MarkSick, 3, 19)...)
	env.addConfirmedTimesheet("emp-1", entries)
	_, err := env.svc.SaveBaseSalary(context.Background(), calcReq("emp-1"))
	require.NoError(t, err)

	resp, err := env.svc.SaveSickLeave(context.Background(), calcReq("emp-1"))

	// Daily rate 50.00, half pay over three sick days.
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "75.00", resp.Amount)
}

func TestSaveVacationPay(t *testing.T) {
	env := newTestEnv()
	env.addEmployee("emp-1", "1000.00", 0)
	entries := append(workedEntries(19), markedEntries(catalog.MarkVacation, 2, 20)...)
	env.addConfirmedTimesheet("emp-1", entries)
	_, err := env.svc.SaveBaseSalary(context.Background(), calcReq("emp-1"))
	require.NoError(t, err)

	resp, err := env.svc.SaveVacationPay(context.Background(), calcReq("emp-1"))

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "150.00", resp.Amount)
}

func TestSaveSickLeave_NoSickDays(t *testing.T) {
	env := newTestEnv()
	env.addEmployee("emp-1", "1000.00", 0)
	env.addConfirmedTimesheet("emp-1", workedEntries(21))
	_, err := env.svc.SaveBaseSalary(context.Background(), calcReq("emp-1"))
	require.NoError(t, err)

	resp, err := env.svc.SaveSickLeave(context.Background(), calcReq("emp-1"))

	require.NoError(t, err)
	assert.Nil(t, resp)
}

func TestSaveTaxes(t *testing.T) {
	env := newTestEnv()
	env.addEmployee("emp-1", "1000.00", 0)
	env.addConfirmedTimesheet("emp-1", workedEntries(21))
	_, err := env.svc.SaveBaseSalary(context.Background(), calcReq("emp-1"))
	require.NoError(t, err)

	resps, err := env.svc.SaveTaxes(context.Background(), calcReq("emp-1"))

	require.NoError(t, err)
	require.Len(t, resps, 2)
	amounts := map[string]string{}
	for _, r := range resps {
		amounts[r.PaymentTypeCode] = r.Amount
	}
	assert.Equal(t, "-130.00", amounts[catalog.PaymentIncomeTax])
	assert.Equal(t, "-10.00", amounts[catalog.PaymentSocialTax])
}

func TestSaveTaxes_SecondRunCreatesNothing(t *testing.T) {
	env := newTestEnv()
	env.addEmployee("emp-1", "1000.00", 0)
	env.addConfirmedTimesheet("emp-1", workedEntries(21))
	_, err := env.svc.SaveBaseSalary(context.Background(), calcReq("emp-1"))
	require.NoError(t, err)
	_, err = env.svc.SaveTaxes(context.Background(), calcReq("emp-1"))
	require.NoError(t, err)

	resps, err := env.svc.SaveTaxes(context.Background(), calcReq("emp-1"))

	require.NoError(t, err)
	assert.Empty(t, resps)
}

func TestSaveTaxes_NoAccruals(t *testing.T) {
	env := newTestEnv()
	env.addEmployee("emp-1", "1000.00", 0)

	resps, err := env.svc.SaveTaxes(context.Background(), calcReq("emp-1"))

	require.NoError(t, err)
	assert.Empty(t, resps)
}

func TestDeleteTaxes(t *testing.T) {
	env := newTestEnv()
	env.addEmployee("emp-1", "1000.00", 0)
	env.addConfirmedTimesheet("emp-1", workedEntries(21))
	_, err := env.svc.SaveBaseSalary(context.Background(), calcReq("emp-1"))
	require.NoError(t, err)
	_, err = env.svc.SaveTaxes(context.Background(), calcReq("emp-1"))
	require.NoError(t, err)

	err = env.svc.DeleteTaxes(context.Background(), calcReq("emp-1"))
	require.NoError(t, err)

	exists, err := env.payments.ExistsByType(context.Background(), "emp-1", testMonth, testYear, catalog.PaymentIncomeTax)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestDeleteTaxes_RejectedAfterSettlement(t *testing.T) {
	env := newTestEnv()
	env.addEmployee("emp-1", "1000.00", 0)
	_, err := env.settlements.Create(context.Background(), settlement.Settlement{
		EmployeeID: "emp-1", PeriodMonth: testMonth, PeriodYear: testYear,
		Status: settlement.StatusCalculated,
	})
	require.NoError(t, err)

	err = env.svc.DeleteTaxes(context.Background(), calcReq("emp-1"))
	assert.ErrorIs(t, err, stage.ErrSettled)
}

func TestBatchBaseSalary_FailureIsolation(t *testing.T) {
	env := newTestEnv()
	env.addEmployee("emp-1", "1000.00", 0)
	env.addEmployee("emp-2", "2000.00", 0)
	// Only emp-1 has a confirmed timesheet; emp-2 must be skipped, not
	// abort the run.
	env.addConfirmedTimesheet("emp-1", workedEntries(21))

	result, err := env.svc.BatchBaseSalary(context.Background(), payment.BatchRequest{
		PeriodMonth: testMonth,
		PeriodYear:  testYear,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, result.Processed)
	assert.Equal(t, 1, result.Skipped)
}

func TestStageStatus(t *testing.T) {
	env := newTestEnv()
	env.addEmployee("emp-1", "1000.00", 0)
	env.addConfirmedTimesheet("emp-1", workedEntries(21))
	_, err := env.svc.SaveBaseSalary(context.Background(), calcReq("emp-1"))
	require.NoError(t, err)
	_, err = env.svc.SaveTaxes(context.Background(), calcReq("emp-1"))
	require.NoError(t, err)

	status, err := env.svc.StageStatus(context.Background(), "emp-1", testMonth, testYear)

	require.NoError(t, err)
	assert.True(t, status.TimeConfirmed)
	assert.True(t, status.BasePaid)
	assert.False(t, status.Discretionary)
	assert.True(t, status.TaxesApplied)
	assert.False(t, status.Settled)
}

func TestPeriodTotals(t *testing.T) {
	env := newTestEnv()
	env.addEmployee("emp-1", "1000.00", 0)
	env.addConfirmedTimesheet("emp-1", workedEntries(21))
	_, err := env.svc.SaveBaseSalary(context.Background(), calcReq("emp-1"))
	require.NoError(t, err)
	_, err = env.svc.SaveTaxes(context.Background(), calcReq("emp-1"))
	require.NoError(t, err)

	totals, err := env.svc.PeriodTotals(context.Background(), testMonth, testYear)

	require.NoError(t, err)
	assert.Equal(t, "1000.00", totals.TotalAccrued)
	assert.Equal(t, "140.00", totals.TotalDeducted)
	assert.Equal(t, "860.00", totals.Net)
}
