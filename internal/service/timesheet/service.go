package timesheet

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/opsuite/payroll-backend-go/internal/domain/catalog"
	"github.com/opsuite/payroll-backend-go/internal/domain/employee"
	"github.com/opsuite/payroll-backend-go/internal/domain/timesheet"
	"github.com/opsuite/payroll-backend-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type TimesheetServiceImpl struct {
	tx            database.Transactor
	timesheetRepo timesheet.TimesheetRepository
	employeeRepo  employee.EmployeeRepository
	catalogRepo   catalog.CatalogRepository
}

func NewTimesheetService(
	tx database.Transactor,
	timesheetRepo timesheet.TimesheetRepository,
	employeeRepo employee.EmployeeRepository,
	catalogRepo catalog.CatalogRepository,
) timesheet.TimesheetService {
	return &TimesheetServiceImpl{
		tx:            tx,
		timesheetRepo: timesheetRepo,
		employeeRepo:  employeeRepo,
		catalogRepo:   catalogRepo,
	}
}

func (s *TimesheetServiceImpl) RecordEntry(ctx context.Context, req timesheet.RecordEntryRequest) (timesheet.TimesheetResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	if int(date.Month()) != req.PeriodMonth || date.Year() != req.PeriodYear {
		return timesheet.TimesheetResponse{}, timesheet.ErrDateOutsidePeriod
	}

	hours, err := decimal.NewFromString(req.Hours)
	if err != nil || hours.IsNegative() {
		return timesheet.TimesheetResponse{}, timesheet.ErrInvalidHours
	}

	var result timesheet.Timesheet
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
			return err
		}
		if _, err := s.catalogRepo.GetMarkType(ctx, req.MarkTypeCode); err != nil {
			return err
		}

		ts, err := s.timesheetRepo.GetByEmployeePeriod(ctx, req.EmployeeID, req.PeriodMonth, req.PeriodYear)
		if errors.Is(err, timesheet.ErrTimesheetNotFound) {
			ts, err = s.timesheetRepo.Create(ctx, timesheet.Timesheet{
				EmployeeID:  req.EmployeeID,
				PeriodMonth: req.PeriodMonth,
				PeriodYear:  req.PeriodYear,
				Status:      timesheet.StatusDraft,
				TotalHours:  decimal.Zero,
			})
		}
		if err != nil {
			return err
		}

		if ts.Status == timesheet.StatusConfirmed {
			return timesheet.ErrTimesheetConfirmed
		}

		entry := timesheet.TimesheetEntry{
			TimesheetID:  ts.ID,
			Date:         date,
			MarkTypeCode: req.MarkTypeCode,
			Hours:        hours,
		}

		// Replace any entry on the same date, then recompute the total
		// from the full entry set so the stored figure cannot drift.
		replaced := false
		for i, e := range ts.Entries {
			if e.Date.Equal(date) {
				ts.Entries[i] = entry
				replaced = true
				break
			}
		}
		if !replaced {
			ts.Entries = append(ts.Entries, entry)
		}
		ts.TotalHours = ts.SumEntryHours()

		if err := s.timesheetRepo.UpsertEntry(ctx, ts.ID, entry, ts.TotalHours); err != nil {
			return fmt.Errorf("failed to record timesheet entry: %w", err)
		}

		result = ts
		return nil
	})
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	return mapToResponse(result), nil
}

func (s *TimesheetServiceImpl) Confirm(ctx context.Context, req timesheet.ConfirmRequest) (timesheet.TimesheetResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	var result timesheet.Timesheet
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		ts, err := s.timesheetRepo.GetByEmployeePeriod(ctx, req.EmployeeID, req.PeriodMonth, req.PeriodYear)
		if err != nil {
			return err
		}
		if ts.Status == timesheet.StatusConfirmed {
			return timesheet.ErrTimesheetAlreadyConfirmed
		}

		confirmed, err := s.timesheetRepo.Confirm(ctx, ts.ID, req.ConfirmedBy)
		if err != nil {
			return err
		}
		confirmed.Entries = ts.Entries

		result = confirmed
		return nil
	})
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	return mapToResponse(result), nil
}

func (s *TimesheetServiceImpl) Get(ctx context.Context, employeeID string, month, year int) (timesheet.TimesheetResponse, error) {
	ts, err := s.timesheetRepo.GetByEmployeePeriod(ctx, employeeID, month, year)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}
	return mapToResponse(ts), nil
}

func mapToResponse(ts timesheet.Timesheet) timesheet.TimesheetResponse {
	var confirmedAt *string
	if ts.ConfirmedAt != nil {
		str := ts.ConfirmedAt.Format(time.RFC3339)
		confirmedAt = &str
	}

	entries := make([]timesheet.EntryResponse, 0, len(ts.Entries))
	for _, e := range ts.Entries {
		entries = append(entries, timesheet.EntryResponse{
			Date:         e.Date.Format("2006-01-02"),
			MarkTypeCode: e.MarkTypeCode,
			Hours:        e.Hours.String(),
		})
	}

	return timesheet.TimesheetResponse{
		ID:          ts.ID,
		EmployeeID:  ts.EmployeeID,
		PeriodMonth: ts.PeriodMonth,
		PeriodYear:  ts.PeriodYear,
		Status:      string(ts.Status),
		TotalHours:  ts.TotalHours.String(),
		ConfirmedBy: ts.ConfirmedBy,
		ConfirmedAt: confirmedAt,
		Entries:     entries,
	}
}
