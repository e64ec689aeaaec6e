package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/opsuite/payroll-backend-go/internal/domain/payment"
	"github.com/opsuite/payroll-backend-go/internal/handler/http/response"
)

type CalculationHandler interface {
	BaseSalary(w http.ResponseWriter, r *http.Request)
	RoleBonus(w http.ResponseWriter, r *http.Request)
	SeniorityBonus(w http.ResponseWriter, r *http.Request)
	SickLeave(w http.ResponseWriter, r *http.Request)
	VacationPay(w http.ResponseWriter, r *http.Request)
	Taxes(w http.ResponseWriter, r *http.Request)
	DeleteTaxes(w http.ResponseWriter, r *http.Request)
	Batch(w http.ResponseWriter, r *http.Request)
	ListPayments(w http.ResponseWriter, r *http.Request)
	StageStatus(w http.ResponseWriter, r *http.Request)
	PeriodTotals(w http.ResponseWriter, r *http.Request)
}

type calculationHandlerImpl struct {
	calculationService payment.CalculationService
}

func NewCalculationHandler(calculationService payment.CalculationService) CalculationHandler {
	return &calculationHandlerImpl{calculationService: calculationService}
}

func (h *calculationHandlerImpl) BaseSalary(w http.ResponseWriter, r *http.Request) {
	var req payment.CalculationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.calculationService.SaveBaseSalary(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Base salary calculated", result)
}

func (h *calculationHandlerImpl) RoleBonus(w http.ResponseWriter, r *http.Request) {
	var req payment.CalculationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.calculationService.SaveRoleBonus(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Role bonus calculated", result)
}

func (h *calculationHandlerImpl) SeniorityBonus(w http.ResponseWriter, r *http.Request) {
	var req payment.CalculationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.calculationService.SaveSeniorityBonus(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if result == nil {
		response.SuccessWithMessage(w, "No seniority bonus due", nil)
		return
	}

	response.Created(w, "Seniority bonus calculated", result)
}

func (h *calculationHandlerImpl) SickLeave(w http.ResponseWriter, r *http.Request) {
	var req payment.CalculationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.calculationService.SaveSickLeave(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if result == nil {
		response.SuccessWithMessage(w, "No sick days in period", nil)
		return
	}

	response.Created(w, "Sick leave pay calculated", result)
}

func (h *calculationHandlerImpl) VacationPay(w http.ResponseWriter, r *http.Request) {
	var req payment.CalculationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.calculationService.SaveVacationPay(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if result == nil {
		response.SuccessWithMessage(w, "No vacation days in period", nil)
		return
	}

	response.Created(w, "Vacation pay calculated", result)
}

func (h *calculationHandlerImpl) Taxes(w http.ResponseWriter, r *http.Request) {
	var req payment.CalculationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.calculationService.SaveTaxes(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Taxes calculated", result)
}

func (h *calculationHandlerImpl) DeleteTaxes(w http.ResponseWriter, r *http.Request) {
	var req payment.CalculationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.calculationService.DeleteTaxes(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Taxes deleted", nil)
}

func (h *calculationHandlerImpl) Batch(w http.ResponseWriter, r *http.Request) {
	stageName := chi.URLParam(r, "stage")

	var req payment.BatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	var result payment.BatchResult
	var err error
	switch stageName {
	case "base-salary":
		result, err = h.calculationService.BatchBaseSalary(r.Context(), req)
	case "leave-pay":
		result, err = h.calculationService.BatchLeavePay(r.Context(), req)
	case "taxes":
		result, err = h.calculationService.BatchTaxes(r.Context(), req)
	default:
		response.BadRequest(w, "Unknown batch stage", nil)
		return
	}
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *calculationHandlerImpl) ListPayments(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	month, year, ok := periodFromQuery(r)
	if !ok {
		response.BadRequest(w, "month and year query parameters are required", nil)
		return
	}

	result, err := h.calculationService.ListPayments(r.Context(), employeeID, month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *calculationHandlerImpl) StageStatus(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	month, year, ok := periodFromQuery(r)
	if !ok {
		response.BadRequest(w, "month and year query parameters are required", nil)
		return
	}

	result, err := h.calculationService.StageStatus(r.Context(), employeeID, month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *calculationHandlerImpl) PeriodTotals(w http.ResponseWriter, r *http.Request) {
	month, year, ok := periodFromQuery(r)
	if !ok {
		response.BadRequest(w, "month and year query parameters are required", nil)
		return
	}

	result, err := h.calculationService.PeriodTotals(r.Context(), month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
