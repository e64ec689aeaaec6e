package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/opsuite/payroll-backend-go/internal/domain/payment"
	"github.com/opsuite/payroll-backend-go/internal/domain/settlement"
	"github.com/opsuite/payroll-backend-go/internal/handler/http/response"
)

type SettlementHandler interface {
	Calculate(w http.ResponseWriter, r *http.Request)
	Batch(w http.ResponseWriter, r *http.Request)
	ListByPeriod(w http.ResponseWriter, r *http.Request)
	MarkPaid(w http.ResponseWriter, r *http.Request)
}

type settlementHandlerImpl struct {
	settlementService settlement.SettlementService
}

func NewSettlementHandler(settlementService settlement.SettlementService) SettlementHandler {
	return &settlementHandlerImpl{settlementService: settlementService}
}

func (h *settlementHandlerImpl) Calculate(w http.ResponseWriter, r *http.Request) {
	var req settlement.CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.settlementService.Calculate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Settlement calculated", result)
}

func (h *settlementHandlerImpl) Batch(w http.ResponseWriter, r *http.Request) {
	var req payment.BatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.settlementService.Batch(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *settlementHandlerImpl) ListByPeriod(w http.ResponseWriter, r *http.Request) {
	month, year, ok := periodFromQuery(r)
	if !ok {
		response.BadRequest(w, "month and year query parameters are required", nil)
		return
	}

	result, err := h.settlementService.ListByPeriod(r.Context(), month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *settlementHandlerImpl) MarkPaid(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Settlement ID is required", nil)
		return
	}

	var paidBy string
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, "Invalid token")
		return
	}
	if sub, ok := claims["sub"].(string); ok {
		paidBy = sub
	}

	result, err := h.settlementService.MarkPaid(r.Context(), id, paidBy)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Settlement marked paid", result)
}
