package create_agreement

import (
	"errors"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/skyreach/OOH-BookingService/internal/api/handlers"
	"github.com/skyreach/OOH-BookingService/internal/domain"
	createAgreement "github.com/skyreach/OOH-BookingService/internal/usecase/create_agreement"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid date format, expected YYYY-MM-DD"
)

// CreateAgreementRequest HTTP request model
type CreateAgreementRequest struct {
	Name         string          `json:"name"`
	Authority    string          `json:"authority"`
	StartDate    string          `json:"startDate"`
	EndDate      string          `json:"endDate"`
	LicenseFee   decimal.Decimal `json:"licenseFee"`
	TaxFrequency string          `json:"taxFrequency"`
}

// AgreementResponse HTTP response model
type AgreementResponse struct {
	ID               int64           `json:"id"`
	Name             string          `json:"name"`
	Authority        string          `json:"authority"`
	StartDate        string          `json:"startDate"`
	EndDate          string          `json:"endDate"`
	LicenseFee       decimal.Decimal `json:"licenseFee"`
	TaxFrequency     string          `json:"taxFrequency"`
	Status           string          `json:"status"`
	InstallmentCount int             `json:"installmentCount"`
	CreatedAt        string          `json:"createdAt"`
	UpdatedAt        string          `json:"updatedAt"`
}

type Handler struct {
	useCase CreateAgreementUseCase
	logger  Logger
}

func NewHandler(useCase CreateAgreementUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/agreements
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAgreementRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /agreements - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	startDate, err := time.Parse(domain.DateFormat, req.StartDate)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	endDate, err := time.Parse(domain.DateFormat, req.EndDate)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &createAgreement.Request{
		Name:         req.Name,
		Authority:    req.Authority,
		StartDate:    startDate,
		EndDate:      endDate,
		LicenseFee:   req.LicenseFee,
		TaxFrequency: req.TaxFrequency,
	})
	if err != nil {
		switch {
		case errors.Is(err, createAgreement.ErrInvalidInput):
			h.logger.Warn("POST /agreements - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /agreements - Failed to create agreement: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /agreements - Agreement created: agreement_id=%d, installments=%d",
		result.ID, result.InstallmentCount)
	handlers.RespondJSON(w, http.StatusCreated, &AgreementResponse{
		ID:               result.ID,
		Name:             result.Name,
		Authority:        result.Authority,
		StartDate:        result.StartDate.Format(domain.DateFormat),
		EndDate:          result.EndDate.Format(domain.DateFormat),
		LicenseFee:       result.LicenseFee,
		TaxFrequency:     result.TaxFrequency,
		Status:           result.Status,
		InstallmentCount: result.InstallmentCount,
		CreatedAt:        result.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        result.UpdatedAt.Format(time.RFC3339),
	})
}
