package update_agreement

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"github.com/skyreach/OOH-BookingService/internal/api/handlers"
	"github.com/skyreach/OOH-BookingService/internal/domain"
	updateAgreement "github.com/skyreach/OOH-BookingService/internal/usecase/update_agreement"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidAgreementID = "invalid agreement id"
	msgInvalidDate        = "invalid date format, expected YYYY-MM-DD"
	msgAgreementNotFound  = "agreement not found"
)

// UpdateAgreementRequest HTTP request model. Omitted fields stay
// unchanged.
type UpdateAgreementRequest struct {
	Name         *string          `json:"name,omitempty"`
	Authority    *string          `json:"authority,omitempty"`
	StartDate    *string          `json:"startDate,omitempty"`
	EndDate      *string          `json:"endDate,omitempty"`
	LicenseFee   *decimal.Decimal `json:"licenseFee,omitempty"`
	TaxFrequency *string          `json:"taxFrequency,omitempty"`
}

// AgreementResponse HTTP response model
type AgreementResponse struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Authority    string          `json:"authority"`
	StartDate    string          `json:"startDate"`
	EndDate      string          `json:"endDate"`
	LicenseFee   decimal.Decimal `json:"licenseFee"`
	TaxFrequency string          `json:"taxFrequency"`
	Status       string          `json:"status"`
	Regenerated  bool            `json:"installmentsRegenerated"`
	CreatedAt    string          `json:"createdAt"`
	UpdatedAt    string          `json:"updatedAt"`
}

type Handler struct {
	useCase UpdateAgreementUseCase
	logger  Logger
}

func NewHandler(useCase UpdateAgreementUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/agreements/{agreementId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["agreementId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /agreements/{agreementId} - Invalid agreement id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAgreementID)
		return
	}

	var req UpdateAgreementRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /agreements/{agreementId} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq := &updateAgreement.Request{
		ID:           id,
		Name:         req.Name,
		Authority:    req.Authority,
		LicenseFee:   req.LicenseFee,
		TaxFrequency: req.TaxFrequency,
	}
	if req.StartDate != nil {
		startDate, err := time.Parse(domain.DateFormat, *req.StartDate)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		useCaseReq.StartDate = &startDate
	}
	if req.EndDate != nil {
		endDate, err := time.Parse(domain.DateFormat, *req.EndDate)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		useCaseReq.EndDate = &endDate
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateAgreement.ErrAgreementNotFound):
			h.logger.Warn("PATCH /agreements/{agreementId} - Agreement not found: agreement_id=%d", id)
			handlers.RespondNotFound(w, msgAgreementNotFound)

		case errors.Is(err, updateAgreement.ErrInvalidInput):
			h.logger.Warn("PATCH /agreements/{agreementId} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PATCH /agreements/{agreementId} - Failed to update agreement: agreement_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /agreements/{agreementId} - Agreement updated: agreement_id=%d, regenerated=%t",
		id, result.Regenerated)
	handlers.RespondJSON(w, http.StatusOK, &AgreementResponse{
		ID:           result.ID,
		Name:         result.Name,
		Authority:    result.Authority,
		StartDate:    result.StartDate.Format(domain.DateFormat),
		EndDate:      result.EndDate.Format(domain.DateFormat),
		LicenseFee:   result.LicenseFee,
		TaxFrequency: result.TaxFrequency,
		Status:       result.Status,
		Regenerated:  result.Regenerated,
		CreatedAt:    result.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    result.UpdatedAt.Format(time.RFC3339),
	})
}
