package get_agreement

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"github.com/skyreach/OOH-BookingService/internal/api/handlers"
	"github.com/skyreach/OOH-BookingService/internal/domain"
	getAgreement "github.com/skyreach/OOH-BookingService/internal/usecase/get_agreement"
)

const (
	msgInvalidAgreementID = "invalid agreement id"
	msgAgreementNotFound  = "agreement not found"
)

// InstallmentItem one installment row
type InstallmentItem struct {
	ID      int64           `json:"id"`
	DueDate string          `json:"dueDate"`
	Amount  decimal.Decimal `json:"amount"`
	Status  string          `json:"status"`
}

// AgreementResponse HTTP response model
type AgreementResponse struct {
	ID           int64             `json:"id"`
	Name         string            `json:"name"`
	Authority    string            `json:"authority"`
	StartDate    string            `json:"startDate"`
	EndDate      string            `json:"endDate"`
	LicenseFee   decimal.Decimal   `json:"licenseFee"`
	TaxFrequency string            `json:"taxFrequency"`
	Status       string            `json:"status"`
	Installments []InstallmentItem `json:"installments"`
	CreatedAt    string            `json:"createdAt"`
	UpdatedAt    string            `json:"updatedAt"`
}

type Handler struct {
	useCase GetAgreementUseCase
	logger  Logger
}

func NewHandler(useCase GetAgreementUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/agreements/{agreementId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["agreementId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /agreements/{agreementId} - Invalid agreement id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAgreementID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, getAgreement.ErrAgreementNotFound):
			h.logger.Warn("GET /agreements/{agreementId} - Agreement not found: agreement_id=%d", id)
			handlers.RespondNotFound(w, msgAgreementNotFound)

		case errors.Is(err, getAgreement.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidAgreementID)

		default:
			h.logger.Error("GET /agreements/{agreementId} - Failed to get agreement: agreement_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	installments := make([]InstallmentItem, 0, len(result.Installments))
	for _, inst := range result.Installments {
		installments = append(installments, InstallmentItem{
			ID:      inst.ID,
			DueDate: inst.DueDate.Format(domain.DateFormat),
			Amount:  inst.Amount,
			Status:  inst.Status,
		})
	}

	handlers.RespondJSON(w, http.StatusOK, &AgreementResponse{
		ID:           result.ID,
		Name:         result.Name,
		Authority:    result.Authority,
		StartDate:    result.StartDate.Format(domain.DateFormat),
		EndDate:      result.EndDate.Format(domain.DateFormat),
		LicenseFee:   result.LicenseFee,
		TaxFrequency: result.TaxFrequency,
		Status:       result.Status,
		Installments: installments,
		CreatedAt:    result.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    result.UpdatedAt.Format(time.RFC3339),
	})
}
