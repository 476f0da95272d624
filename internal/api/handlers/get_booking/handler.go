package get_booking

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"github.com/skyreach/OOH-BookingService/internal/api/handlers"
	"github.com/skyreach/OOH-BookingService/internal/domain"
	getBooking "github.com/skyreach/OOH-BookingService/internal/usecase/get_booking"
)

const (
	msgInvalidBookingID = "invalid booking id"
	msgBookingNotFound  = "booking not found"
)

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            int64           `json:"id"`
	ReferenceID   string          `json:"referenceId"`
	MediaID       int64           `json:"mediaId"`
	CustomerID    int64           `json:"customerId"`
	StartDate     string          `json:"startDate"`
	EndDate       string          `json:"endDate"`
	Status        string          `json:"status"`
	Amount        decimal.Decimal `json:"amount"`
	AmountPaid    decimal.Decimal `json:"amountPaid"`
	PaymentStatus string          `json:"paymentStatus"`
	Notes         *string         `json:"notes,omitempty"`
	Version       int64           `json:"version"`
	CreatedAt     string          `json:"createdAt"`
	UpdatedAt     string          `json:"updatedAt"`
}

type Handler struct {
	useCase GetBookingUseCase
	logger  Logger
}

func NewHandler(useCase GetBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /bookings/{bookingId} - Invalid booking id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, getBooking.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{bookingId} - Booking not found: booking_id=%d", id)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, getBooking.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidBookingID)

		default:
			h.logger.Error("GET /bookings/{bookingId} - Failed to get booking: booking_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &BookingResponse{
		ID:            result.ID,
		ReferenceID:   result.ReferenceID,
		MediaID:       result.MediaID,
		CustomerID:    result.CustomerID,
		StartDate:     result.StartDate.Format(domain.DateFormat),
		EndDate:       result.EndDate.Format(domain.DateFormat),
		Status:        result.Status,
		Amount:        result.Amount,
		AmountPaid:    result.AmountPaid,
		PaymentStatus: result.PaymentStatus,
		Notes:         result.Notes,
		Version:       result.Version,
		CreatedAt:     result.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     result.UpdatedAt.Format(time.RFC3339),
	})
}
