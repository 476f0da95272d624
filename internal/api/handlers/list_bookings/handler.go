package list_bookings

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/skyreach/OOH-BookingService/internal/api/handlers"
	"github.com/skyreach/OOH-BookingService/internal/domain"
	listBookings "github.com/skyreach/OOH-BookingService/internal/usecase/list_bookings"
)

const (
	msgInvalidFilter = "invalid filter value"
)

// BookingItem one booking row
type BookingItem struct {
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

// ListBookingsResponse HTTP response model
type ListBookingsResponse struct {
	Bookings []BookingItem `json:"bookings"`
}

type Handler struct {
	useCase ListBookingsUseCase
	logger  Logger
}

func NewHandler(useCase ListBookingsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings?mediaId=&customerId=&status=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &listBookings.Request{}

	query := r.URL.Query()
	if raw := query.Get("mediaId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		req.MediaID = &id
	}
	if raw := query.Get("customerId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		req.CustomerID = &id
	}
	if raw := query.Get("status"); raw != "" {
		req.Status = &raw
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, listBookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /bookings - Failed to list bookings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	items := make([]BookingItem, 0, len(result.Bookings))
	for _, b := range result.Bookings {
		items = append(items, BookingItem{
			ID:            b.ID,
			ReferenceID:   b.ReferenceID,
			MediaID:       b.MediaID,
			CustomerID:    b.CustomerID,
			StartDate:     b.StartDate.Format(domain.DateFormat),
			EndDate:       b.EndDate.Format(domain.DateFormat),
			Status:        b.Status,
			Amount:        b.Amount,
			AmountPaid:    b.AmountPaid,
			PaymentStatus: b.PaymentStatus,
			Notes:         b.Notes,
			Version:       b.Version,
			CreatedAt:     b.CreatedAt.Format(time.RFC3339),
			UpdatedAt:     b.UpdatedAt.Format(time.RFC3339),
		})
	}

	handlers.RespondJSON(w, http.StatusOK, &ListBookingsResponse{Bookings: items})
}
