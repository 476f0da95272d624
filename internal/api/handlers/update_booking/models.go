package update_booking

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/skyreach/OOH-BookingService/internal/domain"
	updateBooking "github.com/skyreach/OOH-BookingService/internal/usecase/update_booking"
)

// UpdateBookingRequest HTTP request model. Omitted fields stay
// unchanged; version is required.
type UpdateBookingRequest struct {
	Version    int64            `json:"version"`
	StartDate  *string          `json:"startDate,omitempty"`
	EndDate    *string          `json:"endDate,omitempty"`
	Amount     *decimal.Decimal `json:"amount,omitempty"`
	AmountPaid *decimal.Decimal `json:"amountPaid,omitempty"`
	Notes      *string          `json:"notes,omitempty"`
	AutoStatus *bool            `json:"autoStatus,omitempty"`
	Status     *string          `json:"status,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            int64           `json:"id"`
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

// ToUseCaseRequest converts the HTTP request into the use case model.
func (r *UpdateBookingRequest) ToUseCaseRequest(bookingID int64) (*updateBooking.Request, error) {
	req := &updateBooking.Request{
		ID:         bookingID,
		Version:    r.Version,
		Amount:     r.Amount,
		AmountPaid: r.AmountPaid,
		Notes:      r.Notes,
		AutoStatus: r.AutoStatus,
		Status:     r.Status,
	}

	if r.StartDate != nil {
		startDate, err := time.Parse(domain.DateFormat, *r.StartDate)
		if err != nil {
			return nil, err
		}
		req.StartDate = &startDate
	}

	if r.EndDate != nil {
		endDate, err := time.Parse(domain.DateFormat, *r.EndDate)
		if err != nil {
			return nil, err
		}
		req.EndDate = &endDate
	}

	return req, nil
}

// FromUseCaseResponse converts the use case result into the HTTP model.
func FromUseCaseResponse(resp *updateBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		MediaID:       resp.MediaID,
		CustomerID:    resp.CustomerID,
		StartDate:     resp.StartDate.Format(domain.DateFormat),
		EndDate:       resp.EndDate.Format(domain.DateFormat),
		Status:        resp.Status,
		Amount:        resp.Amount,
		AmountPaid:    resp.AmountPaid,
		PaymentStatus: resp.PaymentStatus,
		Notes:         resp.Notes,
		Version:       resp.Version,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}
