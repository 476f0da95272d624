package create_booking

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/skyreach/OOH-BookingService/internal/domain"
	createBooking "github.com/skyreach/OOH-BookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	MediaID    int64           `json:"mediaId"`
	CustomerID int64           `json:"customerId"`
	StartDate  string          `json:"startDate"` // "2026-04-01"
	EndDate    string          `json:"endDate"`
	Amount     decimal.Decimal `json:"amount"`
	AmountPaid decimal.Decimal `json:"amountPaid"`
	Notes      *string         `json:"notes,omitempty"`
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
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, err
	}

	endDate, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		MediaID:    r.MediaID,
		CustomerID: r.CustomerID,
		StartDate:  startDate,
		EndDate:    endDate,
		Amount:     r.Amount,
		AmountPaid: r.AmountPaid,
		Notes:      r.Notes,
	}, nil
}

// FromUseCaseResponse converts the use case result into the HTTP model.
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
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
