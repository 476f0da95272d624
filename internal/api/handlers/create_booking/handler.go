package create_booking

import (
	"errors"
	"net/http"

	"github.com/skyreach/OOH-BookingService/internal/api/handlers"
	createBooking "github.com/skyreach/OOH-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid date format, expected YYYY-MM-DD"
	msgMediaNotFound      = "media unit not found"
	msgCustomerNotFound   = "customer not found"
	msgDateConflict       = "requested dates conflict with an existing booking"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var conflict *createBooking.ConflictError
		switch {
		case errors.As(err, &conflict):
			h.logger.Warn("POST /bookings - Date conflict: media_id=%d, blocking_booking_id=%d",
				req.MediaID, conflict.BookingID)
			handlers.RespondConflict(w, handlers.CodeDateConflict, msgDateConflict, &conflict.BookingID)

		case errors.Is(err, createBooking.ErrMediaNotFound):
			h.logger.Warn("POST /bookings - Media unit not found: media_id=%d", req.MediaID)
			handlers.RespondNotFound(w, msgMediaNotFound)

		case errors.Is(err, createBooking.ErrCustomerNotFound):
			h.logger.Warn("POST /bookings - Customer not found: customer_id=%d", req.CustomerID)
			handlers.RespondNotFound(w, msgCustomerNotFound)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /bookings - Failed to create booking: media_id=%d, customer_id=%d, error=%v",
				req.MediaID, req.CustomerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, media_id=%d, customer_id=%d",
		result.ID, req.MediaID, req.CustomerID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
