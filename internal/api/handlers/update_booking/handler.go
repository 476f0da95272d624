package update_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/skyreach/OOH-BookingService/internal/api/handlers"
	updateBooking "github.com/skyreach/OOH-BookingService/internal/usecase/update_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidBookingID   = "invalid booking id"
	msgInvalidDate        = "invalid date format, expected YYYY-MM-DD"
	msgBookingNotFound    = "booking not found"
	msgDateConflict       = "requested dates conflict with an existing booking"
	msgStaleVersion       = "booking was modified by another request, reload and retry"
)

type Handler struct {
	useCase UpdateBookingUseCase
	logger  Logger
}

func NewHandler(useCase UpdateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{bookingId} - Invalid booking id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{bookingId} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(id)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{bookingId} - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var conflict *updateBooking.ConflictError
		switch {
		case errors.As(err, &conflict):
			h.logger.Warn("PATCH /bookings/{bookingId} - Date conflict: booking_id=%d, blocking_booking_id=%d",
				id, conflict.BookingID)
			handlers.RespondConflict(w, handlers.CodeDateConflict, msgDateConflict, &conflict.BookingID)

		case errors.Is(err, updateBooking.ErrVersionConflict):
			h.logger.Warn("PATCH /bookings/{bookingId} - Stale version: booking_id=%d, version=%d", id, req.Version)
			handlers.RespondConflict(w, handlers.CodeStaleVersion, msgStaleVersion, nil)

		case errors.Is(err, updateBooking.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{bookingId} - Booking not found: booking_id=%d", id)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, updateBooking.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{bookingId} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PATCH /bookings/{bookingId} - Failed to update booking: booking_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{bookingId} - Booking updated: booking_id=%d, version=%d", id, result.Version)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
