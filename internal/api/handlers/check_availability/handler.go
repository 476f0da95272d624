package check_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/skyreach/OOH-BookingService/internal/api/handlers"
	"github.com/skyreach/OOH-BookingService/internal/domain"
	checkAvailability "github.com/skyreach/OOH-BookingService/internal/usecase/check_availability"
)

const (
	msgInvalidMediaID = "invalid media id"
	msgInvalidDate    = "invalid date format, expected YYYY-MM-DD"
	msgInvalidRange   = "startDate and endDate must be given together, startDate first"
	msgMediaNotFound  = "media unit not found"
)

// OccupiedInterval one booked interval
type OccupiedInterval struct {
	BookingID int64  `json:"bookingId"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	MediaID  int64              `json:"mediaId"`
	Status   string             `json:"status"`
	Calendar []OccupiedInterval `json:"calendar"`

	Available            *bool   `json:"available,omitempty"`
	ConflictingBookingID *int64  `json:"conflictingBookingId,omitempty"`
	ConflictingReference *string `json:"conflictingReference,omitempty"`
}

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/media/{mediaId}/availability?startDate=&endDate=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	mediaID, err := strconv.ParseInt(mux.Vars(r)["mediaId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /media/{mediaId}/availability - Invalid media id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMediaID)
		return
	}

	req := &checkAvailability.Request{MediaID: mediaID}

	query := r.URL.Query()
	if raw := query.Get("startDate"); raw != "" {
		startDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.StartDate = &startDate
	}
	if raw := query.Get("endDate"); raw != "" {
		endDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.EndDate = &endDate
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrMediaNotFound):
			h.logger.Warn("GET /media/{mediaId}/availability - Media unit not found: media_id=%d", mediaID)
			handlers.RespondNotFound(w, msgMediaNotFound)

		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("GET /media/{mediaId}/availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("GET /media/{mediaId}/availability - Failed: media_id=%d, error=%v", mediaID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	calendar := make([]OccupiedInterval, 0, len(result.Calendar))
	for _, entry := range result.Calendar {
		calendar = append(calendar, OccupiedInterval{
			BookingID: entry.BookingID,
			StartDate: entry.StartDate.Format(domain.DateFormat),
			EndDate:   entry.EndDate.Format(domain.DateFormat),
		})
	}

	handlers.RespondJSON(w, http.StatusOK, &AvailabilityResponse{
		MediaID:              result.MediaID,
		Status:               result.Status,
		Calendar:             calendar,
		Available:            result.Available,
		ConflictingBookingID: result.ConflictingBookingID,
		ConflictingReference: result.ConflictingReference,
	})
}
