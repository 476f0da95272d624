package list_recycle_bin

import (
	"net/http"
	"time"

	"github.com/skyreach/OOH-BookingService/internal/api/handlers"
)

// Entry one recycle bin row
type Entry struct {
	EntityType    string `json:"entityType"`
	EntityID      int64  `json:"entityId"`
	Label         string `json:"label"`
	Detail        string `json:"detail,omitempty"`
	DeletedAt     string `json:"deletedAt"`
	DaysRemaining int    `json:"daysRemaining"`
}

// ListResponse HTTP response model
type ListResponse struct {
	Entries []Entry `json:"entries"`
}

type Handler struct {
	service RecycleBinService
	logger  Logger
}

func NewHandler(service RecycleBinService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/recycle-bin
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListDeleted(r.Context())
	if err != nil {
		h.logger.Error("GET /recycle-bin - Failed to list entries: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	now := time.Now()
	entries := make([]Entry, 0, len(result))
	for _, e := range result {
		entries = append(entries, Entry{
			EntityType:    string(e.EntityType),
			EntityID:      e.EntityID,
			Label:         e.Label,
			Detail:        e.Detail,
			DeletedAt:     e.DeletedAt.Format(time.RFC3339),
			DaysRemaining: e.DaysRemaining(now),
		})
	}

	handlers.RespondJSON(w, http.StatusOK, &ListResponse{Entries: entries})
}
