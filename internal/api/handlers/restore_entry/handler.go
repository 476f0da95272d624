package restore_entry

import (
	"errors"
	"net/http"

	"github.com/skyreach/OOH-BookingService/internal/api/handlers"
	"github.com/skyreach/OOH-BookingService/internal/domain"
	"github.com/skyreach/OOH-BookingService/internal/service/recyclebin"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgUnknownEntityType  = "unknown entity type"
	msgEntryNotFound      = "recycle bin entry not found"
)

// RestoreRequest HTTP request model
type RestoreRequest struct {
	EntityType string `json:"entityType"`
	ID         int64  `json:"id"`
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

// Handle POST /api/v1/recycle-bin/restore
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req RestoreRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /recycle-bin/restore - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.ID <= 0 || !domain.ValidEntityType(domain.EntityType(req.EntityType)) {
		h.logger.Warn("POST /recycle-bin/restore - Invalid entry: type=%q id=%d", req.EntityType, req.ID)
		handlers.RespondBadRequest(w, msgUnknownEntityType)
		return
	}

	err := h.service.Restore(r.Context(), domain.EntityType(req.EntityType), req.ID)
	if err != nil {
		switch {
		case errors.Is(err, recyclebin.ErrEntryNotFound):
			h.logger.Warn("POST /recycle-bin/restore - Entry not found: type=%s id=%d", req.EntityType, req.ID)
			handlers.RespondNotFound(w, msgEntryNotFound)

		case errors.Is(err, recyclebin.ErrUnknownEntityType):
			handlers.RespondBadRequest(w, msgUnknownEntityType)

		default:
			h.logger.Error("POST /recycle-bin/restore - Failed: type=%s id=%d, error=%v", req.EntityType, req.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /recycle-bin/restore - Restored: type=%s id=%d", req.EntityType, req.ID)
	w.WriteHeader(http.StatusNoContent)
}
