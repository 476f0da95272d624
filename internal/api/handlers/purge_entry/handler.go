package purge_entry

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/skyreach/OOH-BookingService/internal/api/handlers"
	"github.com/skyreach/OOH-BookingService/internal/domain"
	"github.com/skyreach/OOH-BookingService/internal/service/recyclebin"
)

const (
	msgInvalidEntry      = "invalid entity type or id"
	msgUnknownEntityType = "unknown entity type"
	msgEntryNotFound     = "recycle bin entry not found"
)

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

// Handle DELETE /api/v1/recycle-bin/{entityType}/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	entityType := domain.EntityType(vars["entityType"])
	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil || id <= 0 || !domain.ValidEntityType(entityType) {
		h.logger.Warn("DELETE /recycle-bin/{entityType}/{id} - Invalid entry: type=%q id=%q",
			vars["entityType"], vars["id"])
		handlers.RespondBadRequest(w, msgInvalidEntry)
		return
	}

	if err := h.service.PermanentDelete(r.Context(), entityType, id); err != nil {
		switch {
		case errors.Is(err, recyclebin.ErrEntryNotFound):
			h.logger.Warn("DELETE /recycle-bin/{entityType}/{id} - Entry not found: type=%s id=%d", entityType, id)
			handlers.RespondNotFound(w, msgEntryNotFound)

		case errors.Is(err, recyclebin.ErrUnknownEntityType):
			handlers.RespondBadRequest(w, msgUnknownEntityType)

		default:
			h.logger.Error("DELETE /recycle-bin/{entityType}/{id} - Failed: type=%s id=%d, error=%v", entityType, id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /recycle-bin/{entityType}/{id} - Permanently deleted: type=%s id=%d", entityType, id)
	w.WriteHeader(http.StatusNoContent)
}
