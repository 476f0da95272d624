package wipe_recycle_bin

import (
	"net/http"

	"github.com/skyreach/OOH-BookingService/internal/api/handlers"
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

// Handle DELETE /api/v1/recycle-bin
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Wipe(r.Context()); err != nil {
		h.logger.Error("DELETE /recycle-bin - Wipe failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /recycle-bin - Recycle bin wiped")
	w.WriteHeader(http.StatusNoContent)
}
