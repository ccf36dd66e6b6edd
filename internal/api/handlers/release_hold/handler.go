package release_hold

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/vinetours/VT-FleetService/internal/api/handlers"
	"github.com/vinetours/VT-FleetService/internal/service/holds"
)

const (
	msgInvalidHoldID = "некорректный ID hold'а"
	msgHoldNotFound  = "hold не найден"
	msgNotAHold      = "блок не является hold'ом"
)

type Handler struct {
	service HoldService
	logger  Logger
}

func NewHandler(service HoldService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/holds/{holdId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	holdID, err := strconv.ParseInt(vars["holdId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /holds/{id} - Invalid hold ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHoldID)
		return
	}

	if err := h.service.Release(r.Context(), holdID); err != nil {
		switch {
		case errors.Is(err, holds.ErrHoldNotFound):
			h.logger.Warn("DELETE /holds/{id} - Hold not found: hold_id=%d", holdID)
			handlers.RespondNotFound(w, msgHoldNotFound)

		case errors.Is(err, holds.ErrNotAHold):
			h.logger.Warn("DELETE /holds/{id} - Block is not a hold: hold_id=%d", holdID)
			handlers.RespondError(w, http.StatusConflict, msgNotAHold)

		default:
			h.logger.Error("DELETE /holds/{id} - Failed to release hold: hold_id=%d, error=%v", holdID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /holds/{id} - Hold released successfully: hold_id=%d", holdID)
	handlers.RespondNoContent(w)
}
