package delete_block

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/vinetours/VT-FleetService/internal/api/handlers"
	"github.com/vinetours/VT-FleetService/internal/service/blocks"
)

const (
	msgInvalidBlockID      = "некорректный ID блока"
	msgBlockNotFound       = "блок не найден"
	msgOperationNotAllowed = "блок этого типа нельзя удалить напрямую"
)

type Handler struct {
	service BlockService
	logger  Logger
}

func NewHandler(service BlockService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/blocks/{blockId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	blockID, err := strconv.ParseInt(vars["blockId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /blocks/{id} - Invalid block ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBlockID)
		return
	}

	if err := h.service.Delete(r.Context(), blockID); err != nil {
		switch {
		case errors.Is(err, blocks.ErrBlockNotFound):
			h.logger.Warn("DELETE /blocks/{id} - Block not found: block_id=%d", blockID)
			handlers.RespondNotFound(w, msgBlockNotFound)

		case errors.Is(err, blocks.ErrOperationNotAllowed):
			h.logger.Warn("DELETE /blocks/{id} - Direct deletion not allowed: block_id=%d", blockID)
			handlers.RespondError(w, http.StatusConflict, msgOperationNotAllowed)

		default:
			h.logger.Error("DELETE /blocks/{id} - Failed to delete block: block_id=%d, error=%v", blockID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /blocks/{id} - Block deleted successfully: block_id=%d", blockID)
	handlers.RespondNoContent(w)
}
