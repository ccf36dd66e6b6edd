package delete_booking_blocks

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/vinetours/VT-FleetService/internal/api/handlers"
	"github.com/vinetours/VT-FleetService/internal/service/blocks"
)

const (
	msgInvalidBookingID = "некорректный ID бронирования"
	msgBlocksNotFound   = "блоки бронирования не найдены"
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

// Handle DELETE /api/v1/bookings/{bookingId}/blocks
// Вызывается при отмене бронирования: снимает booking-блок вместе с его
// буферами, освобождая автомобиль.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /bookings/{id}/blocks - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	count, err := h.service.DeleteForBooking(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, blocks.ErrBlockNotFound):
			h.logger.Warn("DELETE /bookings/{id}/blocks - Blocks not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBlocksNotFound)

		default:
			h.logger.Error("DELETE /bookings/{id}/blocks - Failed to delete blocks: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /bookings/{id}/blocks - Blocks deleted successfully: booking_id=%d, count=%d",
		bookingID, count)
	handlers.RespondNoContent(w)
}
