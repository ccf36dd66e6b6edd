package confirm_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/vinetours/VT-FleetService/internal/api/handlers"
	confirmBooking "github.com/vinetours/VT-FleetService/internal/usecase/confirm_booking"
)

const (
	msgInvalidHoldID       = "некорректный ID hold'а"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidRequest      = "некорректные параметры запроса"
	msgHoldNotFound        = "hold не найден или истек"
	msgComplianceViolation = "автомобиль заблокирован проверкой соответствия"
)

type Handler struct {
	useCase ConfirmBookingUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/holds/{holdId}/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	holdID, err := strconv.ParseInt(vars["holdId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /holds/{id}/confirm - Invalid hold ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHoldID)
		return
	}

	var req ConfirmBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /holds/{id}/confirm - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(holdID))
	if err != nil {
		switch {
		case errors.Is(err, confirmBooking.ErrInvalidInput):
			h.logger.Warn("POST /holds/{id}/confirm - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		case errors.Is(err, confirmBooking.ErrHoldNotFound):
			h.logger.Warn("POST /holds/{id}/confirm - Hold not found: hold_id=%d", holdID)
			handlers.RespondNotFound(w, msgHoldNotFound)

		case errors.Is(err, confirmBooking.ErrComplianceViolation):
			h.logger.Warn("POST /holds/{id}/confirm - Compliance violation: hold_id=%d, error=%v", holdID, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgComplianceViolation)

		default:
			h.logger.Error("POST /holds/{id}/confirm - Failed to confirm booking: hold_id=%d, error=%v", holdID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /holds/{id}/confirm - Booking confirmed successfully: hold_id=%d, booking_id=%d",
		holdID, result.BookingID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
