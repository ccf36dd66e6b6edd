package create_hold

import (
	"errors"
	"net/http"

	"github.com/vinetours/VT-FleetService/internal/api/handlers"
	blockRepo "github.com/vinetours/VT-FleetService/internal/infra/storage/block"
	createHold "github.com/vinetours/VT-FleetService/internal/usecase/create_hold"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени"
	msgInvalidRequest     = "некорректные параметры запроса"
	msgVehicleNotFound    = "автомобиль не найден"
	msgVehicleNotBookable = "автомобиль недоступен для бронирования"
	msgSlotConflict       = "выбранное время уже занято"
)

type Handler struct {
	useCase CreateHoldUseCase
	logger  Logger
}

func NewHandler(useCase CreateHoldUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/holds
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateHoldRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /holds - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /holds - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createHold.ErrInvalidInput):
			h.logger.Warn("POST /holds - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		case errors.Is(err, createHold.ErrVehicleNotFound):
			h.logger.Warn("POST /holds - Vehicle not found: vehicle_id=%d", req.VehicleID)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		case errors.Is(err, createHold.ErrVehicleNotBookable):
			h.logger.Warn("POST /holds - Vehicle not bookable: vehicle_id=%d", req.VehicleID)
			handlers.RespondError(w, http.StatusConflict, msgVehicleNotBookable)

		case errors.Is(err, blockRepo.ErrSlotConflict):
			h.logger.Warn("POST /holds - Slot conflict: vehicle_id=%d, date=%s", req.VehicleID, req.Date)
			handlers.RespondError(w, http.StatusConflict, msgSlotConflict)

		default:
			h.logger.Error("POST /holds - Failed to create hold: vehicle_id=%d, error=%v", req.VehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /holds - Hold created successfully: hold_id=%d, vehicle_id=%d",
		result.HoldID, result.VehicleID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
