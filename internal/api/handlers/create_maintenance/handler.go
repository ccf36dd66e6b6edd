package create_maintenance

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/vinetours/VT-FleetService/internal/api/handlers"
	blockRepo "github.com/vinetours/VT-FleetService/internal/infra/storage/block"
	createMaintenance "github.com/vinetours/VT-FleetService/internal/usecase/create_maintenance"
)

const (
	msgInvalidVehicleID   = "некорректный ID автомобиля"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени"
	msgInvalidRequest     = "некорректные параметры запроса"
	msgVehicleNotFound    = "автомобиль не найден"
	msgBookingConflict    = "окно обслуживания пересекается с подтвержденным бронированием"
	msgSlotConflict       = "выбранное время уже занято"
)

type Handler struct {
	useCase CreateMaintenanceUseCase
	logger  Logger
}

func NewHandler(useCase CreateMaintenanceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/vehicles/{vehicleId}/maintenance
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	vehicleID, err := strconv.ParseInt(vars["vehicleId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /vehicles/{id}/maintenance - Invalid vehicle ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVehicleID)
		return
	}

	var req CreateMaintenanceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /vehicles/{id}/maintenance - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(vehicleID)
	if err != nil {
		h.logger.Warn("POST /vehicles/{id}/maintenance - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createMaintenance.ErrInvalidInput):
			h.logger.Warn("POST /vehicles/{id}/maintenance - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		case errors.Is(err, createMaintenance.ErrVehicleNotFound):
			h.logger.Warn("POST /vehicles/{id}/maintenance - Vehicle not found: vehicle_id=%d", vehicleID)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		case errors.Is(err, createMaintenance.ErrBookingConflict):
			h.logger.Warn("POST /vehicles/{id}/maintenance - Booking conflict: vehicle_id=%d", vehicleID)
			handlers.RespondError(w, http.StatusConflict, msgBookingConflict)

		case errors.Is(err, blockRepo.ErrSlotConflict):
			h.logger.Warn("POST /vehicles/{id}/maintenance - Slot conflict: vehicle_id=%d", vehicleID)
			handlers.RespondError(w, http.StatusConflict, msgSlotConflict)

		default:
			h.logger.Error("POST /vehicles/{id}/maintenance - Failed to create maintenance block: vehicle_id=%d, error=%v",
				vehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /vehicles/{id}/maintenance - Maintenance block created successfully: block_id=%d, vehicle_id=%d",
		result.BlockID, vehicleID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
