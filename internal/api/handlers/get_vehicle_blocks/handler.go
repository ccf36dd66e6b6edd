package get_vehicle_blocks

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/vinetours/VT-FleetService/internal/api/handlers"
	"github.com/vinetours/VT-FleetService/internal/domain"
)

const (
	msgInvalidVehicleID = "некорректный ID автомобиля"
	msgMissingDate      = "дата обязательна"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
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

// Handle GET /api/v1/vehicles/{vehicleId}/blocks
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	vehicleID, err := strconv.ParseInt(vars["vehicleId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /vehicles/{id}/blocks - Invalid vehicle ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVehicleID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /vehicles/{id}/blocks - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /vehicles/{id}/blocks - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	blocks, err := h.service.GetForVehicleOnDate(r.Context(), vehicleID, date)
	if err != nil {
		h.logger.Error("GET /vehicles/{id}/blocks - Failed to get blocks: vehicle_id=%d, error=%v", vehicleID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /vehicles/{id}/blocks - Blocks retrieved successfully: vehicle_id=%d, date=%s, blocks_count=%d",
		vehicleID, dateStr, len(blocks))
	handlers.RespondJSON(w, http.StatusOK, FromDomain(vehicleID, date, blocks))
}
