package create_hold

import (
	"time"

	"github.com/vinetours/VT-FleetService/pkg/types"
)

// Request модель запроса на создание hold'а
type Request struct {
	VehicleID int64            // ID автомобиля
	Date      time.Time        // Дата тура (без времени)
	StartTime types.TimeString // Время начала
	EndTime   types.TimeString // Время окончания (полуоткрытый интервал)
	BrandID   *string          // Бренд (опционально)
}

// Response модель ответа с созданным hold'ом
type Response struct {
	HoldID    int64            // ID hold-блока
	VehicleID int64            // ID автомобиля
	Date      time.Time        // Дата тура
	StartTime types.TimeString // Время начала
	EndTime   types.TimeString // Время окончания
	ExpiresAt time.Time        // Момент истечения hold'а
}
