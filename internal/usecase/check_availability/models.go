package check_availability

import (
	"time"

	"github.com/vinetours/VT-FleetService/pkg/types"
)

// Request модель запроса проверки доступности
type Request struct {
	Date          time.Time        // Дата тура (без времени)
	StartTime     types.TimeString // Время начала (например, "10:00")
	DurationHours int              // Длительность тура в часах
	PartySize     int              // Размер группы
	BrandID       *string          // Бренд (опционально)
}

// Response результат проверки доступности.
// "Недоступно" - нормальный результат, не ошибка: Conflicts содержит
// объяснение для пользователя.
type Response struct {
	Available   bool     // Доступен ли запрошенный слот
	VehicleID   *int64   // Назначенный автомобиль (если доступен)
	VehicleName *string  // Отображаемое имя автомобиля
	Conflicts   []string // Причины недоступности
}

// unavailable формирует отрицательный результат с причинами
func unavailable(conflicts ...string) *Response {
	return &Response{Available: false, Conflicts: conflicts}
}
