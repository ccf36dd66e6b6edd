package get_available_slots

import (
	"time"

	"github.com/vinetours/VT-FleetService/pkg/types"
)

// Request модель запроса перечисления слотов на день
type Request struct {
	Date          time.Time // Дата тура (без времени)
	DurationHours int       // Длительность тура в часах
	PartySize     int       // Размер группы
	BrandID       *string   // Бренд (опционально)
}

// Response модель ответа со списком слотов
type Response struct {
	Date          time.Time // Дата, на которую перечислялись слоты
	DurationHours int       // Запрошенная длительность
	Slots         []Slot    // Все кандидаты с аннотацией доступности
}

// Slot вычисленный кандидат начала тура. Не персистится.
type Slot struct {
	StartTime   types.TimeString // Время начала слота
	EndTime     types.TimeString // Время окончания слота
	Available   bool             // Доступен ли слот
	VehicleID   *int64           // Назначенный автомобиль (если доступен)
	VehicleName *string          // Отображаемое имя автомобиля
}
