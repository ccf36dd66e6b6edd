package confirm_booking

import (
	"time"

	"github.com/vinetours/VT-FleetService/internal/integrations/pricingservice"
	"github.com/vinetours/VT-FleetService/pkg/types"
)

// Request запрос на подтверждение бронирования
type Request struct {
	HoldID    int64
	BookingID int64
	PartySize int
}

// Response результат подтверждения бронирования
type Response struct {
	BlockID    int64
	VehicleID  int64
	BookingID  int64
	Date       time.Time
	StartTime  types.TimeString
	EndTime    types.TimeString
	Violations []string

	// Quote заполняется best-effort: при недоступности PricingService
	// подтверждение проходит без котировки
	Quote *pricingservice.Quote
}
