package create_maintenance

import (
	"time"

	"github.com/vinetours/VT-FleetService/pkg/types"
)

// Request запрос на создание блока обслуживания
type Request struct {
	VehicleID int64
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
	Reason    string
}

// Response результат создания блока обслуживания
type Response struct {
	BlockID   int64
	VehicleID int64
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
}
