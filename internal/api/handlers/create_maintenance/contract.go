package create_maintenance

import (
	"context"

	createMaintenance "github.com/vinetours/VT-FleetService/internal/usecase/create_maintenance"
)

type CreateMaintenanceUseCase interface {
	Execute(ctx context.Context, req *createMaintenance.Request) (*createMaintenance.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
