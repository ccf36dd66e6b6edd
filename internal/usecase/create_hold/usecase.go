package create_hold

import (
	"context"
	"errors"
	"fmt"

	"github.com/vinetours/VT-FleetService/internal/domain"
	vehicleRepo "github.com/vinetours/VT-FleetService/internal/infra/storage/vehicle"
)

// UseCase use case создания hold'а на время автомобиля при старте checkout.
// Конфликт слота (ErrSlotConflict стора) пробрасывается наверх без
// изменений: вызывающая сторона повторяет попытку с другим автомобилем или
// окном, это восстановимая ситуация, а не фатальная ошибка.
type UseCase struct {
	holdService HoldService
	vehicleRepo VehicleRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(holdService HoldService, vehicleRepo VehicleRepository, logger Logger) *UseCase {
	return &UseCase{
		holdService: holdService,
		vehicleRepo: vehicleRepo,
		logger:      logger,
	}
}

// Execute выполняет use case создания hold'а
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateHold: vehicle=%d, date=%s, window=[%s, %s)",
		req.VehicleID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateHold: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем автомобиль
	v, err := uc.vehicleRepo.GetByID(ctx, req.VehicleID)
	if err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			uc.logger.Warn("CreateHold: vehicle id=%d not found", req.VehicleID)
			return nil, ErrVehicleNotFound
		}
		uc.logger.Error("CreateHold: failed to get vehicle id=%d: %v", req.VehicleID, err)
		return nil, fmt.Errorf("%w: failed to get vehicle: %v", ErrInternal, err)
	}

	if !v.IsBookable() {
		uc.logger.Warn("CreateHold: vehicle id=%d is not bookable (status=%s)", v.ID, v.Status)
		return nil, ErrVehicleNotBookable
	}

	// 3. Чистим истекшие hold'ы, чтобы брошенный checkout не давал
	// ложный конфликт на этом же окне
	if _, err := uc.holdService.SweepExpired(ctx); err != nil {
		uc.logger.Error("CreateHold: failed to sweep expired holds: %v", err)
		return nil, fmt.Errorf("%w: failed to sweep expired holds: %v", ErrInternal, err)
	}

	// 4. Создаем hold; конфликт отдаем наверх как есть
	hold, err := uc.holdService.CreateHold(ctx, req.VehicleID, req.Date, req.StartTime, req.EndTime, req.BrandID)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateHold: hold id=%d created, expires_at=%s",
		hold.ID, hold.ExpiresAt.Format("15:04:05"))

	return &Response{
		HoldID:    hold.ID,
		VehicleID: hold.VehicleID,
		Date:      hold.Date,
		StartTime: hold.StartTime,
		EndTime:   hold.EndTime,
		ExpiresAt: *hold.ExpiresAt,
	}, nil
}
