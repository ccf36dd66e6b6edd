package create_maintenance

import (
	"context"
	"errors"
	"fmt"

	"github.com/vinetours/VT-FleetService/internal/domain"
	vehicleRepo "github.com/vinetours/VT-FleetService/internal/infra/storage/vehicle"
	"github.com/vinetours/VT-FleetService/pkg/ptr"
)

// UseCase use case создания блока обслуживания администратором.
// Окно, пересекающееся с подтвержденным бронированием, отклоняется явной
// ошибкой; конфликт с hold'ом или буфером отдается как конфликт слота
// стора - такие блоки обслуживание не вытесняет автоматически.
type UseCase struct {
	blockRepo   BlockRepository
	vehicleRepo VehicleRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(blockRepo BlockRepository, vehicleRepo VehicleRepository, logger Logger) *UseCase {
	return &UseCase{
		blockRepo:   blockRepo,
		vehicleRepo: vehicleRepo,
		logger:      logger,
	}
}

// Execute выполняет use case создания блока обслуживания
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateMaintenance: vehicle=%d, date=%s, window=[%s, %s)",
		req.VehicleID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateMaintenance: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем автомобиль
	if _, err := uc.vehicleRepo.GetByID(ctx, req.VehicleID); err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			uc.logger.Warn("CreateMaintenance: vehicle id=%d not found", req.VehicleID)
			return nil, ErrVehicleNotFound
		}
		uc.logger.Error("CreateMaintenance: failed to get vehicle id=%d: %v", req.VehicleID, err)
		return nil, fmt.Errorf("%w: failed to get vehicle: %v", ErrInternal, err)
	}

	// 3. Подтвержденные бронирования отклоняем с внятной ошибкой, а не
	// голым конфликтом слота
	overlapping, err := uc.blockRepo.ListOverlapping(ctx, req.VehicleID, req.Date, req.StartTime, req.EndTime)
	if err != nil {
		uc.logger.Error("CreateMaintenance: failed to list overlapping blocks: %v", err)
		return nil, fmt.Errorf("%w: failed to list overlapping blocks: %v", ErrInternal, err)
	}
	for _, b := range overlapping {
		if b.Type == domain.BlockBooking {
			uc.logger.Warn("CreateMaintenance: window overlaps booking block id=%d", b.ID)
			return nil, ErrBookingConflict
		}
	}

	// 4. Создаем блок; конфликт слота (hold или буфер успел встать между
	// проверкой и вставкой) отдаем наверх как есть
	block := &domain.AvailabilityBlock{
		VehicleID: req.VehicleID,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Type:      domain.BlockMaintenance,
		Notes:     ptr.Ptr(req.Reason),
	}

	created, err := uc.blockRepo.Create(ctx, block)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateMaintenance: block id=%d created for vehicle=%d", created.ID, created.VehicleID)

	return &Response{
		BlockID:   created.ID,
		VehicleID: created.VehicleID,
		Date:      created.Date,
		StartTime: created.StartTime,
		EndTime:   created.EndTime,
	}, nil
}
