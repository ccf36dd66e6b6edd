package check_availability

import (
	"context"
	"fmt"

	"github.com/vinetours/VT-FleetService/internal/domain"
)

// UseCase use case проверки доступности тура: оркестрирует правила рабочих
// часов, блэкауты, подбор автомобиля и проверку конфликтов в единое
// решение "доступно/недоступно"
type UseCase struct {
	blockRepo    BlockRepository
	vehicleRepo  VehicleRepository
	blackoutRepo BlackoutRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	blockRepo BlockRepository,
	vehicleRepo VehicleRepository,
	blackoutRepo BlackoutRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		blockRepo:    blockRepo,
		vehicleRepo:  vehicleRepo,
		blackoutRepo: blackoutRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет проверку доступности. Правила применяются по порядку с
// выходом на первом сработавшем; "нет доступности" - нормальный результат,
// ошибки зарезервированы за некорректным вводом и сбоями инфраструктуры.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: date=%s, start=%s, duration=%dh, party=%d, brand=%v",
		req.Date.Format(domain.DateFormat), req.StartTime, req.DurationHours, req.PartySize, req.BrandID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Чистим истекшие hold'ы, чтобы брошенный checkout не блокировал слот
	if _, err := uc.blockRepo.DeleteExpiredHolds(ctx); err != nil {
		uc.logger.Error("CheckAvailability: failed to sweep expired holds: %v", err)
		return nil, fmt.Errorf("%w: failed to sweep expired holds: %v", ErrInternal, err)
	}

	// 3. Рабочие часы: жесткое бизнес-правило 08:00-22:00.
	// Выход вычисленного конца за пределы суток также означает выход за
	// рабочие часы.
	end, err := req.StartTime.AddMinutes(req.DurationHours * 60)
	if err != nil || req.StartTime.IsBefore(domain.OperatingHoursStart) || end.IsAfter(domain.OperatingHoursEnd) {
		uc.logger.Info("CheckAvailability: request outside operating hours, start=%s duration=%dh",
			req.StartTime, req.DurationHours)
		return unavailable(domain.MsgOutsideHours), nil
	}

	// 4. Защита от дат в прошлом (сравнивается только компонент даты)
	now := uc.timeProvider.Now()
	if isDateInPast(req.Date, now) {
		uc.logger.Info("CheckAvailability: date %s is in the past", req.Date.Format(domain.DateFormat))
		return unavailable(domain.MsgDateInPast), nil
	}

	// 5. Блэкауты: причина блэкаута отдается пользователю дословно
	blackoutDate, err := uc.blackoutRepo.FindForDate(ctx, req.Date, req.BrandID)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to check blackout dates: %v", err)
		return nil, fmt.Errorf("%w: failed to check blackout dates: %v", ErrInternal, err)
	}
	if blackoutDate != nil {
		uc.logger.Info("CheckAvailability: date %s is blacked out: %s",
			req.Date.Format(domain.DateFormat), blackoutDate.Reason)
		return unavailable(blackoutDate.Reason), nil
	}

	// 6. Подбор автомобиля: сначала фильтр по вместимости и бренду
	candidates, err := uc.vehicleRepo.ListCandidates(ctx, req.PartySize, req.BrandID)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to list candidate vehicles: %v", err)
		return nil, fmt.Errorf("%w: failed to list candidate vehicles: %v", ErrInternal, err)
	}

	if len(candidates) == 0 {
		uc.logger.Info("CheckAvailability: no vehicles with capacity for %d guests", req.PartySize)
		return unavailable(fmt.Sprintf(domain.MsgNoCapacityFmt, req.PartySize)), nil
	}

	// 7. Первый свободный кандидат в порядке best-fit
	selected, conflicts, err := uc.selectVehicle(ctx, candidates, req, end)
	if err != nil {
		uc.logger.Error("CheckAvailability: vehicle selection failed: %v", err)
		return nil, err
	}

	if selected == nil {
		uc.logger.Info("CheckAvailability: all %d suitable vehicles are booked", len(candidates))
		return unavailable(append([]string{domain.MsgAllBooked}, conflicts...)...), nil
	}

	uc.logger.Info("CheckAvailability: available, vehicle id=%d name=%s", selected.ID, selected.Name)

	return &Response{
		Available:   true,
		VehicleID:   &selected.ID,
		VehicleName: &selected.Name,
	}, nil
}
