package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/vinetours/VT-FleetService/internal/domain"
	checkAvailability "github.com/vinetours/VT-FleetService/internal/usecase/check_availability"
	"github.com/vinetours/VT-FleetService/pkg/types"
)

// UseCase use case перечисления всех бронируемых слотов дня.
// Каждый почасовой кандидат от 08:00 до 22:00-минус-длительность проверяется
// независимым вызовом проверки доступности: результат слота N не зависит от
// состояния, накопленного при проверке слота N-1. O(слоты x автомобили) -
// приемлемо, оба множителя малы.
type UseCase struct {
	checker AvailabilityChecker
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(checker AvailabilityChecker, logger Logger) *UseCase {
	return &UseCase{
		checker: checker,
		logger:  logger,
	}
}

// Execute выполняет перечисление слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s, duration=%dh, party=%d, brand=%v",
		req.Date.Format(domain.DateFormat), req.DurationHours, req.PartySize, req.BrandID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Генерируем почасовые кандидаты: от 08:00 до 22:00 - duration
	// включительно (для 4 часов это 08:00..18:00, 11 слотов)
	starts, err := generateSlotStarts(req.DurationHours)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate slot starts: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slot starts: %v", ErrInternal, err)
	}

	// 3. Каждый кандидат проверяется независимо
	slots := make([]Slot, 0, len(starts))
	for _, start := range starts {
		end, err := start.AddMinutes(req.DurationHours * 60)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to compute slot end: %v", ErrInternal, err)
		}

		result, err := uc.checker.Execute(ctx, &checkAvailability.Request{
			Date:          req.Date,
			StartTime:     start,
			DurationHours: req.DurationHours,
			PartySize:     req.PartySize,
			BrandID:       req.BrandID,
		})
		if err != nil {
			if errors.Is(err, checkAvailability.ErrInvalidInput) {
				return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
			}
			uc.logger.Error("GetAvailableSlots: availability check failed for slot %s: %v", start, err)
			return nil, fmt.Errorf("%w: availability check failed for slot %s: %v", ErrInternal, start, err)
		}

		slots = append(slots, Slot{
			StartTime:   start,
			EndTime:     end,
			Available:   result.Available,
			VehicleID:   result.VehicleID,
			VehicleName: result.VehicleName,
		})
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for date=%s",
		len(slots), req.Date.Format(domain.DateFormat))

	return &Response{
		Date:          req.Date,
		DurationHours: req.DurationHours,
		Slots:         slots,
	}, nil
}

// generateSlotStarts генерирует почасовые времена начала от начала рабочего
// дня до последнего, при котором тур успевает закончиться к 22:00
func generateSlotStarts(durationHours int) ([]types.TimeString, error) {
	starts := make([]types.TimeString, 0)

	current := domain.OperatingHoursStart
	for {
		end, err := current.AddMinutes(durationHours * 60)
		if err != nil || end.IsAfter(domain.OperatingHoursEnd) {
			break
		}

		starts = append(starts, current)

		next, err := current.AddMinutes(domain.SlotStepMinutes)
		if err != nil {
			return nil, err
		}
		current = next
	}

	return starts, nil
}
