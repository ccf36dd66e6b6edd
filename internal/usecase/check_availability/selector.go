package check_availability

import (
	"context"
	"fmt"

	"github.com/vinetours/VT-FleetService/internal/domain"
	"github.com/vinetours/VT-FleetService/pkg/types"
)

// selectVehicle перебирает кандидатов в порядке возрастания вместимости
// (best-fit: наименьший подходящий автомобиль бронируется первым, чтобы
// крупные оставались для больших групп) и возвращает первый автомобиль без
// пересекающихся блоков. Если все кандидаты заняты, возвращает nil и список
// пар "автомобиль: тип блока" для диагностики.
//
// Проверка пересечений здесь - это read-side оптимизация: окно между
// проверкой и вставкой существует, и настоящую гарантию дает exclusion
// constraint стора при создании hold'а.
func (uc *UseCase) selectVehicle(
	ctx context.Context,
	candidates []*domain.Vehicle,
	req *Request,
	end types.TimeString,
) (*domain.Vehicle, []string, error) {
	conflicts := make([]string, 0)

	for _, v := range candidates {
		overlapping, err := uc.blockRepo.ListOverlapping(ctx, v.ID, req.Date, req.StartTime, end)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: failed to list overlapping blocks for vehicle=%d: %v",
				ErrInternal, v.ID, err)
		}

		if len(overlapping) == 0 {
			return v, nil, nil
		}

		for _, b := range overlapping {
			conflicts = append(conflicts, fmt.Sprintf("%s: %s", v.Name, b.Type))
		}
	}

	return nil, conflicts, nil
}
