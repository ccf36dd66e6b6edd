package create_maintenance

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_maintenance usecase: invalid input")

	// ErrVehicleNotFound возвращается, когда автомобиль не найден
	ErrVehicleNotFound = errors.New("create_maintenance usecase: vehicle not found")

	// ErrBookingConflict возвращается, когда окно обслуживания пересекается
	// с подтвержденным бронированием. Подтвержденные бронирования
	// обслуживание не вытесняет - сначала их нужно перенести.
	ErrBookingConflict = errors.New("create_maintenance usecase: window overlaps a confirmed booking")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("create_maintenance usecase: internal error")
)
