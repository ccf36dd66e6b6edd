package create_hold

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_hold: invalid input data")

	// ErrVehicleNotFound возвращается, когда автомобиль не найден
	ErrVehicleNotFound = errors.New("create_hold: vehicle not found")

	// ErrVehicleNotBookable возвращается для заархивированных и выведенных
	// из эксплуатации автомобилей
	ErrVehicleNotBookable = errors.New("create_hold: vehicle is not bookable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_hold: internal error")
)
