package complianceservice

import "errors"

var (
	// ErrVehicleNotFound возвращается, когда автомобиль неизвестен сервису
	ErrVehicleNotFound = errors.New("complianceservice client: vehicle not found")

	// ErrInternal возвращается при внутренних ошибках клиента.
	// Проверка соответствия обязательна перед конвертацией hold'а,
	// поэтому graceful degradation здесь не применяется.
	ErrInternal = errors.New("complianceservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("complianceservice client: invalid response")
)
