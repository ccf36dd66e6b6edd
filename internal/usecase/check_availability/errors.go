package check_availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	// (формат даты/времени, длительность или размер группы вне границ).
	// Детектируется до обращения к стору.
	ErrInvalidInput = errors.New("check_availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_availability: internal error")
)
