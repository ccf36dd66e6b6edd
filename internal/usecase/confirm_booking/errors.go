package confirm_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("confirm_booking usecase: invalid input")

	// ErrHoldNotFound возвращается, когда hold не существует: истек, был
	// отпущен или уже конвертирован. Вызывающая сторона обязана
	// перепроверить доступность, а не предполагать успех.
	ErrHoldNotFound = errors.New("confirm_booking usecase: hold not found or expired")

	// ErrComplianceViolation возвращается при критических нарушениях
	// соответствия автомобиля. Не переопределяется администратором.
	ErrComplianceViolation = errors.New("confirm_booking usecase: critical compliance violation")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("confirm_booking usecase: internal error")
)
