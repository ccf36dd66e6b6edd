package holds

import "errors"

var (
	// ErrHoldNotFound возвращается, когда hold уже не существует
	// (конвертирован, отпущен или удален sweep'ом)
	ErrHoldNotFound = errors.New("holds.service: hold not found")

	// ErrNotAHold возвращается при попытке операции над блоком другого типа
	ErrNotAHold = errors.New("holds.service: block is not a hold")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("holds.service: internal error")
)
