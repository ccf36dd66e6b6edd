package blocks

import "errors"

var (
	// ErrBlockNotFound возвращается, когда блок не найден
	ErrBlockNotFound = errors.New("blocks.service: block not found")

	// ErrOperationNotAllowed возвращается при попытке удалить booking- или
	// buffer-блок напрямую: booking-блоки удаляются только вместе с
	// бронированием, буферы - вместе со своим booking-блоком
	ErrOperationNotAllowed = errors.New("blocks.service: operation not allowed for this block type")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("blocks.service: internal error")
)
