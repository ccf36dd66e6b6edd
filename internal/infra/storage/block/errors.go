package block

import "errors"

var (
	// ErrBlockNotFound возвращается, когда блок не найден
	ErrBlockNotFound = errors.New("block.repository: availability block not found")

	// ErrSlotConflict возвращается, когда вставка нарушает exclusion constraint:
	// пересекающийся блок для того же автомобиля и даты уже существует.
	// Гарантия стора: из двух конкурентных вставок пересекающихся интервалов
	// ровно одна завершается успехом, вторая получает эту ошибку.
	ErrSlotConflict = errors.New("block.repository: overlapping block exists for vehicle")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("block.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("block.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("block.repository: failed to scan row")
)
