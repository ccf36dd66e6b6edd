package delete_booking_blocks

import "context"

type BlockService interface {
	DeleteForBooking(ctx context.Context, bookingID int64) (int64, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
