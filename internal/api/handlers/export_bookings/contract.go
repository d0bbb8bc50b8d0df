package export_bookings

import "context"

type BookingExporter interface {
	ExportXLSX(ctx context.Context, date string) ([]byte, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
