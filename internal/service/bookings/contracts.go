package bookings

import (
	"context"

	"github.com/m04kA/AC-BookingService/internal/domain"
)

// BookingRepository интерфейс журнала бронирований (только чтение)
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListByCustomer(ctx context.Context, customerPhone string) ([]*domain.Booking, error)
	List(ctx context.Context) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
