package get_available_slots

import (
	"context"

	"github.com/m04kA/AC-BookingService/internal/domain"
)

// BookingLedger интерфейс журнала бронирований (только чтение)
type BookingLedger interface {
	// ListByDate получает все бронирования даты одним чтением
	ListByDate(ctx context.Context, date string) ([]*domain.Booking, error)
}

// SlotGenerator интерфейс генератора слотов
type SlotGenerator interface {
	GenerateSlots(date string) ([]domain.Slot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
