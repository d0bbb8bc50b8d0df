package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/AC-BookingService/internal/domain"
)

// BookingLedger интерфейс журнала бронирований
type BookingLedger interface {
	ListByDateSlot(ctx context.Context, date, slotLabel string) ([]*domain.Booking, error)
	Add(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// SlotGenerator интерфейс генератора слотов
type SlotGenerator interface {
	// FindSlot находит слот расписания по дате и метке
	FindSlot(date, label string) (domain.Slot, error)
}

// SlotGuard сериализует допуск бронирований в один слот
type SlotGuard interface {
	DoLocked(ctx context.Context, key string, fn func(ctx context.Context) error) error
}

// Catalog интерфейс каталога услуг
type Catalog interface {
	GetByID(id string) (*domain.Service, error)
	Technicians() []domain.Technician
}

// TechnicianPicker выбирает мастера и время прибытия
type TechnicianPicker interface {
	Pick(technicians []domain.Technician) (domain.Technician, int)
}

// Metrics интерфейс метрик допуска
type Metrics interface {
	ObserveAdmission(outcome string)
	ObserveSlotLockWait(d time.Duration)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
