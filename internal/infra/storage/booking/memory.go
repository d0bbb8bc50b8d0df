package booking

import (
	"context"
	"fmt"
	"sync"

	"github.com/m04kA/AC-BookingService/internal/domain"
)

// Memory журнал бронирований в памяти процесса.
// Хранит копии, поэтому вызывающий код не может изменить записи после добавления.
type Memory struct {
	mu         sync.RWMutex
	bookings   []*domain.Booking
	byID       map[string]int
	byDate     map[string][]int
	bySlot     map[string][]int
	byCustomer map[string][]int
}

// NewMemory создает пустой журнал
func NewMemory() *Memory {
	return &Memory{
		bookings:   make([]*domain.Booking, 0),
		byID:       make(map[string]int),
		byDate:     make(map[string][]int),
		bySlot:     make(map[string][]int),
		byCustomer: make(map[string][]int),
	}
}

// Add добавляет бронирование в конец журнала без валидации
func (m *Memory) Add(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.byID[booking.ID]; exists {
		return nil, fmt.Errorf("%w: id=%s", ErrDuplicateID, booking.ID)
	}

	idx := len(m.bookings)
	m.bookings = append(m.bookings, booking.Clone())
	m.byID[booking.ID] = idx

	m.byDate[booking.Date] = append(m.byDate[booking.Date], idx)
	key := domain.SlotKey(booking.Date, booking.SlotLabel)
	m.bySlot[key] = append(m.bySlot[key], idx)
	m.byCustomer[booking.CustomerPhone] = append(m.byCustomer[booking.CustomerPhone], idx)

	return booking, nil
}

// ListByDate возвращает все бронирования даты в порядке добавления
func (m *Memory) ListByDate(_ context.Context, date string) ([]*domain.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.collect(m.byDate[date]), nil
}

// ListByDateSlot возвращает бронирования слота в порядке добавления
func (m *Memory) ListByDateSlot(_ context.Context, date, slotLabel string) ([]*domain.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.collect(m.bySlot[domain.SlotKey(date, slotLabel)]), nil
}

// ListByCustomer возвращает бронирования клиента в порядке добавления
func (m *Memory) ListByCustomer(_ context.Context, customerPhone string) ([]*domain.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.collect(m.byCustomer[customerPhone]), nil
}

// GetByID возвращает бронирование по ID
func (m *Memory) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	idx, ok := m.byID[id]
	if !ok {
		return nil, ErrBookingNotFound
	}
	return m.bookings[idx].Clone(), nil
}

// List возвращает все бронирования в порядке добавления
func (m *Memory) List(_ context.Context) ([]*domain.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]*domain.Booking, len(m.bookings))
	for i, b := range m.bookings {
		result[i] = b.Clone()
	}
	return result, nil
}

// collect вызывается под блокировкой
func (m *Memory) collect(indexes []int) []*domain.Booking {
	result := make([]*domain.Booking, 0, len(indexes))
	for _, idx := range indexes {
		result = append(result, m.bookings[idx].Clone())
	}
	return result
}
