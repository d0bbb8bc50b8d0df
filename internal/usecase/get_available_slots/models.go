package get_available_slots

import (
	"github.com/m04kA/AC-BookingService/internal/domain"
	"github.com/m04kA/AC-BookingService/pkg/types"
)

// Request модель запроса доступности слотов
type Request struct {
	Date string // YYYY-MM-DD
}

// Response доступность всех слотов даты в порядке расписания
type Response struct {
	Date  string
	Slots []Slot
}

// Slot занятость слота на момент чтения
type Slot struct {
	Label     string // "09:00 - 10:00"
	StartTime types.TimeString
	EndTime   types.TimeString
	Capacity  int
	Booked    int
	Remaining int
	Status    domain.SlotStatus
}
