package create_booking

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAppointment возвращается, когда не указаны телефон, дата или слот,
	// либо слот не входит в расписание даты
	ErrInvalidAppointment = errors.New("create_booking: invalid appointment")

	// ErrSlotFull возвращается, когда в слоте не осталось мест
	ErrSlotFull = errors.New("create_booking: slot is full")

	// ErrDuplicateBooking возвращается, когда у клиента уже есть бронирование в этом слоте
	ErrDuplicateBooking = errors.New("create_booking: customer already has a booking in this slot")

	// ErrUnknownService возвращается, когда позиция ссылается на услугу или вариант не из каталога
	ErrUnknownService = errors.New("create_booking: unknown service")

	// ErrStorageFailure возвращается при сбое журнала или блокировки слота
	ErrStorageFailure = errors.New("create_booking: storage failure")
)

// DuplicateBookingError содержит ID уже существующего бронирования клиента
type DuplicateBookingError struct {
	ExistingBookingID string
}

func (e *DuplicateBookingError) Error() string {
	return fmt.Sprintf("%v: existing booking id=%s", ErrDuplicateBooking, e.ExistingBookingID)
}

func (e *DuplicateBookingError) Unwrap() error {
	return ErrDuplicateBooking
}
