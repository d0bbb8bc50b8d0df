package calendar

import "errors"

var (
	// ErrInvalidSchedule возвращается при некорректной конфигурации расписания
	ErrInvalidSchedule = errors.New("calendar: invalid schedule")

	// ErrInvalidDate возвращается, когда дата не в формате YYYY-MM-DD
	ErrInvalidDate = errors.New("calendar: invalid date")

	// ErrUnknownSlot возвращается, когда слот не входит в расписание на дату
	ErrUnknownSlot = errors.New("calendar: slot is not in the schedule")
)
