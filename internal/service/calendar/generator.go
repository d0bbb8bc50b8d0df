package calendar

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/m04kA/AC-BookingService/internal/domain"
	"github.com/m04kA/AC-BookingService/pkg/types"
)

// Schedule фиксированное расписание слотов, одинаковое для всех дат
type Schedule struct {
	StartHour       int
	EndHour         int
	IntervalMinutes int
	Capacity        int
}

// DefaultSchedule расписание по умолчанию: 09:00 - 18:00, по часу, 4 места
func DefaultSchedule() Schedule {
	return Schedule{
		StartHour:       domain.DefaultStartHour,
		EndHour:         domain.DefaultEndHour,
		IntervalMinutes: domain.DefaultIntervalMinutes,
		Capacity:        domain.DefaultSlotCapacity,
	}
}

// Validate проверяет корректность расписания
func (s Schedule) Validate() error {
	if s.StartHour < 0 || s.StartHour > 23 {
		return fmt.Errorf("%w: start hour %d out of range", ErrInvalidSchedule, s.StartHour)
	}
	if s.EndHour < 1 || s.EndHour > 24 {
		return fmt.Errorf("%w: end hour %d out of range", ErrInvalidSchedule, s.EndHour)
	}
	if s.StartHour >= s.EndHour {
		return fmt.Errorf("%w: start hour must be before end hour", ErrInvalidSchedule)
	}
	if s.IntervalMinutes <= 0 {
		return fmt.Errorf("%w: interval must be positive", ErrInvalidSchedule)
	}
	if s.IntervalMinutes > (s.EndHour-s.StartHour)*60 {
		return fmt.Errorf("%w: interval longer than working day", ErrInvalidSchedule)
	}
	if s.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive", ErrInvalidSchedule)
	}
	return nil
}

// window слот без даты
type window struct {
	start types.TimeString
	end   types.TimeString
	label string
}

// Generator генератор слотов. Окна рассчитываются один раз при создании,
// так как от даты зависит только тег date у слота.
type Generator struct {
	schedule Schedule
	windows  []window
	byLabel  map[string]int
}

// NewGenerator создает генератор по расписанию
func NewGenerator(schedule Schedule) (*Generator, error) {
	if err := schedule.Validate(); err != nil {
		return nil, err
	}

	windows, err := buildWindows(schedule)
	if err != nil {
		return nil, err
	}

	byLabel := make(map[string]int, len(windows))
	for i, w := range windows {
		byLabel[NormalizeLabel(w.label)] = i
	}

	return &Generator{
		schedule: schedule,
		windows:  windows,
		byLabel:  byLabel,
	}, nil
}

// buildWindows нарезает рабочий день на окна фиксированной длины.
// Окно, выходящее за конец дня, не создается.
func buildWindows(schedule Schedule) ([]window, error) {
	openTime, err := types.NewTimeStringFromMinutes(schedule.StartHour * 60)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
	}
	closeTime, err := types.NewTimeStringFromMinutes(schedule.EndHour * 60)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
	}

	windows := make([]window, 0)
	current := openTime
	for current.IsBefore(closeTime) {
		end, err := current.AddMinutes(schedule.IntervalMinutes)
		if err != nil || end.IsAfter(closeTime) {
			break
		}
		windows = append(windows, window{
			start: current,
			end:   end,
			label: current.String() + domain.LabelSeparator + end.String(),
		})
		current = end
	}

	return windows, nil
}

// Schedule возвращает расписание генератора
func (g *Generator) Schedule() Schedule {
	return g.schedule
}

// GenerateSlots возвращает упорядоченный список слотов на дату.
// Некорректная дата всегда дает ErrInvalidDate.
func (g *Generator) GenerateSlots(date string) ([]domain.Slot, error) {
	if err := ValidateDate(date); err != nil {
		return nil, err
	}

	slots := make([]domain.Slot, len(g.windows))
	for i, w := range g.windows {
		slots[i] = g.slotAt(date, w)
	}
	return slots, nil
}

// FindSlot находит слот расписания по метке.
// Пробелы в метке игнорируются: "09:00-10:00" и "09:00 - 10:00" это один слот.
func (g *Generator) FindSlot(date, label string) (domain.Slot, error) {
	if err := ValidateDate(date); err != nil {
		return domain.Slot{}, err
	}

	idx, ok := g.byLabel[NormalizeLabel(label)]
	if !ok {
		return domain.Slot{}, fmt.Errorf("%w: %q", ErrUnknownSlot, label)
	}
	return g.slotAt(date, g.windows[idx]), nil
}

func (g *Generator) slotAt(date string, w window) domain.Slot {
	return domain.Slot{
		Date:      date,
		Label:     w.label,
		StartTime: w.start,
		EndTime:   w.end,
		Capacity:  g.schedule.Capacity,
	}
}

// ValidateDate проверяет, что дата в формате YYYY-MM-DD
func ValidateDate(date string) error {
	if date == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidDate)
	}
	parsed, err := time.Parse(domain.DateFormat, date)
	if err != nil || parsed.Format(domain.DateFormat) != date {
		return fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	return nil
}

// NormalizeLabel удаляет пробельные символы из метки слота
func NormalizeLabel(label string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, label)
}
