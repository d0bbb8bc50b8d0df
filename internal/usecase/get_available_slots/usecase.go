package get_available_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/AC-BookingService/internal/domain"
	"github.com/m04kA/AC-BookingService/pkg/retry"
)

// UseCase use case расчета доступности слотов на дату
type UseCase struct {
	ledger           BookingLedger
	generator        SlotGenerator
	limitedThreshold float64
	retryPolicy      retry.Policy
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	ledger BookingLedger,
	generator SlotGenerator,
	limitedThreshold float64,
	retryPolicy retry.Policy,
	logger Logger,
) *UseCase {
	return &UseCase{
		ledger:           ledger,
		generator:        generator,
		limitedThreshold: limitedThreshold,
		retryPolicy:      retryPolicy,
		logger:           logger,
	}
}

// Execute выполняет use case получения доступности слотов.
// Только читает журнал: повторный вызов без новых бронирований дает тот же результат.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Генерируем слоты расписания
	slots, err := uc.generator.GenerateSlots(req.Date)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: invalid date=%q: %v", req.Date, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	// 3. Читаем день целиком, чтобы все слоты считались по одному состоянию журнала
	booked, err := uc.countBooked(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to read bookings date=%s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}

	// 4. Считаем занятость каждого слота
	result := make([]Slot, 0, len(slots))
	for _, slot := range slots {
		n := booked[slot.Label]
		result = append(result, Slot{
			Label:     slot.Label,
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
			Capacity:  slot.Capacity,
			Booked:    n,
			Remaining: domain.Remaining(n, slot.Capacity),
			Status:    domain.ClassifyOccupancy(n, slot.Capacity, uc.limitedThreshold),
		})
	}

	uc.logger.Info("GetAvailableSlots: date=%s, slots=%d", req.Date, len(result))

	return &Response{
		Date:  req.Date,
		Slots: result,
	}, nil
}

// countBooked возвращает число активных бронирований по меткам слотов даты,
// повторяя чтение при сбоях журнала
func (uc *UseCase) countBooked(ctx context.Context, date string) (map[string]int, error) {
	var booked map[string]int
	err := retry.Do(ctx, uc.retryPolicy, func(ctx context.Context) error {
		bookings, err := uc.ledger.ListByDate(ctx, date)
		if err != nil {
			uc.logger.Warn("GetAvailableSlots: ledger read failed, date=%s: %v", date, err)
			return err
		}

		booked = make(map[string]int)
		for _, b := range domain.ActiveBookings(bookings) {
			booked[b.SlotLabel]++
		}
		return nil
	})
	return booked, err
}
