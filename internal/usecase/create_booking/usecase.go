package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/AC-BookingService/internal/domain"
	"github.com/m04kA/AC-BookingService/pkg/metrics"
)

const bookingIDPrefix = "BK-"

// UseCase use case допуска нового бронирования в слот
type UseCase struct {
	ledger           BookingLedger
	generator        SlotGenerator
	guard            SlotGuard
	catalog          Catalog
	picker           TechnicianPicker
	metrics          Metrics
	limitedThreshold float64
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	ledger BookingLedger,
	generator SlotGenerator,
	guard SlotGuard,
	catalog Catalog,
	metrics Metrics,
	limitedThreshold float64,
	logger Logger,
) *UseCase {
	return &UseCase{
		ledger:           ledger,
		generator:        generator,
		guard:            guard,
		catalog:          catalog,
		picker:           RandomTechnicianPicker{},
		metrics:          metrics,
		limitedThreshold: limitedThreshold,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверки идут по порядку, побеждает первая неудачная: запись, вместимость, дубликат клиента.
// Чтение слота и запись в журнал выполняются под блокировкой слота,
// поэтому параллельные запросы не превышают вместимость.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	result, err := uc.admit(ctx, req)
	uc.metrics.ObserveAdmission(outcomeOf(err))
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (uc *UseCase) admit(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация записи
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateBooking: phone=%s, date=%s, slot=%q, items=%d",
		req.CustomerPhone, req.Date, req.SlotLabel, len(req.Items))

	slot, err := uc.generator.FindSlot(req.Date, req.SlotLabel)
	if err != nil {
		uc.logger.Warn("CreateBooking: slot %q is not in schedule for date=%q: %v", req.SlotLabel, req.Date, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidAppointment, err)
	}

	var (
		result *domain.Booking
		booked int
	)

	// 2. Дальше работаем под блокировкой слота
	lockRequested := time.Now()
	err = uc.guard.DoLocked(ctx, slot.Key(), func(lockCtx context.Context) error {
		uc.metrics.ObserveSlotLockWait(time.Since(lockRequested))

		existing, err := uc.ledger.ListByDateSlot(lockCtx, slot.Date, slot.Label)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to read slot date=%s, slot=%q: %v", slot.Date, slot.Label, err)
			return fmt.Errorf("%w: failed to read slot: %v", ErrStorageFailure, err)
		}
		existing = domain.ActiveBookings(existing)

		// 2.1. Вместимость
		if len(existing) >= slot.Capacity {
			uc.logger.Warn("CreateBooking: slot full date=%s, slot=%q, %d/%d taken",
				slot.Date, slot.Label, len(existing), slot.Capacity)
			return ErrSlotFull
		}

		// 2.2. Дубликат клиента в том же слоте
		phone := strings.TrimSpace(req.CustomerPhone)
		for _, b := range existing {
			if b.CustomerPhone == phone {
				uc.logger.Warn("CreateBooking: duplicate booking for phone=%s, existing id=%s", phone, b.ID)
				return &DuplicateBookingError{ExistingBookingID: b.ID}
			}
		}

		// 2.3. Позиции сверяются с каталогом до записи в журнал
		items, err := priceItems(uc.catalog, req.Items)
		if err != nil {
			uc.logger.Warn("CreateBooking: %v", err)
			return err
		}

		// 2.4. Собираем и добавляем бронирование
		booking := uc.buildBooking(req, slot, phone, items)

		// блокировка могла быть потеряна, пока шли проверки
		if err := lockCtx.Err(); err != nil {
			uc.logger.Error("CreateBooking: slot lock lost before append date=%s, slot=%q: %v",
				slot.Date, slot.Label, context.Cause(lockCtx))
			return fmt.Errorf("%w: slot lock lost: %v", ErrStorageFailure, context.Cause(lockCtx))
		}

		created, err := uc.ledger.Add(lockCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to append booking: %v", err)
			return fmt.Errorf("%w: failed to append booking: %v", ErrStorageFailure, err)
		}

		result = created
		booked = len(existing) + 1
		return nil
	})
	if err != nil {
		if isAdmissionError(err) {
			return nil, err
		}
		uc.logger.Error("CreateBooking: failed to lock slot date=%s, slot=%q: %v", slot.Date, slot.Label, err)
		return nil, fmt.Errorf("%w: slot lock: %v", ErrStorageFailure, err)
	}

	status := domain.ClassifyOccupancy(booked, slot.Capacity, uc.limitedThreshold)
	if status != domain.SlotAvailable {
		uc.logger.Warn("CreateBooking: slot date=%s, slot=%q is now %s, %d/%d taken",
			slot.Date, slot.Label, status, booked, slot.Capacity)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s", result.ID)

	return &Response{
		ID:            result.ID,
		CustomerPhone: result.CustomerPhone,
		CustomerName:  result.CustomerName,
		Email:         result.Email,
		Date:          result.Date,
		SlotLabel:     result.SlotLabel,
		Status:        string(result.Status),
		Items:         result.Items,
		Address:       result.Address,
		Payment:       result.Payment,
		Technician:    result.Technician,
		Notes:         result.Notes,
		Total:         result.Total(),
		SlotStatus:    status,
		Remaining:     domain.Remaining(booked, slot.Capacity),
		CreatedAt:     result.CreatedAt,
	}, nil
}

func (uc *UseCase) buildBooking(req *Request, slot domain.Slot, phone string, items []domain.BookingItem) *domain.Booking {
	booking := &domain.Booking{
		ID:            bookingIDPrefix + uuid.NewString(),
		CustomerPhone: phone,
		CustomerName:  strings.TrimSpace(req.CustomerName),
		Email:         req.Email,
		Date:          slot.Date,
		SlotLabel:     slot.Label,
		Status:        domain.StatusConfirmed,
		Items:         items,
		Address:       req.Address,
		Notes:         req.Notes,
		CreatedAt:     uc.timeProvider.Now(),
	}

	if req.Payment != nil {
		booking.Payment = &domain.Payment{
			Method:        req.Payment.Method,
			TransactionID: req.Payment.TransactionID,
			Amount:        booking.Total(),
		}
	}

	if technicians := uc.catalog.Technicians(); len(technicians) > 0 {
		tech, eta := uc.picker.Pick(technicians)
		booking.Technician = &domain.TechnicianAssignment{
			TechnicianID: tech.ID,
			Name:         tech.Name,
			Phone:        tech.Phone,
			Rating:       tech.Rating,
			ETAMinutes:   eta,
		}
	}

	return booking
}

// isAdmissionError ошибки, уже классифицированные внутри критической секции
func isAdmissionError(err error) bool {
	return errors.Is(err, ErrSlotFull) ||
		errors.Is(err, ErrDuplicateBooking) ||
		errors.Is(err, ErrUnknownService) ||
		errors.Is(err, ErrStorageFailure)
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeAdmitted
	case errors.Is(err, ErrInvalidAppointment):
		return metrics.OutcomeInvalidAppointment
	case errors.Is(err, ErrSlotFull):
		return metrics.OutcomeSlotFull
	case errors.Is(err, ErrDuplicateBooking):
		return metrics.OutcomeDuplicate
	case errors.Is(err, ErrUnknownService):
		return metrics.OutcomeUnknownService
	default:
		return metrics.OutcomeStorageFailure
	}
}
