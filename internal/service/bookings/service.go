package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/AC-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/AC-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/AC-BookingService/internal/service/bookings/models"
)

// Service сервис чтения бронирований
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// List получает бронирования в порядке создания.
// С телефоном - только бронирования клиента, иначе весь журнал.
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	bookings, err := s.filtered(ctx, req)
	if err != nil {
		return nil, err
	}

	s.logger.Info("List: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

func (s *Service) filtered(ctx context.Context, req *models.ListBookingsRequest) ([]*domain.Booking, error) {
	if req == nil {
		req = &models.ListBookingsRequest{}
	}

	var status *domain.BookingStatus
	if req.Status != nil {
		st, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("List: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		status = &st
	}

	if req.Date != nil {
		if _, err := time.Parse(domain.DateFormat, *req.Date); err != nil {
			s.logger.Warn("List: invalid date=%s", *req.Date)
			return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
		}
	}

	var (
		bookings []*domain.Booking
		err      error
	)
	// телефон хранится без пробелов по краям
	if phone := strings.TrimSpace(ptrValue(req.Phone)); phone != "" {
		bookings, err = s.bookingRepo.ListByCustomer(ctx, phone)
	} else {
		bookings, err = s.bookingRepo.List(ctx)
	}
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	result := make([]*domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if req.Date != nil && b.Date != *req.Date {
			continue
		}
		if status != nil && b.Status != *status {
			continue
		}
		result = append(result, b)
	}

	return result, nil
}

func ptrValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
