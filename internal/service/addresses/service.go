package addresses

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/AC-BookingService/internal/domain"
	"github.com/m04kA/AC-BookingService/internal/service/addresses/models"
)

const addressIDPrefix = "AD-"

// Service сервис адресной книги клиентов
type Service struct {
	repo   AddressRepository
	now    func() time.Time
	logger Logger
}

// NewService создает новый экземпляр сервиса адресов
func NewService(repo AddressRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		now:    time.Now,
		logger: logger,
	}
}

// Create проверяет и сохраняет адрес, присваивая ему ID
func (s *Service) Create(ctx context.Context, req *models.CreateAddressRequest) (*models.AddressResponse, error) {
	if err := validateCreate(req); err != nil {
		s.logger.Warn("CreateAddress: validation failed: %v", err)
		return nil, err
	}

	addr := &domain.Address{
		ID:        addressIDPrefix + uuid.NewString(),
		Name:      strings.TrimSpace(req.Name),
		Phone:     strings.TrimSpace(req.Phone),
		Line1:     strings.TrimSpace(req.Line1),
		Pincode:   strings.TrimSpace(req.Pincode),
		Landmark:  req.Landmark,
		CreatedAt: s.now(),
	}

	created, err := s.repo.Add(ctx, addr)
	if err != nil {
		s.logger.Error("CreateAddress: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateAddress: saved address id=%s for phone=%s", created.ID, created.Phone)
	return models.FromDomainAddress(created), nil
}

// List возвращает сохраненные адреса, с телефоном - только адреса клиента
func (s *Service) List(ctx context.Context, phone *string) ([]models.AddressResponse, error) {
	addrs, err := s.repo.List(ctx, phone)
	if err != nil {
		s.logger.Error("ListAddresses: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	result := make([]models.AddressResponse, 0, len(addrs))
	for _, a := range addrs {
		result = append(result, *models.FromDomainAddress(a))
	}
	return result, nil
}

func validateCreate(req *models.CreateAddressRequest) error {
	if req == nil {
		return fmt.Errorf("%w: empty request", ErrInvalidInput)
	}

	required := []struct {
		field string
		value string
	}{
		{"name", req.Name},
		{"phone", req.Phone},
		{"line1", req.Line1},
		{"pincode", req.Pincode},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return fmt.Errorf("%w: %s is required", ErrInvalidInput, r.field)
		}
	}
	return nil
}
