package catalog

import (
	"fmt"
	"strings"

	"github.com/m04kA/AC-BookingService/internal/domain"
)

// Service каталог услуг и мастеров. Неизменяем после создания.
type Service struct {
	services    []domain.Service
	byID        map[string]int
	technicians []domain.Technician
}

// NewService создает каталог и проверяет его целостность
func NewService(services []domain.Service, technicians []domain.Technician) (*Service, error) {
	byID := make(map[string]int, len(services))
	for i, s := range services {
		if strings.TrimSpace(s.ID) == "" {
			return nil, fmt.Errorf("%w: service #%d has empty id", ErrInvalidCatalog, i)
		}
		if _, exists := byID[s.ID]; exists {
			return nil, fmt.Errorf("%w: duplicate service id %q", ErrInvalidCatalog, s.ID)
		}
		if s.BasePrice < 0 {
			return nil, fmt.Errorf("%w: service %q has negative base price", ErrInvalidCatalog, s.ID)
		}
		for _, v := range s.Variants {
			if s.BasePrice+v.PriceModifier < 0 {
				return nil, fmt.Errorf("%w: service %q variant %q has negative price", ErrInvalidCatalog, s.ID, v.Name)
			}
		}
		byID[s.ID] = i
	}

	techIDs := make(map[string]struct{}, len(technicians))
	for i, t := range technicians {
		if strings.TrimSpace(t.ID) == "" {
			return nil, fmt.Errorf("%w: technician #%d has empty id", ErrInvalidCatalog, i)
		}
		if _, exists := techIDs[t.ID]; exists {
			return nil, fmt.Errorf("%w: duplicate technician id %q", ErrInvalidCatalog, t.ID)
		}
		techIDs[t.ID] = struct{}{}
	}

	return &Service{
		services:    services,
		byID:        byID,
		technicians: technicians,
	}, nil
}

// List возвращает услуги в порядке каталога
func (s *Service) List() []domain.Service {
	result := make([]domain.Service, len(s.services))
	copy(result, s.services)
	return result
}

// GetByID возвращает услугу по ID
func (s *Service) GetByID(id string) (*domain.Service, error) {
	idx, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: id=%s", ErrServiceNotFound, id)
	}
	service := s.services[idx]
	return &service, nil
}

// Technicians возвращает мастеров, доступных для назначения
func (s *Service) Technicians() []domain.Technician {
	result := make([]domain.Technician, len(s.technicians))
	copy(result, s.technicians)
	return result
}
