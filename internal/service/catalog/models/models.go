package models

import "github.com/m04kA/AC-BookingService/internal/domain"

// ServiceResponse услуга каталога
type ServiceResponse struct {
	ID          string            `json:"id"`
	Slug        string            `json:"slug"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	BasePrice   float64           `json:"basePrice"`
	Variants    []VariantResponse `json:"variants"`
}

// VariantResponse вариант услуги с итоговой ценой
type VariantResponse struct {
	Name          string  `json:"name"`
	PriceModifier float64 `json:"priceModifier"`
	Price         float64 `json:"price"`
}

// FromDomainService конвертирует domain модель в DTO
func FromDomainService(s *domain.Service) *ServiceResponse {
	if s == nil {
		return nil
	}

	resp := &ServiceResponse{
		ID:          s.ID,
		Slug:        s.Slug,
		Title:       s.Title,
		Description: s.Description,
		BasePrice:   s.BasePrice,
		Variants:    make([]VariantResponse, 0, len(s.Variants)),
	}
	for _, v := range s.Variants {
		resp.Variants = append(resp.Variants, VariantResponse{
			Name:          v.Name,
			PriceModifier: v.PriceModifier,
			Price:         s.BasePrice + v.PriceModifier,
		})
	}
	return resp
}

// FromDomainServiceList конвертирует список услуг в DTO
func FromDomainServiceList(services []domain.Service) []ServiceResponse {
	result := make([]ServiceResponse, 0, len(services))
	for i := range services {
		result = append(result, *FromDomainService(&services[i]))
	}
	return result
}
