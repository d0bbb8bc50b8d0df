package models

import (
	"time"

	"github.com/m04kA/AC-BookingService/internal/domain"
)

// CreateAddressRequest запрос на сохранение адреса
type CreateAddressRequest struct {
	Name     string  `json:"name"`
	Phone    string  `json:"phone"`
	Line1    string  `json:"line1"`
	Pincode  string  `json:"pincode"`
	Landmark *string `json:"landmark,omitempty"`
}

// AddressResponse сохраненный адрес
type AddressResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Line1     string    `json:"line1"`
	Pincode   string    `json:"pincode"`
	Landmark  *string   `json:"landmark,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// FromDomainAddress конвертирует domain модель в DTO
func FromDomainAddress(a *domain.Address) *AddressResponse {
	if a == nil {
		return nil
	}
	return &AddressResponse{
		ID:        a.ID,
		Name:      a.Name,
		Phone:     a.Phone,
		Line1:     a.Line1,
		Pincode:   a.Pincode,
		Landmark:  a.Landmark,
		CreatedAt: a.CreatedAt,
	}
}
