package models

import (
	"errors"
	"time"

	"github.com/m04kA/AC-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// ListBookingsRequest фильтры списка бронирований
type ListBookingsRequest struct {
	Phone  *string `json:"phone,omitempty"`  // Только бронирования клиента
	Date   *string `json:"date,omitempty"`   // YYYY-MM-DD
	Status *string `json:"status,omitempty"` // confirmed, cancelled, completed
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID            string  `json:"id"`
	CustomerPhone string  `json:"customerPhone"`
	CustomerName  string  `json:"customerName,omitempty"`
	Email         *string `json:"email,omitempty"`
	Date          string  `json:"date"` // "2025-11-20"
	Slot          string  `json:"slot"` // "09:00 - 10:00"
	Status        string  `json:"status"`

	Items      []ItemResponse      `json:"items"`
	Address    *AddressResponse    `json:"address,omitempty"`
	Payment    *PaymentResponse    `json:"payment,omitempty"`
	Technician *TechnicianResponse `json:"technician,omitempty"`
	Notes      *string             `json:"notes,omitempty"`
	Total      float64             `json:"total"`

	CreatedAt time.Time `json:"createdAt"`
}

// ItemResponse позиция бронирования
type ItemResponse struct {
	ServiceID string  `json:"serviceId"`
	Title     string  `json:"title"`
	Variant   string  `json:"variant,omitempty"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

// AddressResponse адрес обслуживания
type AddressResponse struct {
	ID       string  `json:"id,omitempty"`
	Name     string  `json:"name"`
	Phone    string  `json:"phone"`
	Line1    string  `json:"line1"`
	Pincode  string  `json:"pincode"`
	Landmark *string `json:"landmark,omitempty"`
}

// PaymentResponse запись об оплате
type PaymentResponse struct {
	Method        string  `json:"method"`
	TransactionID *string `json:"transactionId,omitempty"`
	Amount        float64 `json:"amount"`
}

// TechnicianResponse назначенный мастер
type TechnicianResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Phone      string  `json:"phone"`
	Rating     float64 `json:"rating"`
	ETAMinutes int     `json:"etaMins"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:            b.ID,
		CustomerPhone: b.CustomerPhone,
		CustomerName:  b.CustomerName,
		Email:         b.Email,
		Date:          b.Date,
		Slot:          b.SlotLabel,
		Status:        string(b.Status),
		Items:         make([]ItemResponse, 0, len(b.Items)),
		Address:       FromDomainAddress(b.Address),
		Notes:         b.Notes,
		Total:         b.Total(),
		CreatedAt:     b.CreatedAt,
	}

	for _, item := range b.Items {
		resp.Items = append(resp.Items, ItemResponse{
			ServiceID: item.ServiceID,
			Title:     item.Title,
			Variant:   item.Variant,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	if b.Payment != nil {
		resp.Payment = &PaymentResponse{
			Method:        b.Payment.Method,
			TransactionID: b.Payment.TransactionID,
			Amount:        b.Payment.Amount,
		}
	}

	if b.Technician != nil {
		resp.Technician = &TechnicianResponse{
			ID:         b.Technician.TechnicianID,
			Name:       b.Technician.Name,
			Phone:      b.Technician.Phone,
			Rating:     b.Technician.Rating,
			ETAMinutes: b.Technician.ETAMinutes,
		}
	}

	return resp
}

// FromDomainAddress конвертирует адрес бронирования в DTO
func FromDomainAddress(a *domain.Address) *AddressResponse {
	if a == nil {
		return nil
	}
	return &AddressResponse{
		ID:       a.ID,
		Name:     a.Name,
		Phone:    a.Phone,
		Line1:    a.Line1,
		Pincode:  a.Pincode,
		Landmark: a.Landmark,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)

	switch s {
	case domain.StatusConfirmed, domain.StatusCancelled, domain.StatusCompleted:
		return s, nil
	default:
		return "", ErrInvalidStatus
	}
}
