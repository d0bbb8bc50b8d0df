package create_booking

import (
	"github.com/m04kA/AC-BookingService/internal/domain"
	bookingModels "github.com/m04kA/AC-BookingService/internal/service/bookings/models"
	createBooking "github.com/m04kA/AC-BookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model.
// userPhone и appointment принимаются для совместимости с клиентом демо-стенда.
type CreateBookingRequest struct {
	CustomerPhone string          `json:"customerPhone"`
	UserPhone     string          `json:"userPhone,omitempty"`
	CustomerName  string          `json:"customerName,omitempty"`
	Email         *string         `json:"email,omitempty"`
	Date          string          `json:"date"` // "2025-11-20"
	Slot          string          `json:"slot"` // "09:00 - 10:00"
	Appointment   *Appointment    `json:"appointment,omitempty"`
	Items         []ItemRequest   `json:"items"`
	Address       *AddressRequest `json:"address,omitempty"`
	Payment       *PaymentRequest `json:"payment,omitempty"`
	Notes         *string         `json:"notes,omitempty"`
}

type Appointment struct {
	Date string `json:"date"`
	Slot string `json:"slot"`
}

type ItemRequest struct {
	ServiceID string `json:"serviceId"`
	Variant   string `json:"variant,omitempty"`
	Quantity  int    `json:"quantity"`
}

type AddressRequest struct {
	ID       string  `json:"id,omitempty"`
	Name     string  `json:"name"`
	Phone    string  `json:"phone"`
	Line1    string  `json:"line1"`
	Pincode  string  `json:"pincode"`
	Landmark *string `json:"landmark,omitempty"`
}

type PaymentRequest struct {
	Method        string  `json:"method"`
	TransactionID *string `json:"transactionId,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	bookingModels.BookingResponse
	SlotStatus string `json:"slotStatus"`
	Remaining  int    `json:"remaining"`
}

// DuplicateBookingResponse ответ 409 с ID существующего бронирования
type DuplicateBookingResponse struct {
	Message           string `json:"message"`
	ExistingBookingID string `json:"existingBookingId"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	req := &createBooking.Request{
		CustomerPhone: r.CustomerPhone,
		CustomerName:  r.CustomerName,
		Email:         r.Email,
		Date:          r.Date,
		SlotLabel:     r.Slot,
		Items:         make([]createBooking.ItemRequest, 0, len(r.Items)),
		Notes:         r.Notes,
	}

	if req.CustomerPhone == "" {
		req.CustomerPhone = r.UserPhone
	}
	if r.Appointment != nil {
		if req.Date == "" {
			req.Date = r.Appointment.Date
		}
		if req.SlotLabel == "" {
			req.SlotLabel = r.Appointment.Slot
		}
	}

	for _, item := range r.Items {
		req.Items = append(req.Items, createBooking.ItemRequest{
			ServiceID: item.ServiceID,
			Variant:   item.Variant,
			Quantity:  item.Quantity,
		})
	}

	if r.Address != nil {
		req.Address = &domain.Address{
			ID:       r.Address.ID,
			Name:     r.Address.Name,
			Phone:    r.Address.Phone,
			Line1:    r.Address.Line1,
			Pincode:  r.Address.Pincode,
			Landmark: r.Address.Landmark,
		}
	}

	if r.Payment != nil {
		req.Payment = &createBooking.PaymentRequest{
			Method:        r.Payment.Method,
			TransactionID: r.Payment.TransactionID,
		}
	}

	return req
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	booking := bookingModels.FromDomainBooking(&domain.Booking{
		ID:            resp.ID,
		CustomerPhone: resp.CustomerPhone,
		CustomerName:  resp.CustomerName,
		Email:         resp.Email,
		Date:          resp.Date,
		SlotLabel:     resp.SlotLabel,
		Status:        domain.BookingStatus(resp.Status),
		Items:         resp.Items,
		Address:       resp.Address,
		Payment:       resp.Payment,
		Technician:    resp.Technician,
		Notes:         resp.Notes,
		CreatedAt:     resp.CreatedAt,
	})

	return &BookingResponse{
		BookingResponse: *booking,
		SlotStatus:      string(resp.SlotStatus),
		Remaining:       resp.Remaining,
	}
}
