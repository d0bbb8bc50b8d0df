package create_booking

import (
	"time"

	"github.com/m04kA/AC-BookingService/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	CustomerPhone string  // Телефон клиента, идентифицирует клиента
	CustomerName  string  // Имя клиента (опционально)
	Email         *string // Email (опционально)
	Date          string  // Дата в формате YYYY-MM-DD
	SlotLabel     string  // Метка слота, например "09:00 - 10:00"

	// Полезная нагрузка, сохраняется как есть
	Items   []ItemRequest
	Address *domain.Address
	Payment *PaymentRequest
	Notes   *string
}

// ItemRequest позиция корзины
type ItemRequest struct {
	ServiceID string
	Variant   string // пусто - базовая цена услуги
	Quantity  int
}

// PaymentRequest способ оплаты, сумма считается по позициям
type PaymentRequest struct {
	Method        string
	TransactionID *string
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            string
	CustomerPhone string
	CustomerName  string
	Email         *string
	Date          string
	SlotLabel     string
	Status        string

	Items      []domain.BookingItem
	Address    *domain.Address
	Payment    *domain.Payment
	Technician *domain.TechnicianAssignment
	Notes      *string
	Total      float64

	// Занятость слота сразу после допуска
	SlotStatus domain.SlotStatus
	Remaining  int

	CreatedAt time.Time
}
