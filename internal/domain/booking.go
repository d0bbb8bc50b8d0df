package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// Booking represents a confirmed service appointment held in the ledger
type Booking struct {
	ID            string
	CustomerPhone string
	CustomerName  string
	Email         *string
	Date          string // YYYY-MM-DD
	SlotLabel     string // "09:00 - 10:00"
	Status        BookingStatus

	// Booking payload, stored as is
	Items      []BookingItem
	Address    *Address
	Payment    *Payment
	Technician *TechnicianAssignment
	Notes      *string

	CreatedAt time.Time
}

// BookingItem a priced service line of a booking
type BookingItem struct {
	ServiceID string
	Title     string
	Variant   string
	Quantity  int
	UnitPrice float64
}

// Payment payment record attached by the checkout
type Payment struct {
	Method        string // "cod", "upi", "card"
	TransactionID *string
	Amount        float64
}

// TechnicianAssignment technician dispatched to the appointment
type TechnicianAssignment struct {
	TechnicianID string
	Name         string
	Phone        string
	Rating       float64
	ETAMinutes   int
}

// IsActive returns true if the booking occupies its slot
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// Total returns the sum of all priced items
func (b *Booking) Total() float64 {
	total := 0.0
	for _, item := range b.Items {
		total += item.UnitPrice * float64(item.Quantity)
	}
	return total
}

// Clone returns a deep copy, so ledgers never share memory with callers
func (b *Booking) Clone() *Booking {
	if b == nil {
		return nil
	}
	c := *b
	if b.Items != nil {
		c.Items = append([]BookingItem(nil), b.Items...)
	}
	if b.Address != nil {
		addr := *b.Address
		c.Address = &addr
	}
	if b.Payment != nil {
		p := *b.Payment
		c.Payment = &p
	}
	if b.Technician != nil {
		tech := *b.Technician
		c.Technician = &tech
	}
	return &c
}

// ActiveBookings filters out bookings that no longer occupy a slot
func ActiveBookings(bookings []*Booking) []*Booking {
	active := make([]*Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.IsActive() {
			active = append(active, b)
		}
	}
	return active
}
