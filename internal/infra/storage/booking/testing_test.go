package booking

import (
	"fmt"
	"time"

	"github.com/m04kA/AC-BookingService/internal/domain"
)

func newTestBooking(n int, phone, date, label string) *domain.Booking {
	notes := "ring twice"
	return &domain.Booking{
		ID:            fmt.Sprintf("BK-%03d", n),
		CustomerPhone: phone,
		CustomerName:  "Test Customer",
		Date:          date,
		SlotLabel:     label,
		Status:        domain.StatusConfirmed,
		Items: []domain.BookingItem{
			{ServiceID: "svc-1", Title: "AC Regular Service", Variant: "Split AC", Quantity: 1, UnitPrice: 499},
		},
		Address: &domain.Address{ID: "AD-1", Name: "Test Customer", Phone: phone, Line1: "12 MG Road", Pincode: "560001"},
		Payment: &domain.Payment{Method: "cod", Amount: 499},
		Technician: &domain.TechnicianAssignment{
			TechnicianID: "tech-1", Name: "Ravi Kumar", Phone: "9000000001", Rating: 4.8, ETAMinutes: 25,
		},
		Notes:     &notes,
		CreatedAt: time.Date(2025, 11, 20, 8, 30, 0, n*1000, time.UTC),
	}
}
