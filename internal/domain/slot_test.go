package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyOccupancy(t *testing.T) {
	tests := []struct {
		name     string
		booked   int
		capacity int
		want     SlotStatus
	}{
		{name: "empty", booked: 0, capacity: 4, want: SlotAvailable},
		{name: "below threshold", booked: 3, capacity: 5, want: SlotAvailable},
		{name: "at threshold", booked: 4, capacity: 5, want: SlotLimited},
		{name: "capacity four, three booked", booked: 3, capacity: 4, want: SlotAvailable},
		{name: "full", booked: 4, capacity: 4, want: SlotFull},
		{name: "overbooked", booked: 6, capacity: 4, want: SlotFull},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyOccupancy(tt.booked, tt.capacity, DefaultLimitedThreshold))
		})
	}
}

func TestRemaining(t *testing.T) {
	assert.Equal(t, 4, Remaining(0, 4))
	assert.Equal(t, 1, Remaining(3, 4))
	assert.Equal(t, 0, Remaining(4, 4))
	assert.Equal(t, 0, Remaining(7, 4))
}

func TestBooking_CloneAndTotal(t *testing.T) {
	original := &Booking{
		ID: "BK-1",
		Items: []BookingItem{
			{ServiceID: "svc1", Quantity: 2, UnitPrice: 800},
			{ServiceID: "svc3", Quantity: 1, UnitPrice: 2500},
		},
		Address: &Address{Line1: "12 MG Road"},
	}

	clone := original.Clone()
	clone.Items[0].Quantity = 10
	clone.Address.Line1 = "changed"

	assert.Equal(t, 2, original.Items[0].Quantity)
	assert.Equal(t, "12 MG Road", original.Address.Line1)
	assert.Equal(t, 4100.0, original.Total())
}

func TestActiveBookings(t *testing.T) {
	bookings := []*Booking{
		{ID: "a", Status: StatusConfirmed},
		{ID: "b", Status: StatusCancelled},
		{ID: "c", Status: StatusCompleted},
	}

	active := ActiveBookings(bookings)
	assert.Len(t, active, 2)
	assert.Equal(t, "a", active[0].ID)
	assert.Equal(t, "c", active[1].ID)
}

func TestService_PriceFor(t *testing.T) {
	svc := Service{BasePrice: 1200, Variants: []Variant{{Name: "Split"}, {Name: "Window", PriceModifier: -150}}}

	price, ok := svc.PriceFor("Window")
	assert.True(t, ok)
	assert.Equal(t, 1050.0, price)

	price, ok = svc.PriceFor("")
	assert.True(t, ok)
	assert.Equal(t, 1200.0, price)

	_, ok = svc.PriceFor("Cassette")
	assert.False(t, ok)
}
