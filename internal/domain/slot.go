package domain

import "github.com/m04kA/AC-BookingService/pkg/types"

// SlotStatus availability class of a slot, consumed by the slot picker
type SlotStatus string

const (
	SlotAvailable SlotStatus = "available"
	SlotLimited   SlotStatus = "limited"
	SlotFull      SlotStatus = "full"
)

// Slot a bookable time window on a date. Always derived from the schedule, never stored.
type Slot struct {
	Date      string
	Label     string
	StartTime types.TimeString
	EndTime   types.TimeString
	Capacity  int
}

// Key returns the serialization key of the slot
func (s Slot) Key() string {
	return SlotKey(s.Date, s.Label)
}

// SlotKey builds the key used to serialize admissions to one (date, slot) pair
func SlotKey(date, label string) string {
	return date + "|" + label
}

// SlotAvailability occupancy of a slot at the moment of reading
type SlotAvailability struct {
	Slot      Slot
	Booked    int
	Remaining int
	Status    SlotStatus
}

// ClassifyOccupancy is the single policy for slot classes.
// "full" when booked >= capacity, "limited" when booked >= threshold*capacity.
// It is a presentation policy and never rejects an admission.
func ClassifyOccupancy(booked, capacity int, threshold float64) SlotStatus {
	if booked >= capacity {
		return SlotFull
	}
	if float64(booked) >= threshold*float64(capacity) {
		return SlotLimited
	}
	return SlotAvailable
}

// Remaining returns capacity left, floored at zero
func Remaining(booked, capacity int) int {
	if booked >= capacity {
		return 0
	}
	return capacity - booked
}
