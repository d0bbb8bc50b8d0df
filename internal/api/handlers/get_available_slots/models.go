package get_available_slots

import (
	getAvailableSlots "github.com/m04kA/AC-BookingService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date  string          `json:"date"`
	Slots []AvailableSlot `json:"slots"`
}

// AvailableSlot занятость слота
type AvailableSlot struct {
	Slot      string `json:"slot"` // "09:00 - 10:00"
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Capacity  int    `json:"capacity"`
	Booked    int    `json:"booked"`
	Remaining int    `json:"remaining"`
	Status    string `json:"status"` // available | limited | full
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			Slot:      slot.Label,
			StartTime: slot.StartTime.String(),
			EndTime:   slot.EndTime.String(),
			Capacity:  slot.Capacity,
			Booked:    slot.Booked,
			Remaining: slot.Remaining,
			Status:    string(slot.Status),
		}
	}

	return &AvailableSlotsResponse{
		Date:  resp.Date,
		Slots: slots,
	}
}
