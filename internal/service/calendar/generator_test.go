package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/AC-BookingService/pkg/types"
)

func TestGenerator_GenerateSlots(t *testing.T) {
	gen, err := NewGenerator(DefaultSchedule())
	require.NoError(t, err)

	slots, err := gen.GenerateSlots("2025-11-27")
	require.NoError(t, err)

	require.Len(t, slots, 9)
	assert.Equal(t, "09:00 - 10:00", slots[0].Label)
	assert.Equal(t, types.TimeString("09:00"), slots[0].StartTime)
	assert.Equal(t, types.TimeString("10:00"), slots[0].EndTime)
	assert.Equal(t, "17:00 - 18:00", slots[8].Label)

	for _, slot := range slots {
		assert.Equal(t, "2025-11-27", slot.Date)
		assert.Equal(t, 4, slot.Capacity)
	}
}

func TestGenerator_SlotCount(t *testing.T) {
	tests := []struct {
		name     string
		schedule Schedule
		want     int
	}{
		{name: "hourly", schedule: Schedule{StartHour: 9, EndHour: 18, IntervalMinutes: 60, Capacity: 4}, want: 9},
		{name: "two hours", schedule: Schedule{StartHour: 8, EndHour: 20, IntervalMinutes: 120, Capacity: 2}, want: 6},
		{name: "half hour", schedule: Schedule{StartHour: 10, EndHour: 12, IntervalMinutes: 30, Capacity: 1}, want: 4},
		{name: "trailing window dropped", schedule: Schedule{StartHour: 9, EndHour: 12, IntervalMinutes: 120, Capacity: 3}, want: 1},
		{name: "whole day", schedule: Schedule{StartHour: 0, EndHour: 24, IntervalMinutes: 60, Capacity: 1}, want: 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen, err := NewGenerator(tt.schedule)
			require.NoError(t, err)

			slots, err := gen.GenerateSlots("2026-01-05")
			require.NoError(t, err)
			assert.Len(t, slots, tt.want)
			for _, slot := range slots {
				assert.Equal(t, tt.schedule.Capacity, slot.Capacity)
			}
		})
	}
}

func TestGenerator_Deterministic(t *testing.T) {
	gen, err := NewGenerator(DefaultSchedule())
	require.NoError(t, err)

	first, err := gen.GenerateSlots("2025-12-01")
	require.NoError(t, err)
	second, err := gen.GenerateSlots("2025-12-01")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	other, err := gen.GenerateSlots("2025-12-02")
	require.NoError(t, err)
	require.Len(t, other, len(first))
	for i := range first {
		assert.Equal(t, first[i].Label, other[i].Label)
		assert.Equal(t, first[i].Capacity, other[i].Capacity)
	}
}

func TestGenerator_InvalidDate(t *testing.T) {
	gen, err := NewGenerator(DefaultSchedule())
	require.NoError(t, err)

	for _, date := range []string{"", "27-11-2025", "2025-13-01", "2025-02-30", "2025-1-5", "tomorrow"} {
		t.Run(date, func(t *testing.T) {
			slots, err := gen.GenerateSlots(date)
			assert.ErrorIs(t, err, ErrInvalidDate)
			assert.Nil(t, slots)
		})
	}
}

func TestGenerator_FindSlot(t *testing.T) {
	gen, err := NewGenerator(DefaultSchedule())
	require.NoError(t, err)

	t.Run("CanonicalLabel", func(t *testing.T) {
		slot, err := gen.FindSlot("2025-11-27", "09:00 - 10:00")
		require.NoError(t, err)
		assert.Equal(t, "09:00 - 10:00", slot.Label)
		assert.Equal(t, "2025-11-27", slot.Date)
	})

	t.Run("CompactLabel", func(t *testing.T) {
		slot, err := gen.FindSlot("2025-11-27", "09:00-10:00")
		require.NoError(t, err)
		assert.Equal(t, "09:00 - 10:00", slot.Label)
	})

	t.Run("OutsideSchedule", func(t *testing.T) {
		_, err := gen.FindSlot("2025-11-27", "25:00-26:00")
		assert.ErrorIs(t, err, ErrUnknownSlot)
	})

	t.Run("MisalignedWindow", func(t *testing.T) {
		_, err := gen.FindSlot("2025-11-27", "09:30 - 10:30")
		assert.ErrorIs(t, err, ErrUnknownSlot)
	})

	t.Run("InvalidDate", func(t *testing.T) {
		_, err := gen.FindSlot("not-a-date", "09:00 - 10:00")
		assert.ErrorIs(t, err, ErrInvalidDate)
	})
}

func TestSchedule_Validate(t *testing.T) {
	tests := []struct {
		name     string
		schedule Schedule
	}{
		{name: "start after end", schedule: Schedule{StartHour: 18, EndHour: 9, IntervalMinutes: 60, Capacity: 4}},
		{name: "zero interval", schedule: Schedule{StartHour: 9, EndHour: 18, IntervalMinutes: 0, Capacity: 4}},
		{name: "zero capacity", schedule: Schedule{StartHour: 9, EndHour: 18, IntervalMinutes: 60, Capacity: 0}},
		{name: "end past midnight", schedule: Schedule{StartHour: 9, EndHour: 25, IntervalMinutes: 60, Capacity: 4}},
		{name: "interval too long", schedule: Schedule{StartHour: 9, EndHour: 10, IntervalMinutes: 90, Capacity: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGenerator(tt.schedule)
			assert.ErrorIs(t, err, ErrInvalidSchedule)
		})
	}
}
