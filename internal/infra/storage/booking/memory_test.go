package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_AddAndList(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	_, err := m.Add(ctx, newTestBooking(1, "9876500011", "2025-11-20", "09:00 - 10:00"))
	require.NoError(t, err)
	_, err = m.Add(ctx, newTestBooking(2, "9876500012", "2025-11-20", "09:00 - 10:00"))
	require.NoError(t, err)
	_, err = m.Add(ctx, newTestBooking(3, "9876500011", "2025-11-20", "10:00 - 11:00"))
	require.NoError(t, err)

	slot, err := m.ListByDateSlot(ctx, "2025-11-20", "09:00 - 10:00")
	require.NoError(t, err)
	require.Len(t, slot, 2)
	assert.Equal(t, "BK-001", slot[0].ID)
	assert.Equal(t, "BK-002", slot[1].ID)

	customer, err := m.ListByCustomer(ctx, "9876500011")
	require.NoError(t, err)
	require.Len(t, customer, 2)
	assert.Equal(t, "BK-001", customer[0].ID)
	assert.Equal(t, "BK-003", customer[1].ID)

	all, err := m.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	empty, err := m.ListByDateSlot(ctx, "2025-11-21", "09:00 - 10:00")
	require.NoError(t, err)
	assert.Empty(t, empty)

	day, err := m.ListByDate(ctx, "2025-11-20")
	require.NoError(t, err)
	require.Len(t, day, 3)
	assert.Equal(t, "BK-003", day[2].ID)

	none, err := m.ListByDate(ctx, "2025-11-21")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMemory_DuplicateID(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	_, err := m.Add(ctx, newTestBooking(1, "9876500011", "2025-11-20", "09:00 - 10:00"))
	require.NoError(t, err)

	_, err = m.Add(ctx, newTestBooking(1, "9876500012", "2025-11-20", "09:00 - 10:00"))
	assert.ErrorIs(t, err, ErrDuplicateID)

	all, err := m.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestMemory_GetByID(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	_, err := m.Add(ctx, newTestBooking(1, "9876500011", "2025-11-20", "09:00 - 10:00"))
	require.NoError(t, err)

	got, err := m.GetByID(ctx, "BK-001")
	require.NoError(t, err)
	assert.Equal(t, "9876500011", got.CustomerPhone)

	_, err = m.GetByID(ctx, "BK-404")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestMemory_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	original := newTestBooking(1, "9876500011", "2025-11-20", "09:00 - 10:00")
	_, err := m.Add(ctx, original)
	require.NoError(t, err)

	original.Items[0].Quantity = 99
	original.CustomerPhone = "0000000000"

	got, err := m.GetByID(ctx, "BK-001")
	require.NoError(t, err)
	assert.Equal(t, 1, got.Items[0].Quantity)
	assert.Equal(t, "9876500011", got.CustomerPhone)

	got.Address.Line1 = "changed"
	again, err := m.GetByID(ctx, "BK-001")
	require.NoError(t, err)
	assert.Equal(t, "12 MG Road", again.Address.Line1)
}
