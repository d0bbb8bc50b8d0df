package bookings

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/m04kA/AC-BookingService/internal/domain"
	"github.com/m04kA/AC-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/AC-BookingService/internal/service/bookings/models"
	"github.com/m04kA/AC-BookingService/pkg/logger"
	"github.com/m04kA/AC-BookingService/pkg/ptr"
)

func newService(t *testing.T) *Service {
	t.Helper()

	ledger := booking.NewMemory()
	seed := []*domain.Booking{
		{
			ID: "BK-1", CustomerPhone: "9876500011", CustomerName: "Asha", Date: "2025-11-20",
			SlotLabel: "09:00 - 10:00", Status: domain.StatusConfirmed,
			Items:      []domain.BookingItem{{ServiceID: "svc1", Title: "AC Service", Variant: "Split", Quantity: 2, UnitPrice: 800}},
			Address:    &domain.Address{Name: "Asha", Phone: "9876500011", Line1: "12 MG Road", Pincode: "560001"},
			Payment:    &domain.Payment{Method: "cod", Amount: 1600},
			Technician: &domain.TechnicianAssignment{TechnicianID: "t2", Name: "Suman Singh", ETAMinutes: 20},
			CreatedAt:  time.Date(2025, 11, 19, 8, 0, 0, 0, time.UTC),
		},
		{
			ID: "BK-2", CustomerPhone: "9876500022", Date: "2025-11-20",
			SlotLabel: "10:00 - 11:00", Status: domain.StatusConfirmed,
		},
		{
			ID: "BK-3", CustomerPhone: "9876500011", Date: "2025-11-21",
			SlotLabel: "09:00 - 10:00", Status: domain.StatusCancelled,
		},
	}
	for _, b := range seed {
		_, err := ledger.Add(context.Background(), b)
		require.NoError(t, err)
	}

	return NewService(ledger, logger.Nop())
}

func TestGetByID(t *testing.T) {
	s := newService(t)

	resp, err := s.GetByID(context.Background(), "BK-1")
	require.NoError(t, err)
	assert.Equal(t, "9876500011", resp.CustomerPhone)
	assert.Equal(t, "09:00 - 10:00", resp.Slot)
	assert.InDelta(t, 1600.0, resp.Total, 1e-9)
	require.NotNil(t, resp.Technician)
	assert.Equal(t, 20, resp.Technician.ETAMinutes)

	_, err = s.GetByID(context.Background(), "BK-404")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestList(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  *models.ListBookingsRequest
		want []string
	}{
		{name: "all", req: nil, want: []string{"BK-1", "BK-2", "BK-3"}},
		{name: "by phone", req: &models.ListBookingsRequest{Phone: ptr.Ptr("9876500011")}, want: []string{"BK-1", "BK-3"}},
		{name: "by date", req: &models.ListBookingsRequest{Date: ptr.Ptr("2025-11-20")}, want: []string{"BK-1", "BK-2"}},
		{name: "by status", req: &models.ListBookingsRequest{Status: ptr.Ptr("cancelled")}, want: []string{"BK-3"}},
		{name: "unknown phone", req: &models.ListBookingsRequest{Phone: ptr.Ptr("0000000000")}, want: []string{}},
		{name: "phone with spaces", req: &models.ListBookingsRequest{Phone: ptr.Ptr("  9876500011 ")}, want: []string{"BK-1", "BK-3"}},
		{name: "blank phone", req: &models.ListBookingsRequest{Phone: ptr.Ptr("   ")}, want: []string{"BK-1", "BK-2", "BK-3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := s.List(ctx, tt.req)
			require.NoError(t, err)

			ids := make([]string, 0, len(resp.Bookings))
			for _, b := range resp.Bookings {
				ids = append(ids, b.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestList_InvalidFilters(t *testing.T) {
	s := newService(t)

	_, err := s.List(context.Background(), &models.ListBookingsRequest{Status: ptr.Ptr("pending")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = s.List(context.Background(), &models.ListBookingsRequest{Date: ptr.Ptr("20.11.2025")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExportXLSX(t *testing.T) {
	s := newService(t)

	data, err := s.ExportXLSX(context.Background(), "2025-11-20")
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(exportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Booking ID", rows[0][0])
	assert.Equal(t, "BK-1", rows[1][0])
	assert.Equal(t, "09:00 - 10:00", rows[1][1])
	assert.Equal(t, "12 MG Road, 560001", rows[1][4])
	assert.Equal(t, "AC Service x2", rows[1][5])
	assert.Equal(t, "Suman Singh", rows[1][6])
	assert.Equal(t, "BK-2", rows[2][0])
}

func TestExportXLSX_InvalidDate(t *testing.T) {
	s := newService(t)

	_, err := s.ExportXLSX(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestFillExportSheet_MissingSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	err := fillExportSheet(f, "Missing", nil)
	assert.Error(t, err)
}

func TestFillExportSheet_Rows(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	b := &domain.Booking{ID: "BK-9", SlotLabel: "09:00 - 10:00", CustomerPhone: "9876500011", Status: domain.StatusConfirmed}
	require.NoError(t, fillExportSheet(f, "Sheet1", []*domain.Booking{b}))

	got, err := f.GetCellValue("Sheet1", "A2")
	require.NoError(t, err)
	assert.Equal(t, "BK-9", got)
}
